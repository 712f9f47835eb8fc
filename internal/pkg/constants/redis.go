package constants

// Redis key formats
const (
	// Geo index
	KeySkillGeo         = "technicians:geo:%s"    // Format: technicians:geo:{skill} - GEO set per canonical skill
	KeySkillRecency     = "technicians:recent:%s" // Format: technicians:recent:{skill} - ZSET by last state update
	KeyTechnicianState  = "technician:state:%s"   // Format: technician:state:{technician_id} - hash of live dispatch state
	KeyTechnicianSkills = "technician:skills:%s"  // Format: technician:skills:{technician_id} - set of canonical skills
	KeyAvailableSet     = "technicians:available" // Set of available technician IDs
)

// Redis hash fields
const (
	FieldLatitude    = "lat"
	FieldLongitude   = "lng"
	FieldUpdatedAt   = "ts"
	FieldGeohash     = "geohash"
	FieldRadius      = "radius"
	FieldAvailable   = "available"
	FieldRatingSum   = "rating_sum"
	FieldRatingCount = "rating_count"
)
