// Package skills maps free-form service-type strings to the canonical
// skill tokens shared by technician profiles and candidate search. Booking
// creation and profile updates both normalize through here so the two
// sides can never disagree on a skill's spelling.
package skills

import "strings"

// Canonical skill catalog. Validation at profile write time checks
// membership here; search never does, so skills stored before a catalog
// entry existed keep matching.
var Catalog = []string{
	"ac",
	"appliance",
	"carpentry",
	"cleaning",
	"electrical",
	"gardening",
	"handyman",
	"painting",
	"pestcontrol",
	"plumbing",
}

// aliases maps whitespace-stripped lower-case service types to canonical
// skills. Unknown inputs pass through lower-cased and trimmed, so the
// catalog can grow without breaking previously stored skills.
var aliases = map[string]string{
	"plumbing":        "plumbing",
	"plumber":         "plumbing",
	"piperepair":      "plumbing",
	"electrical":      "electrical",
	"electricalwork":  "electrical",
	"electrician":     "electrical",
	"carpenter":       "carpentry",
	"carpentry":       "carpentry",
	"painting":        "painting",
	"painter":         "painting",
	"ac":              "ac",
	"acrepair":        "ac",
	"hvac":            "ac",
	"airconditioning": "ac",
	"appliance":       "appliance",
	"appliancerepair": "appliance",
	"cleaning":        "cleaning",
	"housecleaning":   "cleaning",
	"gardening":       "gardening",
	"landscaping":     "gardening",
	"handyman":        "handyman",
	"generalrepairs":  "handyman",
	"pestcontrol":     "pestcontrol",
	"fumigation":      "pestcontrol",
}

var catalogSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Catalog))
	for _, s := range Catalog {
		set[s] = struct{}{}
	}
	return set
}()

// Normalize maps a raw service type to its canonical skill. Known aliases
// collapse; unknown inputs come back lower-cased and trimmed. Never fails.
func Normalize(rawServiceType string) string {
	trimmed := strings.ToLower(strings.TrimSpace(rawServiceType))
	key := strings.Join(strings.Fields(trimmed), "")
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return trimmed
}

// Validate reports whether every skill is a member of the canonical
// catalog. Used at technician profile write time only.
func Validate(skills []string) bool {
	if len(skills) == 0 {
		return false
	}
	for _, skill := range skills {
		if _, ok := catalogSet[skill]; !ok {
			return false
		}
	}
	return true
}
