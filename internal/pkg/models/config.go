package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Logger   LoggerConfig
	Match    MatchConfig
	Booking  BookingConfig
	Notify   NotifyConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// LoggerConfig contains structured logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// MatchConfig contains matching engine configuration
type MatchConfig struct {
	SearchRadiusKm float64 `json:"search_radius_km"` // Radius in kilometers for candidate search
	CandidateLimit int     `json:"candidate_limit"`  // Max candidates returned per query
	QueryTimeoutMs int     `json:"query_timeout_ms"` // Bound on a single GeoIndex query
}

// BookingConfig contains booking state machine configuration
type BookingConfig struct {
	// StrictOrder confines status transitions to the forward chain
	// Pending -> Accepted -> En route -> Arrived -> Completed, plus
	// cancellation. Off by default: any enumerated move between
	// non-terminal statuses is accepted, matching historical behaviour.
	StrictOrder bool `json:"strict_order"`
}

// NotifyConfig contains email/SMS notification configuration.
// Either channel is optional; an unconfigured channel is a silent no-op.
type NotifyConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	SMSAccountID string
	SMSAuthToken string
	SMSFrom      string
	SMSAPIURL    string

	TimeoutMs int // Bound on a single delivery attempt
}
