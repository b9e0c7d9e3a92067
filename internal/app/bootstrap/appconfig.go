// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for RoktoSheba.
//
// WAFFLE's CoreConfig covers ports, TLS, log level and environment; the
// fields here are everything specific to this service. Values come from
// flags, ROKTOSHEBA_* environment variables, config files or the defaults
// in appConfigKeys.
type AppConfig struct {
	// MongoDB connection. When MongoURI is empty it is assembled from
	// DBUser, DBPass and DBClusterHost as an Atlas SRV URI.
	MongoURI         string
	DBUser           string
	DBPass           string
	DBClusterHost    string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Payment provider
	StripeSecretKey string
	StripeCurrency  string

	// HTTP surface
	AdminToken         string   // shared secret for administrative routes; empty disables the gate
	CORSAllowedOrigins []string // "*" allows any origin
	MaxBodyBytes       int64
	RateLimitPerMinute int // per client IP on public write endpoints; 0 disables

	// Audit logging: "all" (db+log), "db", "log" or "off"
	AuditLogAdmin    string
	AuditLogSecurity string
}
