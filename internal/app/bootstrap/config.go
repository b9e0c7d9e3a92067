// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dalemusser/roktosheba/internal/app/system/auditlog"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for RoktoSheba.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, admin_token, etc.
//   - Environment variables: ROKTOSHEBA_MONGO_URI, ROKTOSHEBA_ADMIN_TOKEN, etc.
//   - Command-line flags: --mongo_uri, --admin_token, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (overrides db_user/db_pass/db_cluster_host)"},
	{Name: "db_user", Default: "", Desc: "MongoDB Atlas user"},
	{Name: "db_pass", Default: "", Desc: "MongoDB Atlas password"},
	{Name: "db_cluster_host", Default: "cluster0.kxazpdy.mongodb.net", Desc: "MongoDB Atlas cluster host"},
	{Name: "mongo_database", Default: "roktoSheba", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Payments
	{Name: "stripe_secret_key", Default: "", Desc: "Stripe secret API key"},
	{Name: "stripe_currency", Default: "usd", Desc: "Currency for payment intents"},

	// HTTP surface
	{Name: "admin_token", Default: "", Desc: "Shared token for administrative routes (X-Admin-Token); empty disables the gate"},
	{Name: "cors_allowed_origins", Default: "*", Desc: "Comma-separated CORS origins ('*' for any)"},
	{Name: "max_body_bytes", Default: int(jsonio.DefaultMaxBodyBytes), Desc: "Maximum request body size in bytes"},
	{Name: "rate_limit_per_minute", Default: 30, Desc: "Requests per minute per IP on public write endpoints (0 disables)"},

	// Audit logging settings
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_security", Default: "all", Desc: "Security event logging: 'all' (db+log), 'db', 'log', or 'off'"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// WAFFLE_* and ROKTOSHEBA_* environment variables and flags, merged with
// precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ROKTOSHEBA", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	// ConnectDB pings with timeouts.Ping, so overrides must be in place first.
	configureTimeouts(logger)

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		DBUser:           appValues.String("db_user"),
		DBPass:           appValues.String("db_pass"),
		DBClusterHost:    appValues.String("db_cluster_host"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		StripeSecretKey: appValues.String("stripe_secret_key"),
		StripeCurrency:  appValues.String("stripe_currency"),

		AdminToken:         appValues.String("admin_token"),
		CORSAllowedOrigins: splitOrigins(appValues.String("cors_allowed_origins")),
		MaxBodyBytes:       int64(appValues.Int("max_body_bytes")),
		RateLimitPerMinute: appValues.Int("rate_limit_per_minute"),

		AuditLogAdmin:    appValues.String("audit_log_admin"),
		AuditLogSecurity: appValues.String("audit_log_security"),
	}

	if appCfg.MongoURI == "" {
		appCfg.MongoURI = atlasURI(appCfg.DBUser, appCfg.DBPass, appCfg.DBClusterHost)
		if appCfg.MongoURI != "" {
			logger.Info("assembled MongoDB URI from db_user/db_cluster_host",
				zap.String("host", appCfg.DBClusterHost))
		}
	}

	return coreCfg, appCfg, nil
}

// configureTimeouts applies TIMEOUT_* environment overrides and logs them.
func configureTimeouts(logger *zap.Logger) {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeouts configured from environment",
			zap.Duration("ping", cur.Ping),
			zap.Duration("short", cur.Short),
			zap.Duration("medium", cur.Medium),
			zap.Duration("long", cur.Long))
	}
}

// ValidateConfig performs app-specific config validation.
//
// RoktoSheba refuses to start without a usable MongoDB URI or a Stripe key.
// An empty admin token is allowed (development) but logged loudly when the
// router is built.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI == "" {
		return errors.New("no MongoDB URI: set mongo_uri or db_user/db_pass/db_cluster_host")
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.StripeSecretKey == "" {
		return errors.New("stripe_secret_key is required")
	}
	if appCfg.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", appCfg.MaxBodyBytes)
	}
	if appCfg.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must not be negative, got %d", appCfg.RateLimitPerMinute)
	}
	for key, mode := range map[string]string{
		"audit_log_admin":    appCfg.AuditLogAdmin,
		"audit_log_security": appCfg.AuditLogSecurity,
	} {
		switch mode {
		case auditlog.ModeAll, auditlog.ModeDB, auditlog.ModeLog, auditlog.ModeOff:
		default:
			return fmt.Errorf("%s must be one of all, db, log, off; got %q", key, mode)
		}
	}
	return nil
}

// atlasURI builds the SRV connection string used by the hosted deployment.
// It returns "" unless user and host are both set.
func atlasURI(user, pass, host string) string {
	if user == "" || host == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
