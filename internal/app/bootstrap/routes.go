// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	auditfeature "github.com/dalemusser/roktosheba/internal/app/features/auditlog"
	blogsfeature "github.com/dalemusser/roktosheba/internal/app/features/blogs"
	contactfeature "github.com/dalemusser/roktosheba/internal/app/features/contact"
	dashboardfeature "github.com/dalemusser/roktosheba/internal/app/features/dashboard"
	donationsfeature "github.com/dalemusser/roktosheba/internal/app/features/donations"
	errorsfeature "github.com/dalemusser/roktosheba/internal/app/features/errors"
	fundingsfeature "github.com/dalemusser/roktosheba/internal/app/features/fundings"
	healthfeature "github.com/dalemusser/roktosheba/internal/app/features/health"
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	usersfeature "github.com/dalemusser/roktosheba/internal/app/features/users"
	"github.com/dalemusser/roktosheba/internal/app/store/audit"
	"github.com/dalemusser/roktosheba/internal/app/system/auditlog"
	"github.com/dalemusser/roktosheba/internal/app/system/auth"
	"github.com/dalemusser/roktosheba/internal/app/system/metrics"
	"github.com/dalemusser/roktosheba/internal/app/system/ratelimit"
	"github.com/dalemusser/roktosheba/internal/app/system/reqlog"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for RoktoSheba.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. Every feature registers its routes on
// the root router; administrative routes go through the admin token gate
// and public write endpoints through the per-IP rate limiter.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase
	errLog := errorsfeature.NewErrorLogger(logger)
	auditLogger := auditlog.New(audit.New(db), logger, auditlog.Config{
		Admin:    appCfg.AuditLogAdmin,
		Security: appCfg.AuditLogSecurity,
	})

	gate := auth.NewGate(appCfg.AdminToken, logger)
	gate.OnReject = func(r *http.Request) {
		ctx, cancel := timeouts.WithTimeout(context.WithoutCancel(r.Context()), timeouts.Short(), logger, "audit admin token rejection")
		defer cancel()
		auditLogger.AdminTokenRejected(ctx, r)
	}

	mw := shared.Middleware{
		Admin: gate.RequireAdmin,
		Limit: ratelimit.Middleware(ratelimit.New(appCfg.RateLimitPerMinute), logger),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(reqlog.Middleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(appCfg.MaxBodyBytes))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", auth.HeaderAdminToken},
		MaxAge:         300,
	}))

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Liveness, health and metrics
	healthfeature.Routes(r, healthfeature.NewHandler(deps.MongoClient, logger))
	if deps.Registry != nil {
		r.Handle("/metrics", metrics.Handler(deps.Registry))
	}

	// User directory
	usersfeature.Routes(r, usersfeature.NewHandler(db, errLog, auditLogger, deps.Metrics, logger), mw)

	// Donation requests and donor assignment
	donationsfeature.Routes(r, donationsfeature.NewHandler(db, errLog, auditLogger, deps.Metrics, logger), mw)

	// Blog posts
	blogsfeature.Routes(r, blogsfeature.NewHandler(db, errLog, auditLogger, logger), mw)

	// Payments and funding ledger
	fundingsfeature.Routes(r, fundingsfeature.NewHandler(db, deps.Payments, errLog, deps.Metrics, logger), mw)

	// Contact form, dashboard totals and the audit trail
	contactfeature.Routes(r, contactfeature.NewHandler(db, errLog, deps.Metrics, logger), mw)
	dashboardfeature.Routes(r, dashboardfeature.NewHandler(db, errLog, logger), mw)
	auditfeature.Routes(r, auditfeature.NewHandler(db, errLog, logger), mw)

	return r, nil
}
