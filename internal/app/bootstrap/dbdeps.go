// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/roktosheba/internal/app/system/metrics"
	"github.com/dalemusser/roktosheba/internal/app/system/payments"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds the back-end clients built once at startup and shared by
// every handler.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Payments payments.Provider

	// Registry backs GET /metrics.
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
}
