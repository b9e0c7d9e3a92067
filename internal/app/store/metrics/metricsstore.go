package metricsstore

import (
	"context"
	"fmt"

	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	fundingstore "github.com/dalemusser/roktosheba/internal/app/store/fundings"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Counts is the set of totals shown on the admin dashboard.
type Counts struct {
	TotalDonors   int64   `json:"totalDonors"`
	TotalRequests int64   `json:"totalRequests"`
	TotalFunding  float64 `json:"totalFunding"`
}

// FetchDashboardCounts computes the dashboard totals on every call.
// Donors are users with the donor role regardless of status.
func FetchDashboardCounts(ctx context.Context, db *mongo.Database) (Counts, error) {
	var out Counts
	var err error

	out.TotalDonors, err = db.Collection("users").CountDocuments(ctx, bson.M{"role": models.RoleDonor})
	if err != nil {
		return Counts{}, fmt.Errorf("count donors: %w", err)
	}

	out.TotalRequests, err = donationstore.New(db).Count(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("count donation requests: %w", err)
	}

	out.TotalFunding, err = fundingstore.New(db).Total(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("sum fundings: %w", err)
	}

	return out, nil
}
