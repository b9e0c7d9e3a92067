package metricsstore_test

import (
	"testing"

	metricsstore "github.com/dalemusser/roktosheba/internal/app/store/metrics"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/dalemusser/roktosheba/internal/testutil"
)

func TestFetchDashboardCounts_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	counts, err := metricsstore.FetchDashboardCounts(ctx, db)
	if err != nil {
		t.Fatalf("FetchDashboardCounts failed: %v", err)
	}
	if counts != (metricsstore.Counts{}) {
		t.Errorf("counts = %+v, want all zero", counts)
	}
}

func TestFetchDashboardCounts_WithData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDonor(ctx, "Donor One", "d1@example.com", "A+", models.StatusActive)
	fixtures.CreateDonor(ctx, "Donor Two", "d2@example.com", "B+", models.StatusPending)
	fixtures.CreateUser(ctx, "Plain User", "u1@example.com")

	fixtures.CreateDonation(ctx, "u1@example.com")
	fixtures.CreateDonation(ctx, "u1@example.com")
	fixtures.CreateDonation(ctx, "u1@example.com")

	fixtures.CreateFunding(ctx, "u1", 100)
	fixtures.CreateFunding(ctx, "u1", 50.25)

	counts, err := metricsstore.FetchDashboardCounts(ctx, db)
	if err != nil {
		t.Fatalf("FetchDashboardCounts failed: %v", err)
	}
	if counts.TotalDonors != 2 {
		t.Errorf("TotalDonors: got %d, want 2", counts.TotalDonors)
	}
	if counts.TotalRequests != 3 {
		t.Errorf("TotalRequests: got %d, want 3", counts.TotalRequests)
	}
	if counts.TotalFunding != 150.25 {
		t.Errorf("TotalFunding: got %v, want 150.25", counts.TotalFunding)
	}
}
