package donationstore_test

import (
	"errors"
	"testing"

	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/dalemusser/roktosheba/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func TestAssigner_Assign(t *testing.T) {
	for _, sequential := range []bool{false, true} {
		name := "transaction"
		if sequential {
			name = "sequential"
		}
		t.Run(name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			fixtures := testutil.NewFixtures(t, db)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			donor := fixtures.CreateDonor(ctx, "Donor", "d@x.com", "A+", models.StatusActive)
			d := fixtures.CreateDonation(ctx, "req@example.com")

			a := donationstore.NewAssigner(db, zap.NewNop(), nil)
			if sequential {
				a.ForceSequential()
			}
			if err := a.Assign(ctx, d.ID, donor); err != nil {
				t.Fatalf("Assign failed: %v", err)
			}

			got, _ := donationstore.New(db).Get(ctx, d.ID)
			if got.Status != models.DonationInProgress {
				t.Errorf("Status = %q, want inprogress", got.Status)
			}
			if got.AssignedDonor == nil || got.AssignedDonor.Email != "d@x.com" {
				t.Errorf("AssignedDonor = %+v", got.AssignedDonor)
			}
			if got.DonorEmail != "d@x.com" {
				t.Errorf("DonorEmail = %q", got.DonorEmail)
			}

			log := fixtures.Assignments(ctx, d.ID)
			if len(log) != 1 {
				t.Fatalf("assignment records = %d, want 1", len(log))
			}
			if log[0].DonorID != donor.ID {
				t.Errorf("DonorID = %v, want %v", log[0].DonorID, donor.ID)
			}
		})
	}
}

func TestAssigner_Assign_MissingDonation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	donor := fixtures.CreateDonor(ctx, "Donor", "d@x.com", "A+", models.StatusActive)
	a := donationstore.NewAssigner(db, zap.NewNop(), nil)

	err := a.Assign(ctx, primitive.NewObjectID(), donor)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("err = %v, want ErrNoDocuments", err)
	}

	n, _ := db.Collection("donor_assignments").CountDocuments(ctx, map[string]any{})
	if n != 0 {
		t.Errorf("assignment records = %d, want 0", n)
	}
}

func TestAssigner_Assign_LogFailureLeavesDonationUnchanged(t *testing.T) {
	for _, sequential := range []bool{false, true} {
		t.Run(map[bool]string{false: "transaction", true: "compensation"}[sequential], func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			fixtures := testutil.NewFixtures(t, db)
			ctx, cancel := testutil.TestContext()
			defer cancel()

			donor := fixtures.CreateDonor(ctx, "Donor", "d@x.com", "A+", models.StatusActive)
			d := fixtures.CreateDonation(ctx, "req@example.com")

			a := donationstore.NewAssigner(db, zap.NewNop(), nil)
			if sequential {
				a.ForceSequential()
			}
			boom := errors.New("log unavailable")
			a.FailInsertWith(boom)

			if err := a.Assign(ctx, d.ID, donor); !errors.Is(err, boom) {
				t.Fatalf("err = %v, want %v", err, boom)
			}

			got, _ := donationstore.New(db).Get(ctx, d.ID)
			if got.Status != models.DonationPending {
				t.Errorf("Status = %q, want pending", got.Status)
			}
			if got.AssignedDonor != nil || got.DonorEmail != "" {
				t.Errorf("assignment fields should be reverted: %+v / %q", got.AssignedDonor, got.DonorEmail)
			}
		})
	}
}

func TestAssigner_Compensation_RestoresPriorDonor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first := fixtures.CreateDonor(ctx, "First", "first@x.com", "A+", models.StatusActive)
	second := fixtures.CreateDonor(ctx, "Second", "second@x.com", "A+", models.StatusActive)
	d := fixtures.CreateDonation(ctx, "req@example.com")

	a := donationstore.NewAssigner(db, zap.NewNop(), nil)
	a.ForceSequential()
	if err := a.Assign(ctx, d.ID, first); err != nil {
		t.Fatalf("first Assign failed: %v", err)
	}

	a.FailInsertWith(errors.New("log unavailable"))
	if err := a.Assign(ctx, d.ID, second); err == nil {
		t.Fatal("expected second Assign to fail")
	}

	got, _ := donationstore.New(db).Get(ctx, d.ID)
	if got.DonorEmail != "first@x.com" || got.AssignedDonor == nil || got.AssignedDonor.Email != "first@x.com" {
		t.Errorf("expected first donor to be restored, got %q / %+v", got.DonorEmail, got.AssignedDonor)
	}
	if got.Status != models.DonationInProgress {
		t.Errorf("Status = %q, want inprogress", got.Status)
	}
}
