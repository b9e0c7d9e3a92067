package donationstore_test

import (
	"errors"
	"testing"
	"time"

	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/dalemusser/roktosheba/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func strptr(s string) *string { return &s }

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := donationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.DonationRequest{
		RequesterEmail: " Req@Example.com ",
		BloodGroup:     "b-",
		HospitalName:   "Dhaka Medical",
		DonorEmail:     "sneaky@example.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() || created.CreatedAt.IsZero() {
		t.Error("expected id and createdAt to be stamped")
	}
	if created.Status != models.DonationPending {
		t.Errorf("Status = %q, want pending", created.Status)
	}
	if created.RequesterEmail != "req@example.com" || created.BloodGroup != "B-" {
		t.Errorf("fields not normalized: %+v", created)
	}
	if created.DonorEmail != "" || created.AssignedDonor != nil {
		t.Error("assignment fields must not be set on create")
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.HospitalName != "Dhaka Medical" {
		t.Errorf("HospitalName = %q", got.HospitalName)
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := donationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Get(ctx, primitive.NewObjectID()); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("err = %v, want ErrNoDocuments", err)
	}
}

func TestStore_ListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := donationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	fixtures.CreateDonationAt(ctx, "me@example.com", models.DonationPending, base)
	fixtures.CreateDonationAt(ctx, "me@example.com", models.DonationDone, base.Add(time.Hour))
	fixtures.CreateDonationAt(ctx, "other@example.com", models.DonationPending, base.Add(2*time.Hour))

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List len = %d, want 3", len(all))
	}
	if all[0].RequesterEmail != "other@example.com" {
		t.Error("List should be newest first")
	}

	pending, _ := store.List(ctx, "pending")
	if len(pending) != 2 {
		t.Errorf("pending len = %d, want 2", len(pending))
	}

	mine, total, err := store.ListByRequester(ctx, "ME@example.com", "", paging.Page{Limit: 10})
	if err != nil {
		t.Fatalf("ListByRequester failed: %v", err)
	}
	if total != 2 || len(mine) != 2 {
		t.Errorf("mine total=%d len=%d, want 2/2", total, len(mine))
	}

	mineDone, total, _ := store.ListByRequester(ctx, "me@example.com", "done", paging.Page{Limit: 10})
	if total != 1 || len(mineDone) != 1 {
		t.Errorf("mine done total=%d len=%d, want 1/1", total, len(mineDone))
	}
}

func TestStore_ListAll_PageUnion(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := donationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 23; i++ {
		fixtures.CreateDonationAt(ctx, "r@example.com", models.DonationPending, base.Add(time.Duration(i)*time.Minute))
	}

	seen := map[primitive.ObjectID]bool{}
	var prev time.Time
	for page := 0; page < 3; page++ {
		items, total, err := store.ListAll(ctx, "", paging.Page{Page: page, Limit: 10})
		if err != nil {
			t.Fatalf("ListAll page %d failed: %v", page, err)
		}
		if total != 23 {
			t.Errorf("total = %d, want 23", total)
		}
		if page < 2 && len(items) != 10 {
			t.Errorf("page %d len = %d, want 10", page, len(items))
		}
		for _, d := range items {
			if seen[d.ID] {
				t.Errorf("duplicate %v across pages", d.ID)
			}
			seen[d.ID] = true
			if !prev.IsZero() && d.CreatedAt.After(prev) {
				t.Error("not newest first")
			}
			prev = d.CreatedAt
		}
	}
	if len(seen) != 23 {
		t.Errorf("union = %d, want 23", len(seen))
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := donationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := fixtures.CreateDonation(ctx, "me@example.com")

	res, err := store.Update(ctx, d.ID, donationstore.Update{
		HospitalName: strptr("Square Hospital"),
		BloodGroup:   strptr("o-"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Errorf("matched=%d modified=%d", res.MatchedCount, res.ModifiedCount)
	}

	got, _ := store.Get(ctx, d.ID)
	if got.HospitalName != "Square Hospital" || got.BloodGroup != "O-" {
		t.Errorf("not updated: %+v", got)
	}
	if got.RecipientName != d.RecipientName {
		t.Error("untouched fields should be kept")
	}

	if _, err := store.Update(ctx, d.ID, donationstore.Update{}); !errors.Is(err, donationstore.ErrNothingToUpdate) {
		t.Errorf("empty update err = %v, want ErrNothingToUpdate", err)
	}

	res, err = store.Update(ctx, primitive.NewObjectID(), donationstore.Update{Status: strptr("done")})
	if err != nil {
		t.Fatalf("Update (missing) failed: %v", err)
	}
	if res.MatchedCount != 0 {
		t.Errorf("MatchedCount = %d, want 0", res.MatchedCount)
	}
}

func TestStore_UpdateStatus_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := donationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := fixtures.CreateDonation(ctx, "me@example.com")

	first, err := store.UpdateStatus(ctx, d.ID, "done")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	second, err := store.UpdateStatus(ctx, d.ID, "done")
	if err != nil {
		t.Fatalf("second UpdateStatus failed: %v", err)
	}
	if first.ModifiedCount != 1 || second.MatchedCount != 1 || second.ModifiedCount != 0 {
		t.Errorf("first modified=%d, second matched=%d modified=%d",
			first.ModifiedCount, second.MatchedCount, second.ModifiedCount)
	}

	got, _ := store.Get(ctx, d.ID)
	if got.Status != "done" {
		t.Errorf("Status = %q, want done", got.Status)
	}

	if _, err := store.UpdateStatus(ctx, d.ID, "  "); !errors.Is(err, donationstore.ErrNothingToUpdate) {
		t.Errorf("blank status err = %v, want ErrNothingToUpdate", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := donationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := fixtures.CreateDonation(ctx, "me@example.com")

	n, err := store.Delete(ctx, d.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete = %d, %v; want 1, nil", n, err)
	}
	n, err = store.Delete(ctx, d.ID)
	if err != nil || n != 0 {
		t.Errorf("second Delete = %d, %v; want 0, nil", n, err)
	}
}
