package userstore_test

import (
	"errors"
	"testing"
	"time"

	userstore "github.com/dalemusser/roktosheba/internal/app/store/users"
	"github.com/dalemusser/roktosheba/internal/app/system/indexes"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/dalemusser/roktosheba/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func strptr(s string) *string { return &s }

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		Name:       "  Rahim Uddin ",
		Email:      "  Rahim@Example.COM ",
		BloodGroup: "o+",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "rahim@example.com" {
		t.Errorf("Email = %q, want normalized", created.Email)
	}
	if created.Name != "Rahim Uddin" {
		t.Errorf("Name = %q", created.Name)
	}
	if created.BloodGroup != "O+" {
		t.Errorf("BloodGroup = %q, want O+", created.BloodGroup)
	}
	if created.Role != models.RoleUser {
		t.Errorf("Role = %q, want user", created.Role)
	}
	if created.Status != models.StatusPending {
		t.Errorf("Status = %q, want pending", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := store.GetByEmail(ctx, "RAHIM@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("GetByEmail returned %v, want %v", got.ID, created.ID)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{Name: "First", Email: "same@example.com"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := store.Create(ctx, models.User{Name: "Second", Email: "SAME@example.com"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("second Create err = %v, want ErrDuplicateEmail", err)
	}

	n, _ := db.Collection("users").CountDocuments(ctx, map[string]any{"email": "same@example.com"})
	if n != 1 {
		t.Errorf("user count = %d, want 1", n)
	}
}

func TestStore_Create_ConcurrentDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	store := userstore.New(db)

	const workers = 8
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := store.Create(ctx, models.User{Name: "Racer", Email: "race@example.com"})
			errs <- err
		}()
	}

	ok := 0
	for i := 0; i < workers; i++ {
		err := <-errs
		switch {
		case err == nil:
			ok++
		case errors.Is(err, userstore.ErrDuplicateEmail):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 {
		t.Errorf("successful registrations = %d, want exactly 1", ok)
	}
}

func TestStore_GetByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByEmail(ctx, "nobody@example.com")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_UpdateProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateUser(ctx, "Old Name", "me@example.com")

	res, err := store.UpdateProfile(ctx, "me@example.com", userstore.ProfileUpdate{
		Name:       strptr("New Name"),
		BloodGroup: strptr("ab-"),
		District:   strptr("Chattogram"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Errorf("matched=%d modified=%d, want 1/1", res.MatchedCount, res.ModifiedCount)
	}

	got, _ := store.GetByEmail(ctx, "me@example.com")
	if got.Name != "New Name" || got.BloodGroup != "AB-" || got.District != "Chattogram" {
		t.Errorf("profile not updated: %+v", got)
	}
	if got.Role != models.RoleUser || got.Status != models.StatusPending {
		t.Errorf("role/status changed: %q/%q", got.Role, got.Status)
	}
}

func TestStore_UpdateProfile_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.UpdateProfile(ctx, "me@example.com", userstore.ProfileUpdate{})
	if !errors.Is(err, userstore.ErrNothingToUpdate) {
		t.Errorf("err = %v, want ErrNothingToUpdate", err)
	}
}

func TestStore_UpdateProfile_NoMatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	res, err := store.UpdateProfile(ctx, "ghost@example.com", userstore.ProfileUpdate{Name: strptr("X")})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if res.MatchedCount != 0 {
		t.Errorf("MatchedCount = %d, want 0", res.MatchedCount)
	}
}

func TestStore_UpdateByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fixtures.CreateUser(ctx, "Karim", "karim@example.com")

	res, err := store.UpdateByID(ctx, u.ID, userstore.AdminUpdate{
		Role:   strptr("Donor"),
		Status: strptr("active"),
		Phone:  strptr("01800000000"),
	})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}
	if res.MatchedCount != 1 {
		t.Errorf("MatchedCount = %d, want 1", res.MatchedCount)
	}

	got := fixtures.User(ctx, u.ID)
	if !got.IsActiveDonor() {
		t.Errorf("expected active donor, got role=%q status=%q", got.Role, got.Status)
	}
	if got.Phone != "01800000000" {
		t.Errorf("Phone = %q", got.Phone)
	}
}

func TestStore_UpdateByID_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	fixtures := testutil.NewFixtures(t, db)
	store := userstore.New(db)

	fixtures.CreateUser(ctx, "A", "a@example.com")
	b := fixtures.CreateUser(ctx, "B", "b@example.com")

	_, err := store.UpdateByID(ctx, b.ID, userstore.AdminUpdate{Email: strptr("A@example.com")})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestStore_List_PagesNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		status := models.StatusActive
		if i%5 == 0 {
			status = models.StatusBlocked
		}
		fixtures.CreateUserAt(ctx, models.User{
			Name:   "User",
			Email:  primitive.NewObjectID().Hex() + "@example.com",
			Role:   models.RoleUser,
			Status: status,
		}, base.Add(time.Duration(i)*time.Hour))
	}

	seen := map[primitive.ObjectID]bool{}
	var last time.Time
	for page := 0; page < 3; page++ {
		users, total, err := store.List(ctx, "", paging.Page{Page: page, Limit: 10})
		if err != nil {
			t.Fatalf("List page %d failed: %v", page, err)
		}
		if total != 25 {
			t.Errorf("total = %d, want 25", total)
		}
		for _, u := range users {
			if seen[u.ID] {
				t.Errorf("user %v appeared on more than one page", u.ID)
			}
			seen[u.ID] = true
			if !last.IsZero() && u.CreatedAt.After(last) {
				t.Errorf("users not newest-first: %v after %v", u.CreatedAt, last)
			}
			last = u.CreatedAt
		}
	}
	if len(seen) != 25 {
		t.Errorf("union of pages = %d users, want 25", len(seen))
	}

	blocked, total, err := store.List(ctx, "blocked", paging.Page{Page: 0, Limit: 10})
	if err != nil {
		t.Fatalf("List blocked failed: %v", err)
	}
	if total != 5 || len(blocked) != 5 {
		t.Errorf("blocked total=%d len=%d, want 5/5", total, len(blocked))
	}
}

func TestStore_Donors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDonor(ctx, "Active A+", "a1@example.com", "A+", models.StatusActive)
	fixtures.CreateDonor(ctx, "Active B+", "b1@example.com", "B+", models.StatusActive)
	fixtures.CreateDonor(ctx, "Pending A+", "a2@example.com", "A+", models.StatusPending)
	fixtures.CreateUser(ctx, "Plain", "plain@example.com")

	active, err := store.ActiveDonors(ctx)
	if err != nil {
		t.Fatalf("ActiveDonors failed: %v", err)
	}
	if len(active) != 2 {
		t.Errorf("ActiveDonors len = %d, want 2", len(active))
	}

	if _, err := store.ActiveDonorByEmail(ctx, "a2@example.com"); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("pending donor lookup err = %v, want ErrNoDocuments", err)
	}

	p, err := store.DonorProfile(ctx, "A1@example.com")
	if err != nil {
		t.Fatalf("DonorProfile failed: %v", err)
	}
	if p.Name != "Active A+" || p.BloodGroup != "A+" {
		t.Errorf("DonorProfile = %+v", p)
	}

	found, err := store.FindDonors(ctx, userstore.DonorQuery{BloodGroup: "a+"})
	if err != nil {
		t.Fatalf("FindDonors failed: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("FindDonors(A+) len = %d, want 2 (any status)", len(found))
	}
	for _, u := range found {
		if u.Phone == "" || u.Status == "" || u.CreatedAt.IsZero() {
			t.Errorf("FindDonors returned a partial record: %+v", u)
		}
	}

	all, _ := store.FindDonors(ctx, userstore.DonorQuery{})
	if len(all) != 3 {
		t.Errorf("FindDonors() len = %d, want 3", len(all))
	}

	none, _ := store.FindDonors(ctx, userstore.DonorQuery{District: "Sylhet"})
	if len(none) != 0 {
		t.Errorf("FindDonors(Sylhet) len = %d, want 0", len(none))
	}
}

func TestStore_SampleActiveDonors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 5; i++ {
		fixtures.CreateDonor(ctx, "Donor", primitive.NewObjectID().Hex()+"@example.com", "O+", models.StatusActive)
	}
	fixtures.CreateDonor(ctx, "Blocked", "blocked@example.com", "O+", models.StatusBlocked)

	got, err := store.SampleActiveDonors(ctx, 3)
	if err != nil {
		t.Fatalf("SampleActiveDonors failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, p := range got {
		if p.Email == "blocked@example.com" {
			t.Error("sampled a blocked donor")
		}
	}
}
