package validators_test

import (
	"context"
	"testing"
	"time"

	blogstore "github.com/dalemusser/roktosheba/internal/app/store/blogs"
	contactstore "github.com/dalemusser/roktosheba/internal/app/store/contacts"
	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	fundingstore "github.com/dalemusser/roktosheba/internal/app/store/fundings"
	userstore "github.com/dalemusser/roktosheba/internal/app/store/users"
	"github.com/dalemusser/roktosheba/internal/app/system/validators"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/dalemusser/roktosheba/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func setup(t *testing.T) (context.Context, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	t.Cleanup(cancel)

	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	return ctx, db
}

func TestEnsureAll_IdempotentAndCreatesCollections(t *testing.T) {
	ctx, db := setup(t)

	// Second call should also succeed (idempotent)
	if err := validators.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	have := make(map[string]bool)
	for _, n := range names {
		have[n] = true
	}
	for _, want := range []string{"users", "donations", "donor_assignments", "blogs", "fundings", "contacts", "audit_events"} {
		if !have[want] {
			t.Errorf("expected collection %q to exist", want)
		}
	}
}

func TestValidators_RejectInvalidDocuments(t *testing.T) {
	ctx, db := setup(t)
	now := time.Now().UTC()

	tests := []struct {
		name string
		coll string
		doc  bson.M
	}{
		{"user without email", "users", bson.M{"role": "user", "status": "pending", "created_at": now}},
		{"user with unknown role", "users", bson.M{"email": "a@x.com", "role": "superadmin", "status": "pending", "created_at": now}},
		{"user with unknown status", "users", bson.M{"email": "a@x.com", "role": "user", "status": "disabled", "created_at": now}},
		{"donation without requester", "donations", bson.M{"status": "pending", "createdAt": now}},
		{"assignment without donor id", "donor_assignments", bson.M{"donationId": primitive.NewObjectID(), "donorEmail": "d@x.com", "assignedAt": now}},
		{"blog with unknown status", "blogs", bson.M{"title": "t", "thumbnail": "u", "content": "c", "authorEmail": "a@x.com", "status": "archived", "createdAt": now}},
		{"funding with zero amount", "fundings", bson.M{"userId": "u1", "amount": 0.0, "date": now}},
		{"funding with string amount", "fundings", bson.M{"userId": "u1", "amount": "10", "date": now}},
		{"contact with blank message", "contacts", bson.M{"name": "A", "email": "a@x.com", "message": "   ", "createdAt": now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := db.Collection(tt.coll).InsertOne(ctx, tt.doc); err == nil {
				t.Errorf("expected validation error inserting into %s", tt.coll)
			}
		})
	}
}

// Documents written by the stores must always pass the validators.
func TestValidators_AcceptStoreWrites(t *testing.T) {
	ctx, db := setup(t)

	if _, err := userstore.New(db).Create(ctx, models.User{Email: "donor@x.com", Name: "Donor", Role: models.RoleDonor, Status: models.StatusActive}); err != nil {
		t.Errorf("user insert failed: %v", err)
	}
	if _, err := donationstore.New(db).Create(ctx, models.DonationRequest{RequesterEmail: "req@x.com"}); err != nil {
		t.Errorf("donation insert failed: %v", err)
	}
	if _, err := blogstore.New(db).Create(ctx, models.Blog{Title: "T", Thumbnail: "https://img/1.png", Content: "<p>x</p>", AuthorEmail: "a@x.com"}); err != nil {
		t.Errorf("blog insert failed: %v", err)
	}
	if _, err := fundingstore.New(db).Create(ctx, models.Funding{UserID: "u1", Amount: 12.5}); err != nil {
		t.Errorf("funding insert failed: %v", err)
	}
	if _, err := contactstore.New(db).Create(ctx, models.ContactMessage{Name: "A", Email: "a@x.com", Message: "hello"}); err != nil {
		t.Errorf("contact insert failed: %v", err)
	}
}
