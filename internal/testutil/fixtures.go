package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// CreateUser inserts a plain pending user.
func (f *Fixtures) CreateUser(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.insertUser(ctx, models.User{
		Name:   name,
		Email:  email,
		Role:   models.RoleUser,
		Status: models.StatusPending,
	})
}

// CreateDonor inserts a donor with the given status and blood group in Dhaka/Savar.
func (f *Fixtures) CreateDonor(ctx context.Context, name, email, bloodGroup, status string) models.User {
	f.t.Helper()
	return f.insertUser(ctx, models.User{
		Name:       name,
		Email:      email,
		BloodGroup: bloodGroup,
		District:   "Dhaka",
		Upazila:    "Savar",
		Phone:      "01700000000",
		Role:       models.RoleDonor,
		Status:     status,
	})
}

// CreateUserAt inserts u with the given creation time; used for ordering tests.
func (f *Fixtures) CreateUserAt(ctx context.Context, u models.User, at time.Time) models.User {
	f.t.Helper()
	u.CreatedAt = at
	return f.insertUser(ctx, u)
}

func (f *Fixtures) insertUser(ctx context.Context, u models.User) models.User {
	f.t.Helper()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateDonation inserts a pending donation request by requesterEmail.
func (f *Fixtures) CreateDonation(ctx context.Context, requesterEmail string) models.DonationRequest {
	f.t.Helper()
	return f.CreateDonationAt(ctx, requesterEmail, models.DonationPending, time.Now().UTC())
}

// CreateDonationAt inserts a donation request with explicit status and creation time.
func (f *Fixtures) CreateDonationAt(ctx context.Context, requesterEmail, status string, at time.Time) models.DonationRequest {
	f.t.Helper()
	d := models.DonationRequest{
		ID:                primitive.NewObjectID(),
		RequesterName:     "Test Requester",
		RequesterEmail:    requesterEmail,
		RecipientName:     "Test Recipient",
		RecipientDistrict: "Dhaka",
		RecipientUpazila:  "Savar",
		HospitalName:      "Enam Medical",
		BloodGroup:        "A+",
		DonationDate:      "2025-01-10",
		DonationTime:      "10:00",
		Status:            status,
		CreatedAt:         at,
	}
	if _, err := f.db.Collection("donations").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test donation: %v", err)
	}
	return d
}

// CreateBlog inserts a blog post with the given status.
func (f *Fixtures) CreateBlog(ctx context.Context, title, status string) models.Blog {
	f.t.Helper()
	b := models.Blog{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Thumbnail:   "https://example.com/thumb.png",
		Content:     "<p>" + title + "</p>",
		AuthorEmail: "author@example.com",
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("blogs").InsertOne(ctx, b); err != nil {
		f.t.Fatalf("failed to create test blog: %v", err)
	}
	return b
}

// CreateFunding inserts a funding entry for userID.
func (f *Fixtures) CreateFunding(ctx context.Context, userID string, amount float64) models.Funding {
	f.t.Helper()
	fd := models.Funding{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Amount: amount,
		Date:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("fundings").InsertOne(ctx, fd); err != nil {
		f.t.Fatalf("failed to create test funding: %v", err)
	}
	return fd
}

// User reloads the user with id, failing the test if it is missing.
func (f *Fixtures) User(ctx context.Context, id primitive.ObjectID) models.User {
	f.t.Helper()
	var u models.User
	if err := f.db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		f.t.Fatalf("failed to load user %s: %v", id.Hex(), err)
	}
	return u
}

// Assignments returns the assignment log entries for donationID, newest first.
func (f *Fixtures) Assignments(ctx context.Context, donationID primitive.ObjectID) []models.DonorAssignment {
	f.t.Helper()
	cur, err := f.db.Collection("donor_assignments").Find(ctx, bson.M{"donationId": donationID},
		options.Find().SetSort(bson.D{{Key: "assignedAt", Value: -1}}))
	if err != nil {
		f.t.Fatalf("failed to query assignments: %v", err)
	}
	defer cur.Close(ctx)

	out := []models.DonorAssignment{}
	if err := cur.All(ctx, &out); err != nil {
		f.t.Fatalf("failed to decode assignments: %v", err)
	}
	return out
}
