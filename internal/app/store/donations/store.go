// Package donationstore persists donation requests.
package donationstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNothingToUpdate is returned when an update carries no fields.
var ErrNothingToUpdate = errors.New("no fields to update")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donations")}
}

// Create inserts d with a new id, status "pending" unless given, and createdAt now.
func (s *Store) Create(ctx context.Context, d models.DonationRequest) (models.DonationRequest, error) {
	d.ID = primitive.NewObjectID()
	d.RequesterEmail = normalize.Email(d.RequesterEmail)
	d.BloodGroup = normalize.BloodGroup(d.BloodGroup)
	d.Status = normalize.Status(d.Status)
	if d.Status == "" {
		d.Status = models.DonationPending
	}
	d.AssignedDonor = nil
	d.DonorEmail = ""
	d.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.DonationRequest{}, err
	}
	return d, nil
}

// Get loads one donation request. Returns mongo.ErrNoDocuments if absent.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (*models.DonationRequest, error) {
	var d models.DonationRequest
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func statusFilter(status string) bson.M {
	f := bson.M{}
	if status != "" {
		f["status"] = normalize.Status(status)
	}
	return f
}

// List returns every request with the status (all when empty), newest first.
func (s *Store) List(ctx context.Context, status string) ([]models.DonationRequest, error) {
	cur, err := s.c.Find(ctx, statusFilter(status),
		options.Find().SetSort(paging.NewestFirstSort("createdAt")))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.DonationRequest{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByRequester returns one page of the requester's donations.
func (s *Store) ListByRequester(ctx context.Context, email, status string, pg paging.Page) ([]models.DonationRequest, int64, error) {
	f := statusFilter(status)
	f["requesterEmail"] = normalize.Email(email)
	return s.page(ctx, f, pg)
}

// ListAll returns one page across all requesters.
func (s *Store) ListAll(ctx context.Context, status string, pg paging.Page) ([]models.DonationRequest, int64, error) {
	return s.page(ctx, statusFilter(status), pg)
}

func (s *Store) page(ctx context.Context, filter bson.M, pg paging.Page) ([]models.DonationRequest, int64, error) {
	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := s.c.Find(ctx, filter, pg.NewestFirst("createdAt"))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := make([]models.DonationRequest, 0, pg.Limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update holds the editable request fields. Nil fields are left alone.
type Update struct {
	RequesterName     *string
	RecipientName     *string
	RecipientDistrict *string
	RecipientUpazila  *string
	HospitalName      *string
	FullAddress       *string
	BloodGroup        *string
	DonationDate      *string
	DonationTime      *string
	RequestMessage    *string
	Status            *string
}

func (u Update) set() bson.M {
	set := bson.M{}
	put := func(key string, v *string, norm func(string) string) {
		if v == nil {
			return
		}
		if norm != nil {
			set[key] = norm(*v)
			return
		}
		set[key] = *v
	}
	put("requesterName", u.RequesterName, normalize.Name)
	put("recipientName", u.RecipientName, normalize.Name)
	put("recipientDistrict", u.RecipientDistrict, normalize.Name)
	put("recipientUpazila", u.RecipientUpazila, normalize.Name)
	put("hospitalName", u.HospitalName, normalize.Name)
	put("fullAddress", u.FullAddress, nil)
	put("bloodGroup", u.BloodGroup, normalize.BloodGroup)
	put("donationDate", u.DonationDate, nil)
	put("donationTime", u.DonationTime, nil)
	put("requestMessage", u.RequestMessage, nil)
	put("status", u.Status, normalize.Status)
	return set
}

// Update merges the non-nil fields of upd into the request.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*mongo.UpdateResult, error) {
	set := upd.set()
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	return s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

// UpdateStatus sets only the status. Repeating the same status is a
// no-op that still matches.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	status = normalize.Status(status)
	if status == "" {
		return nil, ErrNothingToUpdate
	}
	return s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
}

// Delete removes the request and returns how many documents were deleted.
// Assignment log entries that reference it are kept.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of donation requests.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
