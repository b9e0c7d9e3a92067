// Package assignmentstore is the append-only log of donor assignments.
package assignmentstore

import (
	"context"
	"time"

	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donor_assignments")}
}

// Record builds the log entry for donor being assigned to donationID.
func Record(donationID primitive.ObjectID, donor models.User, at time.Time) models.DonorAssignment {
	return models.DonorAssignment{
		ID:         primitive.NewObjectID(),
		DonationID: donationID,
		DonorID:    donor.ID,
		DonorName:  donor.Name,
		DonorEmail: donor.Email,
		BloodGroup: donor.BloodGroup,
		District:   donor.District,
		Upazila:    donor.Upazila,
		Phone:      donor.Phone,
		AssignedAt: at,
	}
}

// Insert appends a to the log. Pass a mongo.SessionContext as ctx to
// make the write part of a transaction.
func (s *Store) Insert(ctx context.Context, a models.DonorAssignment) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, a)
	return err
}
