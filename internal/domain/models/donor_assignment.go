// internal/domain/models/donor_assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonorAssignment is an append-only log entry pairing a donation request
// with the donor assigned to it. DonationID is a plain foreign id; deleting
// the donation does not touch its assignments.
type DonorAssignment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	DonationID primitive.ObjectID `bson:"donationId" json:"donationId"`
	DonorID    primitive.ObjectID `bson:"donorId" json:"donorId"`
	DonorName  string             `bson:"donorName" json:"donorName"`
	DonorEmail string             `bson:"donorEmail" json:"donorEmail"`
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`

	AssignedAt time.Time `bson:"assignedAt" json:"assignedAt"`
}
