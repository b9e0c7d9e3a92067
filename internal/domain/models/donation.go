// internal/domain/models/donation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation request statuses. The ledger does not enforce transitions
// between them; any string is stored as given.
const (
	DonationPending    = "pending"
	DonationInProgress = "inprogress"
	DonationDone       = "done"
	DonationCanceled   = "canceled"
)

// DonationRequest is a request for blood raised by a user.
//
// AssignedDonor is a snapshot of the donor taken at assignment time, not a
// live reference; later profile edits do not propagate into it.
type DonationRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RequesterName     string             `bson:"requesterName,omitempty" json:"requesterName,omitempty"`
	RequesterEmail    string             `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName     string             `bson:"recipientName,omitempty" json:"recipientName,omitempty"`
	RecipientDistrict string             `bson:"recipientDistrict,omitempty" json:"recipientDistrict,omitempty"`
	RecipientUpazila  string             `bson:"recipientUpazila,omitempty" json:"recipientUpazila,omitempty"`
	HospitalName      string             `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`
	FullAddress       string             `bson:"fullAddress,omitempty" json:"fullAddress,omitempty"`
	BloodGroup        string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	DonationDate      string             `bson:"donationDate,omitempty" json:"donationDate,omitempty"`
	DonationTime      string             `bson:"donationTime,omitempty" json:"donationTime,omitempty"`
	RequestMessage    string             `bson:"requestMessage,omitempty" json:"requestMessage,omitempty"`
	Status            string             `bson:"status" json:"status"`

	AssignedDonor *DonorSnapshot `bson:"assignedDonor,omitempty" json:"assignedDonor,omitempty"`
	DonorEmail    string         `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DonorSnapshot is the denormalized copy of a donor embedded in a
// donation request.
type DonorSnapshot struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	BloodGroup string             `bson:"blood_group,omitempty" json:"blood_group,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// SnapshotOf copies the assignable fields of a donor.
func SnapshotOf(u User) DonorSnapshot {
	return DonorSnapshot{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		BloodGroup: u.BloodGroup,
		District:   u.District,
		Upazila:    u.Upazila,
		Phone:      u.Phone,
		Avatar:     u.Avatar,
	}
}
