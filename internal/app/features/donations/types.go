// internal/app/features/donations/types.go
package donations

import (
	donationstore "github.com/dalemusser/roktosheba/internal/app/store/donations"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/domain/models"
)

// createRequest is the body of POST /createDonation.
type createRequest struct {
	RequesterName     string `json:"requesterName" validate:"max=120" label:"Requester name"`
	RequesterEmail    string `json:"requesterEmail" validate:"required,emailaddr,max=254" label:"Requester email"`
	RecipientName     string `json:"recipientName" validate:"max=120" label:"Recipient name"`
	RecipientDistrict string `json:"recipientDistrict" validate:"max=100" label:"Recipient district"`
	RecipientUpazila  string `json:"recipientUpazila" validate:"max=100" label:"Recipient upazila"`
	HospitalName      string `json:"hospitalName" validate:"max=200" label:"Hospital name"`
	FullAddress       string `json:"fullAddress" validate:"max=500" label:"Full address"`
	BloodGroup        string `json:"bloodGroup" validate:"omitempty,bloodgroup" label:"Blood group"`
	DonationDate      string `json:"donationDate" validate:"max=40" label:"Donation date"`
	DonationTime      string `json:"donationTime" validate:"max=40" label:"Donation time"`
	RequestMessage    string `json:"requestMessage" validate:"max=2000" label:"Request message"`
	Status            string `json:"status" validate:"max=40" label:"Status"`
}

func (q *createRequest) Normalize() {
	q.RequesterName = normalize.Name(q.RequesterName)
	q.RequesterEmail = normalize.Email(q.RequesterEmail)
	q.RecipientName = normalize.Name(q.RecipientName)
	q.RecipientDistrict = normalize.Name(q.RecipientDistrict)
	q.RecipientUpazila = normalize.Name(q.RecipientUpazila)
	q.HospitalName = normalize.Name(q.HospitalName)
	q.BloodGroup = normalize.BloodGroup(q.BloodGroup)
	q.Status = normalize.Status(q.Status)
}

func (q *createRequest) donation() models.DonationRequest {
	return models.DonationRequest{
		RequesterName:     q.RequesterName,
		RequesterEmail:    q.RequesterEmail,
		RecipientName:     q.RecipientName,
		RecipientDistrict: q.RecipientDistrict,
		RecipientUpazila:  q.RecipientUpazila,
		HospitalName:      q.HospitalName,
		FullAddress:       q.FullAddress,
		BloodGroup:        q.BloodGroup,
		DonationDate:      q.DonationDate,
		DonationTime:      q.DonationTime,
		RequestMessage:    q.RequestMessage,
		Status:            q.Status,
	}
}

// updateRequest is the body of PATCH /myDonations/{id}. The id and the
// requester are not editable.
type updateRequest struct {
	RequesterName     *string `json:"requesterName" validate:"omitempty,max=120" label:"Requester name"`
	RecipientName     *string `json:"recipientName" validate:"omitempty,max=120" label:"Recipient name"`
	RecipientDistrict *string `json:"recipientDistrict" validate:"omitempty,max=100" label:"Recipient district"`
	RecipientUpazila  *string `json:"recipientUpazila" validate:"omitempty,max=100" label:"Recipient upazila"`
	HospitalName      *string `json:"hospitalName" validate:"omitempty,max=200" label:"Hospital name"`
	FullAddress       *string `json:"fullAddress" validate:"omitempty,max=500" label:"Full address"`
	BloodGroup        *string `json:"bloodGroup" validate:"omitempty,bloodgroup" label:"Blood group"`
	DonationDate      *string `json:"donationDate" validate:"omitempty,max=40" label:"Donation date"`
	DonationTime      *string `json:"donationTime" validate:"omitempty,max=40" label:"Donation time"`
	RequestMessage    *string `json:"requestMessage" validate:"omitempty,max=2000" label:"Request message"`
	Status            *string `json:"status" validate:"omitempty,max=40" label:"Status"`
}

func (q *updateRequest) update() donationstore.Update {
	return donationstore.Update{
		RequesterName:     q.RequesterName,
		RecipientName:     q.RecipientName,
		RecipientDistrict: q.RecipientDistrict,
		RecipientUpazila:  q.RecipientUpazila,
		HospitalName:      q.HospitalName,
		FullAddress:       q.FullAddress,
		BloodGroup:        q.BloodGroup,
		DonationDate:      q.DonationDate,
		DonationTime:      q.DonationTime,
		RequestMessage:    q.RequestMessage,
		Status:            q.Status,
	}
}

// statusRequest is the body of PATCH /donations/{id}.
type statusRequest struct {
	Status string `json:"status" validate:"required,max=40" label:"Status"`
}

func (q *statusRequest) Normalize() {
	q.Status = normalize.Status(q.Status)
}

// assignRequest is the body of PATCH /donation/assign-donor/{donationId}.
type assignRequest struct {
	DonorEmail string `json:"donorEmail" validate:"required,emailaddr" label:"Donor email"`
}

func (q *assignRequest) Normalize() {
	q.DonorEmail = normalize.Email(q.DonorEmail)
}

type messageResponse struct {
	Message string `json:"message"`
}

// donationList is the paginated list response.
type donationList struct {
	Donations  []models.DonationRequest `json:"donations"`
	TotalCount int64                    `json:"totalCount"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
}
