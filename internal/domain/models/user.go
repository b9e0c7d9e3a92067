// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleDonor = "donor"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User account statuses.
const (
	StatusActive  = "active"
	StatusPending = "pending"
	StatusBlocked = "blocked"
)

// User is a registered account. Donors are users with Role == RoleDonor;
// the blood/location fields are only meaningful for them.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	BloodGroup string             `bson:"blood_group,omitempty" json:"blood_group,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role       string             `bson:"role" json:"role"`     // donor | user | admin
	Status     string             `bson:"status" json:"status"` // active | pending | blocked

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsActiveDonor reports whether u can be assigned to a donation request.
func (u User) IsActiveDonor() bool {
	return u.Role == RoleDonor && u.Status == StatusActive
}

// DonorProfile is the public projection of a donor.
type DonorProfile struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	BloodGroup string             `bson:"blood_group,omitempty" json:"blood_group,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	switch r {
	case RoleDonor, RoleUser, RoleAdmin:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known account status.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusPending, StatusBlocked:
		return true
	}
	return false
}
