// internal/app/features/users/types.go
package users

import (
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/domain/models"
)

// registerRequest is the body of POST /users. Clients send the blood group
// either as blood_group or bloodGroup.
type registerRequest struct {
	Email         string `json:"email" validate:"required,emailaddr,max=254" label:"Email"`
	Name          string `json:"name" validate:"max=120" label:"Name"`
	Avatar        string `json:"avatar" validate:"omitempty,httpurl" label:"Avatar"`
	BloodGroup    string `json:"blood_group" validate:"omitempty,bloodgroup" label:"Blood group"`
	BloodGroupAlt string `json:"bloodGroup" validate:"omitempty,bloodgroup" label:"Blood group"`
	District      string `json:"district" validate:"max=100" label:"District"`
	Upazila       string `json:"upazila" validate:"max=100" label:"Upazila"`
	Phone         string `json:"phone" validate:"max=30" label:"Phone"`
	Role          string `json:"role" validate:"omitempty,role" label:"Role"`
	Status        string `json:"status" validate:"omitempty,oneof=active pending" label:"Status"`
}

func (q *registerRequest) Normalize() {
	q.Email = normalize.Email(q.Email)
	q.Name = normalize.Name(q.Name)
	q.BloodGroup = normalize.BloodGroup(q.BloodGroup)
	q.BloodGroupAlt = normalize.BloodGroup(q.BloodGroupAlt)
	if q.BloodGroup == "" {
		q.BloodGroup = q.BloodGroupAlt
	}
	q.District = normalize.Name(q.District)
	q.Upazila = normalize.Name(q.Upazila)
	q.Phone = normalize.Name(q.Phone)
	q.Role = normalize.Role(q.Role)
	q.Status = normalize.Status(q.Status)
}

func (q *registerRequest) user() models.User {
	return models.User{
		Email:      q.Email,
		Name:       q.Name,
		Avatar:     q.Avatar,
		BloodGroup: q.BloodGroup,
		District:   q.District,
		Upazila:    q.Upazila,
		Phone:      q.Phone,
		Role:       q.Role,
		Status:     q.Status,
	}
}

// profileRequest is the body of PATCH /users/{email}. Only these fields are
// read; anything else in the body is dropped.
type profileRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=120" label:"Name"`
	Avatar        *string `json:"avatar" validate:"omitempty,httpurl" label:"Avatar"`
	BloodGroup    *string `json:"blood_group" validate:"omitempty,bloodgroup" label:"Blood group"`
	BloodGroupAlt *string `json:"bloodGroup" validate:"omitempty,bloodgroup" label:"Blood group"`
	District      *string `json:"district" validate:"omitempty,max=100" label:"District"`
	Upazila       *string `json:"upazila" validate:"omitempty,max=100" label:"Upazila"`
}

func (q *profileRequest) Normalize() {
	if q.BloodGroup == nil {
		q.BloodGroup = q.BloodGroupAlt
	}
}

// adminUpdateRequest is the body of PATCH /allUsers/{id}.
type adminUpdateRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=120" label:"Name"`
	Email         *string `json:"email" validate:"omitempty,emailaddr,max=254" label:"Email"`
	Avatar        *string `json:"avatar" validate:"omitempty,httpurl" label:"Avatar"`
	BloodGroup    *string `json:"blood_group" validate:"omitempty,bloodgroup" label:"Blood group"`
	BloodGroupAlt *string `json:"bloodGroup" validate:"omitempty,bloodgroup" label:"Blood group"`
	District      *string `json:"district" validate:"omitempty,max=100" label:"District"`
	Upazila       *string `json:"upazila" validate:"omitempty,max=100" label:"Upazila"`
	Phone         *string `json:"phone" validate:"omitempty,max=30" label:"Phone"`
	Role          *string `json:"role" validate:"omitempty,role" label:"Role"`
	Status        *string `json:"status" validate:"omitempty,acctstatus" label:"Status"`
}

func (q *adminUpdateRequest) Normalize() {
	if q.BloodGroup == nil {
		q.BloodGroup = q.BloodGroupAlt
	}
	lower := func(p *string, f func(string) string) {
		if p != nil {
			*p = f(*p)
		}
	}
	lower(q.Email, normalize.Email)
	lower(q.Role, normalize.Role)
	lower(q.Status, normalize.Status)
}

// changedFields names the fields an admin update touches, for the audit log.
func (q *adminUpdateRequest) changedFields() []string {
	var out []string
	add := func(name string, p *string) {
		if p != nil {
			out = append(out, name)
		}
	}
	add("name", q.Name)
	add("email", q.Email)
	add("avatar", q.Avatar)
	add("blood_group", q.BloodGroup)
	add("district", q.District)
	add("upazila", q.Upazila)
	add("phone", q.Phone)
	add("role", q.Role)
	add("status", q.Status)
	return out
}

// userList is the paginated GET /allUsers response.
type userList struct {
	Users      []models.User `json:"users"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}

type roleResponse struct {
	Role string `json:"role"`
}
