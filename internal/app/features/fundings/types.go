// internal/app/features/fundings/types.go
package fundings

import (
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/domain/models"
)

type intentRequest struct {
	AmountInCents int64 `json:"amountInCents" validate:"gt=0" label:"Amount in cents"`
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type recordRequest struct {
	UserID          string  `json:"userId" validate:"required,max=128" label:"User id"`
	UserName        string  `json:"userName" validate:"max=120" label:"User name"`
	UserEmail       string  `json:"userEmail" validate:"omitempty,emailaddr" label:"User email"`
	Amount          float64 `json:"amount" validate:"gt=0" label:"Amount"`
	PaymentIntentID string  `json:"paymentIntentId" validate:"max=255" label:"Payment intent id"`
}

func (q *recordRequest) Normalize() {
	q.UserID = normalize.QueryParam(q.UserID)
	q.UserName = normalize.Name(q.UserName)
	q.UserEmail = normalize.Email(q.UserEmail)
	q.PaymentIntentID = normalize.QueryParam(q.PaymentIntentID)
}

type fundingList struct {
	Fundings   []models.Funding `json:"fundings"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
