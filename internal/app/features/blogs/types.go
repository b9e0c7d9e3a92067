// internal/app/features/blogs/types.go
package blogs

import (
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/domain/models"
)

type createRequest struct {
	Title       string `json:"title" validate:"required,max=200" label:"Title"`
	Thumbnail   string `json:"thumbnail" validate:"required,max=2048" label:"Thumbnail"`
	Content     string `json:"content" validate:"required,max=100000" label:"Content"`
	AuthorEmail string `json:"authorEmail" validate:"required,emailaddr" label:"Author email"`
}

func (q *createRequest) Normalize() {
	q.Title = normalize.Name(q.Title)
	q.Thumbnail = normalize.QueryParam(q.Thumbnail)
	q.AuthorEmail = normalize.Email(q.AuthorEmail)
}

type updateRequest struct {
	Title     *string `json:"title" validate:"omitempty,max=200" label:"Title"`
	Thumbnail *string `json:"thumbnail" validate:"omitempty,max=2048" label:"Thumbnail"`
	Content   *string `json:"content" validate:"omitempty,max=100000" label:"Content"`
	Status    *string `json:"status" validate:"omitempty,blogstatus" label:"Status"`
}

func (q *updateRequest) Normalize() {
	if q.Status != nil {
		s := normalize.Status(*q.Status)
		q.Status = &s
	}
}

func (q *updateRequest) changedFields() []string {
	var out []string
	if q.Title != nil {
		out = append(out, "title")
	}
	if q.Thumbnail != nil {
		out = append(out, "thumbnail")
	}
	if q.Content != nil {
		out = append(out, "content")
	}
	if q.Status != nil {
		out = append(out, "status")
	}
	return out
}

type blogList struct {
	Blogs      []models.Blog `json:"blogs"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}
