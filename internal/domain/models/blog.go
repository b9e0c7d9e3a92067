// internal/domain/models/blog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog statuses.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// Blog is a content post. Only published posts are shown publicly.
type Blog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Content     string             `bson:"content" json:"content"` // sanitized HTML
	AuthorEmail string             `bson:"authorEmail" json:"authorEmail"`
	Status      string             `bson:"status" json:"status"` // draft | published
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ValidBlogStatus reports whether s is draft or published.
func ValidBlogStatus(s string) bool {
	return s == BlogDraft || s == BlogPublished
}
