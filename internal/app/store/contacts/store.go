// Package contactstore persists contact-form submissions.
package contactstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contacts")}
}

// Create stores the message verbatim (trimmed) with createdAt now. It is
// never rendered as HTML by this service.
func (s *Store) Create(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	m.ID = primitive.NewObjectID()
	m.Name = normalize.Name(m.Name)
	m.Email = normalize.Email(m.Email)
	m.Telephone = normalize.QueryParam(m.Telephone)
	m.Message = strings.TrimSpace(m.Message)
	m.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.ContactMessage{}, err
	}
	return m, nil
}
