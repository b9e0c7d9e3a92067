// Package fundingstore persists funding entries.
package fundingstore

import (
	"context"
	"time"

	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("fundings")}
}

// Create stores f with a server-side date.
func (s *Store) Create(ctx context.Context, f models.Funding) (models.Funding, error) {
	f.ID = primitive.NewObjectID()
	f.UserID = normalize.QueryParam(f.UserID)
	f.UserName = normalize.Name(f.UserName)
	f.UserEmail = normalize.Email(f.UserEmail)
	f.Date = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Funding{}, err
	}
	return f, nil
}

// List returns one page of fundings, newest first, with the total count.
func (s *Store) List(ctx context.Context, pg paging.Page) ([]models.Funding, int64, error) {
	total, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	cur, err := s.c.Find(ctx, bson.M{}, pg.NewestFirst("date"))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := make([]models.Funding, 0, pg.Limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Total sums every funding amount. An empty collection sums to 0.
func (s *Store) Total(ctx context.Context) (float64, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$amount"}}}},
	})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
