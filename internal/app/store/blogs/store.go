// Package blogstore persists blog posts.
package blogstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/roktosheba/internal/app/system/htmlsanitize"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNothingToUpdate is returned when an update carries no fields.
	ErrNothingToUpdate = errors.New("no fields to update")
	// ErrBadStatus is returned for a status other than draft or published.
	ErrBadStatus = errors.New(`status must be "draft" or "published"`)
	// ErrBlankTitle is returned when a title is empty once markup is stripped.
	ErrBlankTitle = errors.New("title is blank")
	// ErrBlankThumbnail is returned for an empty thumbnail.
	ErrBlankThumbnail = errors.New("thumbnail is blank")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("blogs")}
}

// Create stores a new draft. Title is stripped of markup and content is
// sanitized before it is written. A title or thumbnail left empty by that
// cleanup is rejected with ErrBlankTitle or ErrBlankThumbnail.
func (s *Store) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	b.ID = primitive.NewObjectID()
	b.Title = htmlsanitize.StripTags(normalize.Name(b.Title))
	b.Thumbnail = normalize.QueryParam(b.Thumbnail)
	b.Content = htmlsanitize.Sanitize(b.Content)
	b.AuthorEmail = normalize.Email(b.AuthorEmail)
	if b.Title == "" {
		return models.Blog{}, ErrBlankTitle
	}
	if b.Thumbnail == "" {
		return models.Blog{}, ErrBlankThumbnail
	}
	b.Status = models.BlogDraft
	b.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

// List returns one page of posts, newest first, optionally filtered by status.
func (s *Store) List(ctx context.Context, status string, pg paging.Page) ([]models.Blog, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = normalize.Status(status)
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := s.c.Find(ctx, filter, pg.NewestFirst("createdAt"))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := make([]models.Blog, 0, pg.Limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Published returns every published post, newest first.
func (s *Store) Published(ctx context.Context) ([]models.Blog, error) {
	cur, err := s.c.Find(ctx, bson.M{"status": models.BlogPublished},
		options.Find().SetSort(paging.NewestFirstSort("createdAt")))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Blog{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the editable fields of a post. Nil fields are left alone.
type Update struct {
	Title     *string
	Thumbnail *string
	Content   *string
	Status    *string
}

// Update applies upd to the post.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (*mongo.UpdateResult, error) {
	set := bson.M{}
	if upd.Title != nil {
		title := htmlsanitize.StripTags(normalize.Name(*upd.Title))
		if title == "" {
			return nil, ErrBlankTitle
		}
		set["title"] = title
	}
	if upd.Thumbnail != nil {
		thumb := normalize.QueryParam(*upd.Thumbnail)
		if thumb == "" {
			return nil, ErrBlankThumbnail
		}
		set["thumbnail"] = thumb
	}
	if upd.Content != nil {
		set["content"] = htmlsanitize.Sanitize(*upd.Content)
	}
	if upd.Status != nil {
		st := normalize.Status(*upd.Status)
		if !models.ValidBlogStatus(st) {
			return nil, ErrBadStatus
		}
		set["status"] = st
	}
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	return s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
}

// Delete removes a post and returns how many documents were deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
