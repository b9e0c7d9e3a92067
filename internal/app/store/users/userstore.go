package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDuplicateEmail is returned when a user with the email already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrNothingToUpdate is returned when an update carries no fields.
	ErrNothingToUpdate = errors.New("no fields to update")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByEmail looks up a user by normalized email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists reports whether any user has the email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Create inserts a new user. Role defaults to "user" and status to
// "pending"; the caller has already rejected roles it may not self-assign.
// The unique email index closes the race between the existence check and
// the insert.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Email = normalize.Email(u.Email)
	u.Name = normalize.Name(u.Name)
	u.BloodGroup = normalize.BloodGroup(u.BloodGroup)
	u.Role = normalize.Role(u.Role)
	u.Status = normalize.Status(u.Status)
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Status == "" {
		u.Status = models.StatusPending
	}
	u.CreatedAt = time.Now().UTC()

	exists, err := s.EmailExists(ctx, u.Email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrDuplicateEmail
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// ProfileUpdate holds the self-service fields. Nil fields are left alone.
type ProfileUpdate struct {
	Name       *string
	Avatar     *string
	BloodGroup *string
	District   *string
	Upazila    *string
}

func (p ProfileUpdate) set() bson.M {
	set := bson.M{}
	putString(set, "name", p.Name, normalize.Name)
	putString(set, "avatar", p.Avatar, nil)
	putString(set, "blood_group", p.BloodGroup, normalize.BloodGroup)
	putString(set, "district", p.District, normalize.Name)
	putString(set, "upazila", p.Upazila, normalize.Name)
	return set
}

// UpdateProfile applies a self-service update to the user with email.
func (s *Store) UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (*mongo.UpdateResult, error) {
	set := upd.set()
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	return s.c.UpdateOne(ctx, bson.M{"email": normalize.Email(email)}, bson.M{"$set": set})
}

// AdminUpdate holds every field an administrator may change.
type AdminUpdate struct {
	ProfileUpdate
	Email  *string
	Phone  *string
	Role   *string
	Status *string
}

// UpdateByID applies an administrative update. Changing the email to one
// that is taken returns ErrDuplicateEmail.
func (s *Store) UpdateByID(ctx context.Context, id primitive.ObjectID, upd AdminUpdate) (*mongo.UpdateResult, error) {
	set := upd.ProfileUpdate.set()
	putString(set, "email", upd.Email, normalize.Email)
	putString(set, "phone", upd.Phone, normalize.Name)
	putString(set, "role", upd.Role, normalize.Role)
	putString(set, "status", upd.Status, normalize.Status)
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return res, nil
}

// List returns one page of users, newest first, optionally filtered by
// status, along with the total matching count.
func (s *Store) List(ctx context.Context, status string, pg paging.Page) ([]models.User, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = normalize.Status(status)
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	cur, err := s.c.Find(ctx, filter, pg.NewestFirst("created_at"))
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	out := make([]models.User, 0, pg.Limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func putString(set bson.M, key string, v *string, norm func(string) string) {
	if v == nil {
		return
	}
	val := *v
	if norm != nil {
		val = norm(val)
	}
	set[key] = val
}
