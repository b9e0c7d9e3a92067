package userstore

import (
	"context"

	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func activeDonorFilter() bson.M {
	return bson.M{"role": models.RoleDonor, "status": models.StatusActive}
}

var donorProjection = bson.M{
	"_id":         1,
	"name":        1,
	"email":       1,
	"blood_group": 1,
	"district":    1,
	"upazila":     1,
	"avatar":      1,
}

// ActiveDonors returns every active donor, newest first.
func (s *Store) ActiveDonors(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, activeDonorFilter(),
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveDonorByEmail loads the full record of an active donor. Returns
// mongo.ErrNoDocuments when the email does not belong to an active donor.
func (s *Store) ActiveDonorByEmail(ctx context.Context, email string) (*models.User, error) {
	filter := activeDonorFilter()
	filter["email"] = normalize.Email(email)

	var u models.User
	if err := s.c.FindOne(ctx, filter).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DonorProfile returns the public projection of an active donor.
func (s *Store) DonorProfile(ctx context.Context, email string) (*models.DonorProfile, error) {
	filter := activeDonorFilter()
	filter["email"] = normalize.Email(email)

	var p models.DonorProfile
	err := s.c.FindOne(ctx, filter, options.FindOne().SetProjection(donorProjection)).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DonorQuery narrows FindDonors. Empty fields are not applied.
type DonorQuery struct {
	BloodGroup string
	District   string
	Upazila    string
}

// FindDonors returns the full records of donors matching q exactly, any
// status, unpaginated.
func (s *Store) FindDonors(ctx context.Context, q DonorQuery) ([]models.User, error) {
	filter := bson.M{"role": models.RoleDonor}
	if bg := normalize.BloodGroup(q.BloodGroup); bg != "" {
		filter["blood_group"] = bg
	}
	if d := normalize.QueryParam(q.District); d != "" {
		filter["district"] = d
	}
	if u := normalize.QueryParam(q.Upazila); u != "" {
		filter["upazila"] = u
	}

	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SampleActiveDonors returns up to n random active donors as public profiles.
func (s *Store) SampleActiveDonors(ctx context.Context, n int) ([]models.DonorProfile, error) {
	if n <= 0 {
		return []models.DonorProfile{}, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: activeDonorFilter()}},
		{{Key: "$sample", Value: bson.M{"size": n}}},
		{{Key: "$project", Value: donorProjection}},
	}
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.DonorProfile{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
