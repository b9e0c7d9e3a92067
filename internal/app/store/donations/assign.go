package donationstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	assignmentstore "github.com/dalemusser/roktosheba/internal/app/store/assignments"
	"github.com/dalemusser/roktosheba/internal/app/system/metrics"
	"github.com/dalemusser/roktosheba/internal/app/system/txn"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Assigner writes a donor assignment: the donation's assignedDonor,
// donorEmail and status, plus one assignment log entry.
//
// Both writes run in a single transaction when the deployment supports
// it. Otherwise they run in order and a failed log insert reverts the
// donation to its prior assignment fields.
type Assigner struct {
	client      *mongo.Client
	donations   *mongo.Collection
	assignments *assignmentstore.Store
	log         *zap.Logger
	metrics     *metrics.Metrics

	insert     func(ctx context.Context, a models.DonorAssignment) error
	sequential bool
	now        func() time.Time
}

// NewAssigner builds an Assigner over db. m may be nil.
func NewAssigner(db *mongo.Database, logger *zap.Logger, m *metrics.Metrics) *Assigner {
	as := assignmentstore.New(db)
	return &Assigner{
		client:      db.Client(),
		donations:   db.Collection("donations"),
		assignments: as,
		log:         logger,
		metrics:     m,
		insert:      as.Insert,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func assignmentSet(donor models.User) bson.M {
	snap := models.SnapshotOf(donor)
	return bson.M{
		"assignedDonor": snap,
		"donorEmail":    donor.Email,
		"status":        models.DonationInProgress,
	}
}

// Assign assigns donor to the donation. Returns mongo.ErrNoDocuments when
// the donation does not exist.
func (a *Assigner) Assign(ctx context.Context, donationID primitive.ObjectID, donor models.User) error {
	rec := assignmentstore.Record(donationID, donor, a.now())

	if !a.sequential {
		err := txn.Run(ctx, a.client, func(sc mongo.SessionContext) error {
			res, err := a.donations.UpdateOne(sc, bson.M{"_id": donationID}, bson.M{"$set": assignmentSet(donor)})
			if err != nil {
				return err
			}
			if res.MatchedCount == 0 {
				return mongo.ErrNoDocuments
			}
			return a.insert(sc, rec)
		})
		if !errors.Is(err, txn.ErrNotSupported) {
			return err
		}
		a.log.Debug("transactions unavailable; assigning donor sequentially",
			zap.String("donation_id", donationID.Hex()))
	}

	return a.assignSequential(ctx, donationID, donor, rec)
}

func (a *Assigner) assignSequential(ctx context.Context, donationID primitive.ObjectID, donor models.User, rec models.DonorAssignment) error {
	var prior models.DonationRequest
	if err := a.donations.FindOne(ctx, bson.M{"_id": donationID}).Decode(&prior); err != nil {
		return err
	}

	res, err := a.donations.UpdateOne(ctx, bson.M{"_id": donationID}, bson.M{"$set": assignmentSet(donor)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	if err := a.insert(ctx, rec); err != nil {
		if cerr := a.revert(ctx, prior); cerr != nil {
			a.log.Error("assignment compensation failed; donation left assigned without a log entry",
				zap.String("donation_id", donationID.Hex()),
				zap.String("donor_email", donor.Email),
				zap.Error(cerr))
			return fmt.Errorf("record assignment: %w (compensation failed: %v)", err, cerr)
		}
		a.metrics.IncAssignmentCompensations()
		a.log.Warn("assignment log insert failed; donation reverted",
			zap.String("donation_id", donationID.Hex()),
			zap.String("donor_email", donor.Email),
			zap.Error(err))
		return fmt.Errorf("record assignment: %w", err)
	}
	return nil
}

// revert restores the assignment fields captured in prior.
func (a *Assigner) revert(ctx context.Context, prior models.DonationRequest) error {
	set := bson.M{"status": prior.Status}
	unset := bson.M{}
	if prior.AssignedDonor != nil {
		set["assignedDonor"] = prior.AssignedDonor
	} else {
		unset["assignedDonor"] = ""
	}
	if prior.DonorEmail != "" {
		set["donorEmail"] = prior.DonorEmail
	} else {
		unset["donorEmail"] = ""
	}

	upd := bson.M{"$set": set}
	if len(unset) > 0 {
		upd["$unset"] = unset
	}
	_, err := a.donations.UpdateOne(ctx, bson.M{"_id": prior.ID}, upd)
	return err
}
