// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/roktosheba/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	// helper: ensure collection exists (with truthful logging) and then validator (if provided)
	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll, logger); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema, logger); err != nil {
			// DocumentDB or other deployments may not support collMod/validators.
			if isNoSuchCommand(err) || isNotImplemented(err) {
				logger.Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("users", usersSchema())
	ensure("donations", donationsSchema())
	ensure("donor_assignments", donorAssignmentsSchema())
	ensure("blogs", blogsSchema())
	ensure("fundings", fundingsSchema())
	ensure("contacts", contactsSchema())

	// The audit trail has no validator; we still ensure the collection exists.
	ensure("audit_events", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		logger.Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			logger.Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		logger.Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	logger.Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M, logger *zap.Logger) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	logger.Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

var nonBlank = bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"}

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"email", "role", "status", "created_at"},
			"properties": bson.M{
				"email":       nonBlank,
				"name":        bson.M{"bsonType": "string"},
				"avatar":      bson.M{"bsonType": "string"},
				"blood_group": bson.M{"bsonType": "string"},
				"district":    bson.M{"bsonType": "string"},
				"upazila":     bson.M{"bsonType": "string"},
				"phone":       bson.M{"bsonType": "string"},
				"role":        bson.M{"enum": bson.A{models.RoleDonor, models.RoleUser, models.RoleAdmin}},
				"status":      bson.M{"enum": bson.A{models.StatusActive, models.StatusPending, models.StatusBlocked}},
				"created_at":  bson.M{"bsonType": "date"},
			},
		},
	}
}

// Donation status is free-form; only its type is checked.
func donationsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"requesterEmail", "status", "createdAt"},
			"properties": bson.M{
				"requesterEmail": nonBlank,
				"status":         bson.M{"bsonType": "string"},
				"donorEmail":     bson.M{"bsonType": "string"},
				"assignedDonor": bson.M{
					"bsonType": "object",
					"required": bson.A{"_id", "email"},
					"properties": bson.M{
						"_id":   bson.M{"bsonType": "objectId"},
						"email": bson.M{"bsonType": "string"},
					},
				},
				"createdAt": bson.M{"bsonType": "date"},
			},
		},
	}
}

func donorAssignmentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"donationId", "donorId", "donorEmail", "assignedAt"},
			"properties": bson.M{
				"donationId": bson.M{"bsonType": "objectId"},
				"donorId":    bson.M{"bsonType": "objectId"},
				"donorEmail": nonBlank,
				"assignedAt": bson.M{"bsonType": "date"},
			},
		},
	}
}

func blogsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"title", "thumbnail", "content", "authorEmail", "status", "createdAt"},
			"properties": bson.M{
				"title":       nonBlank,
				"thumbnail":   nonBlank,
				"content":     bson.M{"bsonType": "string"},
				"authorEmail": nonBlank,
				"status":      bson.M{"enum": bson.A{models.BlogDraft, models.BlogPublished}},
				"createdAt":   bson.M{"bsonType": "date"},
			},
		},
	}
}

func fundingsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"userId", "amount", "date"},
			"properties": bson.M{
				"userId":          nonBlank,
				"amount":          bson.M{"bsonType": bson.A{"double", "int", "long", "decimal"}, "minimum": 0, "exclusiveMinimum": true},
				"paymentIntentId": bson.M{"bsonType": "string"},
				"date":            bson.M{"bsonType": "date"},
			},
		},
	}
}

func contactsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "email", "message", "createdAt"},
			"properties": bson.M{
				"name":      nonBlank,
				"email":     nonBlank,
				"telephone": bson.M{"bsonType": "string"},
				"message":   nonBlank,
				"createdAt": bson.M{"bsonType": "date"},
			},
		},
	}
}
