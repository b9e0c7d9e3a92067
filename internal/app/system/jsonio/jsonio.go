// Package jsonio decodes JSON request bodies into typed request structs and
// writes JSON responses in the shapes the API uses.
package jsonio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/inputval"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

// Decode reads exactly one JSON object from r into dst. Unknown fields,
// trailing data, oversize bodies and type mismatches all become
// apierr.BadRequest.
func Decode(r *http.Request, dst any) error {
	return decode(r, dst, true)
}

// DecodeLenient is Decode without the unknown field check. Fields dst does
// not declare are dropped.
func DecodeLenient(r *http.Request, dst any) error {
	return decode(r, dst, false)
}

func decode(r *http.Request, dst any, strict bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		return apierr.BadRequest("Request body is required.")
	}
	dec := json.NewDecoder(r.Body)
	if strict {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apierr.BadRequest("Request body must contain a single JSON object.")
	}
	return nil
}

// Normalizer is implemented by request structs that clean their fields
// (trim, lower-case) before validation.
type Normalizer interface {
	Normalize()
}

// Bind decodes the body into dst, normalizes it and runs its validate tags.
// The first validation failure becomes the BadRequest message.
func Bind(r *http.Request, dst any) error {
	if err := Decode(r, dst); err != nil {
		return err
	}
	return check(dst)
}

// BindLenient is Bind over DecodeLenient.
func BindLenient(r *http.Request, dst any) error {
	if err := DecodeLenient(r, dst); err != nil {
		return err
	}
	return check(dst)
}

func check(dst any) error {
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	if res := inputval.Validate(dst); res.HasErrors() {
		return apierr.BadRequest(res.First())
	}
	return nil
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return apierr.BadRequest("Request body is required.")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return apierr.BadRequest("Request body contains malformed JSON.")
	case errors.As(err, &syntaxErr):
		return apierr.BadRequest(fmt.Sprintf("Request body contains malformed JSON (at position %d).", syntaxErr.Offset))
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return apierr.BadRequest(fmt.Sprintf("Field %q has the wrong type.", typeErr.Field))
		}
		return apierr.BadRequest("Request body must be a JSON object.")
	case errors.As(err, &maxErr):
		return apierr.BadRequest(fmt.Sprintf("Request body must not be larger than %d bytes.", maxErr.Limit))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.TrimPrefix(err.Error(), "json: unknown field ")
		return apierr.BadRequest(fmt.Sprintf("Unknown field %s.", field))
	default:
		return apierr.BadRequest("Request body could not be decoded.")
	}
}

// ParseID parses a hex ObjectID path parameter.
func ParseID(raw, label string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, apierr.BadRequest("Invalid " + label + ".")
	}
	return id, nil
}

// Write sends v as JSON with status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK sends v as JSON with 200.
func OK(w http.ResponseWriter, v any) {
	Write(w, http.StatusOK, v)
}

// InsertResult mirrors the driver's insert acknowledgement.
type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

// Inserted reports a successful insert of id.
func Inserted(id primitive.ObjectID) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id}
}

// UpdateResult mirrors the driver's update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	Message       string `json:"message,omitempty"`
}

// Updated converts a driver update result.
func Updated(res *mongo.UpdateResult) UpdateResult {
	if res == nil {
		return UpdateResult{Acknowledged: true}
	}
	return UpdateResult{Acknowledged: true, MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
}

// DeleteResult mirrors the driver's delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Deleted reports n deleted documents.
func Deleted(n int64) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: n}
}
