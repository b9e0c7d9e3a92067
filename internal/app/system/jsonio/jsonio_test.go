package jsonio

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type sample struct {
	Email string `json:"email" validate:"required,emailaddr" label:"Email"`
	Count int    `json:"count"`
}

func (s *sample) Normalize() {
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
}

func newReq(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
}

func TestBind(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"email":"  A@X.com "}`, ""},
		{"empty body", ``, "Request body is required."},
		{"malformed", `{"email":`, "Request body contains malformed JSON."},
		{"syntax", `{"email" "a@x.com"}`, "Request body contains malformed JSON (at position"},
		{"unknown field", `{"email":"a@x.com","_id":"1"}`, `Unknown field "_id".`},
		{"wrong type", `{"email":"a@x.com","count":"three"}`, `Field "count" has the wrong type.`},
		{"not an object", `[1,2]`, "Request body must be a JSON object."},
		{"trailing data", `{"email":"a@x.com"}{"email":"b@x.com"}`, "Request body must contain a single JSON object."},
		{"missing required", `{}`, "Email is required."},
		{"bad email", `{"email":"nope"}`, "A valid email address is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s sample
			err := Bind(newReq(tt.body), &s)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if s.Email != "a@x.com" {
					t.Errorf("Email = %q, want normalized a@x.com", s.Email)
				}
				return
			}
			if !isBadRequest(err) {
				t.Fatalf("expected bad_request, got %v", err)
			}
			if msg := apierr.From(err).Message; !strings.HasPrefix(msg, tt.wantErr) {
				t.Errorf("message = %q, want prefix %q", msg, tt.wantErr)
			}
		})
	}
}

func TestDecode_BodyTooLarge(t *testing.T) {
	rec := httptest.NewRecorder()
	req := newReq(`{"email":"` + strings.Repeat("a", 100) + `@x.com"}`)
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	var s sample
	err := Decode(req, &s)
	if !isBadRequest(err) {
		t.Fatalf("expected bad_request, got %v", err)
	}
	if !strings.Contains(err.Error(), "larger than 16 bytes") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()
	got, err := ParseID(id.Hex(), "donation id")
	if err != nil || got != id {
		t.Fatalf("ParseID(valid) = %v, %v", got, err)
	}

	_, err = ParseID("not-an-id", "donation id")
	if apierr.From(err).Message != "Invalid donation id." {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResultShapes(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, Updated(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 0}))
	if got := strings.TrimSpace(rec.Body.String()); got != `{"acknowledged":true,"matchedCount":1,"modifiedCount":0}` {
		t.Errorf("update body = %s", got)
	}

	rec = httptest.NewRecorder()
	OK(rec, Deleted(0))
	if got := strings.TrimSpace(rec.Body.String()); got != `{"acknowledged":true,"deletedCount":0}` {
		t.Errorf("delete body = %s", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestBindLenient_DropsUnknownFields(t *testing.T) {
	var s sample
	if err := BindLenient(newReq(`{"email":"a@x.com","role":"admin"}`), &s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Email != "a@x.com" {
		t.Errorf("Email = %q", s.Email)
	}

	var empty sample
	if err := BindLenient(newReq(`{"role":"admin"}`), &empty); !isBadRequest(err) {
		t.Errorf("validation still applies, got %v", err)
	}
}

func isBadRequest(err error) bool {
	return err != nil && apierr.From(err).Kind == apierr.KindBadRequest
}
