// Package inputval validates decoded request bodies.
//
// Request structs carry `validate` tags (go-playground/validator syntax)
// and a `label` tag used in messages:
//
//	type registerInput struct {
//	    Email string `json:"email" validate:"required,emailaddr" label:"Email"`
//	}
//
// Validate returns every failure as a human-readable message.
package inputval

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
		return f.Name
	})

	rules := map[string]func(string) bool{
		"emailaddr":  IsValidEmail,
		"objectid":   IsValidObjectID,
		"httpurl":    IsValidHTTPURL,
		"bloodgroup": IsValidBloodGroup,
		"role":       models.ValidRole,
		"acctstatus": models.ValidStatus,
		"blogstatus": models.ValidBlogStatus,
	}
	for tag, fn := range rules {
		fn := fn
		_ = val.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}
	return val
}

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Result collects validation failures.
type Result struct {
	Errors []FieldError
}

func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "".
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate runs the struct's validate tags.
func Validate(s any) *Result {
	res := &Result{}
	err := v.Struct(s)
	if err == nil {
		return res
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		res.Errors = append(res.Errors, FieldError{Message: err.Error()})
		return res
	}
	for _, fe := range ves {
		res.Errors = append(res.Errors, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return res
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "max":
		return label + " must be at most " + fe.Param() + " characters."
	case "gt":
		return label + " must be greater than " + fe.Param() + "."
	case "emailaddr", "email":
		return "A valid email address is required."
	case "objectid":
		return label + " must be a valid id."
	case "httpurl":
		return label + " must be a valid http(s) URL."
	case "bloodgroup":
		return label + " must be one of " + strings.Join(BloodGroups, ", ") + "."
	case "role":
		return label + ` must be "donor", "user" or "admin".`
	case "acctstatus":
		return label + ` must be "active", "pending" or "blocked".`
	case "blogstatus":
		return label + ` must be "draft" or "published".`
	}
	return label + " is invalid."
}

// BloodGroups lists the accepted ABO/Rh groups.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// IsValidBloodGroup reports whether s is one of BloodGroups (case-insensitive).
func IsValidBloodGroup(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, g := range BloodGroups {
		if s == g {
			return true
		}
	}
	return false
}

// IsValidEmail performs a structural check of a bare address (no display
// name). Single-label domains such as "localhost" are accepted.
func IsValidEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	if strings.ContainsAny(s, " \t\r\n<>") {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 || strings.Count(s, "@") != 1 {
		return false
	}
	return validDots(s[:at]) && validDots(s[at+1:])
}

func validDots(part string) bool {
	return !strings.HasPrefix(part, ".") &&
		!strings.HasSuffix(part, ".") &&
		!strings.Contains(part, "..")
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidObjectID reports whether s is a 24-character hex ObjectID.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}
