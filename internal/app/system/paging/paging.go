// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Pages are 0-indexed on every list endpoint: page=0 is the newest
// DefaultLimit documents.
const (
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage bounds Page so Skip stays well inside int64. Larger pages
	// are clamped and come back empty.
	MaxPage = 10_000_000
)

// Page is a parsed offset/limit request.
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Parse reads the "page" and "limit" query parameters. Missing, negative or
// non-numeric values fall back to page 0 and DefaultLimit; page is capped at
// MaxPage and limit at MaxLimit.
func Parse(r *http.Request) Page {
	return New(query.Get(r, "page"), query.Get(r, "limit"))
}

// New builds a Page from raw string values using the same rules as Parse.
func New(page, limit string) Page {
	p := Page{Page: 0, Limit: DefaultLimit}
	if n, err := strconv.Atoi(page); err == nil && n >= 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil && n > 0 {
		p.Limit = n
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Skip is the number of documents before this page.
func (p Page) Skip() int64 {
	page, limit := int64(min(max(p.Page, 0), MaxPage)), int64(min(max(p.Limit, 0), MaxLimit))
	return page * limit
}

// NewestFirst returns FindOptions that sort by sortField descending (with
// _id as a tie-breaker so page boundaries are stable) and select this page.
func (p Page) NewestFirst(sortField string) *options.FindOptions {
	return options.Find().
		SetSort(NewestFirstSort(sortField)).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))
}

// NewestFirstSort is the sort used by every newest-first listing.
func NewestFirstSort(sortField string) bson.D {
	return bson.D{
		{Key: sortField, Value: -1},
		{Key: "_id", Value: -1},
	}
}
