// internal/app/features/auditlog/list.go
package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/roktosheba/internal/app/store/audit"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
)

const (
	defaultLimit = 50
	maxLimit     = 200
	dateLayout   = "2006-01-02"
)

type eventList struct {
	Events     []audit.Event `json:"events"`
	TotalCount int64         `json:"totalCount"`
}

// ServeList handles GET /audit-events. Supported filters are category,
// event_type, target_id, start_date and end_date (YYYY-MM-DD, end_date
// inclusive), with limit/offset paging.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "audit event list")
	defer cancel()

	store := audit.New(h.DB)
	events, err := store.Query(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "query audit events failed", err)
		return
	}
	total, err := store.CountByFilter(ctx, filter)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count audit events failed", err)
		return
	}

	if events == nil {
		events = []audit.Event{}
	}
	jsonio.OK(w, eventList{Events: events, TotalCount: total})
}

func parseFilter(r *http.Request) (audit.QueryFilter, error) {
	q := r.URL.Query()
	filter := audit.QueryFilter{
		Category:  normalize.QueryParam(q.Get("category")),
		EventType: normalize.QueryParam(q.Get("event_type")),
		TargetID:  normalize.QueryParam(q.Get("target_id")),
		Limit:     defaultLimit,
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return filter, apierr.BadRequest("Invalid limit.")
		}
		filter.Limit = min(n, maxLimit)
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return filter, apierr.BadRequest("Invalid offset.")
		}
		filter.Offset = n
	}

	if v := q.Get("start_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, apierr.BadRequest("Invalid start_date.")
		}
		filter.StartTime = &t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, apierr.BadRequest("Invalid end_date.")
		}
		endOfDay := t.Add(24*time.Hour - time.Nanosecond)
		filter.EndTime = &endOfDay
	}
	return filter, nil
}
