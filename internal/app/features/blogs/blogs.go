// internal/app/features/blogs/blogs.go
package blogs

import (
	"errors"
	"net/http"

	blogstore "github.com/dalemusser/roktosheba/internal/app/store/blogs"
	"github.com/dalemusser/roktosheba/internal/app/system/apierr"
	"github.com/dalemusser/roktosheba/internal/app/system/jsonio"
	"github.com/dalemusser/roktosheba/internal/app/system/normalize"
	"github.com/dalemusser/roktosheba/internal/app/system/paging"
	"github.com/dalemusser/roktosheba/internal/app/system/timeouts"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
)

// Create handles POST /blogs. New posts are always drafts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create blog")
	defer cancel()

	b, err := blogstore.New(h.DB).Create(ctx, models.Blog{
		Title:       req.Title,
		Thumbnail:   req.Thumbnail,
		Content:     req.Content,
		AuthorEmail: req.AuthorEmail,
	})
	if err != nil {
		if bad := blankFieldError(err); bad != nil {
			h.ErrLog.Write(w, r, bad)
			return
		}
		h.ErrLog.LogServerError(w, r, "create blog failed", err)
		return
	}
	jsonio.OK(w, jsonio.Inserted(b.ID))
}

// List handles GET /blogs?status=&page=&limit=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	pg := paging.Parse(r)
	status := normalize.Filter(query.Get(r, "status"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list blogs")
	defer cancel()

	items, total, err := blogstore.New(h.DB).List(ctx, status, pg)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list blogs failed", err)
		return
	}
	jsonio.OK(w, blogList{Blogs: items, TotalCount: total, Page: pg.Page, Limit: pg.Limit})
}

// Published handles GET /published-blogs.
func (h *Handler) Published(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "published blogs")
	defer cancel()

	items, err := blogstore.New(h.DB).Published(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list published blogs failed", err)
		return
	}
	jsonio.OK(w, items)
}

// Update handles PATCH /blogs/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := jsonio.ParseID(chi.URLParam(r, "id"), "blog id")
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}
	var req updateRequest
	if err := jsonio.Bind(r, &req); err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update blog")
	defer cancel()

	res, err := blogstore.New(h.DB).Update(ctx, id, blogstore.Update{
		Title:     req.Title,
		Thumbnail: req.Thumbnail,
		Content:   req.Content,
		Status:    req.Status,
	})
	switch {
	case errors.Is(err, blogstore.ErrNothingToUpdate):
		h.ErrLog.Write(w, r, apierr.BadRequest("No fields to update."))
		return
	case errors.Is(err, blogstore.ErrBadStatus):
		h.ErrLog.Write(w, r, apierr.BadRequest(`Status must be "draft" or "published".`))
		return
	case blankFieldError(err) != nil:
		h.ErrLog.Write(w, r, blankFieldError(err))
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "update blog failed", err)
		return
	}
	if res.MatchedCount == 0 {
		h.ErrLog.Write(w, r, apierr.NotFound("Blog not found"))
		return
	}

	h.AuditLog.BlogUpdated(ctx, r, id.Hex(), req.changedFields())
	jsonio.OK(w, jsonio.Updated(res))
}

// Delete handles DELETE /blogs/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := jsonio.ParseID(chi.URLParam(r, "id"), "blog id")
	if err != nil {
		h.ErrLog.Write(w, r, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete blog")
	defer cancel()

	n, err := blogstore.New(h.DB).Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete blog failed", err)
		return
	}
	if n == 0 {
		h.ErrLog.Write(w, r, apierr.NotFound("Blog not found"))
		return
	}

	h.AuditLog.BlogDeleted(ctx, r, id.Hex())
	jsonio.OK(w, jsonio.Deleted(n))
}

// blankFieldError maps the store's blank-field sentinels to a BadRequest,
// or returns nil for any other error.
func blankFieldError(err error) *apierr.Error {
	switch {
	case errors.Is(err, blogstore.ErrBlankTitle):
		return apierr.BadRequest("Title is required.")
	case errors.Is(err, blogstore.ErrBlankThumbnail):
		return apierr.BadRequest("Thumbnail is required.")
	}
	return nil
}
