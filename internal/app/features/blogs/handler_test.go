package blogs_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/roktosheba/internal/app/features/blogs"
	uierrors "github.com/dalemusser/roktosheba/internal/app/features/errors"
	"github.com/dalemusser/roktosheba/internal/app/features/shared"
	"github.com/dalemusser/roktosheba/internal/app/store/audit"
	"github.com/dalemusser/roktosheba/internal/app/system/auditlog"
	"github.com/dalemusser/roktosheba/internal/app/system/auth"
	"github.com/dalemusser/roktosheba/internal/domain/models"
	"github.com/dalemusser/roktosheba/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newRouter(t *testing.T, db *mongo.Database) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	al := auditlog.New(audit.New(db), logger, auditlog.Config{Admin: auditlog.ModeDB})
	h := blogs.NewHandler(db, uierrors.NewErrorLogger(logger), al, logger)
	gate := auth.NewGate(testutil.TestAdminToken, logger)

	r := chi.NewRouter()
	blogs.Routes(r, h, shared.Middleware{Admin: gate.RequireAdmin})
	return r
}

func serve(h http.Handler, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreate_IsDraftAndSanitized(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(t, db)

	body := map[string]string{
		"title":       "<b>Why donate</b>",
		"thumbnail":   "https://img.example/1.png",
		"content":     `<p>Hello</p><script>alert(1)</script>`,
		"authorEmail": "Admin@x.com",
	}
	rec := serve(router, testutil.NewJSONRequest(t, http.MethodPost, "/blogs", body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var list struct {
		Blogs      []models.Blog `json:"blogs"`
		TotalCount int64         `json:"totalCount"`
	}
	rec = serve(router, testutil.NewRequest(http.MethodGet, "/blogs?status=draft"))
	require.Equal(t, http.StatusOK, rec.Code)
	rec.DecodeJSON(t, &list)
	require.Len(t, list.Blogs, 1)
	b := list.Blogs[0]
	assert.Equal(t, models.BlogDraft, b.Status)
	assert.Equal(t, "Why donate", b.Title)
	assert.NotContains(t, b.Content, "<script>")
	assert.Contains(t, b.Content, "<p>Hello</p>")
	assert.Equal(t, "admin@x.com", b.AuthorEmail)
}

func TestCreate_RequiresAllFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(t, db)

	rec := serve(router, testutil.NewJSONRequest(t, http.MethodPost, "/blogs",
		map[string]string{"title": "x", "content": "y", "authorEmail": "a@x.com"}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec.AssertContains(t, "Thumbnail is required.")
}

func TestPublishedGate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	draft := fx.CreateBlog(ctx, "Draft", models.BlogDraft)
	router := newRouter(t, db)

	rec := serve(router, testutil.NewRequest(http.MethodGet, "/published-blogs"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(router, testutil.AsAdmin(testutil.NewJSONRequest(t, http.MethodPatch,
		"/blogs/"+draft.ID.Hex(), map[string]string{"status": "Published"})))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var items []models.Blog
	rec = serve(router, testutil.NewRequest(http.MethodGet, "/published-blogs"))
	rec.DecodeJSON(t, &items)
	require.Len(t, items, 1)
	assert.Equal(t, draft.ID, items[0].ID)

	events, err := audit.New(db).Query(ctx, audit.QueryFilter{EventType: audit.EventBlogUpdated})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, draft.ID.Hex(), events[0].TargetID)
}

func TestUpdateAndDelete_Errors(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	b := fx.CreateBlog(ctx, "Post", models.BlogDraft)
	router := newRouter(t, db)

	patch := func(id string, body any) int {
		return serve(router, testutil.AsAdmin(testutil.NewJSONRequest(t, http.MethodPatch, "/blogs/"+id, body))).Code
	}
	del := func(id string) int {
		return serve(router, testutil.AsAdmin(testutil.NewRequest(http.MethodDelete, "/blogs/"+id))).Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(router, testutil.NewRequest(http.MethodDelete, "/blogs/"+b.ID.Hex())).Code)
	assert.Equal(t, http.StatusBadRequest, patch("zzz", map[string]string{"title": "x"}))
	assert.Equal(t, http.StatusBadRequest, patch(b.ID.Hex(), map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, patch(b.ID.Hex(), map[string]string{"status": "archived"}))
	assert.Equal(t, http.StatusNotFound, patch(primitive.NewObjectID().Hex(), map[string]string{"title": "x"}))

	assert.Equal(t, http.StatusBadRequest, del("zzz"))
	assert.Equal(t, http.StatusOK, del(b.ID.Hex()))
	assert.Equal(t, http.StatusNotFound, del(b.ID.Hex()))
}

func TestBlankTitleOrThumbnail_IsBadRequest(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	b := fx.CreateBlog(ctx, "Post", models.BlogDraft)
	router := newRouter(t, db)

	rec := serve(router, testutil.NewJSONRequest(t, http.MethodPost, "/blogs", map[string]string{
		"title":       "<b></b>",
		"thumbnail":   "https://img.example/1.png",
		"content":     "<p>x</p>",
		"authorEmail": "a@x.com",
	}))
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"error":"bad_request","message":"Title is required."}`, rec.Body.String())

	tests := []struct {
		name    string
		body    map[string]string
		message string
	}{
		{"empty title", map[string]string{"title": ""}, "Title is required."},
		{"markup-only title", map[string]string{"title": "<i> </i>"}, "Title is required."},
		{"empty thumbnail", map[string]string{"thumbnail": ""}, "Thumbnail is required."},
		{"blank thumbnail", map[string]string{"thumbnail": "   "}, "Thumbnail is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(router, testutil.AsAdmin(testutil.NewJSONRequest(t, http.MethodPatch, "/blogs/"+b.ID.Hex(), tt.body)))
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			rec.AssertContains(t, tt.message)
		})
	}

	var list struct {
		Blogs []models.Blog `json:"blogs"`
	}
	rec = serve(router, testutil.NewRequest(http.MethodGet, "/blogs"))
	rec.DecodeJSON(t, &list)
	require.Len(t, list.Blogs, 1)
	assert.Equal(t, "Post", list.Blogs[0].Title)
}
