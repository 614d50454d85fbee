package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/support-search-api/internal/dto"
	"github.com/noah-isme/support-search-api/internal/middleware"
	"github.com/noah-isme/support-search-api/internal/models"
	appErrors "github.com/noah-isme/support-search-api/pkg/errors"
)

type fakeSearchForms struct {
	criteria   *dto.SearchCriteria
	cleanErr   error
	schema     *dto.SearchFormSchema
	schemaHit  bool
	schemaErr  error
	lastQuery  dto.SearchFormQuery
	lastLocale string
}

func (f *fakeSearchForms) Clean(_ context.Context, locale string, query dto.SearchFormQuery) (*dto.SearchCriteria, error) {
	f.lastLocale = locale
	f.lastQuery = query
	return f.criteria, f.cleanErr
}

func (f *fakeSearchForms) Schema(_ context.Context, locale string) (*dto.SearchFormSchema, bool, error) {
	f.lastLocale = locale
	return f.schema, f.schemaHit, f.schemaErr
}

type fakeChoiceRefresher struct {
	err   error
	calls int
}

func (f *fakeChoiceRefresher) Refresh(context.Context) error {
	f.calls++
	return f.err
}

type responseEnvelope struct {
	Data  map[string]interface{} `json:"data"`
	Meta  map[string]interface{} `json:"meta"`
	Error *struct {
		Code    string              `json:"code"`
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	} `json:"error"`
}

func newSearchRouter(h *SearchHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Locale(), middleware.WithResponseMeta())
	router.GET("/search/form", h.Form)
	router.GET("/search/criteria", h.Criteria)
	router.POST("/search/criteria", h.Criteria)
	router.POST("/search/choices/refresh", h.RefreshChoices)
	return router
}

func TestSearchHandlerCriteriaBindsQuery(t *testing.T) {
	forms := &fakeSearchForms{criteria: &dto.SearchCriteria{Q: "sync", W: 2, Forum: []int{1, 7}}}
	router := newSearchRouter(NewSearchHandler(forms, nil))

	req := httptest.NewRequest(http.MethodGet, "/search/criteria?q=sync&w=2&forum=1&forum=7&topics=a&topics=b&lang=es", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "es", forms.lastLocale)
	assert.Equal(t, "sync", forms.lastQuery.Q)
	assert.Equal(t, "2", forms.lastQuery.W)
	assert.Equal(t, []string{"1", "7"}, forms.lastQuery.Forum)
	assert.Equal(t, []string{"a", "b"}, forms.lastQuery.Topics)

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "sync", envelope.Data["q"])
	assert.Equal(t, float64(2), envelope.Data["w"])
	assert.Equal(t, "es", envelope.Meta["locale"])
	assert.Contains(t, envelope.Meta, "processing_time_ms")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}

func TestSearchHandlerCriteriaValidationError(t *testing.T) {
	details := dto.FieldErrors{}
	details.Add(models.NonFieldErrors, "Basic search requires a query string.")
	details.Add("w", "Select a valid choice. 9 is not one of the available choices.")
	forms := &fakeSearchForms{cleanErr: appErrors.WithDetails(appErrors.ErrValidation, "invalid search parameters", details)}
	router := newSearchRouter(NewSearchHandler(forms, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/criteria?w=9", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Equal(t, []string{"Basic search requires a query string."}, envelope.Error.Details["__all__"])
	assert.Len(t, envelope.Error.Details["w"], 1)
}

func TestSearchHandlerCriteriaAcceptsFormPost(t *testing.T) {
	forms := &fakeSearchForms{criteria: &dto.SearchCriteria{Q: "crash"}}
	router := newSearchRouter(NewSearchHandler(forms, nil))

	req := httptest.NewRequest(http.MethodPost, "/search/criteria", stringsReader("q=crash&a=1&product=firefox"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", forms.lastQuery.A)
	assert.Equal(t, []string{"firefox"}, forms.lastQuery.Product)
}

func TestSearchHandlerForm(t *testing.T) {
	forms := &fakeSearchForms{
		schema:    &dto.SearchFormSchema{Locale: "fr", Fields: []dto.FormField{{Name: "q", Kind: "text", Widget: "text"}}},
		schemaHit: true,
	}
	router := newSearchRouter(NewSearchHandler(forms, nil))

	req := httptest.NewRequest(http.MethodGet, "/search/form", nil)
	req.Header.Set("Accept-Language", "fr-CA")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fr", forms.lastLocale)
	assert.Equal(t, "fr", rec.Header().Get("Content-Language"))

	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Equal(t, "fr", envelope.Data["locale"])
}

func TestSearchHandlerFormError(t *testing.T) {
	forms := &fakeSearchForms{schemaErr: appErrors.Clone(appErrors.ErrInternal, "failed to load search choices")}
	router := newSearchRouter(NewSearchHandler(forms, nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search/form", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSearchHandlerRefreshChoices(t *testing.T) {
	refresher := &fakeChoiceRefresher{}
	router := newSearchRouter(NewSearchHandler(&fakeSearchForms{}, refresher))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search/choices/refresh", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, refresher.calls)

	refresher.err = appErrors.Wrap(errors.New("redis down"), appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "failed to refresh search choices")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search/choices/refresh", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearchHandlerWithoutServices(t *testing.T) {
	router := newSearchRouter(NewSearchHandler(nil, nil))

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/search/form", nil),
		httptest.NewRequest(http.MethodGet, "/search/criteria?q=x", nil),
		httptest.NewRequest(http.MethodPost, "/search/choices/refresh", nil),
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, req.URL.Path)
	}
}
