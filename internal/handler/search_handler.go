package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/support-search-api/internal/dto"
	"github.com/noah-isme/support-search-api/internal/middleware"
	appErrors "github.com/noah-isme/support-search-api/pkg/errors"
	"github.com/noah-isme/support-search-api/pkg/response"
)

type searchFormService interface {
	Clean(ctx context.Context, locale string, query dto.SearchFormQuery) (*dto.SearchCriteria, error)
	Schema(ctx context.Context, locale string) (*dto.SearchFormSchema, bool, error)
}

type choiceRefresher interface {
	Refresh(ctx context.Context) error
}

// SearchHandler exposes the search form over HTTP.
type SearchHandler struct {
	forms   searchFormService
	choices choiceRefresher
}

// NewSearchHandler constructs the handler.
func NewSearchHandler(forms searchFormService, choices choiceRefresher) *SearchHandler {
	return &SearchHandler{forms: forms, choices: choices}
}

// Form godoc
// @Summary Search form description
// @Tags Search
// @Produce json
// @Param lang query string false "Response language (en, es, fr)"
// @Success 200 {object} response.Envelope
// @Router /search/form [get]
func (h *SearchHandler) Form(c *gin.Context) {
	if h.forms == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	locale := middleware.LocaleFromContext(c)
	schema, cacheHit, err := h.forms.Schema(c.Request.Context(), locale)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, schema, responseMeta(c, locale, start))
}

// Criteria godoc
// @Summary Validate a search submission
// @Description Cleans the submitted search fields and returns typed criteria, or field errors keyed by field name (__all__ for form-level errors).
// @Tags Search
// @Produce json
// @Param q query string false "Query string"
// @Param a query int false "Advanced search flag"
// @Param w query int false "Where to search (1 wiki, 2 support, 3 both, 4 discussions)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /search/criteria [get]
func (h *SearchHandler) Criteria(c *gin.Context) {
	if h.forms == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	start := time.Now()
	var query dto.SearchFormQuery
	if err := c.ShouldBind(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid search parameters"))
		return
	}

	locale := middleware.LocaleFromContext(c)
	criteria, err := h.forms.Clean(c.Request.Context(), locale, query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, criteria, responseMeta(c, locale, start))
}

// RefreshChoices godoc
// @Summary Drop cached product, topic and forum choices
// @Tags Search
// @Security BearerAuth
// @Success 204
// @Router /search/choices/refresh [post]
func (h *SearchHandler) RefreshChoices(c *gin.Context) {
	if h.choices == nil {
		response.Error(c, appErrors.ErrInternal)
		return
	}
	if err := h.choices.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func responseMeta(c *gin.Context, locale string, start time.Time) map[string]interface{} {
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["locale"] = locale
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	if traceID := middleware.TraceID(c); traceID != "" {
		meta["trace_id"] = traceID
	}
	return meta
}
