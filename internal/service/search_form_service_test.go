package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/support-search-api/internal/dto"
	"github.com/noah-isme/support-search-api/internal/models"
	appErrors "github.com/noah-isme/support-search-api/pkg/errors"
)

type choiceLoaderStub struct {
	set   *models.ChoiceSet
	hit   bool
	err   error
	calls int
}

func (s *choiceLoaderStub) Load(ctx context.Context) (*models.ChoiceSet, bool, error) {
	s.calls++
	if s.err != nil {
		return nil, false, s.err
	}
	return s.set, s.hit, nil
}

func newChoiceLoaderStub() *choiceLoaderStub {
	return &choiceLoaderStub{set: &models.ChoiceSet{
		Products: []models.Product{{Slug: "firefox", Title: "Firefox"}, {Slug: "mobile", Title: "Firefox for Android"}},
		Topics:   []models.Topic{{Slug: "sync", Title: "Sync"}, {Slug: "privacy", Title: "Privacy"}},
		Forums:   []models.Forum{{ID: 1, Name: "Off Topic"}, {ID: 7, Name: "Contributors"}},
	}}
}

func newSearchFormServiceForTest(t *testing.T, loader choiceLoader) *SearchFormService {
	t.Helper()
	svc, err := NewSearchFormService(loader, nil, NewMetricsService(), nil, SearchFormConfig{
		Languages: []string{"en-US", "de", "fr"},
		Location:  time.UTC,
	})
	require.NoError(t, err)
	return svc
}

func validationDetails(t *testing.T, err error) dto.FieldErrors {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	details, ok := appErr.Details.(dto.FieldErrors)
	require.True(t, ok)
	return details
}

func TestSearchFormServiceCleanDefaults(t *testing.T) {
	loader := newChoiceLoaderStub()
	svc := newSearchFormServiceForTest(t, loader)

	criteria, err := svc.Clean(context.Background(), "en", dto.SearchFormQuery{Q: "  crash on startup "})
	require.NoError(t, err)

	assert.Equal(t, "crash on startup", criteria.Q)
	assert.Equal(t, int(models.WhereBasic), criteria.W)
	assert.Nil(t, criteria.A)
	assert.Equal(t, models.SortDocumentsRelevance, criteria.SortbyDocuments)
	assert.Equal(t, models.SortForumsRelevance, criteria.Sortby)
	assert.Equal(t, models.SortQuestionsRelevance, criteria.SortbyQuestions)
	assert.Equal(t, 0, criteria.NumVotes)
	assert.Equal(t, int(models.TernaryOff), criteria.IsSolved)
	assert.False(t, criteria.IncludeArchived)
	assert.Nil(t, criteria.Created)
	assert.Nil(t, criteria.CreatedDate)
	assert.Empty(t, criteria.Topics)
	assert.Empty(t, criteria.Forum)
	assert.Equal(t, 0, loader.calls, "choices are only loaded when topics or products are submitted")
}

func TestSearchFormServiceCleanAdvancedSearch(t *testing.T) {
	loader := newChoiceLoaderStub()
	svc := newSearchFormServiceForTest(t, loader)

	criteria, err := svc.Clean(context.Background(), "en", dto.SearchFormQuery{
		A:               "1",
		W:               "2",
		Topics:          []string{"sync"},
		Product:         []string{"firefox", "mobile"},
		Category:        []string{"10", "20"},
		Language:        "de",
		IncludeArchived: "on",
		SortbyDocuments: "helpful",
		Created:         "1",
		CreatedDate:     "01/15/2012",
		Updated:         "2",
		UpdatedDate:     "3/4/2012",
		ThreadType:      []string{"1"},
		Forum:           []string{"1", "7"},
		IsLocked:        "-1",
		HasHelpful:      "1",
		NumVoted:        "2",
		NumVotes:        "5",
		AskedBy:         "jsocol",
	})
	require.NoError(t, err)

	require.NotNil(t, criteria.A)
	assert.Equal(t, 1, *criteria.A)
	assert.Equal(t, int(models.WhereSupport), criteria.W)
	assert.Equal(t, []string{"sync"}, criteria.Topics)
	assert.Equal(t, []string{"firefox", "mobile"}, criteria.Product)
	assert.Equal(t, []int{10, 20}, criteria.Category)
	assert.Equal(t, "de", criteria.Language)
	assert.True(t, criteria.IncludeArchived)
	assert.Equal(t, "helpful", criteria.SortbyDocuments)
	require.NotNil(t, criteria.Created)
	assert.Equal(t, int(models.DateBefore), *criteria.Created)
	require.NotNil(t, criteria.CreatedDate)
	assert.Equal(t, int64(1326585600), *criteria.CreatedDate)
	require.NotNil(t, criteria.Updated)
	assert.Equal(t, int(models.DateAfter), *criteria.Updated)
	require.NotNil(t, criteria.UpdatedDate)
	assert.Equal(t, int64(1330819200), *criteria.UpdatedDate)
	assert.Equal(t, []int{1}, criteria.ThreadType)
	assert.Equal(t, []int{1, 7}, criteria.Forum)
	assert.Equal(t, int(models.TernaryNo), criteria.IsLocked)
	assert.Equal(t, int(models.TernaryYes), criteria.HasHelpful)
	assert.Equal(t, int(models.NumberLess), criteria.NumVoted)
	assert.Equal(t, 5, criteria.NumVotes)
	assert.Equal(t, "jsocol", criteria.AskedBy)
	assert.Equal(t, 1, loader.calls)
}

func TestSearchFormServiceCleanRequiresQueryForBasicSearch(t *testing.T) {
	svc := newSearchFormServiceForTest(t, newChoiceLoaderStub())

	cases := []struct {
		name  string
		query dto.SearchFormQuery
	}{
		{name: "no advanced flag", query: dto.SearchFormQuery{}},
		{name: "advanced flag zero", query: dto.SearchFormQuery{A: "0"}},
		{name: "invalid advanced flag", query: dto.SearchFormQuery{A: "yes"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Clean(context.Background(), "en", tc.query)
			details := validationDetails(t, err)
			assert.Equal(t, []string{"Basic search requires a query string."}, details[models.NonFieldErrors])
		})
	}
}

func TestSearchFormServiceCleanFieldErrors(t *testing.T) {
	svc := newSearchFormServiceForTest(t, newChoiceLoaderStub())

	_, err := svc.Clean(context.Background(), "en", dto.SearchFormQuery{
		Q:        "tabs",
		W:        "9",
		A:        "x",
		Topics:   []string{"sync", "bogus", "other"},
		Language: "xx",
		Forum:    []string{"abc"},
		IsSolved: "2",
		NumVotes: "many",
		Sortby:   "1.5",
		Product:  []string{"firefox"},
		Category: []string{"10"},
	})
	details := validationDetails(t, err)

	assert.Equal(t, []string{"Select a valid choice. 9 is not one of the available choices."}, details["w"])
	assert.Equal(t, []string{"Enter a whole number."}, details["a"])
	assert.Equal(t, []string{"Select a valid choice. bogus is not one of the available choices."}, details["topics"])
	assert.Equal(t, []string{"Select a valid choice. xx is not one of the available choices."}, details["language"])
	assert.Equal(t, []string{"Select a valid choice. abc is not one of the available choices."}, details["forum"])
	assert.Equal(t, []string{"Select a valid choice. 2 is not one of the available choices."}, details["is_solved"])
	assert.Equal(t, []string{"Enter a whole number."}, details["num_votes"])
	assert.Equal(t, []string{"Select a valid choice. 1.5 is not one of the available choices."}, details["sortby"])
	assert.False(t, details.Has("product"))
	assert.False(t, details.Has("category"))
	assert.False(t, details.Has(models.NonFieldErrors), "query is present")
}

func TestSearchFormServiceCleanTranslatesErrors(t *testing.T) {
	svc := newSearchFormServiceForTest(t, newChoiceLoaderStub())

	_, err := svc.Clean(context.Background(), "es", dto.SearchFormQuery{W: "8"})
	details := validationDetails(t, err)

	assert.Equal(t, []string{"Escoja una opción válida. 8 no es una de las opciones disponibles."}, details["w"])
	assert.Equal(t, []string{"La búsqueda básica requiere una cadena de consulta."}, details[models.NonFieldErrors])
}

func TestSearchFormServiceCleanDropsUnparsableDates(t *testing.T) {
	svc := newSearchFormServiceForTest(t, newChoiceLoaderStub())

	criteria, err := svc.Clean(context.Background(), "en", dto.SearchFormQuery{
		Q:           "video",
		Created:     "2",
		CreatedDate: "2012-01-15",
		Updated:     "1",
		UpdatedDate: "13/40/2012",
	})
	require.NoError(t, err)
	assert.Nil(t, criteria.Created)
	assert.Nil(t, criteria.CreatedDate)
	assert.Nil(t, criteria.Updated)
	assert.Nil(t, criteria.UpdatedDate)
}

func TestSearchFormServiceCleanUsesConfiguredLocation(t *testing.T) {
	zone := time.FixedZone("UTC-8", -8*60*60)
	svc, err := NewSearchFormService(newChoiceLoaderStub(), nil, nil, nil, SearchFormConfig{Location: zone})
	require.NoError(t, err)

	criteria, err := svc.Clean(context.Background(), "en", dto.SearchFormQuery{Q: "video", Created: "1", CreatedDate: "1/15/2012"})
	require.NoError(t, err)
	require.NotNil(t, criteria.CreatedDate)
	assert.Equal(t, int64(1326585600+8*60*60), *criteria.CreatedDate)
}

func TestSearchFormServiceCleanChoiceLoadFailure(t *testing.T) {
	loader := &choiceLoaderStub{err: appErrors.Clone(appErrors.ErrInternal, "failed to load search choices")}
	svc := newSearchFormServiceForTest(t, loader)

	_, err := svc.Clean(context.Background(), "en", dto.SearchFormQuery{Q: "sync", Topics: []string{"sync"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInternal))
}

func TestCleanBoolean(t *testing.T) {
	for raw, want := range map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"False": false,
		"on":    true,
		"1":     true,
		"true":  true,
		"off":   true,
	} {
		assert.Equal(t, want, cleanBoolean(raw), raw)
	}
}

func TestSearchFormServiceSchema(t *testing.T) {
	loader := newChoiceLoaderStub()
	loader.hit = true
	svc := newSearchFormServiceForTest(t, loader)

	schema, cacheHit, err := svc.Schema(context.Background(), "fr")
	require.NoError(t, err)
	assert.True(t, cacheHit)
	assert.Equal(t, "fr", schema.Locale)
	require.Len(t, schema.Fields, len(searchFormFields))

	byName := make(map[string]dto.FormField, len(schema.Fields))
	for _, field := range schema.Fields {
		byName[field.Name] = field
	}

	assert.Equal(t, "q", schema.Fields[0].Name)
	assert.Equal(t, "Sujets", byName["topics"].Label)
	assert.True(t, byName["topics"].Multiple)
	assert.Equal(t, []dto.ChoiceOption{{Value: "sync", Label: "Sync"}, {Value: "privacy", Label: "Privacy"}}, byName["topics"].Choices)
	assert.Equal(t, []dto.ChoiceOption{{Value: "1", Label: "Off Topic"}, {Value: "7", Label: "Contributors"}}, byName["forum"].Choices)
	assert.Equal(t, string(models.WidgetSelectMultiple), byName["forum"].Widget)
	assert.Equal(t, string(models.WidgetHidden), byName["w"].Widget)
	assert.Equal(t, int(models.WhereBasic), byName["w"].EmptyValue)
	assert.Equal(t, "nom d'utilisateur", byName["author"].Attrs["placeholder"])
	assert.Equal(t, "auto-fill", byName["q_tags"].Attrs["class"])

	languages := byName["language"].Choices
	require.Len(t, languages, 3)
	assert.Equal(t, "de", languages[1].Value)
	assert.Equal(t, "Deutsch", languages[1].Label)

	require.Len(t, byName["is_solved"].Choices, len(models.TernaryChoices))
	assert.NotEmpty(t, byName["is_solved"].Choices[0].Label)
}

func TestSearchFormServiceSchemaLoadFailure(t *testing.T) {
	svc := newSearchFormServiceForTest(t, &choiceLoaderStub{err: errors.New("db down")})

	_, _, err := svc.Schema(context.Background(), "en")
	require.Error(t, err)
}
