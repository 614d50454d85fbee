package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/support-search-api/internal/dto"
	"github.com/noah-isme/support-search-api/internal/i18n"
	"github.com/noah-isme/support-search-api/internal/models"
	appErrors "github.com/noah-isme/support-search-api/pkg/errors"
)

// searchDateLayout accepts MM/DD/YYYY with optional leading zeros.
const searchDateLayout = "1/2/2006"

type choiceLoader interface {
	Load(ctx context.Context) (*models.ChoiceSet, bool, error)
}

// SearchFormConfig tunes runtime behaviour of the search form.
type SearchFormConfig struct {
	Languages []string
	Location  *time.Location
}

// SearchFormService validates search submissions and describes the search form.
type SearchFormService struct {
	choices   choiceLoader
	bundle    *i18n.Bundle
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	languages []dto.ChoiceOption
	location  *time.Location
}

// NewSearchFormService constructs a SearchFormService. Validation message
// translations are registered on validate.
func NewSearchFormService(choices choiceLoader, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger, cfg SearchFormConfig) (*SearchFormService, error) {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	bundle, err := i18n.NewBundle(validate)
	if err != nil {
		return nil, err
	}
	location := cfg.Location
	if location == nil {
		location = time.Local
	}
	languages := make([]dto.ChoiceOption, 0, len(cfg.Languages))
	for _, code := range cfg.Languages {
		languages = append(languages, dto.ChoiceOption{Value: code, Label: i18n.LanguageName(code)})
	}
	return &SearchFormService{
		choices:   choices,
		bundle:    bundle,
		validator: validate,
		metrics:   metrics,
		logger:    logger,
		languages: languages,
		location:  location,
	}, nil
}

// Clean validates a raw submission and returns the typed criteria. Field and
// form-level failures come back together as a validation error whose details
// map field names to translated messages.
func (s *SearchFormService) Clean(ctx context.Context, locale string, query dto.SearchFormQuery) (*dto.SearchCriteria, error) {
	var choices *models.ChoiceSet
	if len(query.Topics) > 0 || len(query.Product) > 0 {
		set, _, err := s.choices.Load(ctx)
		if err != nil {
			return nil, err
		}
		choices = set
	}

	c := &formCleaner{svc: s, locale: locale, errs: dto.FieldErrors{}}
	criteria := c.cleanFields(query, choices)
	c.cleanForm(criteria, query)

	failed := failedFields(c.errs)
	s.metrics.RecordFormValidation(len(failed) == 0, failed)
	if len(failed) > 0 {
		s.logger.Debug("search form rejected", zap.Strings("fields", failed), zap.String("locale", locale))
		return nil, appErrors.WithDetails(appErrors.ErrValidation, "invalid search parameters", c.errs)
	}
	return criteria, nil
}

// Schema describes every field of the search form with translated labels and
// current choices. The boolean reports whether choices came from cache.
func (s *SearchFormService) Schema(ctx context.Context, locale string) (*dto.SearchFormSchema, bool, error) {
	set, cacheHit, err := s.choices.Load(ctx)
	if err != nil {
		return nil, false, err
	}

	fields := make([]dto.FormField, 0, len(searchFormFields))
	for _, def := range searchFormFields {
		field := dto.FormField{
			Name:       def.name,
			Kind:       string(def.kind),
			Widget:     string(def.widget),
			Multiple:   def.multiple(),
			EmptyValue: def.emptyValue,
			Choices:    s.choiceOptions(locale, def, set),
		}
		if def.labelKey != "" {
			field.Label = s.bundle.T(locale, def.labelKey)
		}
		if def.placeholderKey != "" {
			field.Attrs = map[string]string{
				"placeholder": s.bundle.T(locale, def.placeholderKey),
				"class":       "auto-fill",
			}
		}
		fields = append(fields, field)
	}

	return &dto.SearchFormSchema{Locale: locale, Fields: fields}, cacheHit, nil
}

func (s *SearchFormService) choiceOptions(locale string, def formFieldDef, set *models.ChoiceSet) []dto.ChoiceOption {
	switch def.source {
	case sourceStatic:
		options := make([]dto.ChoiceOption, 0, len(def.static))
		for _, choice := range def.static {
			option := dto.ChoiceOption{Value: choice.Value}
			if choice.LabelKey != "" {
				option.Label = s.bundle.T(locale, choice.LabelKey)
			}
			options = append(options, option)
		}
		return options
	case sourceProducts:
		options := make([]dto.ChoiceOption, 0, len(set.Products))
		for _, p := range set.Products {
			options = append(options, dto.ChoiceOption{Value: p.Slug, Label: p.Title})
		}
		return options
	case sourceTopics:
		options := make([]dto.ChoiceOption, 0, len(set.Topics))
		for _, t := range set.Topics {
			options = append(options, dto.ChoiceOption{Value: t.Slug, Label: t.Title})
		}
		return options
	case sourceForums:
		options := make([]dto.ChoiceOption, 0, len(set.Forums))
		for _, f := range set.Forums {
			options = append(options, dto.ChoiceOption{Value: f.ForumValue(), Label: f.Name})
		}
		return options
	case sourceLanguages:
		options := make([]dto.ChoiceOption, len(s.languages))
		copy(options, s.languages)
		return options
	default:
		return nil
	}
}

func (s *SearchFormService) hasLanguage(code string) bool {
	for _, lang := range s.languages {
		if lang.Value == code {
			return true
		}
	}
	return false
}

// formCleaner carries the state of a single Clean call.
type formCleaner struct {
	svc    *SearchFormService
	locale string
	errs   dto.FieldErrors

	aValid bool
}

func (c *formCleaner) cleanFields(q dto.SearchFormQuery, choices *models.ChoiceSet) *dto.SearchCriteria {
	criteria := &dto.SearchCriteria{
		Q:               strings.TrimSpace(q.Q),
		W:               c.typedChoice("w", q.W, models.WhereChoices, int(models.WhereBasic)),
		Topics:          c.multipleChoice("topics", q.Topics, choices.HasTopic),
		Language:        c.language(q.Language),
		Category:        c.coerceInts("category", q.Category),
		Product:         c.multipleChoice("product", q.Product, choices.HasProduct),
		IncludeArchived: cleanBoolean(q.IncludeArchived),
		SortbyDocuments: c.stringChoice("sortby_documents", q.SortbyDocuments, models.DocumentSortChoices, models.SortDocumentsRelevance),
		Author:          strings.TrimSpace(q.Author),
		Sortby:          c.typedChoice("sortby", q.Sortby, models.ForumSortChoices, models.SortForumsRelevance),
		ThreadType:      c.coerceInts("thread_type", q.ThreadType),
		Forum:           c.coerceInts("forum", q.Forum),
		AskedBy:         strings.TrimSpace(q.AskedBy),
		AnsweredBy:      strings.TrimSpace(q.AnsweredBy),
		SortbyQuestions: c.typedChoice("sortby_questions", q.SortbyQuestions, models.QuestionSortChoices, models.SortQuestionsRelevance),
		IsLocked:        c.typedChoice("is_locked", q.IsLocked, models.TernaryChoices, int(models.TernaryOff)),
		IsSolved:        c.typedChoice("is_solved", q.IsSolved, models.TernaryChoices, int(models.TernaryOff)),
		HasAnswers:      c.typedChoice("has_answers", q.HasAnswers, models.TernaryChoices, int(models.TernaryOff)),
		HasHelpful:      c.typedChoice("has_helpful", q.HasHelpful, models.TernaryChoices, int(models.TernaryOff)),
		NumVoted:        c.typedChoice("num_voted", q.NumVoted, models.NumberChoices, int(models.NumberNone)),
		QTags:           strings.TrimSpace(q.QTags),
	}

	a, aValid := c.integer("a", q.A)
	criteria.A = a
	c.aValid = aValid

	if votes, ok := c.integer("num_votes", q.NumVotes); ok && votes != nil {
		criteria.NumVotes = *votes
	}

	created := c.typedChoice("created", q.Created, models.DateChoices, int(models.DateNone))
	criteria.Created = &created
	updated := c.typedChoice("updated", q.Updated, models.DateChoices, int(models.DateNone))
	criteria.Updated = &updated

	return criteria
}

// cleanForm applies the cross-field rules once every field has been cleaned.
func (c *formCleaner) cleanForm(criteria *dto.SearchCriteria, q dto.SearchFormQuery) {
	advanced := c.aValid && criteria.A != nil && *criteria.A != 0
	if !advanced && criteria.Q == "" {
		c.errs.Add(models.NonFieldErrors, c.message("error.basic_query"))
	}

	criteria.CreatedDate = c.svc.parseDate(q.CreatedDate)
	if criteria.CreatedDate == nil {
		criteria.Created = nil
	}
	criteria.UpdatedDate = c.svc.parseDate(q.UpdatedDate)
	if criteria.UpdatedDate == nil {
		criteria.Updated = nil
	}
}

// parseDate converts MM/DD/YYYY to epoch seconds in the configured zone.
// Empty or unparsable input yields nil, which disables the filter.
func (s *SearchFormService) parseDate(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.ParseInLocation(searchDateLayout, raw, s.location)
	if err != nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}

func (c *formCleaner) message(key string, params ...string) string {
	return c.svc.bundle.T(c.locale, key, params...)
}

func (c *formCleaner) invalidChoice(field, value string) {
	c.errs.Add(field, c.message("error.invalid_choice", value))
}

// validChoice checks raw against the choice values with the validator's oneof rule.
func (c *formCleaner) validChoice(field, raw string, choices []models.StaticChoice) bool {
	err := c.svc.validator.Var(raw, oneOfTag(choices))
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			c.errs.Add(field, fe.Translate(c.svc.bundle.Translator(c.locale)))
		}
		return false
	}
	c.invalidChoice(field, raw)
	return false
}

func (c *formCleaner) typedChoice(field, raw string, choices []models.StaticChoice, empty int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return empty
	}
	if !c.validChoice(field, raw, choices) {
		return empty
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.invalidChoice(field, raw)
		return empty
	}
	return value
}

func (c *formCleaner) stringChoice(field, raw string, choices []models.StaticChoice, empty string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return empty
	}
	if !c.validChoice(field, raw, choices) {
		return empty
	}
	return raw
}

func (c *formCleaner) language(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !c.svc.hasLanguage(raw) {
		c.invalidChoice("language", raw)
		return ""
	}
	return raw
}

// multipleChoice keeps values known to the lookup and reports the first unknown one.
func (c *formCleaner) multipleChoice(field string, raw []string, known func(string) bool) []string {
	values := make([]string, 0, len(raw))
	for _, value := range raw {
		if !known(value) {
			c.invalidChoice(field, value)
			return []string{}
		}
		values = append(values, value)
	}
	return values
}

// coerceInts converts every value to int without checking membership.
func (c *formCleaner) coerceInts(field string, raw []string) []int {
	values := make([]int, 0, len(raw))
	for _, value := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			c.invalidChoice(field, value)
			return []int{}
		}
		values = append(values, n)
	}
	return values
}

// integer returns nil for empty input. The boolean is false when the input was rejected.
func (c *formCleaner) integer(field, raw string) (*int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.errs.Add(field, c.message("error.invalid_integer"))
		return nil, false
	}
	return &n, true
}

// cleanBoolean follows checkbox semantics: only "", "false" and "0" are false.
func cleanBoolean(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "0":
		return false
	default:
		return true
	}
}

func oneOfTag(choices []models.StaticChoice) string {
	values := make([]string, 0, len(choices))
	for _, choice := range choices {
		values = append(values, choice.Value)
	}
	return "oneof=" + strings.Join(values, " ")
}

// failedFields returns the names of fields with errors in stable order.
func failedFields(errs dto.FieldErrors) []string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
