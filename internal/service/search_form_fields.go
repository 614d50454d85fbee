package service

import "github.com/noah-isme/support-search-api/internal/models"

type choiceSource int

const (
	sourceNone choiceSource = iota
	sourceStatic
	sourceProducts
	sourceTopics
	sourceForums
	sourceLanguages
)

type formFieldDef struct {
	name           string
	kind           models.FieldKind
	widget         models.Widget
	labelKey       string
	emptyValue     interface{}
	placeholderKey string
	source         choiceSource
	static         []models.StaticChoice
}

func (f formFieldDef) multiple() bool {
	return f.kind == models.FieldMultipleChoice || f.kind == models.FieldTypedMultipleChoice
}

// searchFormFields lists the fields in display order.
var searchFormFields = []formFieldDef{
	// Common fields
	{name: "q", kind: models.FieldText, widget: models.WidgetText, emptyValue: ""},
	{name: "w", kind: models.FieldTypedChoice, widget: models.WidgetHidden, emptyValue: int(models.WhereBasic), source: sourceStatic, static: models.WhereChoices},
	{name: "a", kind: models.FieldInteger, widget: models.WidgetHidden},

	// Knowledge base fields
	{name: "topics", kind: models.FieldMultipleChoice, widget: models.WidgetCheckboxMultiple, labelKey: "label.topics", source: sourceTopics},
	{name: "language", kind: models.FieldChoice, widget: models.WidgetSelect, labelKey: "label.language", emptyValue: "", source: sourceLanguages},
	{name: "category", kind: models.FieldTypedMultipleChoice, widget: models.WidgetCheckboxMultiple, labelKey: "label.category", source: sourceStatic, static: models.CategoryChoices},
	{name: "product", kind: models.FieldMultipleChoice, widget: models.WidgetCheckboxMultiple, labelKey: "label.product", source: sourceProducts},
	{name: "include_archived", kind: models.FieldBoolean, widget: models.WidgetCheckbox, labelKey: "label.include_archived", emptyValue: false},
	{name: "sortby_documents", kind: models.FieldTypedChoice, widget: models.WidgetSelect, labelKey: "label.sortby", emptyValue: models.SortDocumentsRelevance, source: sourceStatic, static: models.DocumentSortChoices},

	// Support questions and discussion forums fields
	{name: "created", kind: models.FieldTypedChoice, widget: models.WidgetSelect, labelKey: "label.created", emptyValue: int(models.DateNone), source: sourceStatic, static: models.DateChoices},
	{name: "created_date", kind: models.FieldText, widget: models.WidgetText, emptyValue: ""},
	{name: "updated", kind: models.FieldTypedChoice, widget: models.WidgetSelect, labelKey: "label.updated", emptyValue: int(models.DateNone), source: sourceStatic, static: models.DateChoices},
	{name: "updated_date", kind: models.FieldText, widget: models.WidgetText, emptyValue: ""},

	// Discussion forums fields
	{name: "author", kind: models.FieldText, widget: models.WidgetText, emptyValue: "", placeholderKey: "placeholder.username"},
	{name: "sortby", kind: models.FieldTypedChoice, widget: models.WidgetSelect, labelKey: "label.sortby", emptyValue: models.SortForumsRelevance, source: sourceStatic, static: models.ForumSortChoices},
	{name: "thread_type", kind: models.FieldTypedMultipleChoice, widget: models.WidgetCheckboxMultiple, labelKey: "label.thread_type", source: sourceStatic, static: models.DiscussionStatusChoices},
	{name: "forum", kind: models.FieldTypedMultipleChoice, widget: models.WidgetSelectMultiple, labelKey: "label.forum", source: sourceForums},

	// Support questions fields
	{name: "asked_by", kind: models.FieldText, widget: models.WidgetText, emptyValue: "", placeholderKey: "placeholder.username"},
	{name: "answered_by", kind: models.FieldText, widget: models.WidgetText, emptyValue: "", placeholderKey: "placeholder.username"},
	{name: "sortby_questions", kind: models.FieldTypedChoice, widget: models.WidgetSelect, labelKey: "label.sortby", emptyValue: models.SortQuestionsRelevance, source: sourceStatic, static: models.QuestionSortChoices},
	{name: "is_locked", kind: models.FieldTypedChoice, widget: models.WidgetRadio, labelKey: "label.is_locked", emptyValue: int(models.TernaryOff), source: sourceStatic, static: models.TernaryChoices},
	{name: "is_solved", kind: models.FieldTypedChoice, widget: models.WidgetRadio, labelKey: "label.is_solved", emptyValue: int(models.TernaryOff), source: sourceStatic, static: models.TernaryChoices},
	{name: "has_answers", kind: models.FieldTypedChoice, widget: models.WidgetRadio, labelKey: "label.has_answers", emptyValue: int(models.TernaryOff), source: sourceStatic, static: models.TernaryChoices},
	{name: "has_helpful", kind: models.FieldTypedChoice, widget: models.WidgetRadio, labelKey: "label.has_helpful", emptyValue: int(models.TernaryOff), source: sourceStatic, static: models.TernaryChoices},
	{name: "num_voted", kind: models.FieldTypedChoice, widget: models.WidgetSelect, labelKey: "label.num_voted", emptyValue: int(models.NumberNone), source: sourceStatic, static: models.NumberChoices},
	{name: "num_votes", kind: models.FieldInteger, widget: models.WidgetText, emptyValue: 0},
	{name: "q_tags", kind: models.FieldText, widget: models.WidgetText, labelKey: "label.q_tags", emptyValue: "", placeholderKey: "placeholder.tags"},
}
