package models

// FieldKind describes how a form field binds and coerces its input.
type FieldKind string

const (
	FieldText                FieldKind = "text"
	FieldInteger             FieldKind = "integer"
	FieldBoolean             FieldKind = "boolean"
	FieldChoice              FieldKind = "choice"
	FieldTypedChoice         FieldKind = "typed_choice"
	FieldMultipleChoice      FieldKind = "multiple_choice"
	FieldTypedMultipleChoice FieldKind = "typed_multiple_choice"
)

// Widget is the suggested input control for a field.
type Widget string

const (
	WidgetText             Widget = "text"
	WidgetHidden           Widget = "hidden"
	WidgetSelect           Widget = "select"
	WidgetSelectMultiple   Widget = "select_multiple"
	WidgetCheckbox         Widget = "checkbox"
	WidgetCheckboxMultiple Widget = "checkbox_multiple"
	WidgetRadio            Widget = "radio"
)

// NonFieldErrors is the error key used for form-level validation failures.
const NonFieldErrors = "__all__"
