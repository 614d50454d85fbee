package dto

// SearchFormQuery is the raw search form submission bound from the query string.
// Every field stays a string so coercion errors can be reported per field.
type SearchFormQuery struct {
	Q string `form:"q"`
	W string `form:"w"`
	A string `form:"a"`

	Topics          []string `form:"topics"`
	Language        string   `form:"language"`
	Category        []string `form:"category"`
	Product         []string `form:"product"`
	IncludeArchived string   `form:"include_archived"`
	SortbyDocuments string   `form:"sortby_documents"`

	Created     string `form:"created"`
	CreatedDate string `form:"created_date"`
	Updated     string `form:"updated"`
	UpdatedDate string `form:"updated_date"`

	Author     string   `form:"author"`
	Sortby     string   `form:"sortby"`
	ThreadType []string `form:"thread_type"`
	Forum      []string `form:"forum"`

	AskedBy         string `form:"asked_by"`
	AnsweredBy      string `form:"answered_by"`
	SortbyQuestions string `form:"sortby_questions"`
	IsLocked        string `form:"is_locked"`
	IsSolved        string `form:"is_solved"`
	HasAnswers      string `form:"has_answers"`
	HasHelpful      string `form:"has_helpful"`
	NumVoted        string `form:"num_voted"`
	NumVotes        string `form:"num_votes"`
	QTags           string `form:"q_tags"`
}

// SearchCriteria is the cleaned, typed form of a search submission.
// A nil Created/Updated means the date filter is off.
type SearchCriteria struct {
	Q string `json:"q"`
	W int    `json:"w"`
	A *int   `json:"a"`

	Topics          []string `json:"topics"`
	Language        string   `json:"language"`
	Category        []int    `json:"category"`
	Product         []string `json:"product"`
	IncludeArchived bool     `json:"include_archived"`
	SortbyDocuments string   `json:"sortby_documents"`

	Created     *int   `json:"created"`
	CreatedDate *int64 `json:"created_date"`
	Updated     *int   `json:"updated"`
	UpdatedDate *int64 `json:"updated_date"`

	Author     string `json:"author"`
	Sortby     int    `json:"sortby"`
	ThreadType []int  `json:"thread_type"`
	Forum      []int  `json:"forum"`

	AskedBy         string `json:"asked_by"`
	AnsweredBy      string `json:"answered_by"`
	SortbyQuestions int    `json:"sortby_questions"`
	IsLocked        int    `json:"is_locked"`
	IsSolved        int    `json:"is_solved"`
	HasAnswers      int    `json:"has_answers"`
	HasHelpful      int    `json:"has_helpful"`
	NumVoted        int    `json:"num_voted"`
	NumVotes        int    `json:"num_votes"`
	QTags           string `json:"q_tags"`
}

// FieldErrors maps field names to translated validation messages.
type FieldErrors map[string][]string

// Add appends a message for the field.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether the field already failed validation.
func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// SearchFormSchema describes the search form so clients can render it.
type SearchFormSchema struct {
	Locale string      `json:"locale"`
	Fields []FormField `json:"fields"`
}

// FormField describes a single form field.
type FormField struct {
	Name       string            `json:"name"`
	Kind       string            `json:"kind"`
	Widget     string            `json:"widget"`
	Label      string            `json:"label,omitempty"`
	Required   bool              `json:"required"`
	Multiple   bool              `json:"multiple,omitempty"`
	EmptyValue interface{}       `json:"empty_value,omitempty"`
	Attrs      map[string]string `json:"attrs,omitempty"`
	Choices    []ChoiceOption    `json:"choices,omitempty"`
}

// ChoiceOption is a value/label pair offered by a choice field.
type ChoiceOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
