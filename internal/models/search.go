package models

// Where selects which corpora a search runs against. Basic covers both the
// knowledge base and support questions.
type Where int

const (
	WhereWiki       Where = 1
	WhereSupport    Where = 2
	WhereBasic            = WhereWiki | WhereSupport
	WhereDiscussion Where = 4
)

// DateFilter is the comparison applied to created/updated dates.
type DateFilter int

const (
	DateNone   DateFilter = 0
	DateBefore DateFilter = 1
	DateAfter  DateFilter = 2
)

// Ternary filters a boolean attribute: off, must be true, must be false.
type Ternary int

const (
	TernaryOff Ternary = 0
	TernaryYes Ternary = 1
	TernaryNo  Ternary = -1
)

// NumberFilter compares a count (votes) against a bound.
type NumberFilter int

const (
	NumberNone NumberFilter = 0
	NumberMore NumberFilter = 1
	NumberLess NumberFilter = 2
)

const (
	SortForumsRelevance    = 0
	SortForumsLastPost     = 1
	SortForumsOriginalPost = 2
	SortForumsReplies      = 3

	SortQuestionsRelevance  = 0
	SortQuestionsLastAnswer = 1
	SortQuestionsCreated    = 2
	SortQuestionsAnswers    = 3
)

const (
	SortDocumentsRelevance = "relevance"
	SortDocumentsHelpful   = "helpful"
)

const (
	DiscussionSticky = 1
	DiscussionLocked = 2
)

// StaticChoice is a fixed choice whose label is a translation key.
// An empty LabelKey means the choice is never shown to users.
type StaticChoice struct {
	Value    string
	LabelKey string
}

var (
	WhereChoices = []StaticChoice{
		{Value: "2"},
		{Value: "1"},
		{Value: "3"},
		{Value: "4"},
	}

	DateChoices = []StaticChoice{
		{Value: "0", LabelKey: "choice.filter.none"},
		{Value: "1", LabelKey: "choice.date.before"},
		{Value: "2", LabelKey: "choice.date.after"},
	}

	TernaryChoices = []StaticChoice{
		{Value: "0", LabelKey: "choice.filter.none"},
		{Value: "1", LabelKey: "choice.ternary.yes"},
		{Value: "-1", LabelKey: "choice.ternary.no"},
	}

	NumberChoices = []StaticChoice{
		{Value: "0", LabelKey: "choice.filter.none"},
		{Value: "1", LabelKey: "choice.number.more"},
		{Value: "2", LabelKey: "choice.number.less"},
	}

	ForumSortChoices = []StaticChoice{
		{Value: "0", LabelKey: "choice.sort.relevance"},
		{Value: "1", LabelKey: "choice.sort.last_post"},
		{Value: "2", LabelKey: "choice.sort.original_post"},
		{Value: "3", LabelKey: "choice.sort.replies"},
	}

	QuestionSortChoices = []StaticChoice{
		{Value: "0", LabelKey: "choice.sort.relevance"},
		{Value: "1", LabelKey: "choice.sort.last_answer"},
		{Value: "2", LabelKey: "choice.sort.question_date"},
		{Value: "3", LabelKey: "choice.sort.answers"},
	}

	DocumentSortChoices = []StaticChoice{
		{Value: SortDocumentsRelevance, LabelKey: "choice.sort.relevance"},
		{Value: SortDocumentsHelpful, LabelKey: "choice.sort.helpful"},
	}

	DiscussionStatusChoices = []StaticChoice{
		{Value: "1", LabelKey: "choice.status.sticky"},
		{Value: "2", LabelKey: "choice.status.locked"},
	}

	// CategoryChoices are the knowledge-base article categories.
	CategoryChoices = []StaticChoice{
		{Value: "10", LabelKey: "choice.category.troubleshooting"},
		{Value: "20", LabelKey: "choice.category.how_to"},
		{Value: "30", LabelKey: "choice.category.how_to_contribute"},
		{Value: "40", LabelKey: "choice.category.administration"},
		{Value: "50", LabelKey: "choice.category.navigation"},
		{Value: "60", LabelKey: "choice.category.templates"},
	}
)
