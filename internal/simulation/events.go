package simulation

// Event is one kind of action the simulator can take in a step.
type Event int

const (
	EventAddBook Event = iota
	EventRemoveBook
	EventSearchByAuthor
	EventSearchByGenre
	EventSearchByYear
	EventSearchByISBN
	EventSearchMissing
)

// Events lists every event in the order the random choice indexes them.
var Events = []Event{
	EventAddBook,
	EventRemoveBook,
	EventSearchByAuthor,
	EventSearchByGenre,
	EventSearchByYear,
	EventSearchByISBN,
	EventSearchMissing,
}

func (e Event) String() string {
	switch e {
	case EventAddBook:
		return "add_book"
	case EventRemoveBook:
		return "remove_book"
	case EventSearchByAuthor:
		return "search_by_author"
	case EventSearchByGenre:
		return "search_by_genre"
	case EventSearchByYear:
		return "search_by_year"
	case EventSearchByISBN:
		return "search_by_isbn"
	case EventSearchMissing:
		return "search_missing"
	default:
		return "unknown"
	}
}

// Outcome is how a step ended.
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeEmpty     Outcome = "empty"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeNotFound  Outcome = "not_found"
	OutcomeSkipped   Outcome = "skipped"
)

// StepResult records what happened in one step.
type StepResult struct {
	Step    int
	Event   Event
	Outcome Outcome
	Found   int
	Detail  string
}
