package survey

// Answer is the tri-state answer slot for one question.
type Answer int

const (
	Unanswered Answer = iota
	True
	False
)

// String returns the lowercase name of the answer state.
func (a Answer) String() string {
	switch a {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unanswered"
	}
}

// Sheet holds the answer state for every question in a set. Slots start
// Unanswered and are keyed by question id, so the set's ids may be sparse.
// The sheet never grows or shrinks after creation; recording over an
// existing answer replaces it.
type Sheet struct {
	set     *Set
	answers map[int]Answer
}

// NewSheet creates a fully unanswered sheet for the given set.
func NewSheet(set *Set) *Sheet {
	return &Sheet{
		set:     set,
		answers: make(map[int]Answer, set.Len()),
	}
}

// Record stores an answer for the question with the given id, replacing any
// prior value. Only True and False are recordable.
func (s *Sheet) Record(id int, value Answer) error {
	if value != True && value != False {
		return ErrInvalidAnswer
	}
	if !s.set.Contains(id) {
		return &ErrUnknownQuestion{ID: id}
	}
	s.answers[id] = value
	return nil
}

// Answered reports whether the question with the given id has an answer.
func (s *Sheet) Answered(id int) bool {
	_, ok := s.answers[id]
	return ok
}

// Value returns the recorded answer for the given id, or Unanswered when
// nothing has been recorded (including for ids outside the set).
func (s *Sheet) Value(id int) Answer {
	return s.answers[id]
}

// PageComplete reports whether every question in the slice is answered.
// An empty slice is vacuously complete.
func (s *Sheet) PageComplete(questions []Question) bool {
	for _, q := range questions {
		if !s.Answered(q.ID) {
			return false
		}
	}
	return true
}

// AnsweredCount returns how many questions have an answer.
func (s *Sheet) AnsweredCount() int {
	return len(s.answers)
}

// Progress returns the answered fraction over the whole set, in [0, 1].
// A set with no questions reports 0.
func (s *Sheet) Progress() float64 {
	if s.set.Len() == 0 {
		return 0
	}
	return float64(len(s.answers)) / float64(s.set.Len())
}

// Snapshot returns the answer of every question in presentation order.
func (s *Sheet) Snapshot() []Answer {
	out := make([]Answer, 0, s.set.Len())
	for _, q := range s.set.Questions() {
		out = append(out, s.answers[q.ID])
	}
	return out
}
