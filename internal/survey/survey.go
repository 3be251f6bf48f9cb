// Package survey holds the state of one in-progress survey session: a
// fixed question set chunked into fixed-size pages, a per-question answer
// sheet, and the flow state machine that gates forward navigation on page
// completeness and terminates in the respondent-info step.
//
// The package is presentation-free. Hosts render its projections and feed
// user events back in as operations; every operation is a synchronous state
// transition and the package takes no locks, so a host with concurrent
// inputs must serialize calls (the Bubble Tea update loop already does).
package survey

import "fmt"

// Question is a single survey item: a statement the respondent marks true
// or false. Text is opaque to the flow. ID identifies the question for
// answer recording; presentation order is the order questions were supplied
// in, so ids do not need to be dense or start at 1.
type Question struct {
	ID   int
	Text string
}

// Set is an ordered, immutable question sequence with O(1) id lookup.
type Set struct {
	questions []Question
	index     map[int]int // id -> position in questions
}

// NewSet builds a Set from questions in presentation order. Ids must be
// positive and unique.
func NewSet(questions []Question) (*Set, error) {
	qs := make([]Question, len(questions))
	copy(qs, questions)

	index := make(map[int]int, len(qs))
	for i, q := range qs {
		if q.ID <= 0 {
			return nil, fmt.Errorf("question %d: id must be positive, got %d", i, q.ID)
		}
		if prev, dup := index[q.ID]; dup {
			return nil, fmt.Errorf("question %d: duplicate id %d (already used by question %d)", i, q.ID, prev)
		}
		index[q.ID] = i
	}

	return &Set{questions: qs, index: index}, nil
}

// Len returns the number of questions.
func (s *Set) Len() int {
	return len(s.questions)
}

// Questions returns the full question sequence in presentation order.
// The returned slice is shared and must be treated as read-only.
func (s *Set) Questions() []Question {
	return s.questions
}

// Contains reports whether a question with the given id exists.
func (s *Set) Contains(id int) bool {
	_, ok := s.index[id]
	return ok
}
