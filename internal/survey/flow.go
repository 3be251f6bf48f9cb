package survey

// Result is the output of a completed session: every question's final
// answer in presentation order plus the respondent info, handed to the
// completion callback on a successful Submit. The flow does not retain it.
type Result struct {
	Answers    []Answer
	Respondent Respondent
}

// Flow is the survey session state machine. Its position is a step in
// [0, TotalPages()]: values below TotalPages() are question pages, the
// value TotalPages() is the terminal info step. Forward navigation is
// gated on the current page being fully answered; backward navigation is
// unconditional. A survey with no questions starts directly on the info
// step.
//
// Transition attempts report acceptance as a bool and never error; the
// same guards are exposed as predicates (PageComplete, InfoComplete) so a
// host can disable controls instead of reacting to rejections. Guards are
// evaluated fresh on every call.
type Flow struct {
	set      *Set
	sheet    *Sheet
	pageSize int
	step     int
	info     Respondent

	onComplete func(Result)
	submitted  bool
}

// NewFlow starts a session over the given set. The callback may be nil;
// when present it is invoked exactly once, by the first successful Submit.
func NewFlow(set *Set, pageSize int, onComplete func(Result)) (*Flow, error) {
	if set == nil {
		return nil, errNilSet
	}
	if pageSize <= 0 {
		return nil, &ErrInvalidPageSize{PageSize: pageSize}
	}
	return &Flow{
		set:        set,
		sheet:      NewSheet(set),
		pageSize:   pageSize,
		onComplete: onComplete,
	}, nil
}

// QuestionCount returns the number of questions in the session's set.
func (f *Flow) QuestionCount() int {
	return f.set.Len()
}

// TotalPages returns the number of question pages.
func (f *Flow) TotalPages() int {
	return TotalPages(f.set.Len(), f.pageSize)
}

// PageSize returns the fixed page size.
func (f *Flow) PageSize() int {
	return f.pageSize
}

// Page returns the current step index. It is a page index while a question
// page is showing and equals TotalPages() on the info step.
func (f *Flow) Page() int {
	return f.step
}

// OnInfoStep reports whether the session is on the terminal info step.
func (f *Flow) OnInfoStep() bool {
	return f.step == f.TotalPages()
}

// PageQuestions returns the questions on the current page, empty on the
// info step. The slice is shared and must be treated as read-only.
func (f *Flow) PageQuestions() []Question {
	if f.OnInfoStep() {
		return nil
	}
	start, end, err := PageBounds(f.step, f.set.Len(), f.pageSize)
	if err != nil {
		return nil
	}
	return f.set.Questions()[start:end]
}

// PageComplete reports whether every question on the current page is
// answered. Vacuously true on the info step.
func (f *Flow) PageComplete() bool {
	return f.sheet.PageComplete(f.PageQuestions())
}

// Progress returns the answered fraction over all questions, in [0, 1].
func (f *Flow) Progress() float64 {
	return f.sheet.Progress()
}

// AnsweredCount returns how many questions have an answer.
func (f *Flow) AnsweredCount() int {
	return f.sheet.AnsweredCount()
}

// CanGoPrev reports whether Prev would move.
func (f *Flow) CanGoPrev() bool {
	return f.step > 0
}

// SetAnswer records an answer for the question with the given id, replacing
// any prior value. Answers may be revised from any step.
func (f *Flow) SetAnswer(id int, value Answer) error {
	return f.sheet.Record(id, value)
}

// AnswerValue returns the recorded answer for the given id, Unanswered when
// none exists.
func (f *Flow) AnswerValue(id int) Answer {
	return f.sheet.Value(id)
}

// IsAnswered reports whether the question with the given id is answered.
func (f *Flow) IsAnswered(id int) bool {
	return f.sheet.Answered(id)
}

// Next advances one step: to the following page, or from the last page to
// the info step. It is rejected while the current page is incomplete and is
// a no-op on the info step.
func (f *Flow) Next() bool {
	if f.OnInfoStep() {
		return false
	}
	if !f.PageComplete() {
		return false
	}
	f.step++
	return true
}

// Prev moves one step back, unconditionally: to the previous page, or from
// the info step to the last question page. No-op at page 0 (and on the
// info step of a zero-question survey).
func (f *Flow) Prev() bool {
	if f.step == 0 {
		return false
	}
	f.step--
	return true
}

// SetInfo stores an info-form field value. No validation happens here;
// required-field checks run at Submit.
func (f *Flow) SetInfo(field InfoField, value string) {
	f.info.set(field, value)
}

// InfoValue returns the currently stored value for a field, as entered.
func (f *Flow) InfoValue(field InfoField) string {
	return f.info.get(field)
}

// InfoComplete reports whether every required info field is filled
// (non-empty after trimming).
func (f *Flow) InfoComplete() bool {
	return len(f.MissingInfo()) == 0
}

// MissingInfo returns the unfilled info fields in display order.
func (f *Flow) MissingInfo() []InfoField {
	var missing []InfoField
	for _, field := range AllInfoFields() {
		if !f.info.filled(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// Submitted reports whether a Submit has already succeeded.
func (f *Flow) Submitted() bool {
	return f.submitted
}

// Submit finalizes the session. It is accepted only on the info step, only
// while all info fields are filled, and only once; on acceptance the
// completion callback receives the result snapshot (answers in
// presentation order, respondent fields trimmed).
func (f *Flow) Submit() bool {
	if !f.OnInfoStep() || f.submitted {
		return false
	}
	if !f.InfoComplete() {
		return false
	}
	f.submitted = true
	if f.onComplete != nil {
		f.onComplete(Result{
			Answers:    f.sheet.Snapshot(),
			Respondent: f.info.trimmed(),
		})
	}
	return true
}
