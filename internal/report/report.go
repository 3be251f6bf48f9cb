// Package report turns a completed survey session into a record suitable
// for handing off: a JSON document carrying the respondent, every answer
// in presentation order, and session timestamps.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/intake/internal/survey"
)

// AnswerEntry is one question's outcome in a completed record.
type AnswerEntry struct {
	QuestionID int    `json:"question_id"`
	Text       string `json:"text"`
	Answer     string `json:"answer"`
}

// Respondent is the identifying information captured at the end of a run.
type Respondent struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	School string `json:"school"`
	Grade  string `json:"grade"`
}

// Record is a completed survey session.
type Record struct {
	SessionID   string        `json:"session_id"`
	Survey      string        `json:"survey"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	Respondent  Respondent    `json:"respondent"`
	Answers     []AnswerEntry `json:"answers"`
}

// Build assembles a record from a finished flow result. Answers pair each
// question with its value in presentation order; the result is expected to
// come from a submitted flow, so every value is True or False.
func Build(title string, set *survey.Set, result survey.Result, startedAt, completedAt time.Time) Record {
	questions := set.Questions()
	answers := make([]AnswerEntry, 0, len(questions))
	for i, q := range questions {
		value := survey.Unanswered
		if i < len(result.Answers) {
			value = result.Answers[i]
		}
		answers = append(answers, AnswerEntry{
			QuestionID: q.ID,
			Text:       q.Text,
			Answer:     value.String(),
		})
	}

	return Record{
		SessionID:   uuid.New().String(),
		Survey:      title,
		StartedAt:   startedAt.UTC(),
		CompletedAt: completedAt.UTC(),
		Respondent: Respondent{
			Name:   result.Respondent.Name,
			Age:    result.Respondent.Age,
			School: result.Respondent.School,
			Grade:  result.Respondent.Grade,
		},
		Answers: answers,
	}
}

// WriteJSON writes the record as indented JSON.
func WriteJSON(w io.Writer, rec Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// SaveJSON writes the record to a file, creating or truncating it.
func SaveJSON(path string, rec Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create record file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, rec); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close record file: %w", err)
	}
	return nil
}
