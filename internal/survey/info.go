package survey

import "strings"

// InfoField identifies one required field of the respondent-info form.
type InfoField int

const (
	FieldName InfoField = iota
	FieldAge
	FieldSchool
	FieldGrade
)

// String returns the lowercase field name.
func (f InfoField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldAge:
		return "age"
	case FieldSchool:
		return "school"
	case FieldGrade:
		return "grade"
	default:
		return "unknown"
	}
}

// AllInfoFields returns the form's fields in display order.
func AllInfoFields() []InfoField {
	return []InfoField{FieldName, FieldAge, FieldSchool, FieldGrade}
}

// Respondent is the identifying information collected on the info step.
// All four fields are required before submission; a whitespace-only value
// does not count as filled.
type Respondent struct {
	Name   string
	Age    string
	School string
	Grade  string
}

func (r *Respondent) set(f InfoField, value string) {
	switch f {
	case FieldName:
		r.Name = value
	case FieldAge:
		r.Age = value
	case FieldSchool:
		r.School = value
	case FieldGrade:
		r.Grade = value
	}
}

func (r Respondent) get(f InfoField) string {
	switch f {
	case FieldName:
		return r.Name
	case FieldAge:
		return r.Age
	case FieldSchool:
		return r.School
	case FieldGrade:
		return r.Grade
	default:
		return ""
	}
}

func (r Respondent) filled(f InfoField) bool {
	return strings.TrimSpace(r.get(f)) != ""
}

// trimmed returns a copy with surrounding whitespace removed from every
// field, for the final result snapshot.
func (r Respondent) trimmed() Respondent {
	return Respondent{
		Name:   strings.TrimSpace(r.Name),
		Age:    strings.TrimSpace(r.Age),
		School: strings.TrimSpace(r.School),
		Grade:  strings.TrimSpace(r.Grade),
	}
}
