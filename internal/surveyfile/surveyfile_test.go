package surveyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "not json",
			data:    `{"title": "Broken"`,
			wantErr: "not valid JSON",
		},
		{
			name:    "missing title",
			data:    `{"questions": []}`,
			wantErr: "does not match schema",
		},
		{
			name:    "empty title",
			data:    `{"title": "", "questions": []}`,
			wantErr: "does not match schema",
		},
		{
			name:    "missing questions",
			data:    `{"title": "Morning Survey"}`,
			wantErr: "does not match schema",
		},
		{
			name:    "question without text",
			data:    `{"title": "Morning Survey", "questions": [{"id": 1}]}`,
			wantErr: "does not match schema",
		},
		{
			name:    "question id zero",
			data:    `{"title": "Morning Survey", "questions": [{"id": 0, "text": "Ready?"}]}`,
			wantErr: "does not match schema",
		},
		{
			name:    "fractional question id",
			data:    `{"title": "Morning Survey", "questions": [{"id": 1.5, "text": "Ready?"}]}`,
			wantErr: "does not match schema",
		},
		{
			name:    "page size zero",
			data:    `{"title": "Morning Survey", "page_size": 0, "questions": []}`,
			wantErr: "does not match schema",
		},
		{
			name:    "unknown top-level field",
			data:    `{"title": "Morning Survey", "questions": [], "color": "red"}`,
			wantErr: "does not match schema",
		},
		{
			name:    "unknown question field",
			data:    `{"title": "Morning Survey", "questions": [{"id": 1, "text": "Ready?", "weight": 2}]}`,
			wantErr: "does not match schema",
		},
		{
			name:    "duplicate question ids",
			data:    `{"title": "Morning Survey", "questions": [{"id": 1, "text": "Ready?"}, {"id": 1, "text": "Again?"}]}`,
			wantErr: "invalid questions",
		},
		{
			name:    "format not a version",
			data:    `{"format": "one", "title": "Morning Survey", "questions": []}`,
			wantErr: "not a valid version",
		},
		{
			name:    "format from the future",
			data:    `{"format": "v2.0.0", "title": "Morning Survey", "questions": []}`,
			wantErr: "not supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, def)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseValidDocument(t *testing.T) {
	data := `{
		"format": "v1.2.0",
		"title": "After-School Survey",
		"page_size": 4,
		"questions": [
			{"id": 10, "text": "Did you finish your homework?"},
			{"id": 20, "text": "Did you play outside?"}
		]
	}`

	def, err := Parse([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "After-School Survey", def.Title)
	assert.Equal(t, 4, def.PageSize)
	require.Len(t, def.Questions, 2)
	assert.Equal(t, QuestionDef{ID: 10, Text: "Did you finish your homework?"}, def.Questions[0])
	assert.Equal(t, QuestionDef{ID: 20, Text: "Did you play outside?"}, def.Questions[1])

	set, err := def.Set()
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestParseAcceptsOmittedFormat(t *testing.T) {
	def, err := Parse([]byte(`{"title": "Quick Poll", "questions": []}`))
	require.NoError(t, err)
	assert.Empty(t, def.Format)
}

func TestParseAcceptsEmptyQuestionList(t *testing.T) {
	def, err := Parse([]byte(`{"title": "Consent Only", "questions": []}`))
	require.NoError(t, err)

	set, err := def.Set()
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestLoad(t *testing.T) {
	t.Run("reads a definition file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "survey.json")
		data := `{"title": "Library Survey", "questions": [{"id": 1, "text": "Did you borrow a book this month?"}]}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		def, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Library Survey", def.Title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read survey definition")
	})

	t.Run("names the offending file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"questions": []}`), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.json")
	})
}

func TestDefault(t *testing.T) {
	def, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Student Wellbeing Check-In", def.Title)
	assert.Len(t, def.Questions, 12)
	assert.Equal(t, 6, def.EffectivePageSize())

	set, err := def.Set()
	require.NoError(t, err)
	assert.Equal(t, 12, set.Len())
}

func TestEffectivePageSize(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want int
	}{
		{name: "explicit page size", def: Definition{PageSize: 4}, want: 4},
		{name: "falls back to default", def: Definition{}, want: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.def.EffectivePageSize())
		})
	}
}
