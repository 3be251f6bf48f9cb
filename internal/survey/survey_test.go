package survey

import "testing"

// questions builds a sequential set of n items with ids 1..n.
func questions(n int) []Question {
	qs := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, Question{ID: i, Text: "statement"})
	}
	return qs
}

func mustSet(t *testing.T, qs []Question) *Set {
	t.Helper()
	set, err := NewSet(qs)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return set
}

func TestNewSet_RejectsNonPositiveID(t *testing.T) {
	for _, id := range []int{0, -1} {
		_, err := NewSet([]Question{{ID: id, Text: "x"}})
		if err == nil {
			t.Errorf("NewSet with id %d expected error", id)
		}
	}
}

func TestNewSet_RejectsDuplicateID(t *testing.T) {
	_, err := NewSet([]Question{
		{ID: 3, Text: "a"},
		{ID: 7, Text: "b"},
		{ID: 3, Text: "c"},
	})
	if err == nil {
		t.Fatal("NewSet with duplicate id expected error")
	}
}

// Presentation order is the supplied order, not id order: ids are identity
// only and may be sparse.
func TestNewSet_KeepsSuppliedOrder(t *testing.T) {
	qs := []Question{
		{ID: 40, Text: "first"},
		{ID: 2, Text: "second"},
		{ID: 17, Text: "third"},
	}
	set := mustSet(t, qs)

	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}
	for i, q := range set.Questions() {
		if q.ID != qs[i].ID {
			t.Errorf("Questions()[%d].ID = %d, want %d", i, q.ID, qs[i].ID)
		}
	}
	for _, id := range []int{40, 2, 17} {
		if !set.Contains(id) {
			t.Errorf("Contains(%d) = false, want true", id)
		}
	}
	if set.Contains(1) {
		t.Error("Contains(1) = true, want false")
	}
}

func TestNewSet_CopiesInput(t *testing.T) {
	qs := []Question{{ID: 1, Text: "original"}}
	set := mustSet(t, qs)

	qs[0].Text = "mutated"

	if set.Questions()[0].Text != "original" {
		t.Error("Set shares backing array with caller input")
	}
}
