package survey

import (
	"errors"
	"testing"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int
		pageSize int
		want     int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{9, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{52, 10, 6},
		{52, 52, 1},
		{52, 1, 52},
		{3, 5, 1},
		{6, 3, 2},
		{7, 3, 3},
	}

	for _, tt := range tests {
		got := TotalPages(tt.count, tt.pageSize)
		if got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.pageSize, got, tt.want)
		}
	}
}

func TestTotalPages_DegenerateInputs(t *testing.T) {
	if got := TotalPages(10, 0); got != 0 {
		t.Errorf("TotalPages(10, 0) = %d, want 0", got)
	}
	if got := TotalPages(-1, 10); got != 0 {
		t.Errorf("TotalPages(-1, 10) = %d, want 0", got)
	}
}

func TestPageBounds_ConcreteScenario(t *testing.T) {
	// 52 questions at 10 per page: five full pages and a final page of 2.
	wantBounds := [][2]int{{0, 10}, {10, 20}, {20, 30}, {30, 40}, {40, 50}, {50, 52}}

	for page, want := range wantBounds {
		start, end, err := PageBounds(page, 52, 10)
		if err != nil {
			t.Fatalf("PageBounds(%d, 52, 10) error: %v", page, err)
		}
		if start != want[0] || end != want[1] {
			t.Errorf("PageBounds(%d, 52, 10) = [%d, %d), want [%d, %d)", page, start, end, want[0], want[1])
		}
	}
}

// Page slices must cover [0, count) exactly: contiguous, no overlap, no gap.
func TestPageBounds_PartitionsQuestionRange(t *testing.T) {
	for count := 0; count <= 40; count++ {
		for pageSize := 1; pageSize <= 7; pageSize++ {
			total := TotalPages(count, pageSize)
			next := 0
			for page := 0; page < total; page++ {
				start, end, err := PageBounds(page, count, pageSize)
				if err != nil {
					t.Fatalf("PageBounds(%d, %d, %d) error: %v", page, count, pageSize, err)
				}
				if start != next {
					t.Fatalf("page %d of (count=%d, pageSize=%d) starts at %d, want %d", page, count, pageSize, start, next)
				}
				if end <= start {
					t.Fatalf("page %d of (count=%d, pageSize=%d) is empty: [%d, %d)", page, count, pageSize, start, end)
				}
				if page < total-1 && end-start != pageSize {
					t.Fatalf("non-final page %d of (count=%d, pageSize=%d) holds %d, want %d", page, count, pageSize, end-start, pageSize)
				}
				next = end
			}
			if next != count {
				t.Fatalf("pages of (count=%d, pageSize=%d) cover [0, %d), want [0, %d)", count, pageSize, next, count)
			}
		}
	}
}

func TestPageBounds_OutOfRange(t *testing.T) {
	tests := []struct {
		page     int
		count    int
		pageSize int
	}{
		{-1, 52, 10},
		{6, 52, 10},
		{0, 0, 10},
		{100, 52, 10},
	}

	for _, tt := range tests {
		_, _, err := PageBounds(tt.page, tt.count, tt.pageSize)
		if err == nil {
			t.Errorf("PageBounds(%d, %d, %d) expected error", tt.page, tt.count, tt.pageSize)
			continue
		}
		var oor *ErrPageOutOfRange
		if !errors.As(err, &oor) {
			t.Errorf("PageBounds(%d, %d, %d) error = %v, want ErrPageOutOfRange", tt.page, tt.count, tt.pageSize, err)
		} else if oor.Page != tt.page {
			t.Errorf("ErrPageOutOfRange.Page = %d, want %d", oor.Page, tt.page)
		}
	}
}
