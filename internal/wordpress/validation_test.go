package wordpress

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-5, 1},
		{1, 1},
		{7, 7},
	}

	for _, tt := range tests {
		if got := normalizePage(tt.in); got != tt.want {
			t.Errorf("normalizePage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePerPage(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 2},
		{-1, 2},
		{2, 2},
		{100, 100}, // no local upper bound
	}

	for _, tt := range tests {
		if got := normalizePerPage(tt.in); got != tt.want {
			t.Errorf("normalizePerPage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateCategories(t *testing.T) {
	if err := ValidateCategories(""); err == nil {
		t.Error("expected error for empty categories")
	}
	if err := ValidateCategories("5"); err != nil {
		t.Errorf("unexpected error for %q: %v", "5", err)
	}
	if err := ValidateCategories("1,2,3"); err != nil {
		t.Errorf("unexpected error for %q: %v", "1,2,3", err)
	}
}
