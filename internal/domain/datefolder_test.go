package domain

import "testing"

func TestIsDateFolderName(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   bool
	}{
		{"plain date", "2024-01-15", true},
		{"hyphen suffix", "2024-01-15-my-project", true},
		{"long hyphen suffix", "2024-01-15-trip-to-paris-2024", true},
		{"space suffix", "2023-03-03 Moggs in the dark", true},
		{"not a date", "some-folder", false},
		{"canonical subfolder", "insta360", false},
		{"camera dump", "Camera01", false},
		{"suffix without separator", "2024-01-15vacation", false},
		{"short year", "24-01-15", false},
		// The pattern checks shape only; calendar validity is the
		// organizer's concern when extracting filename dates.
		{"month 13 still matches the pattern", "2024-13-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDateFolderName(tt.folder); got != tt.want {
				t.Errorf("IsDateFolderName(%q) = %v, want %v", tt.folder, got, tt.want)
			}
		})
	}
}
