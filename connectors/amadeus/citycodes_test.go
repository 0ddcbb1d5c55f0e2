package amadeus

import "testing"

func TestCityCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paris", "PAR"},
		{"new york", "NYC"},
		{"  London  ", "LON"},
		{"NYC", "NYC"},
		{"CDG", "CDG"},
		{"Maldives", "MLE"},
		{"Reykjavik", "REY"},
		{"Fo", "FO"},
	}
	for _, tt := range tests {
		if got := CityCode(tt.in); got != tt.want {
			t.Errorf("CityCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
