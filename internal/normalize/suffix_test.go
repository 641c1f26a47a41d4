package normalize

import "testing"

func TestStripSuffix(t *testing.T) {
	tests := []struct {
		token         string
		wantStem      string
		wantOrigin    bool
		wantDest      bool
	}{
		{"kayseriden", "kayseri", true, false},
		{"istanbula", "istanbul", false, true},
		{"ankaraya", "ankara", false, true},
		{"izmirden", "izmir", true, false},
		{"mersin", "mersin", false, false},
	}
	for _, tt := range tests {
		got := StripSuffix(tt.token)
		if got.Stem != tt.wantStem || got.IsOrigin != tt.wantOrigin || got.IsDestination != tt.wantDest {
			t.Errorf("StripSuffix(%q) = %+v, want stem=%q origin=%v dest=%v",
				tt.token, got, tt.wantStem, tt.wantOrigin, tt.wantDest)
		}
	}
}

func TestStripSuffixShortestFirst_RecoversHatay(t *testing.T) {
	// Longest-first "ya" strip of "hataya" yields invalid stem "hata".
	// The shortest-first retry must offer "hatay" as a candidate.
	candidates := StripSuffixShortestFirst("hataya")
	found := false
	for _, c := range candidates {
		if c.Stem == "hatay" && c.IsDestination {
			found = true
		}
	}
	if !found {
		t.Errorf("StripSuffixShortestFirst(hataya) = %+v, want a candidate with stem=hatay", candidates)
	}
}
