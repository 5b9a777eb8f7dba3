package sources

import "testing"

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"PT45S", 45, false},
		{"PT1M", 60, false},
		{"PT10M30S", 630, false},
		{"PT1H", 3600, false},
		{"PT1H2M3S", 3723, false},
		{"P1DT2H", 93600, false},
		{"P0D", 0, false},
		{"PT0S", 0, false},
		{"", 0, true},
		{"10:30", 0, true},
		{"PTXS", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseISODuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseISODuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseISODuration(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

// A sub-minute duration must never parse to a value that passes a >=60s
// long-form threshold, whatever the other components look like.
func TestParseISODuration_SubMinuteStaysSubMinute(t *testing.T) {
	for _, in := range []string{"PT1S", "PT30S", "PT59S"} {
		got, err := ParseISODuration(in)
		if err != nil {
			t.Fatalf("ParseISODuration(%q) error: %v", in, err)
		}
		if got >= 60 {
			t.Errorf("ParseISODuration(%q) = %d, classified long-form", in, got)
		}
	}
}
