package booking

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2030, 1, 15, 9, 0, 0, 0, time.UTC)
	at := func(m int) time.Time { return base.Add(time.Duration(m) * time.Minute) }

	// stored appointment: [base, base+30)
	s, e := at(0), at(30)

	tests := []struct {
		name   string
		cs, ce time.Time
		want   bool
	}{
		{"identical interval", at(0), at(30), true},
		{"straddles start", at(-15), at(15), true},
		{"straddles end", at(15), at(45), true},
		{"engulfs", at(-15), at(45), true},
		{"contained within", at(5), at(25), true},
		{"touches end", at(30), at(60), false},
		{"touches start", at(-30), at(0), false},
		{"disjoint after", at(60), at(90), false},
		{"disjoint before", at(-60), at(-30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(s, e, tt.cs, tt.ce); got != tt.want {
				t.Errorf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					s, e, tt.cs, tt.ce, got, tt.want)
			}
		})
	}
}
