package booking

import (
	"encoding/json"
	"testing"
)

func TestDayOfWeekUnmarshal(t *testing.T) {
	var d DayOfWeek
	if err := json.Unmarshal([]byte(`"WEDNESDAY"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d != Wednesday {
		t.Errorf("got %q, want %q", d, Wednesday)
	}
}

func TestDayOfWeekRejectsUnknown(t *testing.T) {
	for _, raw := range []string{`"FUNDAY"`, `"monday"`, `""`, `7`} {
		var d DayOfWeek
		if err := json.Unmarshal([]byte(raw), &d); err == nil {
			t.Errorf("unmarshal %s: expected error, got %q", raw, d)
		}
	}
}
