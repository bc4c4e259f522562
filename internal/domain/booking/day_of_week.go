package booking

import (
	"encoding/json"
	"fmt"
)

// ===============================
// Day of week
// ===============================

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// UnmarshalJSON rejects anything outside the seven cases, so a schedule
// row can never hold a free-form weekday string.
func (d *DayOfWeek) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	day := DayOfWeek(s)
	if !day.Valid() {
		return fmt.Errorf("invalid day_of_week: %q", s)
	}

	*d = day
	return nil
}
