package schedule

import (
	"fmt"
	"time"
)

// Kind classifies a draw date by the holiday rule that placed it.
type Kind string

const (
	KindStandard    Kind = "standard"
	KindTeachersDay Kind = "teachers_day"
	KindLabourDay   Kind = "labour_day"
)

// Label returns the human-readable name used in reports.
func (k Kind) Label() string {
	switch k {
	case KindTeachersDay:
		return "Teacher's Day"
	case KindLabourDay:
		return "Labour Day"
	default:
		return "Standard"
	}
}

// Numbers historically associated with the two shifted draws. Closed
// lists, maintained by hand.
var (
	teachersDayBias = []string{"16", "17", "61", "95", "97"}
	labourDayBias   = []string{"01", "02", "05"}
)

// folkloreNumber shows up in local lore regardless of season.
const folkloreNumber = "96"

// Draw is a resolved upcoming draw: its date, the rule that placed it, and
// the bias numbers tied to it. Bias keeps insertion order with the first
// occurrence of a duplicate winning, so downstream tie-breaks are stable.
type Draw struct {
	Date time.Time
	Kind Kind
	Bias []string
}

// NextDraw resolves the draw that follows now. Draws fall on the 16th and
// the 1st of each month; a computed January 16 shifts to the 17th
// (Teacher's Day) and a computed May 1 shifts to the 2nd (Labour Day).
// Pure calendar arithmetic, no I/O.
func NextDraw(now time.Time) Draw {
	var target time.Time
	if now.Day() > 16 {
		target = time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	} else {
		target = time.Date(now.Year(), now.Month(), 16, 0, 0, 0, 0, time.UTC)
	}

	kind := KindStandard
	switch {
	case target.Month() == time.January && target.Day() == 16:
		target = target.AddDate(0, 0, 1)
		kind = KindTeachersDay
	case target.Month() == time.May && target.Day() == 1:
		target = target.AddDate(0, 0, 1)
		kind = KindLabourDay
	}

	return Draw{Date: target, Kind: kind, Bias: biasNumbers(target, kind)}
}

// biasNumbers builds the ordered bias list for a resolved target: holiday
// numbers first, then the two-digit year suffix, then the folklore constant.
func biasNumbers(target time.Time, kind Kind) []string {
	var numbers []string
	switch kind {
	case KindTeachersDay:
		numbers = append(numbers, teachersDayBias...)
	case KindLabourDay:
		numbers = append(numbers, labourDayBias...)
	}
	numbers = append(numbers, fmt.Sprintf("%02d", target.Year()%100), folkloreNumber)
	return dedupe(numbers)
}

// dedupe keeps the first occurrence of each number, preserving order.
func dedupe(numbers []string) []string {
	seen := make(map[string]struct{}, len(numbers))
	out := numbers[:0]
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
