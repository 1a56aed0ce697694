// Package stats derives descriptive statistics from the stored history.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/history"
)

// DigitCount is how often one digit appears across all stored numbers.
type DigitCount struct {
	Digit string          `json:"digit"`
	Count int             `json:"count"`
	Share decimal.Decimal `json:"share"` // percent of all digits, 2 dp
}

// DigitFrequency tallies every digit of every stored number. Results come
// back ordered by count descending, then digit ascending, so equal counts
// always print the same way.
func DigitFrequency(records []history.Record) []DigitCount {
	var counts [10]int
	total := 0
	for _, rec := range records {
		for i := 0; i < len(rec.Number); i++ {
			d := rec.Number[i]
			if d < '0' || d > '9' {
				continue
			}
			counts[d-'0']++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	hundred := decimal.NewFromInt(100)
	totalDec := decimal.NewFromInt(int64(total))
	out := make([]DigitCount, 0, 10)
	for digit, count := range counts {
		if count == 0 {
			continue
		}
		out = append(out, DigitCount{
			Digit: string(rune('0' + digit)),
			Count: count,
			Share: decimal.NewFromInt(int64(count)).Mul(hundred).Div(totalDec).Round(2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Digit < out[j].Digit
	})
	return out
}

// TopDigit returns the digit that appears most often, when any records
// exist.
func TopDigit(records []history.Record) (string, bool) {
	freq := DigitFrequency(records)
	if len(freq) == 0 {
		return "", false
	}
	return freq[0].Digit, true
}
