// Package predict scores candidate numbers for an upcoming draw and
// orchestrates the sync-resolve-rank cycle behind every surface.
package predict

import (
	"fmt"
	"sort"
	"time"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/config"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/history"
)

// Evidence tags, in the order the factors run.
const (
	TagCultural = "Cultural Pattern"
	TagSeasonal = "Seasonal Match"
	TagRecent   = "Recent Flow"
	TagRepeat   = "Repeat Risk"
)

// maxPicks caps the shortlist length.
const maxPicks = 5

// weekdayTag names the weekday factor for a target, e.g. "Weekday (Friday)".
func weekdayTag(day time.Weekday) string {
	return fmt.Sprintf("Weekday (%s)", day)
}

// Weights parameterizes the scoring factors. A zero weight switches that
// factor off entirely; every tuning of the engine shares this shape.
type Weights struct {
	Culture       int
	Seasonal      int
	Recent        int
	Weekday       int
	Penalty       int // expected <= 0
	RecentWindow  int
	SeasonalMatch config.SeasonalMatch
}

// DefaultWeights is the tuning the engine ships with.
func DefaultWeights() Weights {
	return Weights{
		Culture:       5,
		Seasonal:      3,
		Recent:        1,
		Weekday:       0,
		Penalty:       -5,
		RecentWindow:  5,
		SeasonalMatch: config.MatchMonth,
	}
}

// WeightsFromConfig lifts the engine section of a config file into Weights.
func WeightsFromConfig(cfg config.EngineConfig) Weights {
	w := Weights{
		Culture:       cfg.WeightCulture,
		Seasonal:      cfg.WeightSeasonal,
		Recent:        cfg.WeightRecent,
		Weekday:       cfg.WeightWeekday,
		Penalty:       cfg.WeightPenalty,
		RecentWindow:  cfg.RecentWindow,
		SeasonalMatch: cfg.SeasonalMatch,
	}
	if w.RecentWindow <= 0 {
		w.RecentWindow = 5
	}
	if w.SeasonalMatch == "" {
		w.SeasonalMatch = config.MatchMonth
	}
	return w
}

// Pick is one ranked candidate: the number, its accumulated score, and the
// evidence tags from every factor that touched it, in factor order.
type Pick struct {
	Number   string   `json:"number"`
	Score    int      `json:"score"`
	Evidence []string `json:"evidence"`
}

// Rank scores every candidate number and returns at most five picks,
// highest score first. Ties keep the order in which numbers first received
// a score, so identical inputs always rank identically.
func Rank(records []history.Record, target time.Time, bias []string, w Weights) []Pick {
	t := newTally()

	// Cultural: every bias number.
	if w.Culture != 0 {
		for _, number := range bias {
			t.add(number, w.Culture, TagCultural)
		}
	}

	// Seasonal: stored draws from the target month, uncapped.
	if w.Seasonal != 0 {
		for _, rec := range records {
			if seasonalMatch(rec, target, w.SeasonalMatch) {
				t.add(rec.Number, w.Seasonal, TagSeasonal)
			}
		}
	}

	// Weekday: draws sharing the target's weekday.
	if w.Weekday != 0 {
		tag := weekdayTag(target.Weekday())
		for _, rec := range records {
			if rec.Date.Weekday() == target.Weekday() {
				t.add(rec.Number, w.Weekday, tag)
			}
		}
	}

	// Recency: position in the sequence stands in for recency.
	if w.Recent != 0 {
		window := min(w.RecentWindow, len(records))
		for i := 0; i < window; i++ {
			t.add(records[i].Number, w.Recent, TagRecent)
		}
	}

	// Anti-repeat: dampen the single most recent number, once, and only
	// when some factor already scored it.
	if w.Penalty != 0 && len(records) > 0 {
		latest := records[0].Number
		if t.touched(latest) {
			t.add(latest, w.Penalty, TagRepeat)
		}
	}

	return t.top(maxPicks)
}

func seasonalMatch(rec history.Record, target time.Time, mode config.SeasonalMatch) bool {
	if rec.Date.Month() != target.Month() {
		return false
	}
	if mode == config.MatchMonthDay && rec.Date.Day() != target.Day() {
		return false
	}
	return true
}

// tally accumulates score and evidence per number, remembering the order
// numbers were first touched.
type tally struct {
	order   []string
	entries map[string]*entry
}

type entry struct {
	score    int
	evidence []string
}

func newTally() *tally {
	return &tally{entries: make(map[string]*entry)}
}

func (t *tally) add(number string, weight int, tag string) {
	e, ok := t.entries[number]
	if !ok {
		e = &entry{}
		t.entries[number] = e
		t.order = append(t.order, number)
	}
	e.score += weight
	if !containsTag(e.evidence, tag) {
		e.evidence = append(e.evidence, tag)
	}
}

func (t *tally) touched(number string) bool {
	_, ok := t.entries[number]
	return ok
}

// top returns at most n picks, highest score first, first-touched first on
// equal scores.
func (t *tally) top(n int) []Pick {
	picks := make([]Pick, 0, len(t.order))
	for _, number := range t.order {
		e := t.entries[number]
		picks = append(picks, Pick{Number: number, Score: e.score, Evidence: e.evidence})
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].Score > picks[j].Score
	})
	if len(picks) > n {
		picks = picks[:n]
	}
	return picks
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
