package predict

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/glo"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/history"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/schedule"
)

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func newTestService(t *testing.T, handler http.HandlerFunc, now time.Time) (*Service, *history.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := history.Open(filepath.Join(t.TempDir(), "history.json"))
	client := glo.NewClient(server.URL, time.Second)
	svc := NewService(store, client, DefaultWeights(), WithClock(fixedClock(now)))
	return svc, store
}

func TestSync_Updated(t *testing.T) {
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"date":"2 March 2026","runningNumbers":[{"number":["77"]}]}}`))
	}, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	before := store.Len()

	status := svc.Sync(context.Background())

	assert.Equal(t, SyncUpdated, status.Outcome)
	assert.Equal(t, "77", status.Number)
	assert.Equal(t, "2 March 2026", status.RawDate)
	assert.Equal(t, "02-03-2026", status.Date)
	assert.False(t, status.Failed())
	assert.Equal(t, before+1, store.Len())

	latest, ok := store.Latest()
	require.True(t, ok)
	assert.Equal(t, "77", latest.Number)

	// Running it again is a no-op.
	status = svc.Sync(context.Background())
	assert.Equal(t, SyncCurrent, status.Outcome)
	assert.Equal(t, before+1, store.Len())
}

func TestSync_SkippedOnUnknownDate(t *testing.T) {
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":{"date":"16 สิงหาคม 2569","runningNumbers":[{"number":["73"]}]}}`))
	}, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	before := store.Len()

	status := svc.Sync(context.Background())

	assert.Equal(t, SyncSkipped, status.Outcome)
	assert.Equal(t, "73", status.Number)
	assert.Empty(t, status.Date)
	assert.False(t, status.Failed())
	assert.Equal(t, before, store.Len(), "nothing may be written without a normalized date")
}

func TestSync_OfflineOnServerError(t *testing.T) {
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))
	before := store.Len()

	status := svc.Sync(context.Background())

	assert.Equal(t, SyncOffline, status.Outcome)
	assert.True(t, status.Failed())
	assert.NotEmpty(t, status.Reason)
	assert.Equal(t, before, store.Len())
}

func TestPredict_FullReport(t *testing.T) {
	now := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}, now)

	report := svc.Predict(context.Background())
	require.NotNil(t, report)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, "17-01-2026", report.TargetDate.String())
	assert.Equal(t, schedule.KindTeachersDay, report.DrawKind)
	assert.Equal(t, "Teacher's Day", report.DrawLabel)
	assert.Equal(t, []string{"16", "17", "61", "95", "97", "26", "96"}, report.Bias)
	assert.Equal(t, store.Len(), report.HistorySize)
	assert.Equal(t, SyncOffline, report.Sync.Outcome)

	// Seeded history, January target: "61" stacks culture and seasonal,
	// the remaining bias numbers sit at culture weight, and the seeded
	// latest "16" is pushed out of the shortlist by its repeat penalty.
	require.Len(t, report.Picks, 5)
	assert.Equal(t, Pick{Number: "61", Score: 8, Evidence: []string{TagCultural, TagSeasonal}}, report.Picks[0])
	for i, number := range []string{"17", "95", "97", "26"} {
		p := report.Picks[i+1]
		assert.Equal(t, number, p.Number)
		assert.Equal(t, 5, p.Score)
		assert.Equal(t, []string{TagCultural}, p.Evidence)
	}
}

func TestPredict_DegradesToBiasOnly(t *testing.T) {
	// An empty-but-valid history file plus a dead API: the engine still
	// answers, with bias-only scoring.
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	store := history.Open(path)
	require.Equal(t, 0, store.Len())

	svc := NewService(store, glo.NewClient(server.URL, time.Second), DefaultWeights(),
		WithClock(fixedClock(time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))))

	report := svc.Predict(context.Background())
	require.Len(t, report.Picks, 2)
	assert.Equal(t, "26", report.Picks[0].Number)
	assert.Equal(t, "96", report.Picks[1].Number)
	assert.Equal(t, 5, report.Picks[0].Score)
	assert.True(t, report.Sync.Failed())
}

func TestBackfill(t *testing.T) {
	// Target is 17 January 2026; the miner walks the seven previous
	// Januaries. Five are already seeded, 2020 is new, 2019 has no draw.
	now := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	results := map[string]string{
		"/lotto/2025-01-17": "61",
		"/lotto/2024-01-17": "47",
		"/lotto/2023-01-17": "92",
		"/lotto/2022-01-17": "15",
		"/lotto/2021-01-17": "68",
		"/lotto/2020-01-17": "55",
	}
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		number, ok := results[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"response":{"date":"17 January %s","runningNumbers":[{"number":[%q]}]}}`,
			r.URL.Path[7:11], number)
	}, now)
	before := store.Len()

	summary, err := svc.Backfill(context.Background(), 7, 3)
	require.NoError(t, err)

	assert.Equal(t, "17-01-2026", summary.Target.String())
	assert.Equal(t, 7, summary.Checked)
	assert.Equal(t, 6, summary.Found)
	assert.Equal(t, 1, summary.Inserted, "five of the six were already seeded")
	assert.Equal(t, []int{2019}, summary.Missing)
	assert.Equal(t, before+1, store.Len())

	// The backfilled draw is now the newest insertion.
	latest, ok := store.Latest()
	require.True(t, ok)
	assert.Equal(t, "17-01-2020", latest.Date.String())
	assert.Equal(t, "55", latest.Number)

	// Found records come back oldest year first.
	require.Len(t, summary.Records, 6)
	assert.Equal(t, "17-01-2020", summary.Records[0].Date.String())
	assert.Equal(t, "17-01-2025", summary.Records[5].Date.String())
}

func TestBackfill_DefaultsApplied(t *testing.T) {
	var requests atomic.Int64
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.NotFound(w, r)
	}, time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))

	summary, err := svc.Backfill(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Checked)
	assert.Equal(t, 0, summary.Found)
	assert.Len(t, summary.Missing, 10)
	assert.EqualValues(t, 10, requests.Load(), "one probe per year, misses are not retried")
}
