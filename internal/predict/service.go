package predict

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/glo"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/history"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/logger"
	"github.com/Satayu47/Thai-Lottery-Prediction/internal/schedule"
)

// SyncOutcome classifies one synchronization attempt against the results
// API.
type SyncOutcome string

const (
	// SyncUpdated means a new record entered the store.
	SyncUpdated SyncOutcome = "updated"
	// SyncCurrent means the published result was already stored.
	SyncCurrent SyncOutcome = "current"
	// SyncSkipped means the API answered but its date did not normalize;
	// the number is display-only and nothing was written.
	SyncSkipped SyncOutcome = "skipped"
	// SyncOffline means transport failure or a malformed body; the store
	// is untouched.
	SyncOffline SyncOutcome = "offline"
)

// SyncStatus is the explicit, caller-owned result of a sync attempt.
type SyncStatus struct {
	Outcome SyncOutcome `json:"outcome"`
	Number  string      `json:"number,omitempty"`
	RawDate string      `json:"raw_date,omitempty"`
	Date    string      `json:"date,omitempty"` // DD-MM-YYYY when known
	Reason  string      `json:"reason,omitempty"`
}

// Failed reports whether the attempt brought nothing usable back.
func (s SyncStatus) Failed() bool {
	return s.Outcome == SyncOffline
}

// Report is everything a surface needs to render one prediction run.
type Report struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	TargetDate  history.Date  `json:"target_date"`
	DrawKind    schedule.Kind `json:"draw_kind"`
	DrawLabel   string        `json:"draw_label"`
	Bias        []string      `json:"bias"`
	Picks       []Pick        `json:"picks"`
	HistorySize int           `json:"history_size"`
	Sync        SyncStatus    `json:"sync"`
}

// Service wires the store, the results client and the calendar into the
// single entry point the surfaces call.
type Service struct {
	store   *history.Store
	client  *glo.Client
	weights Weights
	now     func() time.Time
}

// Option tweaks a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(store *history.Store, client *glo.Client, weights Weights, opts ...Option) *Service {
	s := &Service{
		store:   store,
		client:  client,
		weights: weights,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store exposes the underlying history for read-only surfaces.
func (s *Service) Store() *history.Store {
	return s.store
}

// Sync fetches the latest published draw and folds it into the store.
// Every outcome is non-fatal; the status tells the caller what happened.
func (s *Service) Sync(ctx context.Context) SyncStatus {
	draw, err := s.client.FetchLatest(ctx)
	if err != nil {
		logger.Warn("Sync failed, continuing on stored history", "err", err)
		return SyncStatus{Outcome: SyncOffline, Reason: err.Error()}
	}

	status := SyncStatus{Number: draw.Number, RawDate: draw.RawDate}
	rec, ok := draw.Record()
	if !ok {
		logger.Info("Latest draw date did not normalize, display only", "date", draw.RawDate)
		status.Outcome = SyncSkipped
		return status
	}
	status.Date = rec.Date.String()

	inserted, err := s.store.InsertIfNew(rec)
	if err != nil {
		logger.Warn("Sync produced an unusable record", "err", err)
		status.Outcome = SyncOffline
		status.Reason = err.Error()
		return status
	}
	if inserted {
		logger.Info("History updated from API", "date", status.Date, "number", draw.Number)
		status.Outcome = SyncUpdated
	} else {
		status.Outcome = SyncCurrent
	}
	return status
}

// Predict runs one full cycle: best-effort sync, calendar resolution, then
// scoring. It always returns a report; with the network down and the store
// freshly reseeded it degrades to bias-only scoring.
func (s *Service) Predict(ctx context.Context) *Report {
	syncStatus := s.Sync(ctx)

	draw := schedule.NextDraw(s.now())
	records := s.store.Records()
	picks := Rank(records, draw.Date, draw.Bias, s.weights)

	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: s.now().UTC(),
		TargetDate:  history.DateOf(draw.Date),
		DrawKind:    draw.Kind,
		DrawLabel:   draw.Kind.Label(),
		Bias:        draw.Bias,
		Picks:       picks,
		HistorySize: len(records),
		Sync:        syncStatus,
	}
}
