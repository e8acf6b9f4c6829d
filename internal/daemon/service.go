// Package daemon provides the long-running background budget monitor.
// It periodically recomputes the budget status from the ledger and
// serves it over a local HTTP API for widgets and status bars.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/perdiem/internal/budget"
	"github.com/theirongolddev/perdiem/internal/cli"
	"github.com/theirongolddev/perdiem/internal/ledger"
	"github.com/theirongolddev/perdiem/internal/model"
	"github.com/theirongolddev/perdiem/internal/widget"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Addr         string
	Interval     time.Duration
	EventsBuffer int
	Currency     string
	Locale       string
}

// Snapshot is the compact budget state served to clients.
type Snapshot struct {
	At           time.Time           `json:"at"`
	Configured   bool                `json:"configured"`
	Transactions int                 `json:"transactions"`
	Status       *model.BudgetStatus `json:"status,omitempty"`
}

// Event is emitted whenever the snapshot changes.
type Event struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Snapshot  Snapshot  `json:"snapshot"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	Snapshot        Snapshot  `json:"snapshot"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg       Config
	store     *ledger.Store
	formatter *cli.CurrencyFormatter

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event
}

// New returns a daemon service reading from the given ledger store.
func New(cfg Config, store *ledger.Store) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = time.Minute
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8791"
	}

	return &Service{
		cfg:       cfg,
		store:     store,
		formatter: cli.NewCurrencyFormatter(cfg.Locale, cfg.Currency),
		startedAt: time.Now(),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/widget", s.handleWidget)
	mux.HandleFunc("/v1/events", s.handleEvents)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce(time.Now())

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(time.Now())
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

// pollOnce recomputes the snapshot and records an event on change.
func (s *Service) pollOnce(now time.Time) {
	snap, err := s.computeSnapshot(now)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		log.Printf("perdiem daemon poll error: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := !s.hasSnapshot || snapshotChanged(s.snapshot, snap)
	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	if changed {
		s.nextEventID++
		s.events = append(s.events, Event{
			ID:        s.nextEventID,
			Timestamp: now,
			Snapshot:  snap,
		})
		if len(s.events) > s.cfg.EventsBuffer {
			s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
		}
	}
}

func (s *Service) computeSnapshot(now time.Time) (Snapshot, error) {
	settings, err := s.store.Settings()
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading settings: %w", err)
	}
	txs, err := s.store.Transactions()
	if err != nil {
		return Snapshot{}, fmt.Errorf("loading ledger: %w", err)
	}

	snap := Snapshot{At: now, Transactions: len(txs)}
	if settings != nil {
		status := budget.Calculate(txs, settings.MonthlyBudget, now)
		snap.Configured = true
		snap.Status = &status
	}
	return snap, nil
}

func snapshotChanged(prev, next Snapshot) bool {
	if prev.Configured != next.Configured || prev.Transactions != next.Transactions {
		return true
	}
	if prev.Status == nil || next.Status == nil {
		return (prev.Status == nil) != (next.Status == nil)
	}
	return *prev.Status != *next.Status
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	status := Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		Snapshot:        s.snapshot,
	}
	s.mu.RUnlock()

	writeJSON(w, status)
}

func (s *Service) handleWidget(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	var status *model.BudgetStatus
	if snap.Configured {
		status = snap.Status
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if r.URL.Query().Get("plain") != "" {
		fmt.Fprintln(w, widget.RenderPlain(status, s.formatter))
		return
	}
	fmt.Fprintln(w, widget.Render(status, s.formatter))
}

func (s *Service) handleEvents(w http.ResponseWriter, r *http.Request) {
	sinceID := int64(0)
	if v := r.URL.Query().Get("since"); v != "" {
		fmt.Sscanf(v, "%d", &sinceID)
	}

	s.mu.RLock()
	var out []Event
	for _, ev := range s.events {
		if ev.ID > sinceID {
			out = append(out, ev)
		}
	}
	s.mu.RUnlock()

	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
