// Package reconcile scans a trailing window of calendar days and makes
// sure every day has some diary representation, persisted or virtual, so
// the user is never silently missing history.
package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mood-diary/internal/logger"
	"mood-diary/internal/model"
	"mood-diary/internal/mood"
	"mood-diary/internal/summary"

	"gorm.io/datatypes"
)

// Materialization decides what a detected gap becomes.
type Materialization string

const (
	// MaterializeVirtual keeps every draft in memory until the user saves.
	MaterializeVirtual Materialization = "virtual"
	// MaterializeEagerRecent persists only the most recent missing day,
	// so it survives even if the app closes before the user acts.
	MaterializeEagerRecent Materialization = "eager_recent"
	// MaterializeEager persists every missing day immediately.
	MaterializeEager Materialization = "eager"
)

// PromptPolicy controls whether a missing yesterday is surfaced as a
// distinguished signal for a quick-rating flow.
type PromptPolicy string

const (
	PromptModal  PromptPolicy = "modal"
	PromptSilent PromptPolicy = "silent"
)

type Config struct {
	WindowDays         int             `yaml:"window_days"`
	Materialization    Materialization `yaml:"materialization"`
	OnMissingYesterday PromptPolicy    `yaml:"on_missing_yesterday"`
}

func (c Config) withDefaults() Config {
	if c.WindowDays <= 0 {
		c.WindowDays = 7
	}
	if c.Materialization == "" {
		c.Materialization = MaterializeVirtual
	}
	if c.OnMissingYesterday == "" {
		c.OnMissingYesterday = PromptModal
	}
	return c
}

// NetworkError wraps a transport or storage failure from the backing
// store. The engine isolates these per day; they never leave Run.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("reconcile: %s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// Store is the remote diary/activity access the engine runs against.
type Store interface {
	EntryExists(ctx context.Context, userID, date string) (bool, error)
	ListActivities(ctx context.Context, userID, date string) ([]model.ActivitySnapshot, error)
	CreateEntry(ctx context.Context, entry *model.DiaryEntry) (*model.DiaryEntry, error)
}

// Result is what one run resolved. PromptDate is set when yesterday was
// missing and the prompt policy asks for a modal.
type Result struct {
	Drafts     []model.DiaryEntry `json:"drafts"`
	PromptDate string             `json:"prompt_date,omitempty"`
}

// Engine checks a trailing window of days sequentially, newest to
// oldest, and synthesizes a draft for each gap. Run never returns an
// error: every failure is logged and degrades to a skipped day.
type Engine struct {
	store Store
	cfg   Config

	mu     sync.Mutex
	active map[string]bool
}

func New(store Store, cfg Config) *Engine {
	return &Engine{store: store, cfg: cfg.withDefaults(), active: make(map[string]bool)}
}

// Run scans the window for userID. Days are processed strictly in order,
// most recent first, and creates are never batched, so the existence
// check always directly precedes its create within a run. Concurrent
// runs for the same user are collapsed: the second caller gets an empty
// result immediately.
func (e *Engine) Run(ctx context.Context, userID string, today time.Time) Result {
	if !e.acquire(userID) {
		logger.Debug("reconcile.skipped", "user", userID, "reason", "run already active")
		return Result{}
	}
	defer e.release(userID)

	var res Result
	for daysAgo := 1; daysAgo <= e.cfg.WindowDays; daysAgo++ {
		day := today.AddDate(0, 0, -daysAgo)
		date := day.Format(model.DateFormat)

		exists, err := e.store.EntryExists(ctx, userID, date)
		if err != nil {
			logger.Warn("reconcile.check_failed", "user", userID, "date", date, "err", err)
			continue
		}
		if exists {
			continue
		}

		if daysAgo == 1 && e.cfg.OnMissingYesterday == PromptModal {
			res.PromptDate = date
		}

		draft := e.synthesize(ctx, userID, day, date)

		if e.persistDay(daysAgo) {
			draft.IsDraft = false
			created, err := e.store.CreateEntry(ctx, &draft)
			if err != nil {
				logger.Warn("reconcile.create_failed", "user", userID, "date", date, "err", err)
				continue
			}
			res.Drafts = append(res.Drafts, *created)
			logger.Info("reconcile.persisted", "user", userID, "date", date)
			continue
		}

		res.Drafts = append(res.Drafts, draft)
		logger.Info("reconcile.virtual_draft", "user", userID, "date", date)
	}

	return res
}

// synthesize builds the placeholder entry for one missing day. An
// activity fetch failure degrades to an empty list, not a skip.
func (e *Engine) synthesize(ctx context.Context, userID string, day time.Time, date string) model.DiaryEntry {
	acts, err := e.store.ListActivities(ctx, userID, date)
	if err != nil {
		logger.Warn("reconcile.activities_failed", "user", userID, "date", date, "err", err)
		acts = nil
	}

	return model.DiaryEntry{
		UserID:     userID,
		Date:       date,
		Title:      "บันทึกของ " + ThaiDate(day),
		Detail:     summary.Generate(acts),
		MoodIcon:   string(mood.IconUnrated),
		Activities: datatypes.NewJSONSlice(acts),
		IsDraft:    true,
	}
}

func (e *Engine) persistDay(daysAgo int) bool {
	switch e.cfg.Materialization {
	case MaterializeEager:
		return true
	case MaterializeEagerRecent:
		return daysAgo == 1
	default:
		return false
	}
}

func (e *Engine) acquire(userID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active[userID] {
		return false
	}
	e.active[userID] = true
	return true
}

func (e *Engine) release(userID string) {
	e.mu.Lock()
	delete(e.active, userID)
	e.mu.Unlock()
}
