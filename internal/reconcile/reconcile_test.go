package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"mood-diary/internal/model"
	"mood-diary/internal/summary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	entries    map[string]bool
	activities map[string][]model.ActivitySnapshot
	failCheck  map[string]bool
	failActs   map[string]bool
	failCreate map[string]bool

	checkOrder []string
	created    []model.DiaryEntry

	blockCheck chan struct{} // when set, EntryExists waits on it once
	started    chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries:    map[string]bool{},
		activities: map[string][]model.ActivitySnapshot{},
		failCheck:  map[string]bool{},
		failActs:   map[string]bool{},
		failCreate: map[string]bool{},
	}
}

func (s *fakeStore) EntryExists(_ context.Context, _, date string) (bool, error) {
	if s.blockCheck != nil {
		close(s.started)
		<-s.blockCheck
		s.blockCheck = nil
	}
	s.checkOrder = append(s.checkOrder, date)
	if s.failCheck[date] {
		return false, &NetworkError{Op: "entry exists", Err: errors.New("boom")}
	}
	return s.entries[date], nil
}

func (s *fakeStore) ListActivities(_ context.Context, _, date string) ([]model.ActivitySnapshot, error) {
	if s.failActs[date] {
		return nil, &NetworkError{Op: "list activities", Err: errors.New("boom")}
	}
	return s.activities[date], nil
}

func (s *fakeStore) CreateEntry(_ context.Context, e *model.DiaryEntry) (*model.DiaryEntry, error) {
	if s.failCreate[e.Date] {
		return nil, &NetworkError{Op: "create entry", Err: errors.New("boom")}
	}
	created := *e
	created.ID = fmt.Sprintf("id-%d", len(s.created)+1)
	s.created = append(s.created, created)
	s.entries[e.Date] = true
	return &created, nil
}

var today = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func dayStr(daysAgo int) string {
	return today.AddDate(0, 0, -daysAgo).Format(model.DateFormat)
}

func TestRunOnlyYesterdayMissing(t *testing.T) {
	store := newFakeStore()
	for d := 2; d <= 7; d++ {
		store.entries[dayStr(d)] = true
	}
	engine := New(store, Config{})

	res := engine.Run(context.Background(), "u1", today)

	require.Len(t, res.Drafts, 1)
	draft := res.Drafts[0]
	assert.Equal(t, dayStr(1), draft.Date)
	assert.True(t, draft.IsDraft)
	assert.Empty(t, draft.ID, "virtual draft is unpersisted")
	assert.Equal(t, dayStr(1), res.PromptDate)
	assert.Empty(t, store.created, "virtual policy never writes")
}

func TestRunVisitsNewestFirst(t *testing.T) {
	store := newFakeStore()
	engine := New(store, Config{WindowDays: 3})

	engine.Run(context.Background(), "u1", today)

	assert.Equal(t, []string{dayStr(1), dayStr(2), dayStr(3)}, store.checkOrder)
}

func TestRunCheckFailureSkipsOnlyThatDay(t *testing.T) {
	store := newFakeStore()
	store.failCheck[dayStr(2)] = true
	engine := New(store, Config{WindowDays: 3})

	res := engine.Run(context.Background(), "u1", today)

	dates := make([]string, 0, len(res.Drafts))
	for _, d := range res.Drafts {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []string{dayStr(1), dayStr(3)}, dates)
}

func TestRunActivityFailureDegradesToEmptySummary(t *testing.T) {
	store := newFakeStore()
	store.failActs[dayStr(1)] = true
	engine := New(store, Config{WindowDays: 1})

	res := engine.Run(context.Background(), "u1", today)

	require.Len(t, res.Drafts, 1)
	assert.Equal(t, summary.NoActivities, res.Drafts[0].Detail)
}

func TestRunSeedsDetailFromActivities(t *testing.T) {
	store := newFakeStore()
	tm := "09:00:00"
	store.activities[dayStr(1)] = []model.ActivitySnapshot{
		{ID: "a1", Title: "วิ่ง", Category: "health", Status: model.StatusDone, ScheduledTime: &tm},
	}
	engine := New(store, Config{WindowDays: 1})

	res := engine.Run(context.Background(), "u1", today)

	require.Len(t, res.Drafts, 1)
	assert.Contains(t, res.Drafts[0].Detail, "วิ่ง")
	assert.Len(t, res.Drafts[0].Activities, 1)
	assert.Contains(t, res.Drafts[0].Title, "บันทึกของ ")
}

func TestRunEagerPersistsEveryGap(t *testing.T) {
	store := newFakeStore()
	engine := New(store, Config{WindowDays: 3, Materialization: MaterializeEager})

	res := engine.Run(context.Background(), "u1", today)

	require.Len(t, res.Drafts, 3)
	assert.Len(t, store.created, 3)
	for _, d := range res.Drafts {
		assert.False(t, d.IsDraft)
		assert.NotEmpty(t, d.ID)
	}
}

func TestRunEagerRecentPersistsOnlyNewestGap(t *testing.T) {
	store := newFakeStore()
	engine := New(store, Config{WindowDays: 3, Materialization: MaterializeEagerRecent})

	res := engine.Run(context.Background(), "u1", today)

	require.Len(t, res.Drafts, 3)
	require.Len(t, store.created, 1)
	assert.Equal(t, dayStr(1), store.created[0].Date)
	assert.True(t, res.Drafts[1].IsDraft)
	assert.True(t, res.Drafts[2].IsDraft)
}

func TestRunIdempotentAcrossRuns(t *testing.T) {
	store := newFakeStore()
	engine := New(store, Config{WindowDays: 7, Materialization: MaterializeEager})

	first := engine.Run(context.Background(), "u1", today)
	require.Len(t, first.Drafts, 7)
	require.Len(t, store.created, 7)

	second := engine.Run(context.Background(), "u1", today)
	assert.Empty(t, second.Drafts, "second run finds every day satisfied")
	assert.Len(t, store.created, 7, "no duplicate rows")
}

func TestRunCreateFailureLeavesDayForRetry(t *testing.T) {
	store := newFakeStore()
	store.failCreate[dayStr(1)] = true
	engine := New(store, Config{WindowDays: 2, Materialization: MaterializeEager})

	res := engine.Run(context.Background(), "u1", today)

	require.Len(t, res.Drafts, 1)
	assert.Equal(t, dayStr(2), res.Drafts[0].Date)

	// next run retries the failed day since nothing was written for it
	store.failCreate = map[string]bool{}
	res = engine.Run(context.Background(), "u1", today)
	require.Len(t, res.Drafts, 1)
	assert.Equal(t, dayStr(1), res.Drafts[0].Date)
}

func TestRunSilentPolicySuppressesPrompt(t *testing.T) {
	store := newFakeStore()
	engine := New(store, Config{WindowDays: 2, OnMissingYesterday: PromptSilent})

	res := engine.Run(context.Background(), "u1", today)

	require.Len(t, res.Drafts, 2)
	assert.Empty(t, res.PromptDate)
}

func TestRunNoPromptWhenYesterdayPresent(t *testing.T) {
	store := newFakeStore()
	store.entries[dayStr(1)] = true
	engine := New(store, Config{WindowDays: 3})

	res := engine.Run(context.Background(), "u1", today)

	require.Len(t, res.Drafts, 2)
	assert.Empty(t, res.PromptDate)
}

func TestRunConcurrentRunsCollapse(t *testing.T) {
	store := newFakeStore()
	store.blockCheck = make(chan struct{})
	store.started = make(chan struct{})
	engine := New(store, Config{WindowDays: 1})

	done := make(chan Result, 1)
	go func() { done <- engine.Run(context.Background(), "u1", today) }()
	<-store.started

	// second run for the same user while the first is mid-flight
	second := engine.Run(context.Background(), "u1", today)
	assert.Empty(t, second.Drafts)
	assert.Empty(t, second.PromptDate)

	close(store.blockCheck)
	first := <-done
	assert.Len(t, first.Drafts, 1)
}

func TestRunDifferentUsersNotBlocked(t *testing.T) {
	store := newFakeStore()
	engine := New(store, Config{WindowDays: 1})

	res1 := engine.Run(context.Background(), "u1", today)
	res2 := engine.Run(context.Background(), "u2", today)
	assert.Len(t, res1.Drafts, 1)
	assert.Len(t, res2.Drafts, 1)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, 7, cfg.WindowDays)
	assert.Equal(t, MaterializeVirtual, cfg.Materialization)
	assert.Equal(t, PromptModal, cfg.OnMissingYesterday)
}

func TestThaiDate(t *testing.T) {
	assert.Equal(t, "14 พฤศจิกายน 2568", ThaiDate(time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 มกราคม 2569", ThaiDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}
