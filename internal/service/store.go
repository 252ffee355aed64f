package service

import (
	"context"

	"mood-diary/internal/model"
	"mood-diary/internal/reconcile"
)

// ReconcileStore adapts the diary and activity services to the
// reconciliation engine's store interface, tagging failures as network
// errors so the engine can treat them as transient.
type ReconcileStore struct {
	diaries    *DiaryService
	activities *ActivityService
}

func NewReconcileStore(diaries *DiaryService, activities *ActivityService) *ReconcileStore {
	return &ReconcileStore{diaries: diaries, activities: activities}
}

func (s *ReconcileStore) EntryExists(ctx context.Context, userID, date string) (bool, error) {
	exists, err := s.diaries.ExistsForDate(ctx, userID, date)
	if err != nil {
		return false, &reconcile.NetworkError{Op: "entry exists", Err: err}
	}
	return exists, nil
}

func (s *ReconcileStore) ListActivities(ctx context.Context, userID, date string) ([]model.ActivitySnapshot, error) {
	snaps, err := s.activities.Snapshots(ctx, userID, date)
	if err != nil {
		return nil, &reconcile.NetworkError{Op: "list activities", Err: err}
	}
	return snaps, nil
}

func (s *ReconcileStore) CreateEntry(ctx context.Context, entry *model.DiaryEntry) (*model.DiaryEntry, error) {
	created, err := s.diaries.Insert(ctx, entry)
	if err != nil {
		return nil, &reconcile.NetworkError{Op: "create entry", Err: err}
	}
	return created, nil
}
