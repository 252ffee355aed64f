package service

import (
	"context"
	"fmt"

	"mood-diary/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityService struct{ db *gorm.DB }

func NewActivityService(db *gorm.DB) *ActivityService { return &ActivityService{db: db} }

func (s *ActivityService) ListByDate(ctx context.Context, userID, date string) ([]model.Activity, error) {
	items := []model.Activity{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("scheduled_time IS NULL, scheduled_time").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	return items, nil
}

// Snapshots returns the day's activities as detached copies for embedding
// into a diary entry.
func (s *ActivityService) Snapshots(ctx context.Context, userID, date string) ([]model.ActivitySnapshot, error) {
	items, err := s.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	snaps := make([]model.ActivitySnapshot, 0, len(items))
	for _, a := range items {
		snaps = append(snaps, model.ActivitySnapshot{
			ID:            a.ID,
			Title:         a.Title,
			Category:      a.Category,
			Status:        a.Status,
			ScheduledTime: a.ScheduledTime,
		})
	}
	return snaps, nil
}

func (s *ActivityService) Create(ctx context.Context, userID string, req model.CreateActivityRequest) (*model.Activity, error) {
	status := req.Status
	if status == "" {
		status = model.StatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	a := model.Activity{
		ID:            uuid.NewString(),
		UserID:        userID,
		Date:          req.Date,
		Title:         req.Title,
		Category:      req.Category,
		Status:        status,
		ScheduledTime: req.ScheduledTime,
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}
	return &a, nil
}

func (s *ActivityService) UpdateStatus(ctx context.Context, userID, id string, status model.Status) (*model.Activity, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	var a model.Activity
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&a).Error; err != nil {
		return nil, fmt.Errorf("load activity: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&a).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	a.Status = status
	return &a, nil
}

func (s *ActivityService) Delete(ctx context.Context, userID, id string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Activity{})
	if res.Error != nil {
		return fmt.Errorf("delete activity: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
