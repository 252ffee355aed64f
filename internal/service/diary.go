package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mood-diary/internal/model"
	"mood-diary/internal/mood"
	"mood-diary/internal/summary"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrEntryExists is returned when a second diary entry is created for the
// same (user, date).
var ErrEntryExists = errors.New("diary entry already exists for this date")

type DiaryService struct {
	db    *gorm.DB
	vocab *mood.Vocabulary
}

func NewDiaryService(db *gorm.DB, vocab *mood.Vocabulary) *DiaryService {
	return &DiaryService{db: db, vocab: vocab}
}

func (s *DiaryService) List(ctx context.Context, userID, startDate, endDate string, limit, offset int) (model.DiaryListResponse, error) {
	q := s.db.WithContext(ctx).Model(&model.DiaryEntry{}).Where("user_id = ?", userID)
	if startDate != "" {
		q = q.Where("date >= ?", startDate)
	}
	if endDate != "" {
		q = q.Where("date <= ?", endDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return model.DiaryListResponse{}, fmt.Errorf("count diaries: %w", err)
	}

	items := []model.DiaryEntry{}
	if err := q.Order("date DESC").Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return model.DiaryListResponse{}, fmt.Errorf("query diaries: %w", err)
	}
	return model.DiaryListResponse{Items: items, Total: total}, nil
}

func (s *DiaryService) Get(ctx context.Context, userID, id string) (*model.DiaryEntry, error) {
	var e model.DiaryEntry
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&e).Error; err != nil {
		return nil, fmt.Errorf("load diary: %w", err)
	}
	return &e, nil
}

func (s *DiaryService) ExistsForDate(ctx context.Context, userID, date string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.DiaryEntry{}).
		Where("user_id = ? AND date = ?", userID, date).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check diary exists: %w", err)
	}
	return count > 0, nil
}

// Create normalizes the mood input, seeds the detail from the activity
// snapshot when absent and inserts the entry. One entry per calendar day.
func (s *DiaryService) Create(ctx context.Context, userID string, req model.CreateDiaryRequest) (*model.DiaryEntry, error) {
	if _, err := time.Parse(model.DateFormat, req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	payload, err := mood.Normalize(mood.Input{
		PositiveScore: req.PositiveScore,
		NegativeScore: req.NegativeScore,
		OverallScore:  req.OverallScore,
		PositiveTags:  req.PositiveTags,
		NegativeTags:  req.NegativeTags,
	}, s.vocab)
	if err != nil {
		return nil, err
	}

	exists, err := s.ExistsForDate(ctx, userID, req.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEntryExists
	}

	detail := req.Detail
	if detail == "" {
		detail = summary.Generate(req.Activities)
	}

	e := model.DiaryEntry{
		UserID:        userID,
		Date:          req.Date,
		Title:         req.Title,
		Detail:        detail,
		PositiveScore: payload.PositiveScore,
		NegativeScore: payload.NegativeScore,
		OverallScore:  payload.OverallScore,
		MoodIcon:      string(payload.Icon),
		MoodTags:      datatypes.NewJSONSlice(payload.Tags),
		Activities:    datatypes.NewJSONSlice(req.Activities),
	}
	return s.Insert(ctx, &e)
}

// Insert persists an already-built entry, assigning an ID when absent.
// Used by Create and by the reconciliation engine's eager drafts; no
// existence check of its own, callers check first.
func (s *DiaryService) Insert(ctx context.Context, e *model.DiaryEntry) (*model.DiaryEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.IsDraft = false
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, fmt.Errorf("insert diary: %w", err)
	}
	return e, nil
}

// Update applies a partial update. When any mood field is present the
// whole mood payload is recomputed, so clients send both tag lists
// together.
func (s *DiaryService) Update(ctx context.Context, userID, id string, req model.UpdateDiaryRequest) (*model.DiaryEntry, error) {
	e, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Detail != nil {
		e.Detail = *req.Detail
	}
	if req.Activities != nil {
		e.Activities = datatypes.NewJSONSlice(*req.Activities)
	}

	if req.PositiveScore != nil || req.NegativeScore != nil || req.OverallScore != nil ||
		req.PositiveTags != nil || req.NegativeTags != nil {
		in := mood.Input{
			PositiveScore: coalesce(req.PositiveScore, e.PositiveScore),
			NegativeScore: coalesce(req.NegativeScore, e.NegativeScore),
			OverallScore:  coalesce(req.OverallScore, e.OverallScore),
		}
		if req.PositiveTags != nil {
			in.PositiveTags = *req.PositiveTags
		}
		if req.NegativeTags != nil {
			in.NegativeTags = *req.NegativeTags
		}
		payload, err := mood.Normalize(in, s.vocab)
		if err != nil {
			return nil, err
		}
		e.PositiveScore = payload.PositiveScore
		e.NegativeScore = payload.NegativeScore
		e.OverallScore = payload.OverallScore
		e.MoodIcon = string(payload.Icon)
		if req.PositiveTags != nil || req.NegativeTags != nil {
			e.MoodTags = datatypes.NewJSONSlice(payload.Tags)
		}
	}

	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		return nil, fmt.Errorf("update diary: %w", err)
	}
	return e, nil
}

func (s *DiaryService) Delete(ctx context.Context, userID, id string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.DiaryEntry{})
	if res.Error != nil {
		return fmt.Errorf("delete diary: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func coalesce(override, current *int) *int {
	if override != nil {
		return override
	}
	return current
}
