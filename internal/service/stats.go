package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"mood-diary/internal/insight"
	"mood-diary/internal/model"

	"gorm.io/gorm"
)

// StatsService computes the aggregate statistics bag the insight rules
// run over. All numbers are derived from stored diaries and activities;
// absent data yields nil sub-structs, never zero-filled ones.
type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// DateRange resolves period ("week" | "month" | "year") and offset
// (0 = current, -1 = previous, ...) into an inclusive date range. Weeks
// start on Monday.
func DateRange(period string, offset int, today time.Time) (time.Time, time.Time) {
	switch period {
	case "month":
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, offset, 0)
		return first, first.AddDate(0, 1, -1)
	case "year":
		first := time.Date(today.Year()+offset, 1, 1, 0, 0, 0, 0, today.Location())
		return first, first.AddDate(1, 0, -1)
	default: // week
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start := today.AddDate(0, 0, -(weekday-1)+7*offset)
		return start, start.AddDate(0, 0, 6)
	}
}

// BuildContext gathers every metric family for one user and period.
func (s *StatsService) BuildContext(ctx context.Context, userID, period string, offset int, today time.Time) (insight.Context, error) {
	start, end := DateRange(period, offset, today)
	startStr, endStr := start.Format(model.DateFormat), end.Format(model.DateFormat)

	moodStats, err := s.MoodStats(ctx, userID, startStr, endStr)
	if err != nil {
		return insight.Context{}, err
	}
	completion, err := s.CompletionStats(ctx, userID, startStr, endStr)
	if err != nil {
		return insight.Context{}, err
	}
	balance, err := s.LifeBalanceStats(ctx, userID, startStr, endStr)
	if err != nil {
		return insight.Context{}, err
	}
	community, err := s.CommunityStats(ctx, userID, startStr, endStr)
	if err != nil {
		return insight.Context{}, err
	}

	return insight.Context{
		Mood:        moodStats,
		Completion:  completion,
		LifeBalance: balance,
		Community:   community,
	}, nil
}

// MoodStats aggregates the user's overall scores over the range. The
// trend delta compares the second half of the series against the first,
// only once at least four rated days exist.
func (s *StatsService) MoodStats(ctx context.Context, userID, start, end string) (*insight.MoodStats, error) {
	var entries []model.DiaryEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ? AND overall_score IS NOT NULL", userID, start, end).
		Order("date").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("query mood entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	scores := make([]float64, 0, len(entries))
	for _, e := range entries {
		scores = append(scores, float64(*e.OverallScore))
	}

	stats := &insight.MoodStats{
		Average:    round1(mean(scores)),
		Median:     round1(median(scores)),
		LoggedDays: len(scores),
		TotalDays:  daysBetween(start, end),
	}
	if len(scores) >= 2 {
		sd := round1(stddev(scores))
		stats.Stddev = &sd
	}
	if len(scores) >= 4 {
		mid := len(scores) / 2
		stats.TrendDelta = round1(mean(scores[mid:]) - mean(scores[:mid]))
	}
	return stats, nil
}

// CompletionStats aggregates activity outcomes. The best streak is the
// longest run of consecutive days on which every activity was done.
func (s *StatsService) CompletionStats(ctx context.Context, userID, start, end string) (*insight.CompletionStats, error) {
	var activities []model.Activity
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date").Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	if len(activities) == 0 {
		return nil, nil
	}

	done := 0
	categories := map[string]int{}
	days := map[string]*dayTally{}
	for _, a := range activities {
		if a.Status == model.StatusDone {
			done++
		}
		if a.Category != "" {
			categories[a.Category]++
		}
		t := days[a.Date]
		if t == nil {
			t = &dayTally{}
			days[a.Date] = t
		}
		t.total++
		if a.Status == model.StatusDone {
			t.done++
		}
	}

	top, topCount := "", 0
	for cat, n := range categories {
		if n > topCount || (n == topCount && cat < top) {
			top, topCount = cat, n
		}
	}

	return &insight.CompletionStats{
		OverallRate: round1(float64(done) / float64(len(activities)) * 100),
		StreakBest:  bestStreak(days),
		TopCategory: top,
	}, nil
}

// LifeBalanceStats distributes the activities over categories and
// derives the imbalance warnings.
func (s *StatsService) LifeBalanceStats(ctx context.Context, userID, start, end string) (*insight.LifeBalanceStats, error) {
	var activities []model.Activity
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	total := len(activities)
	if total == 0 {
		return nil, nil
	}

	counts := map[string]int{}
	for _, a := range activities {
		key := a.Category
		if key == "" {
			key = "other"
		}
		counts[key]++
	}

	data := make([]insight.CategoryShare, 0, len(counts))
	for key, n := range counts {
		data = append(data, insight.CategoryShare{
			Key:        key,
			Label:      categoryLabel(key),
			Percentage: round1(float64(n) / float64(total) * 100),
		})
	}
	sort.Slice(data, func(i, j int) bool {
		if data[i].Percentage != data[j].Percentage {
			return data[i].Percentage > data[j].Percentage
		}
		return data[i].Key < data[j].Key
	})

	var warnings []string
	for _, share := range data {
		if share.Percentage >= 60 {
			warnings = append(warnings, fmt.Sprintf("คุณใช้เวลากับ%sมากเกินไป (%.1f%%) ลองสร้างสมดุลชีวิตบ้างนะ", share.Label, share.Percentage))
			break
		}
	}
	healthPct := 0.0
	for _, share := range data {
		if share.Key == "health" {
			healthPct = share.Percentage
		}
	}
	if healthPct < 10 && total >= 10 {
		warnings = append(warnings, fmt.Sprintf("คุณใช้เวลาดูแลสุขภาพแค่ %.1f%% ลองเพิ่มกิจกรรมออกกำลังกายบ้างนะ", healthPct))
	}

	return &insight.LifeBalanceStats{Data: data, Warnings: warnings}, nil
}

// CommunityStats aggregates per-user mood averages across all users in
// the range; the percentile is the share of users the given user rates at
// or above.
func (s *StatsService) CommunityStats(ctx context.Context, userID, start, end string) (*insight.CommunityStats, error) {
	type userAvg struct {
		UserID string
		Avg    float64
	}
	var rows []userAvg
	err := s.db.WithContext(ctx).Model(&model.DiaryEntry{}).
		Select("user_id, AVG(overall_score) AS avg").
		Where("date >= ? AND date <= ? AND overall_score IS NOT NULL", start, end).
		Group("user_id").Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query community averages: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	avgs := make([]float64, 0, len(rows))
	var mine *float64
	for _, r := range rows {
		avgs = append(avgs, r.Avg)
		if r.UserID == userID {
			v := r.Avg
			mine = &v
		}
	}

	stats := &insight.CommunityStats{
		Average:   round1(mean(avgs)),
		UserCount: len(rows),
	}
	if len(avgs) >= 2 {
		sd := round1(stddev(avgs))
		stats.Stddev = &sd
	}
	if mine != nil {
		atOrBelow := 0
		for _, a := range avgs {
			if a <= *mine {
				atOrBelow++
			}
		}
		p := float64(atOrBelow) / float64(len(avgs))
		stats.PercentileOfMe = &p
	}
	return stats, nil
}

func categoryLabel(key string) string {
	switch key {
	case "work":
		return "ทำงาน"
	case "study":
		return "เรียน"
	case "health":
		return "สุขภาพ"
	case "social":
		return "สังคม"
	case "personal":
		return "ส่วนตัว"
	case "hobby":
		return "งานอดิเรก"
	case "home":
		return "เรื่องบ้าน"
	case "other":
		return "อื่นๆ"
	default:
		return key
	}
}

type dayTally struct{ total, done int }

// bestStreak finds the longest run of consecutive calendar days on which
// every activity of the day was done.
func bestStreak(days map[string]*dayTally) int {
	dates := make([]string, 0, len(days))
	for d, t := range days {
		if t.total > 0 && t.done == t.total {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Strings(dates)

	best, run := 1, 1
	prev, _ := time.Parse(model.DateFormat, dates[0])
	for _, d := range dates[1:] {
		cur, err := time.Parse(model.DateFormat, d)
		if err != nil {
			continue
		}
		if cur.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
		prev = cur
	}
	return best
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func stddev(xs []float64) float64 {
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		sum += (x - m) * (x - m)
	}
	return math.Sqrt(sum / float64(len(xs)))
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }

func daysBetween(start, end string) int {
	s, err := time.Parse(model.DateFormat, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(model.DateFormat, end)
	if err != nil {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
