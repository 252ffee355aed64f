package insight

// MoodStats are one user's aggregate mood numbers for a period.
type MoodStats struct {
	Average    float64  `json:"average"`
	Median     float64  `json:"median"`
	Stddev     *float64 `json:"stddev,omitempty"`
	TrendDelta float64  `json:"trend_delta"`
	LoggedDays int      `json:"logged_days"`
	TotalDays  int      `json:"total_days"`
}

// CompletionStats summarize activity outcomes for a period.
type CompletionStats struct {
	OverallRate float64 `json:"overall_rate"` // percent 0..100
	StreakBest  int     `json:"streak_best"`
	TopCategory string  `json:"top_category,omitempty"`
}

// CategoryShare is one slice of the life-balance distribution.
type CategoryShare struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

type LifeBalanceStats struct {
	Data     []CategoryShare `json:"data"`
	Warnings []string        `json:"warnings,omitempty"`
}

// CommunityStats are the all-user aggregates the personal numbers are
// compared against.
type CommunityStats struct {
	Average        float64  `json:"average"`
	Stddev         *float64 `json:"stddev,omitempty"`
	TrendDelta     float64  `json:"trend_delta"`
	PercentileOfMe *float64 `json:"percentile_of_me,omitempty"` // 0..1
	UserCount      int      `json:"user_count"`
}

// Context is the read-only statistics bag insights are built from. Nil
// sub-structs mean that metric family is absent and its rules stay silent.
type Context struct {
	Mood        *MoodStats        `json:"mood,omitempty"`
	Completion  *CompletionStats  `json:"completion,omitempty"`
	LifeBalance *LifeBalanceStats `json:"life_balance,omitempty"`
	Community   *CommunityStats   `json:"community,omitempty"`
}

// Report groups the generated insight strings by metric family.
type Report struct {
	Mood        []string `json:"mood"`
	Completion  []string `json:"completion"`
	LifeBalance []string `json:"life_balance"`
	CrossMetric []string `json:"cross_metric"`
	Community   []string `json:"community"`
}
