package model

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

type UserProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type CreateDiaryRequest struct {
	Date          string             `json:"date" binding:"required"`
	Title         string             `json:"title" binding:"required,max=200"`
	Detail        string             `json:"detail" binding:"max=2000"`
	PositiveScore *int               `json:"positive_score"`
	NegativeScore *int               `json:"negative_score"`
	OverallScore  *int               `json:"overall_score"`
	PositiveTags  []string           `json:"positive_tags"`
	NegativeTags  []string           `json:"negative_tags"`
	Activities    []ActivitySnapshot `json:"activities"`
}

// UpdateDiaryRequest carries a partial update; nil fields are left untouched.
type UpdateDiaryRequest struct {
	Title         *string             `json:"title"`
	Detail        *string             `json:"detail"`
	PositiveScore *int                `json:"positive_score"`
	NegativeScore *int                `json:"negative_score"`
	OverallScore  *int                `json:"overall_score"`
	PositiveTags  *[]string           `json:"positive_tags"`
	NegativeTags  *[]string           `json:"negative_tags"`
	Activities    *[]ActivitySnapshot `json:"activities"`
}

type DiaryListResponse struct {
	Items []DiaryEntry `json:"items"`
	Total int64        `json:"total"`
}

type CreateActivityRequest struct {
	Date          string  `json:"date" binding:"required"`
	Title         string  `json:"title" binding:"required,max=200"`
	Category      string  `json:"category"`
	Status        Status  `json:"status"`
	ScheduledTime *string `json:"scheduled_time"`
}

type UpdateActivityStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}
