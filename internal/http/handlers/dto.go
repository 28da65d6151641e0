package handlers

import (
	"time"

	"github.com/pribylovaa/thought-diary/internal/models"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type contentRequest struct {
	Content string `json:"content"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type loginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
	ExpiresIn    int64        `json:"expires_in"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type diaryResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Content         string    `json:"content"`
	AnalyzedContent *string   `json:"analyzed_content"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	AnalysisWarning string    `json:"analysis_warning,omitempty"`
}

type diaryPageResponse struct {
	Items      []diaryResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

type statsResponse struct {
	TotalEntries     int                      `json:"total_entries"`
	EntriesThisWeek  int                      `json:"entries_this_week"`
	EntriesThisMonth int                      `json:"entries_this_month"`
	AverageLength    int                      `json:"average_length"`
	SentimentCounts  map[models.Sentiment]int `json:"sentiment_counts"`
	LastEntryDate    *time.Time               `json:"last_entry_date"`
}

func userFromModel(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func diaryFromModel(d *models.Diary) diaryResponse {
	return diaryResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		Content:         d.Content,
		AnalyzedContent: d.AnalyzedContent,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		AnalysisWarning: d.AnalysisWarning,
	}
}

func pageFromModel(p *models.DiaryPage) diaryPageResponse {
	items := make([]diaryResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, diaryFromModel(&p.Items[i]))
	}

	return diaryPageResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}

func statsFromModel(s *models.DiaryStats) statsResponse {
	return statsResponse{
		TotalEntries:     s.TotalEntries,
		EntriesThisWeek:  s.EntriesThisWeek,
		EntriesThisMonth: s.EntriesThisMonth,
		AverageLength:    s.AverageLength,
		SentimentCounts:  s.SentimentCounts,
		LastEntryDate:    s.LastEntryDate,
	}
}
