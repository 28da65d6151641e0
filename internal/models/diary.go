package models

import "time"

// Diary — запись дневника мыслей.
//
// Описание:
//   - Content — исходный текст пользователя;
//   - AnalyzedContent — текст с разметкой тональности от внешнего сервиса,
//     nil до первого успешного анализа;
//   - AnalysisWarning — причина, по которой анализ не выполнен в текущем
//     запросе. Не хранится в БД и заполняется только на create/update.
type Diary struct {
	ID              int64
	UserID          int64
	Content         string
	AnalyzedContent *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	AnalysisWarning string
}

// DiaryPage — страница записей с метаданными пагинации.
type DiaryPage struct {
	Items      []Diary
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Sentiment — итоговая тональность записи по разметке.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// DiaryStats — агрегированная статистика по записям пользователя.
type DiaryStats struct {
	TotalEntries     int
	EntriesThisWeek  int
	EntriesThisMonth int
	AverageLength    int
	SentimentCounts  map[Sentiment]int
	LastEntryDate    *time.Time
}

// DiaryAggregates — агрегаты, которые считает хранилище одним запросом.
type DiaryAggregates struct {
	Total         int
	SinceWeek     int
	SinceMonth    int
	AverageLength float64
	LastCreatedAt *time.Time
}
