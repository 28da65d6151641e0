package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/thought-diary/internal/models"
)

const (
	positiveMarker = `<span class="positive">`
	negativeMarker = `<span class="negative">`

	week  = 7 * 24 * time.Hour
	month = 30 * 24 * time.Hour
)

// DiaryStats считает статистику по записям пользователя.
//
// Распределение тональности — оценка по количеству маркеров в разметке
// модели, а не гарантированный результат: запись без разметки считается
// нейтральной.
func (s *Service) DiaryStats(ctx context.Context, userID int64) (*models.DiaryStats, error) {
	const op = "service.stats.DiaryStats"

	now := s.now()

	agg, err := s.storage.DiaryAggregates(ctx, userID, now.Add(-week), now.Add(-month))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	analyzed, err := s.storage.AnalyzedContents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	counts := map[models.Sentiment]int{
		models.SentimentPositive: 0,
		models.SentimentNegative: 0,
		models.SentimentNeutral:  0,
	}
	for _, a := range analyzed {
		counts[ClassifySentiment(a)]++
	}

	return &models.DiaryStats{
		TotalEntries:     agg.Total,
		EntriesThisWeek:  agg.SinceWeek,
		EntriesThisMonth: agg.SinceMonth,
		AverageLength:    int(agg.AverageLength),
		SentimentCounts:  counts,
		LastEntryDate:    agg.LastCreatedAt,
	}, nil
}

// ClassifySentiment сравнивает число позитивных и негативных фрагментов.
func ClassifySentiment(analyzed *string) models.Sentiment {
	if analyzed == nil {
		return models.SentimentNeutral
	}

	pos := strings.Count(*analyzed, positiveMarker)
	neg := strings.Count(*analyzed, negativeMarker)

	switch {
	case pos > neg:
		return models.SentimentPositive
	case neg > pos:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
