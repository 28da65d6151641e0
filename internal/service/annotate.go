package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/thought-diary/internal/models"
	"github.com/pribylovaa/thought-diary/internal/pkg/log"
)

// Причины, по которым запись остаётся без разметки.
const (
	WarnAnalyzerUnavailable = "Sentiment analysis service is not available"
	WarnNoContent           = "No content to analyze"
)

// annotate пытается разметить уже сохранённую запись.
//
// Запись к этому моменту лежит в БД с analyzed_content = NULL, поэтому
// сбой анализа не теряет текст. Возвращает (true, "") при успехе и
// (false, причина) при любом отказе анализатора; ошибка возвращается
// только если не удалось сохранить результат.
func (s *Service) annotate(ctx context.Context, diary *models.Diary) (bool, string, error) {
	const op = "service.annotate"

	lg := log.From(ctx)

	if s.analyzer == nil || !s.analyzer.IsConfigured() {
		return false, WarnAnalyzerUnavailable, nil
	}

	if strings.TrimSpace(diary.Content) == "" {
		return false, WarnNoContent, nil
	}

	analyzed, err := s.analyzer.Analyze(ctx, diary.Content)
	if err != nil {
		lg.Warn("sentiment_analysis_failed",
			slog.Int64("diary_id", diary.ID),
			slog.String("err", err.Error()),
		)
		return false, err.Error(), nil
	}

	if err := s.storage.SetAnalyzedContent(ctx, diary.ID, analyzed); err != nil {
		lg.Error("save_analysis_failed",
			slog.String("op", op),
			slog.Int64("diary_id", diary.ID),
			slog.String("err", err.Error()),
		)
		return false, "", fmt.Errorf("%s: %w", op, err)
	}

	diary.AnalyzedContent = &analyzed

	return true, "", nil
}
