package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/thought-diary/internal/models"
	"github.com/pribylovaa/thought-diary/internal/pkg/log"
	"github.com/pribylovaa/thought-diary/internal/pkg/redact"
	"github.com/pribylovaa/thought-diary/internal/storage"
	"github.com/pribylovaa/thought-diary/internal/validation"
)

// Параметры пагинации списка записей.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 50
	// MaxPage держит смещение (page-1)*per_page далеко от переполнения int.
	MaxPage = 1_000_000
)

type contentInput struct {
	Content string `json:"content" validate:"required,min=1,max=10000,notblank"`
}

type pageInput struct {
	Page    int `json:"page" validate:"min=1,max=1000000"`
	PerPage int `json:"per_page" validate:"min=1"`
}

// CreateDiary сохраняет новую запись и пытается её разметить.
// Отказ анализа не отменяет создание: причина возвращается в AnalysisWarning.
func (s *Service) CreateDiary(ctx context.Context, userID int64, content string) (*models.Diary, error) {
	const op = "service.diaries.CreateDiary"

	in := contentInput{Content: content}
	if err := validation.Struct(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	diary := &models.Diary{
		UserID:    userID,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveDiary(ctx, diary); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("diary_created",
		slog.Int64("diary_id", diary.ID),
		slog.String("content", redact.Content(diary.Content)),
	)

	_, warning, err := s.annotate(ctx, diary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	diary.AnalysisWarning = warning

	return diary, nil
}

// GetDiary возвращает запись владельца.
func (s *Service) GetDiary(ctx context.Context, userID, id int64) (*models.Diary, error) {
	const op = "service.diaries.GetDiary"

	diary, err := s.ownedDiary(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return diary, nil
}

// UpdateDiary заменяет текст записи и заново её размечает.
// Прежняя разметка сбрасывается до анализа и не восстанавливается при его отказе.
func (s *Service) UpdateDiary(ctx context.Context, userID, id int64, content string) (*models.Diary, error) {
	const op = "service.diaries.UpdateDiary"

	in := contentInput{Content: content}
	if err := validation.Struct(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	diary, err := s.ownedDiary(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	if err := s.storage.UpdateDiaryContent(ctx, id, in.Content, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrDiaryNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	diary.Content = in.Content
	diary.AnalyzedContent = nil
	diary.UpdatedAt = now

	_, warning, err := s.annotate(ctx, diary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	diary.AnalysisWarning = warning

	return diary, nil
}

// DeleteDiary удаляет запись владельца.
func (s *Service) DeleteDiary(ctx context.Context, userID, id int64) error {
	const op = "service.diaries.DeleteDiary"

	if _, err := s.ownedDiary(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteDiary(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrDiaryNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("diary_deleted", slog.Int64("diary_id", id))

	return nil
}

// ListDiaries возвращает страницу записей пользователя, новые сверху.
// perPage больше MaxPerPage урезается до MaxPerPage.
func (s *Service) ListDiaries(ctx context.Context, userID int64, page, perPage int) (*models.DiaryPage, error) {
	const op = "service.diaries.ListDiaries"

	in := pageInput{Page: page, PerPage: perPage}
	if err := validation.Struct(&in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if in.PerPage > MaxPerPage {
		in.PerPage = MaxPerPage
	}

	items, total, err := s.storage.ListDiaries(ctx, userID, in.PerPage, (in.Page-1)*in.PerPage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if items == nil {
		items = []models.Diary{}
	}

	return &models.DiaryPage{
		Items:      items,
		Total:      total,
		Page:       in.Page,
		PerPage:    in.PerPage,
		TotalPages: (total + in.PerPage - 1) / in.PerPage,
	}, nil
}

// ownedDiary загружает запись и проверяет владельца.
func (s *Service) ownedDiary(ctx context.Context, userID, id int64) (*models.Diary, error) {
	const op = "service.diaries.ownedDiary"

	diary, err := s.storage.DiaryByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrDiaryNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if diary.UserID != userID {
		log.From(ctx).Warn("diary_access_denied",
			slog.Int64("diary_id", id),
			slog.Int64("owner_id", diary.UserID),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return diary, nil
}
