package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/thought-diary/internal/models"
	"github.com/pribylovaa/thought-diary/internal/storage"
)

const diaryColumns = `id, user_id, content, analyzed_content, created_at, updated_at`

// SaveDiary создаёт запись дневника. analyzed_content всегда пишется как есть
// (обычно NULL — анализ выполняется после сохранения).
// Если владельца нет (нарушение внешнего ключа) — storage.ErrNotFound.
func (s *Storage) SaveDiary(ctx context.Context, diary *models.Diary) error {
	const op = "storage.postgres.SaveDiary"

	query := `
		INSERT INTO thought_diaries(user_id, content, analyzed_content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		diary.UserID,
		diary.Content,
		diary.AnalyzedContent,
		diary.CreatedAt,
		diary.UpdatedAt,
	).Scan(&diary.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DiaryByID возвращает запись по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) DiaryByID(ctx context.Context, id int64) (*models.Diary, error) {
	const op = "storage.postgres.DiaryByID"

	query := `SELECT ` + diaryColumns + ` FROM thought_diaries WHERE id = $1`

	diary, err := scanDiary(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return diary, nil
}

// UpdateDiaryContent заменяет текст записи и сбрасывает прежнюю разметку.
func (s *Storage) UpdateDiaryContent(ctx context.Context, id int64, content string, updatedAt time.Time) error {
	const op = "storage.postgres.UpdateDiaryContent"

	tag, err := s.db.Exec(ctx, `
		UPDATE thought_diaries
		SET content = $2, analyzed_content = NULL, updated_at = $3
		WHERE id = $1
	`, id, content, updatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetAnalyzedContent сохраняет размеченный текст.
func (s *Storage) SetAnalyzedContent(ctx context.Context, id int64, analyzed string) error {
	const op = "storage.postgres.SetAnalyzedContent"

	tag, err := s.db.Exec(ctx, `
		UPDATE thought_diaries
		SET analyzed_content = $2
		WHERE id = $1
	`, id, analyzed)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteDiary удаляет запись.
func (s *Storage) DeleteDiary(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteDiary"

	tag, err := s.db.Exec(ctx, `DELETE FROM thought_diaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListDiaries возвращает страницу записей пользователя (offset-пагинация).
// Сортировка фиксирована: created_at DESC, id DESC.
func (s *Storage) ListDiaries(ctx context.Context, userID int64, limit, offset int) ([]models.Diary, int, error) {
	const op = "storage.postgres.ListDiaries"

	var total int
	if err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM thought_diaries WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+diaryColumns+`
		FROM thought_diaries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Diary, 0, limit)
	for rows.Next() {
		diary, scanErr := scanDiary(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		items = append(items, *diary)
	}

	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return items, total, nil
}

// DiaryAggregates считает агрегаты одним запросом.
func (s *Storage) DiaryAggregates(ctx context.Context, userID int64, weekAgo, monthAgo time.Time) (*models.DiaryAggregates, error) {
	const op = "storage.postgres.DiaryAggregates"

	var (
		agg  models.DiaryAggregates
		avg  *float64
		last *time.Time
	)

	err := s.db.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE created_at >= $2),
			count(*) FILTER (WHERE created_at >= $3),
			avg(length(content))::float8,
			max(created_at)
		FROM thought_diaries
		WHERE user_id = $1
	`, userID, weekAgo, monthAgo).Scan(&agg.Total, &agg.SinceWeek, &agg.SinceMonth, &avg, &last)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if avg != nil {
		agg.AverageLength = *avg
	}

	if last != nil {
		utc := last.UTC()
		agg.LastCreatedAt = &utc
	}

	return &agg, nil
}

// AnalyzedContents возвращает разметку всех записей пользователя.
func (s *Storage) AnalyzedContents(ctx context.Context, userID int64) ([]*string, error) {
	const op = "storage.postgres.AnalyzedContents"

	rows, err := s.db.Query(ctx,
		`SELECT analyzed_content FROM thought_diaries WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []*string
	for rows.Next() {
		var analyzed *string
		if err := rows.Scan(&analyzed); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}

		out = append(out, analyzed)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return out, nil
}

func scanDiary(row pgx.Row) (*models.Diary, error) {
	var diary models.Diary
	if err := row.Scan(
		&diary.ID,
		&diary.UserID,
		&diary.Content,
		&diary.AnalyzedContent,
		&diary.CreatedAt,
		&diary.UpdatedAt,
	); err != nil {
		return nil, err
	}

	// Нормализация в UTC.
	diary.CreatedAt = diary.CreatedAt.UTC()
	diary.UpdatedAt = diary.UpdatedAt.UTC()

	return &diary, nil
}
