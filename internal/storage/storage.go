// storage описывает контракты хранилища пользователей и записей дневника.
// Реализации обязаны возвращать ошибки, оборачивающие ErrNotFound/ErrAlreadyExists,
// чтобы сервисный слой мог их различать через errors.Is.
package storage

//go:generate mockgen -source=storage.go -destination=../../mocks/storage.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/thought-diary/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/запись дневника).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (email).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
type UserStorage interface {
	// SaveUser создаёт пользователя и заполняет user.ID.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

// DiaryStorage выполняет операции над записями дневника.
type DiaryStorage interface {
	// SaveDiary создаёт запись и заполняет ID и таймстемпы.
	SaveDiary(ctx context.Context, diary *models.Diary) error
	// DiaryByID возвращает запись по ID.
	DiaryByID(ctx context.Context, id int64) (*models.Diary, error)
	// UpdateDiaryContent заменяет текст и сбрасывает analyzed_content в NULL.
	UpdateDiaryContent(ctx context.Context, id int64, content string, updatedAt time.Time) error
	// SetAnalyzedContent сохраняет результат анализа тональности.
	SetAnalyzedContent(ctx context.Context, id int64, analyzed string) error
	// DeleteDiary удаляет запись.
	DeleteDiary(ctx context.Context, id int64) error
	// ListDiaries возвращает страницу записей пользователя и их общее число.
	ListDiaries(ctx context.Context, userID int64, limit, offset int) ([]models.Diary, int, error)
	// DiaryAggregates считает счётчики и среднюю длину записей пользователя.
	DiaryAggregates(ctx context.Context, userID int64, weekAgo, monthAgo time.Time) (*models.DiaryAggregates, error)
	// AnalyzedContents возвращает analyzed_content всех записей пользователя (nil — не размечена).
	AnalyzedContents(ctx context.Context, userID int64) ([]*string, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	DiaryStorage
	Ping(ctx context.Context) error
	Close()
}
