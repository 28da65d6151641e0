// handlers — HTTP-хендлеры REST API дневника мыслей.
// Хендлеры только разбирают запрос и собирают ответ; правила
// валидации и доступа живут в сервисном слое.
package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	apierrors "github.com/pribylovaa/thought-diary/internal/http/errors"
	"github.com/pribylovaa/thought-diary/internal/models"
)

// maxBodyBytes — верхняя граница тела запроса (запись дневника до 10000 символов).
const maxBodyBytes = 1 << 20

// Service — то, что хендлерам нужно от сервисного слоя.
type Service interface {
	RegisterUser(ctx context.Context, email, password string) (*models.User, error)
	LoginUser(ctx context.Context, email, password string) (*models.User, *models.TokenPair, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, time.Time, error)
	Logout(ctx context.Context, access *models.Claims, refreshToken string) error
	ExpiryWindows() models.ExpiryWindows

	CreateDiary(ctx context.Context, userID int64, content string) (*models.Diary, error)
	GetDiary(ctx context.Context, userID, id int64) (*models.Diary, error)
	UpdateDiary(ctx context.Context, userID, id int64, content string) (*models.Diary, error)
	DeleteDiary(ctx context.Context, userID, id int64) error
	ListDiaries(ctx context.Context, userID int64, page, perPage int) (*models.DiaryPage, error)
	DiaryStats(ctx context.Context, userID int64) (*models.DiaryStats, error)

	Ping(ctx context.Context) error
}

// Options — сведения о развёртывании для системных эндпоинтов.
type Options struct {
	Env     string
	Version string
}

// Handlers агрегирует зависимости.
type Handlers struct {
	svc  Service
	opts Options
}

func New(svc Service, opts Options) *Handlers {
	return &Handlers{svc: svc, opts: opts}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: неизвестные поля запрещены.
// Пустое тело даёт нулевую структуру, чтобы клиент получил ошибки полей.
func decodeStrict(w http.ResponseWriter, r *http.Request, value any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", apierrors.ErrBadRequest, err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(value); err != nil {
		return fmt.Errorf("%w: %v", apierrors.ErrBadRequest, err)
	}

	if dec.More() {
		return fmt.Errorf("%w: trailing data", apierrors.ErrBadRequest)
	}

	return nil
}

// messageResponse — ответ вида {"message": "..."}.
type messageResponse struct {
	Message string `json:"message"`
}

// NotFound и MethodNotAllowed отдают ошибки в едином формате.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	apierrors.WriteError(w, r, apierrors.ErrNotFound)
}

func (h *Handlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	apierrors.WriteError(w, r, apierrors.ErrMethod)
}

var errNoClaims = errors.New("handlers: claims missing from context")
