package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pribylovaa/thought-diary/internal/models"
	"github.com/pribylovaa/thought-diary/internal/storage"
	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T, st *Storage, email string) *models.User {
	t.Helper()
	now := time.Now().UTC()
	u := &models.User{Email: email, PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.SaveUser(context.Background(), u))
	return u
}

func mustDiary(t *testing.T, st *Storage, userID int64, content string, createdAt time.Time) *models.Diary {
	t.Helper()
	d := &models.Diary{UserID: userID, Content: content, CreatedAt: createdAt, UpdatedAt: createdAt}
	require.NoError(t, st.SaveDiary(context.Background(), d))
	return d
}

// TestIntegration_Diary_RoundTrip — запись с разметкой читается без изменений.
func TestIntegration_Diary_RoundTrip(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := mustUser(t, st, "owner@example.com")
	d := mustDiary(t, st, u.ID, "hello", time.Now().UTC())
	require.NotZero(t, d.ID)

	got, err := st.DiaryByID(ctx, d.ID)
	require.NoError(t, err)
	require.Nil(t, got.AnalyzedContent)

	const analyzed = `<span class="positive">hello</span>`
	require.NoError(t, st.SetAnalyzedContent(ctx, d.ID, analyzed))

	got, err = st.DiaryByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "hello", got.Content)
	require.NotNil(t, got.AnalyzedContent)
	require.Equal(t, analyzed, *got.AnalyzedContent)
}

// TestIntegration_UpdateDiaryContent_ResetsAnalysis — смена текста обнуляет старую разметку.
func TestIntegration_UpdateDiaryContent_ResetsAnalysis(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := mustUser(t, st, "upd@example.com")
	d := mustDiary(t, st, u.ID, "before", time.Now().UTC())
	require.NoError(t, st.SetAnalyzedContent(ctx, d.ID, "<span>before</span>"))

	require.NoError(t, st.UpdateDiaryContent(ctx, d.ID, "after", time.Now().UTC()))

	got, err := st.DiaryByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "after", got.Content)
	require.Nil(t, got.AnalyzedContent)

	require.ErrorIs(t, st.UpdateDiaryContent(ctx, 999999, "x", time.Now()), storage.ErrNotFound)
}

func TestIntegration_DeleteDiary(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := mustUser(t, st, "del@example.com")
	d := mustDiary(t, st, u.ID, "bye", time.Now().UTC())

	require.NoError(t, st.DeleteDiary(ctx, d.ID))
	_, err := st.DiaryByID(ctx, d.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, st.DeleteDiary(ctx, d.ID), storage.ErrNotFound)
}

// TestIntegration_ListDiaries_Pagination — 15 записей по 5 на страницу.
func TestIntegration_ListDiaries_Pagination(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := mustUser(t, st, "pages@example.com")
	other := mustUser(t, st, "other@example.com")
	mustDiary(t, st, other.ID, "foreign", time.Now().UTC())

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		mustDiary(t, st, u.ID, fmt.Sprintf("entry %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	first, total, err := st.ListDiaries(ctx, u.ID, 5, 0)
	require.NoError(t, err)
	require.Equal(t, 15, total)
	require.Len(t, first, 5)
	require.Equal(t, "entry 14", first[0].Content) // новые сверху

	second, _, err := st.ListDiaries(ctx, u.ID, 5, 5)
	require.NoError(t, err)
	require.Len(t, second, 5)
	require.Equal(t, "entry 9", second[0].Content)
}

func TestIntegration_DiaryAggregates_And_AnalyzedContents(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	u := mustUser(t, st, "stats@example.com")

	now := time.Now().UTC()
	mustDiary(t, st, u.ID, "abcd", now.Add(-time.Hour))
	old := mustDiary(t, st, u.ID, "ab", now.Add(-10*24*time.Hour))
	mustDiary(t, st, u.ID, "abcdef", now.Add(-40*24*time.Hour))
	require.NoError(t, st.SetAnalyzedContent(ctx, old.ID, `<span class="negative">ab</span>`))

	agg, err := st.DiaryAggregates(ctx, u.ID, now.Add(-7*24*time.Hour), now.Add(-30*24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 3, agg.Total)
	require.Equal(t, 1, agg.SinceWeek)
	require.Equal(t, 2, agg.SinceMonth)
	require.InDelta(t, 4.0, agg.AverageLength, 0.001)
	require.NotNil(t, agg.LastCreatedAt)
	require.WithinDuration(t, now.Add(-time.Hour), *agg.LastCreatedAt, time.Second)

	contents, err := st.AnalyzedContents(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, contents, 3)

	empty, err := st.DiaryAggregates(ctx, 987654, now, now)
	require.NoError(t, err)
	require.Zero(t, empty.Total)
	require.Nil(t, empty.LastCreatedAt)
}

// TestIntegration_SaveDiary_UnknownOwner — запись без владельца не создаётся.
func TestIntegration_SaveDiary_UnknownOwner(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	now := time.Now().UTC()
	d := &models.Diary{UserID: 424242, Content: "orphan", CreatedAt: now, UpdatedAt: now}
	require.ErrorIs(t, st.SaveDiary(context.Background(), d), storage.ErrNotFound)
}
