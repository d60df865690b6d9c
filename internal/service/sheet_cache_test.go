package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bizdash-core/internal/adapter/sheets"
	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports/mocks"
	"bizdash-core/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

var projectGrid = [][]any{
	{"Project Name ", " Status"},
	{"Website Redesign", "In Progress"},
}

func TestSheetCache_Get_FreshEntryFetchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil).Times(1)

	clock := newFakeClock()
	cache := NewSheetCache(src, 300*time.Second, newTestLogger(), WithClock(clock.Now))
	ctx := context.Background()

	first, err := cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
	clock.Advance(299 * time.Second)
	second, err := cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"Project Name", "Status"}, first.Columns)
	assert.Equal(t, first, second)
}

func TestSheetCache_Get_StaleEntryRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "Projects").Return(projectGrid, nil).Times(2)

	clock := newFakeClock()
	cache := NewSheetCache(src, time.Minute, newTestLogger(), WithClock(clock.Now))

	_, err := cache.Get(context.Background(), "sheet1", "Projects", true)
	require.NoError(t, err)
	clock.Advance(time.Minute)
	_, err = cache.Get(context.Background(), "sheet1", "Projects", true)
	require.NoError(t, err)
}

func TestSheetCache_Get_BypassCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil).Times(2)

	cache := NewSheetCache(src, time.Hour, newTestLogger())
	_, err := cache.Get(context.Background(), "sheet1", "", true)
	require.NoError(t, err)
	_, err = cache.Get(context.Background(), "sheet1", "", false)
	require.NoError(t, err)
}

func TestSheetCache_Get_FetchErrorLeavesCacheUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	gomock.InOrder(
		src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil),
		src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(nil, errors.New("quota exceeded")),
	)

	clock := newFakeClock()
	cache := NewSheetCache(src, time.Minute, newTestLogger(), WithClock(clock.Now))
	_, err := cache.Get(context.Background(), "sheet1", "", true)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = cache.Get(context.Background(), "sheet1", "", true)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeDataSource, appErr.Code)

	stale, ok := cache.Peek("sheet1", "")
	require.True(t, ok)
	assert.Equal(t, "Website Redesign", stale.Rows[0]["Project Name"])
}

func TestSheetCache_AppendRow_InvalidatesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil).Times(2)
	src.EXPECT().AppendRow(gomock.Any(), "sheet1", "", []any{"P1", "Done"}).Return(nil)

	cache := NewSheetCache(src, time.Hour, newTestLogger())
	ctx := context.Background()

	_, err := cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
	assert.True(t, cache.AppendRow(ctx, "sheet1", []any{"P1", "Done"}, ""))
	_, err = cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
}

func TestSheetCache_AppendRow_InvalidatesEveryWorksheetOfSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// "" and "Projects" name the same first sheet on the remote side.
	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "Projects").Return(projectGrid, nil)
	src.EXPECT().ReadAll(gomock.Any(), "sheet2", "").Return(projectGrid, nil)
	src.EXPECT().AppendRow(gomock.Any(), "sheet1", "", []any{"P1", "Done"}).Return(nil)

	cache := NewSheetCache(src, time.Hour, newTestLogger())
	ctx := context.Background()

	for _, key := range []domain.CacheKey{{SourceID: "sheet1"}, {SourceID: "sheet1", Worksheet: "Projects"}, {SourceID: "sheet2"}} {
		_, err := cache.Get(ctx, key.SourceID, key.Worksheet, true)
		require.NoError(t, err)
	}

	assert.True(t, cache.AppendRow(ctx, "sheet1", []any{"P1", "Done"}, ""))

	_, ok := cache.Peek("sheet1", "")
	assert.False(t, ok)
	_, ok = cache.Peek("sheet1", "Projects")
	assert.False(t, ok, "the titled alias must not keep serving the pre-append table")
	_, ok = cache.Peek("sheet2", "")
	assert.True(t, ok)
}

func TestSheetCache_AppendRow_FailureKeepsEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil).Times(1)
	src.EXPECT().AppendRow(gomock.Any(), "sheet1", "", gomock.Any()).Return(errors.New("permission denied"))

	cache := NewSheetCache(src, time.Hour, newTestLogger())
	ctx := context.Background()

	_, err := cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
	assert.False(t, cache.AppendRow(ctx, "sheet1", []any{"P1"}, ""))
	assert.Equal(t, 1, cache.CacheInfo().Count)
}

func TestSheetCache_UpdateTable_InvalidatesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	table := domain.NewTable(projectGrid)
	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil).Times(2)
	src.EXPECT().ReplaceAll(gomock.Any(), "sheet1", "", table.Values()).Return(nil)

	cache := NewSheetCache(src, time.Hour, newTestLogger())
	ctx := context.Background()

	_, err := cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
	assert.True(t, cache.UpdateTable(ctx, "sheet1", table, ""))
	assert.Equal(t, 0, cache.CacheInfo().Count)
	_, err = cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
}

func TestSheetCache_UpdateTable_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReplaceAll(gomock.Any(), "sheet1", "", gomock.Any()).Return(errors.New("boom"))

	cache := NewSheetCache(src, time.Hour, newTestLogger())
	assert.False(t, cache.UpdateTable(context.Background(), "sheet1", domain.NewTable(projectGrid), ""))
}

func TestSheetCache_InvalidateClearAndInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(projectGrid, nil).AnyTimes()

	clock := newFakeClock()
	cache := NewSheetCache(src, time.Hour, newTestLogger(), WithClock(clock.Now))
	ctx := context.Background()

	assert.Equal(t, domain.CacheInfo{}, cache.CacheInfo())

	oldest := clock.Now()
	_, _ = cache.Get(ctx, "a", "", true)
	clock.Advance(time.Minute)
	_, _ = cache.Get(ctx, "b", "", true)
	_, _ = cache.Get(ctx, "b", "Calls", true)

	info := cache.CacheInfo()
	assert.Equal(t, 3, info.Count)
	require.NotNil(t, info.OldestFetchedAt)
	assert.Equal(t, oldest, *info.OldestFetchedAt)

	cache.Invalidate("b", "Calls")
	assert.Equal(t, 2, cache.CacheInfo().Count)
	_, ok := cache.Peek("b", "Calls")
	assert.False(t, ok)

	cache.Clear()
	assert.Equal(t, 0, cache.CacheInfo().Count)
	assert.Nil(t, cache.CacheInfo().OldestFetchedAt)
}

func TestSheetCache_ReturnedTableIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil).Times(1)

	cache := NewSheetCache(src, time.Hour, newTestLogger())
	got, err := cache.Get(context.Background(), "sheet1", "", true)
	require.NoError(t, err)
	got.Rows[0]["Status"] = "Completed"

	again, err := cache.Get(context.Background(), "sheet1", "", true)
	require.NoError(t, err)
	assert.Equal(t, "In Progress", again.Rows[0]["Status"])
}

func TestSheetCache_AppendThenRead(t *testing.T) {
	src := sheets.NewMemorySource()
	src.Seed("sheet1", "", [][]any{{"Project Name", "Status"}})

	cache := NewSheetCache(src, time.Hour, newTestLogger())
	ctx := context.Background()

	before, err := cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
	assert.True(t, before.IsEmpty())

	require.True(t, cache.AppendRow(ctx, "sheet1", []any{"P1", "Not Started"}, ""))

	after, err := cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
	require.Equal(t, 1, after.Len())
	assert.Equal(t, "P1", after.Rows[0]["Project Name"])
}

func TestSheetCache_FetchRacingInvalidationIsNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := mocks.NewMockSheetSource(ctrl)
	cache := NewSheetCache(src, 300*time.Second, newTestLogger())
	ctx := context.Background()

	// The append lands while the first read is in flight.
	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").
		DoAndReturn(func(context.Context, string, string) ([][]any, error) {
			cache.Invalidate("sheet1", "")
			return projectGrid, nil
		})
	_, err := cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)

	_, ok := cache.Peek("sheet1", "")
	assert.False(t, ok, "a read that raced an invalidation must not be cached")

	src.EXPECT().ReadAll(gomock.Any(), "sheet1", "").Return(projectGrid, nil)
	_, err = cache.Get(ctx, "sheet1", "", true)
	require.NoError(t, err)
	_, ok = cache.Peek("sheet1", "")
	assert.True(t, ok)
}
