package sync

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/iudanet/stravasync/internal/client/api"
	"github.com/iudanet/stravasync/internal/config"
	"github.com/iudanet/stravasync/internal/logbook"
	"github.com/iudanet/stravasync/pkg/api"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogPath:            filepath.Join(t.TempDir(), "log.txt"),
		ExcludedSportTypes: []string{"WeightTraining"},
		DetailThreshold:    1_000_000, // выше всех тестовых id: зоны не запрашиваются
		CallBudget:         100,
		Throttle:           0,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func summary(id int64, sportType string) api.SummaryActivity {
	return api.SummaryActivity{
		ID:             id,
		Name:           fmt.Sprintf("Activity %d", id),
		SportType:      sportType,
		StartDateLocal: "2026-02-07T10:00:00Z",
		Distance:       5000,
		MovingTime:     1500,
	}
}

// mockAPI возвращает mock, который отдает activities одной страницей
// и пустые detail/zones ответы
func mockAPI(activities []api.SummaryActivity) *httpClient.ClientAPIMock {
	return &httpClient.ClientAPIMock{
		ListActivitiesFunc: func(ctx context.Context, accessToken string, page, perPage int) ([]api.SummaryActivity, error) {
			if page > 1 {
				return nil, nil
			}
			return activities, nil
		},
		GetActivityFunc: func(ctx context.Context, accessToken string, id int64) (*api.DetailedActivity, error) {
			return &api.DetailedActivity{}, nil
		},
		GetActivityZonesFunc: func(ctx context.Context, accessToken string, id int64) ([]api.ActivityZone, error) {
			return nil, nil
		},
	}
}

func TestSync_FirstRun(t *testing.T) {
	cfg := testConfig(t)
	// API отдает newest first
	mock := mockAPI([]api.SummaryActivity{summary(20, "Run"), summary(10, "Ride")})
	service := NewService(mock, cfg, testLogger())

	result, err := service.Sync(context.Background(), "token", false)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 2, result.NewEntries)
	assert.Equal(t, 0, result.Updated)

	log, err := logbook.Load(cfg.LogPath)
	require.NoError(t, err)
	require.Equal(t, 2, log.Len())

	// Порядок в файле — по убыванию id
	sorted := log.Sorted()
	assert.Equal(t, int64(20), sorted[0].ID)
	assert.Equal(t, int64(10), sorted[1].ID)
}

func TestSync_Idempotent(t *testing.T) {
	cfg := testConfig(t)
	mock := mockAPI([]api.SummaryActivity{summary(20, "Run"), summary(10, "Ride")})
	service := NewService(mock, cfg, testLogger())
	ctx := context.Background()

	first, err := service.Sync(ctx, "token", false)
	require.NoError(t, err)
	require.True(t, first.Changed)

	afterFirst, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)

	// Повторный запуск с той же пачкой ничего не меняет
	second, err := service.Sync(ctx, "token", false)
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, 0, second.NewEntries)
	assert.Equal(t, 2, second.Unchanged)

	afterSecond, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)
	assert.Equal(t, afterFirst, afterSecond)
}

func TestSync_UpdateDetection(t *testing.T) {
	cfg := testConfig(t)
	mock := mockAPI([]api.SummaryActivity{summary(10, "Run")})
	service := NewService(mock, cfg, testLogger())
	ctx := context.Background()

	_, err := service.Sync(ctx, "token", false)
	require.NoError(t, err)

	// Пользователь дозаполнил RPE после первой синхронизации
	rpe := 7.0
	mock.GetActivityFunc = func(ctx context.Context, accessToken string, id int64) (*api.DetailedActivity, error) {
		return &api.DetailedActivity{PerceivedExertion: &rpe}, nil
	}

	result, err := service.Sync(ctx, "token", false)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.NewEntries)

	data, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Perceived exertion: Hard (7/10).")

	// Третий запуск без новых полей ничего не трогает
	third, err := service.Sync(ctx, "token", false)
	require.NoError(t, err)
	assert.False(t, third.Changed)
}

func TestSync_ExcludedCategory(t *testing.T) {
	cfg := testConfig(t)
	mock := mockAPI([]api.SummaryActivity{summary(10, "WeightTraining")})
	service := NewService(mock, cfg, testLogger())

	result, err := service.Sync(context.Background(), "token", false)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Excluded)
	assert.False(t, result.Changed)

	// Без изменений лог вообще не пишется
	_, statErr := os.Stat(cfg.LogPath)
	assert.True(t, os.IsNotExist(statErr))

	// Исключенные записи не стоят enrichment вызовов
	assert.Empty(t, mock.GetActivityCalls())
}

func TestSync_BudgetExhaustion(t *testing.T) {
	cfg := testConfig(t)
	cfg.CallBudget = 3 // 1 на страницу списка + 2 на detail

	activities := []api.SummaryActivity{
		summary(5, "Run"), summary(4, "Run"), summary(3, "Run"),
		summary(2, "Run"), summary(1, "Run"),
	}
	mock := mockAPI(activities)
	service := NewService(mock, cfg, testLogger())

	result, err := service.Sync(context.Background(), "token", false)

	// Исчерпание бюджета — не ошибка
	require.NoError(t, err)
	assert.True(t, result.StoppedEarly)
	assert.Equal(t, 3, result.CallsUsed)
	assert.Equal(t, 2, result.NewEntries)
	assert.Len(t, mock.GetActivityCalls(), 2)

	// Обработанные до исчерпания записи закоммичены: пачка идет
	// oldest first, поэтому в логе два самых старых id
	log, err := logbook.Load(cfg.LogPath)
	require.NoError(t, err)
	require.Equal(t, 2, log.Len())
	_, ok := log.Get(1)
	assert.True(t, ok)
	_, ok = log.Get(2)
	assert.True(t, ok)
}

func TestSync_PageFailureKeepsPartialSet(t *testing.T) {
	cfg := testConfig(t)
	mock := mockAPI(nil)
	mock.ListActivitiesFunc = func(ctx context.Context, accessToken string, page, perPage int) ([]api.SummaryActivity, error) {
		if page == 1 {
			return []api.SummaryActivity{summary(20, "Run"), summary(10, "Run")}, nil
		}
		return nil, fmt.Errorf("rate limited")
	}
	service := NewService(mock, cfg, testLogger())

	result, err := service.Sync(context.Background(), "token", true)

	// Ошибка страницы обрывает пагинацию, но не запуск
	require.NoError(t, err)
	assert.Equal(t, 2, result.Fetched)
	assert.Equal(t, 2, result.NewEntries)
}

func TestSync_DetailFailureMergesSummaryOnly(t *testing.T) {
	cfg := testConfig(t)
	mock := mockAPI([]api.SummaryActivity{summary(10, "Run")})
	mock.GetActivityFunc = func(ctx context.Context, accessToken string, id int64) (*api.DetailedActivity, error) {
		return nil, fmt.Errorf("server error (500)")
	}
	service := NewService(mock, cfg, testLogger())

	result, err := service.Sync(context.Background(), "token", false)

	require.NoError(t, err)
	assert.Equal(t, 1, result.NewEntries)
	assert.Equal(t, 0, result.Enriched)

	data, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!-- ID: 10 -->")
}

func TestSync_ZonesAboveThreshold(t *testing.T) {
	cfg := testConfig(t)
	cfg.DetailThreshold = 100

	mock := mockAPI([]api.SummaryActivity{summary(150, "Run")})
	mock.GetActivityZonesFunc = func(ctx context.Context, accessToken string, id int64) ([]api.ActivityZone, error) {
		return []api.ActivityZone{
			{
				Type: "heartrate",
				DistributionBuckets: []api.ZoneBucket{
					{Min: 120, Max: 140, Time: 300},
					{Min: 140, Max: -1, Time: 100},
				},
			},
		}, nil
	}
	service := NewService(mock, cfg, testLogger())

	_, err := service.Sync(context.Background(), "token", false)
	require.NoError(t, err)

	require.Len(t, mock.GetActivityZonesCalls(), 1)

	data, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Heart rate zones:")
	assert.Contains(t, string(data), "Z2 (140+):")
}

func TestSync_ZonesBelowThresholdNotFetched(t *testing.T) {
	cfg := testConfig(t)
	cfg.DetailThreshold = 1000

	mock := mockAPI([]api.SummaryActivity{summary(150, "Run")})
	service := NewService(mock, cfg, testLogger())

	_, err := service.Sync(context.Background(), "token", false)
	require.NoError(t, err)

	assert.Empty(t, mock.GetActivityZonesCalls())
}

func TestSync_HeaderPreserved(t *testing.T) {
	cfg := testConfig(t)
	header := "# Training context\n\nfree-form operator notes\n\n"
	require.NoError(t, os.WriteFile(cfg.LogPath, []byte(header), 0o644))

	mock := mockAPI([]api.SummaryActivity{summary(10, "Run")})
	service := NewService(mock, cfg, testLogger())

	_, err := service.Sync(context.Background(), "token", false)
	require.NoError(t, err)

	log, err := logbook.Load(cfg.LogPath)
	require.NoError(t, err)
	assert.Equal(t, header, log.Header)
	assert.Equal(t, 1, log.Len())
}

func TestSync_NoDuplicates(t *testing.T) {
	cfg := testConfig(t)
	mock := mockAPI([]api.SummaryActivity{summary(10, "Run")})
	service := NewService(mock, cfg, testLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.Sync(ctx, "token", false)
		require.NoError(t, err)
	}

	data, err := os.ReadFile(cfg.LogPath)
	require.NoError(t, err)
	assert.Equal(t, 1, logbook.Parse(string(data)).Len())
}
