package bookingconfig

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByOrganization(ctx context.Context, organizationID int64) (*domain.BookingConfiguration, error) {
	args := m.Called(ctx, organizationID)
	if cfg := args.Get(0); cfg != nil {
		return cfg.(*domain.BookingConfiguration), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Upsert(ctx context.Context, config *domain.BookingConfiguration) (*domain.BookingConfiguration, error) {
	args := m.Called(ctx, config)
	if cfg := args.Get(0); cfg != nil {
		return cfg.(*domain.BookingConfiguration), args.Error(1)
	}
	return nil, args.Error(1)
}

// unreachableRedis клиент, у которого все команды завершаются ошибкой соединения
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// localRedis клиент к Redis в памяти процесса
func localRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func sampleConfig() *domain.BookingConfiguration {
	return &domain.BookingConfiguration{
		OrganizationID:      42,
		WorkingHours:        domain.WorkingHours{1: {Start: "09:00", End: "18:00"}},
		SlotDurationMinutes: 30,
		MinAdvanceHours:     2,
		BreakTime:           &domain.TimeRange{Start: "13:00", End: "14:00"},
		TimeZone:            "Europe/Moscow",
		CreatedAt:           time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:           time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestCache_FallsBackToRepositoryWhenRedisIsDown(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByOrganization", mock.Anything, int64(42)).Return(sampleConfig(), nil).Once()

	cache := New(repo, unreachableRedis(t), time.Minute, logger.NewNop())

	got, err := cache.GetByOrganization(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, sampleConfig(), got)
	repo.AssertExpectations(t)
}

func TestCache_PropagatesRepositoryErrors(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &mockRepository{}
	repo.On("GetByOrganization", mock.Anything, int64(7)).Return(nil, repoErr).Once()

	cache := New(repo, unreachableRedis(t), time.Minute, logger.NewNop())

	_, err := cache.GetByOrganization(context.Background(), 7)

	assert.ErrorIs(t, err, repoErr)
}

func TestCache_UpsertSucceedsEvenIfInvalidationFails(t *testing.T) {
	cfg := sampleConfig()
	repo := &mockRepository{}
	repo.On("Upsert", mock.Anything, cfg).Return(cfg, nil).Once()

	cache := New(repo, unreachableRedis(t), time.Minute, logger.NewNop())

	saved, err := cache.Upsert(context.Background(), cfg)

	require.NoError(t, err)
	assert.Same(t, cfg, saved)
	repo.AssertExpectations(t)
}

func TestCache_ServesSecondReadFromRedis(t *testing.T) {
	server, client := localRedis(t)
	repo := &mockRepository{}
	repo.On("GetByOrganization", mock.Anything, int64(42)).Return(sampleConfig(), nil).Once()

	cache := New(repo, client, time.Minute, logger.NewNop())

	first, err := cache.GetByOrganization(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, server.Exists("booking_config:42"))
	assert.Equal(t, time.Minute, server.TTL("booking_config:42"))

	second, err := cache.GetByOrganization(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "GetByOrganization", 1)
}

func TestCache_UpsertInvalidatesEntry(t *testing.T) {
	server, client := localRedis(t)
	stale := sampleConfig()
	updated := sampleConfig()
	updated.SlotDurationMinutes = 15

	repo := &mockRepository{}
	repo.On("GetByOrganization", mock.Anything, int64(42)).Return(stale, nil).Once()
	repo.On("Upsert", mock.Anything, updated).Return(updated, nil).Once()
	repo.On("GetByOrganization", mock.Anything, int64(42)).Return(updated, nil).Once()

	cache := New(repo, client, time.Minute, logger.NewNop())

	_, err := cache.GetByOrganization(context.Background(), 42)
	require.NoError(t, err)
	require.True(t, server.Exists("booking_config:42"))

	_, err = cache.Upsert(context.Background(), updated)
	require.NoError(t, err)
	assert.False(t, server.Exists("booking_config:42"))

	got, err := cache.GetByOrganization(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 15, got.SlotDurationMinutes)
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "GetByOrganization", 2)
}

func TestCache_ReplacesCorruptedEntry(t *testing.T) {
	server, client := localRedis(t)
	require.NoError(t, server.Set("booking_config:42", "{not json"))

	repo := &mockRepository{}
	repo.On("GetByOrganization", mock.Anything, int64(42)).Return(sampleConfig(), nil).Once()

	cache := New(repo, client, time.Minute, logger.NewNop())

	got, err := cache.GetByOrganization(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, sampleConfig(), got)

	raw, err := server.Get("booking_config:42")
	require.NoError(t, err)
	var cached cachedConfig
	assert.NoError(t, json.Unmarshal([]byte(raw), &cached))
}

func TestCachedConfig_RoundTrip(t *testing.T) {
	data, err := json.Marshal(toCached(sampleConfig()))
	require.NoError(t, err)

	var cached cachedConfig
	require.NoError(t, json.Unmarshal(data, &cached))

	assert.Equal(t, sampleConfig(), cached.toDomain())
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "booking_config:42", cacheKey(42))
}
