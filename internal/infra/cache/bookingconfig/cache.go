package bookingconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const keyPrefix = "booking_config:"

// Cache read-through кэш настроек в Redis
// Ошибки Redis не прерывают запрос: чтение уходит в репозиторий
type Cache struct {
	repo   Repository
	client redis.Cmdable
	ttl    time.Duration
	logger Logger
}

// New создает кэш поверх репозитория
func New(repo Repository, client redis.Cmdable, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		repo:   repo,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(organizationID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, organizationID)
}

// GetByOrganization возвращает настройки из кэша или из репозитория
func (c *Cache) GetByOrganization(ctx context.Context, organizationID int64) (*domain.BookingConfiguration, error) {
	key := cacheKey(organizationID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedConfig
		decodeErr := json.Unmarshal(data, &cached)
		if decodeErr == nil {
			return cached.toDomain(), nil
		}
		c.logger.Warn("BookingConfigCache: corrupted entry key=%s: %v", key, decodeErr)
	case errors.Is(err, redis.Nil):
		// промах
	default:
		c.logger.Warn("BookingConfigCache: get key=%s failed, reading repository: %v", key, err)
	}

	config, err := c.repo.GetByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, config)
	return config, nil
}

// Upsert сохраняет настройки в репозитории и сбрасывает кэш
func (c *Cache) Upsert(ctx context.Context, config *domain.BookingConfiguration) (*domain.BookingConfiguration, error) {
	saved, err := c.repo.Upsert(ctx, config)
	if err != nil {
		return nil, err
	}

	key := cacheKey(config.OrganizationID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("BookingConfigCache: invalidate key=%s failed, stale for up to %s: %v", key, c.ttl, err)
	}

	return saved, nil
}

func (c *Cache) store(ctx context.Context, key string, config *domain.BookingConfiguration) {
	data, err := json.Marshal(toCached(config))
	if err != nil {
		c.logger.Warn("BookingConfigCache: encode key=%s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("BookingConfigCache: set key=%s failed: %v", key, err)
	}
}
