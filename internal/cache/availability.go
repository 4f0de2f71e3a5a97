package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/logger"
)

// AvailabilityCache guarda listas de horarios por (profesional, servicio,
// fecha) en Redis. Cada profesional tiene un contador de versión que se
// incrementa con cualquier escritura que pueda cambiar su disponibilidad;
// la versión forma parte de la llave, así que invalidar es incrementar.
// Solo el camino de lectura pasa por aquí: el commit siempre recalcula
// contra la base de datos.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: 60 * time.Second,
	}
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (c *AvailabilityCache) version(ctx context.Context, professionalID uint) int64 {
	v, err := c.rdb.Get(ctx, fmt.Sprintf("avail:ver:%d", professionalID)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (c *AvailabilityCache) slotKey(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
	date string,
) string {
	return fmt.Sprintf(
		"avail:%d:%d:%d:%s",
		professionalID, c.version(ctx, professionalID), serviceID, date,
	)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
	date string,
) ([]domain.TimeSlot, bool) {

	raw, err := c.rdb.Get(ctx, c.slotKey(ctx, professionalID, serviceID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
	date string,
	slots []domain.TimeSlot,
) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.slotKey(ctx, professionalID, serviceID, date), raw, c.ttl).Err(); err != nil {
		logger.L().Warnw("availability cache set failed", "err", err)
	}
}

// Invalidate descarta todo lo cacheado del profesional incrementando su
// versión; las llaves viejas expiran solas por TTL.
func (c *AvailabilityCache) Invalidate(ctx context.Context, professionalID uint) {
	if err := c.rdb.Incr(ctx, fmt.Sprintf("avail:ver:%d", professionalID)).Err(); err != nil {
		logger.L().Warnw("availability cache invalidate failed", "err", err)
	}
}
