package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/redis/go-redis/v9"
)

// redisSlotStorage keeps each slot under the key prefix+slot.
type redisSlotStorage struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewConnectRedis opens a client and pings the server.
func NewConnectRedis(ctx context.Context, addr, password string, db int, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

func NewRedisSlotStorage(client *redis.Client, prefix string, log *logger.Logger) SlotStorage {
	return &redisSlotStorage{client: client, prefix: prefix, logger: log}
}

func (r *redisSlotStorage) key(slot string) string {
	return r.prefix + slot
}

func (r *redisSlotStorage) Get(ctx context.Context, slot string) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*redisSlotStorage.Get").Str("slot", slot).Msg("error reading slot")
		return nil, fmt.Errorf("error reading slot from redis: %w", err)
	}

	return payload, nil
}

func (r *redisSlotStorage) Set(ctx context.Context, slot string, payload []byte) error {
	err := r.client.Set(ctx, r.key(slot), payload, 0).Err()
	if err == nil {
		return nil
	}

	r.logger.Err(err).Str("func", "*redisSlotStorage.Set").Str("slot", slot).Msg("error writing slot")

	err = fmt.Errorf("error writing slot to redis: %w", err)
	if isRedisOOM(err) {
		return errors.Join(ErrQuotaExceeded, err)
	}
	return err
}

// isRedisOOM reports whether the server refused the write because maxmemory
// was reached.
func isRedisOOM(err error) bool {
	var redisErr redis.Error
	if errors.As(err, &redisErr) {
		return strings.HasPrefix(redisErr.Error(), "OOM")
	}
	return false
}
