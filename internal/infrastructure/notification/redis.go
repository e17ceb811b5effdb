package notification

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/sm-customers/internal/application/ports"
	"github.com/jhoicas/sm-customers/pkg/config"
)

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Close() error
}

// RedisNotifier publica cada notificación como JSON en un canal pub/sub.
type RedisNotifier struct {
	client  publisher
	channel string
}

// NewRedisNotifier crea el cliente Redis. La conexión se abre en el primer uso.
func NewRedisNotifier(cfg config.RedisConfig) *RedisNotifier {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisNotifier{client: client, channel: cfg.Channel}
}

// Notify publica el mensaje. Cero suscriptores no es un error.
func (r *RedisNotifier) Notify(ctx context.Context, n ports.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, payload).Err()
}

// Close cierra el cliente.
func (r *RedisNotifier) Close() error {
	return r.client.Close()
}
