package notification

import (
	"context"
	"fmt"

	"github.com/jhoicas/sm-customers/internal/application/ports"
	"github.com/jhoicas/sm-customers/pkg/config"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// Notifier notificador con recursos que liberar al apagar.
type Notifier interface {
	ports.Notifier
	Close() error
}

// New construye el notificador del driver configurado. Con "none" devuelve (nil, nil):
// el despachador no envía nada.
func New(cfg config.NotifierConfig, log *logger.Logger) (Notifier, error) {
	switch cfg.Driver {
	case config.NotifierNone:
		return nil, nil
	case config.NotifierLog:
		return NewLogNotifier(log), nil
	case config.NotifierKafka:
		return NewKafkaNotifier(cfg.Kafka)
	case config.NotifierRedis:
		return NewRedisNotifier(cfg.Redis), nil
	case config.NotifierMail:
		return NewMailNotifier(cfg.SMTP)
	default:
		return nil, fmt.Errorf("driver de notificación desconocido: %q", cfg.Driver)
	}
}

// LogNotifier escribe cada notificación en el log. Driver por defecto en desarrollo.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador de log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Component("notification")}
}

// Notify registra la notificación a nivel info. La clave de activación no se escribe.
func (n *LogNotifier) Notify(_ context.Context, msg ports.Notification) error {
	n.log.Info().
		Str("notification_id", msg.ID).
		Str("type", string(msg.Type)).
		Str("recipient", msg.Recipient).
		Str("username", msg.Username).
		Str("company_code", msg.CompanyCode).
		Msg("notificación")
	return nil
}

// Close no libera nada.
func (n *LogNotifier) Close() error { return nil }
