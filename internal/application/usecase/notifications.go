package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/sm-customers/internal/application/ports"
	"github.com/jhoicas/sm-customers/pkg/logger"
)

// DefaultNotifyTimeout tiempo máximo de una entrega.
const DefaultNotifyTimeout = 5 * time.Second

// Dispatcher entrega notificaciones en segundo plano. Los fallos solo se registran:
// una notificación perdida nunca hace fallar la operación que la originó.
type Dispatcher struct {
	notifier ports.Notifier
	timeout  time.Duration
	log      *logger.Logger
	wg       sync.WaitGroup
}

// NewDispatcher construye el despachador. Con notifier nil no envía nada.
func NewDispatcher(notifier ports.Notifier, timeout time.Duration, log *logger.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	return &Dispatcher{notifier: notifier, timeout: timeout, log: log}
}

// Dispatch completa ID y fecha y lanza la entrega en una goroutine propia, desligada del
// contexto de la petición.
func (d *Dispatcher) Dispatch(n ports.Notification) {
	if d == nil || d.notifier == nil {
		return
	}
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.notifier.Notify(ctx, n); err != nil {
			d.log.Warn().Err(err).
				Str("notification_id", n.ID).
				Str("type", string(n.Type)).
				Msg("no se pudo entregar la notificación")
			return
		}
		d.log.Debug().Str("notification_id", n.ID).Str("type", string(n.Type)).Msg("notificación entregada")
	}()
}

// Wait bloquea hasta que terminen las entregas en curso (apagado ordenado y tests).
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}
