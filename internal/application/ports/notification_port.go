package ports

import (
	"context"
	"time"
)

// NotificationType tipo de evento notificado.
type NotificationType string

const (
	NotificationCompanyRegistered NotificationType = "COMPANY_REGISTERED"
	NotificationUserRegistered    NotificationType = "USER_REGISTERED"
	NotificationCompanyActivated  NotificationType = "COMPANY_ACTIVATED"
	NotificationUserActivated     NotificationType = "USER_ACTIVATED"
)

// Notification mensaje publicado tras un registro o una activación.
type Notification struct {
	ID            string           `json:"id"`
	Type          NotificationType `json:"type"`
	Recipient     string           `json:"recipient"`
	Username      string           `json:"username,omitempty"`
	CompanyCode   string           `json:"companyCode,omitempty"`
	ActivationKey string           `json:"activationKey,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Notifier define el puerto de salida para notificaciones (Kafka, Redis, SMTP, log).
// La entrega es best-effort: quien llama solo registra el error.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
