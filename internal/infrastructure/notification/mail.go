package notification

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"text/template"

	"github.com/wneessen/go-mail"

	"github.com/jhoicas/sm-customers/internal/application/ports"
	"github.com/jhoicas/sm-customers/pkg/config"
)

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
	Close() error
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

var mailTemplates = map[ports.NotificationType]mailTemplate{
	ports.NotificationCompanyRegistered: {
		subject: "Empresa registrada",
		body: template.Must(template.New("company").Parse(
			"La empresa {{.CompanyCode}} fue registrada.\n\nActívela en:\n{{.BaseURL}}/companies/{{.CompanyCode}}/activation/{{.Key}}\n")),
	},
	ports.NotificationUserRegistered: {
		subject: "Active su cuenta",
		body: template.Must(template.New("user").Parse(
			"Hola {{.Username}}:\n\nActive su cuenta en:\n{{.BaseURL}}/users/{{.Username}}/activation/{{.Key}}\n")),
	},
	ports.NotificationCompanyActivated: {
		subject: "Empresa activada",
		body:    template.Must(template.New("companyActivated").Parse("La empresa {{.CompanyCode}} está activa.\n")),
	},
	ports.NotificationUserActivated: {
		subject: "Cuenta activada",
		body:    template.Must(template.New("userActivated").Parse("Hola {{.Username}}: su cuenta está activa.\n")),
	},
}

// MailNotifier envía un correo por notificación.
type MailNotifier struct {
	client  mailSender
	from    string
	baseURL string
}

// NewMailNotifier crea el cliente SMTP. Sin usuario no se autentica.
func NewMailNotifier(cfg config.SMTPConfig) (*MailNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
	}
	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthLogin),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("crear cliente smtp: %w", err)
	}
	return &MailNotifier{client: client, from: cfg.From, baseURL: cfg.ActivationURL}, nil
}

// Notify construye el mensaje según el tipo y lo envía.
func (m *MailNotifier) Notify(ctx context.Context, n ports.Notification) error {
	msg, err := m.buildMessage(n)
	if err != nil {
		return err
	}
	return m.client.DialAndSendWithContext(ctx, msg)
}

func (m *MailNotifier) buildMessage(n ports.Notification) (*mail.Msg, error) {
	if n.Recipient == "" {
		return nil, fmt.Errorf("notificación %s sin destinatario", n.ID)
	}
	tpl, ok := mailTemplates[n.Type]
	if !ok {
		return nil, fmt.Errorf("tipo de notificación sin plantilla: %s", n.Type)
	}

	var body bytes.Buffer
	err := tpl.body.Execute(&body, map[string]string{
		"BaseURL":     m.baseURL,
		"Username":    url.PathEscape(n.Username),
		"CompanyCode": url.PathEscape(n.CompanyCode),
		"Key":         url.PathEscape(n.ActivationKey),
	})
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, err
	}
	if err := msg.To(n.Recipient); err != nil {
		return nil, err
	}
	msg.Subject(tpl.subject)
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, body.String())
	return msg, nil
}

// Close cierra la conexión SMTP si quedó abierta.
func (m *MailNotifier) Close() error {
	return m.client.Close()
}
