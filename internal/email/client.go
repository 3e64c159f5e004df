package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"strconv"

	"github.com/wneessen/go-mail"

	"github.com/Maxito7/marea_backend/internal/domain"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}
	if host == "" || fromEmail == "" {
		return nil, fmt.Errorf("host SMTP y remitente son requeridos")
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

func (c *Client) newMessage(to, subject, htmlBody string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return nil, fmt.Errorf("error al configurar remitente: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("error al configurar destinatario: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)
	return m, nil
}

// SendEmail envía un correo HTML
func (c *Client) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	m, err := c.newMessage(to, subject, htmlBody)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}
	return nil
}

// SendFallbackDigest envía el resumen de consultas sin respuesta
func (c *Client) SendFallbackDigest(ctx context.Context, to string, digest domain.FallbackDigest) error {
	htmlBody, err := renderDigestHTML(digest)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Chat: %d consultas sin respuesta (%s)", digest.Total, digest.Until.Format("02/01/2006"))
	return c.SendEmail(ctx, to, subject, htmlBody)
}
