package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendPasswordResetEmail(toEmail, username, resetToken string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "Recupera tu contraseña de PerúGo"
	html := fmt.Sprintf(`
		<h2>Recuperación de contraseña</h2>
		<p>Hola %s,</p>
		<p>Recibimos una solicitud para restablecer tu contraseña.</p>
		<p>Tu código de recuperación es: <strong style="font-size: 24px; color: #D62828;">%s</strong></p>
		<p>Si no solicitaste este cambio, ignora este correo.</p>
	`, username, resetToken)

	text := fmt.Sprintf("Hola %s,\n\nTu código de recuperación es: %s\n\nSi no solicitaste este cambio, ignora este correo.", username, resetToken)

	return m.sendEmail(toEmail, username, subject, text, html)
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
