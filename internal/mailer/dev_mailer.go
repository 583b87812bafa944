package mailer

import (
	"fmt"

	"github.com/perugo/perugo-api/internal/logger"
)

// DevMailer logs the reset email instead of delivering it. It is the default
// backend; password recovery stays a simulation unless a real sender is
// configured.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendPasswordResetEmail(toEmail, username, resetToken string) error {
	logger.Info("📧 [DEV MAIL] Password Reset Email",
		"to", toEmail,
		"username", username,
		"reset_token", resetToken,
	)

	fmt.Printf("\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"📧 CORREO DE RECUPERACIÓN (MODO DEV)\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"+
		"Para: %s (%s)\n"+
		"Asunto: Recupera tu contraseña de PerúGo\n"+
		"\n"+
		"Token de recuperación: %s\n"+
		"━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n",
		toEmail, username, resetToken)

	return nil
}
