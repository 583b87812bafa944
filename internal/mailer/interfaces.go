package mailer

type Service interface {
	SendPasswordResetEmail(toEmail, username, resetToken string) error
}
