package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds connection settings for the SMTP login-link sender.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // public origin used in login links
	LinkPath    string // path appended to BaseURL, receives ?token=
}

// SMTPEmailService delivers passwordless login links over SMTP.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

// NewSMTPEmailService creates an SMTP-backed email service.
func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendLoginLinkEmail sends the single-use login link to the address.
func (s *SMTPEmailService) SendLoginLinkEmail(to, token string) error {
	loginURL := fmt.Sprintf("%s%s?token=%s", s.config.BaseURL, s.config.LinkPath, token)

	subject := "Seu link de acesso ao Chef Viral"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Acesse sua conta</h2>
			<p>Clique no link abaixo para entrar no Chef Viral:</p>
			<p><a href="%s">Entrar no Chef Viral</a></p>
			<p>Ou copie e cole este endereço no navegador:</p>
			<p>%s</p>
			<p>Este link expira em 15 minutos e só funciona uma vez.</p>
			<p>Se você não solicitou este acesso, ignore este email.</p>
		</body>
		</html>
	`, loginURL, loginURL)

	plainBody := fmt.Sprintf(`
Acesse sua conta

Entre no Chef Viral pelo link abaixo:
%s

Este link expira em 15 minutos e só funciona uma vez.

Se você não solicitou este acesso, ignore este email.
	`, loginURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendTestEmail verifies the SMTP configuration.
func (s *SMTPEmailService) SendTestEmail(to string) error {
	subject := "Chef Viral - Email de teste"
	body := "Se você recebeu esta mensagem, o envio de emails está funcionando."
	return s.sendEmail(to, subject, "<p>"+body+"</p>", body)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
