package services

import (
	"fmt"
	"net/smtp"

	"portfolioapi/config"
	"portfolioapi/models"
)

// EmailSender notifies the site owner about a new contact submission.
type EmailSender interface {
	SendContactNotification(contact *models.Contact) error
}

type smtpSender struct {
	host string
	port string
	user string
	pass string
	to   string
}

func NewSMTPSender(cfg config.EmailConfig) EmailSender {
	return &smtpSender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		to:   cfg.To,
	}
}

func (s *smtpSender) SendContactNotification(contact *models.Contact) error {
	if s.user == "" || s.pass == "" || s.to == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	subject := contact.Subject
	if subject == "" {
		subject = "New Message"
	}

	body := fmt.Sprintf(`New contact form submission

From: %s
Email: %s
Subject: %s

Message:
%s

Sent from your portfolio contact form.
`, contact.Name, contact.Email, subject, contact.Message)

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: Portfolio Contact: %s\r\n\r\n%s",
		s.user, s.to, contact.Email, subject, body)

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := s.host + ":" + s.port

	if err := smtp.SendMail(addr, auth, s.user, []string{s.to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}
