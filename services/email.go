package services

import (
	"bytes"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"text/template"
)

// Body templates keyed the way callers refer to them.
var emailTemplates = map[string]string{
	"drift/requested": "Hi {{.GifterNickname}},\n\n" +
		"{{.RequesterNickname}} would like your copy of \"{{.BookTitle}}\".\n" +
		"Log in to accept or decline the request.\n",
}

type EmailService struct{}

func NewEmailService() *EmailService {
	return &EmailService{}
}

// SendEmail renders a template and hands it to the configured SMTP relay.
// It is best-effort: every failure is logged and swallowed, callers never
// wait on or learn about delivery.
func (s *EmailService) SendEmail(to, subject, templateKey string, data map[string]interface{}) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("[MAIL] SMTP not configured, dropping %q to %s", subject, to)
		return
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_FROM")
	user := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")

	tmplText, ok := emailTemplates[templateKey]
	if !ok {
		log.Printf("[MAIL] unknown template %q", templateKey)
		return
	}

	tmpl, err := template.New(templateKey).Parse(tmplText)
	if err != nil {
		log.Printf("[MAIL] template %q parse failed: %v", templateKey, err)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("[MAIL] template %q render failed: %v", templateKey, err)
		return
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", from, to, subject, body.String())

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, []byte(msg)); err != nil {
		log.Printf("[MAIL] send to %s failed: %v", to, err)
	}
}
