// pkg/email/email.go
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
)

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// Template data structures
type WelcomeEmailData struct {
	Email            string
	VerificationLink string
}

type ContactNotificationData struct {
	Name    string
	Email   string
	Message string
}

func NewEmailService(apiKey, from string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      from,
		templates: templates,
	}, nil
}

func (s *EmailService) send(data EmailData) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	log.Printf("Email sent to %d recipient(s), subject: %q", len(data.To), data.Subject)
	return nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	return s.send(EmailData{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	})
}

// SendCampaign delivers a mailing message to the whole recipient list with
// a single call. The body is static text, no per-recipient interpolation.
func (s *EmailService) SendCampaign(subject, body string, to []string) error {
	return s.send(EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Text:    body,
	})
}

// Email sending methods
func (s *EmailService) SendWelcomeEmail(email, verificationLink string) error {
	data := WelcomeEmailData{
		Email:            email,
		VerificationLink: verificationLink,
	}
	return s.sendTemplateEmail(email, "Welcome! Please verify your email", "welcome.html", data)
}

func (s *EmailService) SendContactNotification(adminEmail, name, email, message string) error {
	data := ContactNotificationData{
		Name:    name,
		Email:   email,
		Message: message,
	}
	return s.sendTemplateEmail(adminEmail, "New contact form message 📋", "contact_notification.html", data)
}
