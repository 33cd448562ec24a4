package email

import (
	"bytes"
	"fmt"
	"html/template"

	"go-jobboard-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail over SMTP.
type Mailer struct {
	dialer    *gomail.Dialer
	fromEmail string
	host      string
	username  string
}

// ApplicationMailData feeds the application confirmation and status
// update templates.
type ApplicationMailData struct {
	CandidateName string
	JobTitle      string
	CompanyName   string
	Location      string
	Status        string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		fromEmail: cfg.SMTPFromEmail,
		host:      cfg.SMTPHost,
		username:  cfg.SMTPUsername,
	}
}

const welcomeTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome to the job board, {{.Name}}!</h2>
    <p>Your {{.Role}} profile is ready.</p>
    {{if eq .Role "candidate"}}
    <p>Complete your profile with skills, experiences and educations to stand out, then start applying to open positions.</p>
    {{else}}
    <p>You can now post jobs and review the applications they receive.</p>
    {{end}}
</body>
</html>`

const applicationReceivedTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Application received</h2>
    <p>Hi {{.CandidateName}},</p>
    <p>Your application for <strong>{{.JobTitle}}</strong> at <strong>{{.CompanyName}}</strong> ({{.Location}}) was submitted successfully.</p>
    <p>We will let you know when its status changes.</p>
</body>
</html>`

const statusChangedTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Application update</h2>
    <p>Hi {{.CandidateName}},</p>
    <p>Your application for <strong>{{.JobTitle}}</strong> at <strong>{{.CompanyName}}</strong> is now <strong>{{.Status}}</strong>.</p>
</body>
</html>`

var (
	welcomeTmpl  = template.Must(template.New("welcome").Parse(welcomeTemplate))
	receivedTmpl = template.Must(template.New("received").Parse(applicationReceivedTemplate))
	statusTmpl   = template.Must(template.New("status").Parse(statusChangedTemplate))
)

// SendWelcome mails a new company or candidate profile owner.
func (m *Mailer) SendWelcome(to, name, role string) error {
	body, err := render(welcomeTmpl, struct{ Name, Role string }{name, role})
	if err != nil {
		return err
	}
	return m.send(to, "Welcome to the job board", body)
}

// SendApplicationReceived confirms an application to the candidate.
func (m *Mailer) SendApplicationReceived(to string, data ApplicationMailData) error {
	body, err := render(receivedTmpl, data)
	if err != nil {
		return err
	}
	return m.send(to, fmt.Sprintf("Application received: %s", data.JobTitle), body)
}

// SendStatusChanged notifies the candidate of a status transition.
func (m *Mailer) SendStatusChanged(to string, data ApplicationMailData) error {
	body, err := render(statusTmpl, data)
	if err != nil {
		return err
	}
	return m.send(to, fmt.Sprintf("Application update: %s", data.JobTitle), body)
}

// IsConfigured checks if the mailer has a usable SMTP configuration.
func (m *Mailer) IsConfigured() bool {
	return m.host != "" && m.username != ""
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return buf.String(), nil
}
