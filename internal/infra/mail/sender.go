package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/aakash-mishra123/OrangePortal-mobile-app-sub001/internal/entity"
)

// The alert body is embedded rather than loaded from disk so the API binary
// has no runtime file dependency.
var leadAlertTmpl = template.Must(template.New("lead_alert").Parse(`
<h2>New lead: {{.ServiceName}}</h2>
<p><b>{{.Name}}</b> ({{if .Guest}}guest{{else}}registered user{{end}})</p>
<ul>
  <li>Email: {{.Email}}</li>
  <li>Phone: {{.Phone}}</li>
  <li>Budget: {{.Budget}}</li>
</ul>
<p>{{.ProjectBrief}}</p>
<p><small>Lead ID: {{.LeadID}}</small></p>
`))

func NewEmailSender(host string, port int, user, password, from string, salesInbox []string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		SalesInbox: salesInbox,
	}
}

// SendLeadAlert notifies the sales inbox about a fresh lead. Callers treat
// this as best-effort; a failed alert never fails the submission.
func (s *EmailSender) SendLeadAlert(lead *entity.Lead) error {
	data := LeadAlertData{
		LeadID:       lead.ID,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		ServiceName:  lead.ServiceName,
		Budget:       lead.Budget,
		ProjectBrief: lead.ProjectBrief,
		Guest:        lead.UserID == "",
	}

	var body bytes.Buffer
	if err := leadAlertTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render lead alert: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesInbox...)
	m.SetHeader("Subject", fmt.Sprintf("New lead for %s - %s", lead.ServiceName, lead.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send lead alert via SMTP: %w", err)
	}

	return nil
}
