package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

const reminderTemplate = `
<p>Olá!</p>
<p>Você agendou um follow-up com o lead <strong>{{.LeadName}}</strong>
para <strong>{{.Date}}</strong>{{if .Time}} às <strong>{{.Time}}</strong>{{end}}.</p>
<p>Bom atendimento! 🚀</p>
`

func (s *EmailSender) SendFollowUpReminder(to, leadName, date, timeOfDay string) error {
	data := ReminderEmailData{
		LeadName: leadName,
		Date:     date,
		Time:     timeOfDay,
	}

	t, err := template.New("reminder").Parse(reminderTemplate)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@leadboard.app")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("⏰ Follow-up hoje: %s", leadName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
