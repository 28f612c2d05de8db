package resend

import (
	"bytes"
	"html/template"

	"github.com/brk3/weekly-habits/internal/nudge"
	"github.com/resend/resend-go/v2"
)

type ResendNotifier struct {
	ApiKey string
	From   string
	Email  string
}

const htmlTemplate = `
<p>These habits need attention to meet their weekly goal:</p>
<ul>
{{range .}}
  <li><strong>{{.Title}}</strong>: {{.Remaining}} more needed, {{.DaysLeft}} days left{{if not .Reachable}} (out of reach this week){{end}}</li>
{{end}}
</ul>
`

var tmpl = template.Must(template.New("email").Parse(htmlTemplate))

// Render builds the e-mail body.
func Render(habits []nudge.AtRisk) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, habits); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *ResendNotifier) SendNudge(habits []nudge.AtRisk) error {
	body, err := Render(habits)
	if err != nil {
		return err
	}

	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    r.From,
		To:      []string{r.Email},
		Subject: "Habits behind their weekly goal",
		Html:    body,
	}

	_, err = client.Emails.Send(params)
	return err
}

var _ nudge.Notifier = (*ResendNotifier)(nil)
