package sinks

import (
	"bytes"
	"context"
	"errors"
	"html/template"

	"github.com/msprojectmerger/landing/pkg/email"
	"github.com/msprojectmerger/landing/svc/collect"
)

var notificationTemplate = template.Must(template.New("notification").Parse(
	`<p>New download request from the landing page.</p>
<table>
<tr><td>Email</td><td>{{.Email}}</td></tr>
<tr><td>Platform</td><td>{{.Platform}}</td></tr>
<tr><td>Submitted</td><td>{{.Timestamp}}</td></tr>
</table>
`))

const notificationSubject = "New MS Project Merger download request"

// Mailer notifies the site owner about each record by email.
type Mailer struct {
	sender email.EmailSender
	to     string
}

func NewMailer(sender email.EmailSender, to string) *Mailer {
	return &Mailer{sender: sender, to: to}
}

func (s *Mailer) Accept(ctx context.Context, rec collect.Record) error {
	var body bytes.Buffer
	if err := notificationTemplate.Execute(&body, rec); err != nil {
		return errors.Join(ErrEncodeRecord, err)
	}
	err := s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.to,
		Subject:  notificationSubject,
		BodyHTML: body.String(),
		Tag:      "download-request",
	})
	if err != nil {
		return errors.Join(ErrDeliverRecord, err)
	}
	return nil
}
