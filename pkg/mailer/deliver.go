package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tpl "github.com/oksasatya/go-profile-auth/pkg/mailer/templates"
)

// Sender delivers a rendered email. *Mailgun implements it.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// errPermanent marks jobs that can never succeed and must not be requeued.
var errPermanent = errors.New("permanent email job failure")

// IsPermanent reports whether a Deliver error should drop the job.
func IsPermanent(err error) bool { return errors.Is(err, errPermanent) }

// Deliver renders the job's template, if any, and sends it.
func Deliver(ctx context.Context, s Sender, job EmailJob) error {
	if strings.TrimSpace(job.To) == "" {
		return fmt.Errorf("%w: missing recipient", errPermanent)
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = tpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: render %s: %w", errPermanent, job.Template, err)
		}
		subject = strings.TrimSpace(subject)
	}
	if subject == "" || (text == "" && html == "") {
		return fmt.Errorf("%w: empty message", errPermanent)
	}

	return s.Send(ctx, job.To, subject, text, html)
}
