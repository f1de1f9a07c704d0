package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-profile-auth/config"
	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	"github.com/oksasatya/go-profile-auth/pkg/mailer"
	tpl "github.com/oksasatya/go-profile-auth/pkg/mailer/templates"
)

// Notifier is told about new accounts and profiles. Implementations must not
// block the request for long and must not fail it.
type Notifier interface {
	AccountCreated(ctx context.Context, a *entity.Account)
	ProfileCreated(ctx context.Context, owner *entity.Account, p *entity.Profile)
}

// Publisher puts a JSON message on a queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

const publishTimeout = 3 * time.Second

// EmailNotifier enqueues templated email jobs for the email worker.
type EmailNotifier struct {
	Pub    Publisher
	Cfg    *config.Config
	Logger *logrus.Logger
	now    func() time.Time
}

func NewEmailNotifier(pub Publisher, cfg *config.Config, logger *logrus.Logger) *EmailNotifier {
	return &EmailNotifier{Pub: pub, Cfg: cfg, Logger: logger, now: time.Now}
}

func (n *EmailNotifier) AccountCreated(ctx context.Context, a *entity.Account) {
	data := tpl.NewWelcomeData(n.Cfg, a.Name, a.Email, tpl.WithTime(n.now()))
	n.publish(ctx, mailer.EmailJob{To: a.Email, Template: tpl.Welcome, Data: data})
}

func (n *EmailNotifier) ProfileCreated(ctx context.Context, owner *entity.Account, p *entity.Profile) {
	data := tpl.NewProfileCreatedData(n.Cfg, owner.Name, owner.Email, p.Username, tpl.WithTime(n.now()))
	n.publish(ctx, mailer.EmailJob{To: owner.Email, Template: tpl.ProfileCreated, Data: data})
}

func (n *EmailNotifier) publish(ctx context.Context, job mailer.EmailJob) {
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := n.Pub.PublishJSON(c, job); err != nil {
		n.Logger.WithError(err).WithFields(logrus.Fields{
			"template": job.Template,
			"to":       job.To,
		}).Warn("failed to enqueue email")
	}
}

func (s *Service) notifyAccountCreated(ctx context.Context, a *entity.Account) {
	if s.Notifier != nil {
		s.Notifier.AccountCreated(ctx, a)
	}
}

func (s *Service) notifyProfileCreated(ctx context.Context, owner *entity.Account, p *entity.Profile) {
	if s.Notifier != nil {
		s.Notifier.ProfileCreated(ctx, owner, p)
	}
}
