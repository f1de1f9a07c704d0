package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-profile-auth/config"
	"github.com/oksasatya/go-profile-auth/internal/domain/entity"
	"github.com/oksasatya/go-profile-auth/pkg/helpers"
	"github.com/oksasatya/go-profile-auth/pkg/mailer"
)

type capturePublisher struct {
	jobs []mailer.EmailJob
	err  error
}

func (p *capturePublisher) PublishJSON(ctx context.Context, body any) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	p.jobs = append(p.jobs, body.(mailer.EmailJob))
	return p.err
}

func TestEmailNotifier(t *testing.T) {
	pub := &capturePublisher{}
	n := NewEmailNotifier(pub, &config.Config{AppName: "Profiles"}, helpers.NewDiscardLogger())
	n.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC) }

	owner := &entity.Account{Name: "A", Email: "a@x.com"}
	n.AccountCreated(context.Background(), owner)
	n.ProfileCreated(context.Background(), owner, &entity.Profile{Username: "alice"})

	require.Len(t, pub.jobs, 2)
	assert.Equal(t, "welcome", pub.jobs[0].Template)
	assert.Equal(t, "a@x.com", pub.jobs[0].To)
	assert.Equal(t, "profile_created", pub.jobs[1].Template)
	assert.Equal(t, "alice", pub.jobs[1].Data["Username"])
	assert.Equal(t, "02 January 2025, 03:04", pub.jobs[1].Data["Time"])
}

func TestEmailNotifier_PublishErrorIsSwallowed(t *testing.T) {
	pub := &capturePublisher{err: errors.New("channel closed")}
	n := NewEmailNotifier(pub, &config.Config{}, helpers.NewDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NotPanics(t, func() {
		n.AccountCreated(ctx, &entity.Account{Email: "a@x.com"})
	})
	assert.Len(t, pub.jobs, 1)
}
