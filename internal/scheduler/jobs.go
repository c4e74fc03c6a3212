package scheduler

import (
	"context"
	"fmt"
	"time"

	"chatbot-srv/config"
	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/pkg/discord"
	"chatbot-srv/pkg/log"

	"github.com/robfig/cron/v3"
)

const defaultJobTimeout = 5 * time.Minute

type jobs struct {
	l       log.Logger
	convUC  conversation.UseCase
	chatUC  chatbot.UseCase
	discord discord.IDiscord
	timeout time.Duration
}

type job struct {
	name string
	spec string
	fn   func(ctx context.Context) error
}

// register adds every job with a non-empty spec to c.
func (j jobs) register(c *cron.Cron, cfg config.SchedulerConfig) error {
	list := []job{
		{name: "autoResume", spec: cfg.AutoResumeSpec, fn: j.autoResume},
		{name: "cleanupIdle", spec: cfg.CleanupSpec, fn: j.cleanupIdle},
		{name: "refreshCatalog", spec: cfg.CatalogRefreshSpec, fn: j.refreshCatalog},
	}
	for _, jb := range list {
		if jb.spec == "" {
			j.l.Infof(context.Background(), "scheduler.register: %s disabled", jb.name)
			continue
		}
		if _, err := c.AddFunc(jb.spec, j.run(jb.name, jb.fn)); err != nil {
			return fmt.Errorf("register %s (%q): %w", jb.name, jb.spec, err)
		}
	}
	return nil
}

// run wraps fn with a timeout and failure reporting.
func (j jobs) run(name string, fn func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		start := time.Now()
		if err := fn(ctx); err != nil {
			j.l.Errorf(ctx, "scheduler.%s: job failed: %v", name, err)
			if j.discord != nil {
				_ = j.discord.SendError(ctx, "Scheduler job failed", name, err)
			}
			return
		}
		j.l.Debugf(ctx, "scheduler.%s: done in %s", name, time.Since(start))
	}
}

func (j jobs) autoResume(ctx context.Context) error {
	n, err := j.convUC.AutoResume(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		j.l.Infof(ctx, "scheduler.autoResume: resumed %d conversations", n)
		j.notify(ctx, "Chatbot resumed", fmt.Sprintf("%d paused conversations were handed back to the chatbot", n))
	}
	return nil
}

func (j jobs) cleanupIdle(ctx context.Context) error {
	n, err := j.convUC.CleanupIdle(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		j.l.Infof(ctx, "scheduler.cleanupIdle: deleted %d conversations", n)
		j.notify(ctx, "Idle conversations deleted", fmt.Sprintf("%d conversations and their archived images were removed", n))
	}
	return nil
}

func (j jobs) refreshCatalog(ctx context.Context) error {
	return j.chatUC.RefreshFiles(ctx)
}

func (j jobs) notify(ctx context.Context, title, description string) {
	if j.discord == nil {
		return
	}
	if err := j.discord.SendInfo(ctx, title, description); err != nil {
		j.l.Warnf(ctx, "scheduler.notify: SendInfo failed: %v", err)
	}
}

// cronLogger adapts log.Logger to cron.Logger.
type cronLogger struct {
	l log.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugf(context.Background(), "cron: %s %v", msg, keysAndValues)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorf(context.Background(), "cron: %s: %v %v", msg, err, keysAndValues)
}
