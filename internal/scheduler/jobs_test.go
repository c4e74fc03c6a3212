package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatbot-srv/config"
	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/pkg/discord"
	"chatbot-srv/pkg/log"

	"github.com/robfig/cron/v3"
)

type fakeConversation struct {
	conversation.UseCase
	resumed    int64
	deleted    int64
	err        error
	resumeCall int
}

func (f *fakeConversation) AutoResume(ctx context.Context) (int64, error) {
	f.resumeCall++
	return f.resumed, f.err
}

func (f *fakeConversation) CleanupIdle(ctx context.Context) (int64, error) {
	return f.deleted, f.err
}

type fakeChat struct {
	chatbot.UseCase
	refreshed int
	err       error
}

func (f *fakeChat) RefreshFiles(ctx context.Context) error {
	f.refreshed++
	return f.err
}

type fakeDiscord struct {
	discord.IDiscord
	titles []string
	infos  []string
}

func (f *fakeDiscord) SendInfo(ctx context.Context, title, description string) error {
	f.infos = append(f.infos, title+": "+description)
	return nil
}

func (f *fakeDiscord) SendError(ctx context.Context, title, description string, err error) error {
	f.titles = append(f.titles, title+": "+description)
	return nil
}

func newJobs(conv *fakeConversation, chat *fakeChat, d discord.IDiscord) jobs {
	return jobs{
		l:       log.NewNop(),
		convUC:  conv,
		chatUC:  chat,
		discord: d,
		timeout: time.Second,
	}
}

func TestRegister(t *testing.T) {
	t.Run("all specs", func(t *testing.T) {
		c := cron.New()
		j := newJobs(&fakeConversation{}, &fakeChat{}, nil)
		err := j.register(c, config.SchedulerConfig{
			AutoResumeSpec:     "*/5 * * * *",
			CleanupSpec:        "0 * * * *",
			CatalogRefreshSpec: "@every 6h",
		})
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if got := len(c.Entries()); got != 3 {
			t.Errorf("entries = %d, want 3", got)
		}
	})

	t.Run("empty spec disables job", func(t *testing.T) {
		c := cron.New()
		j := newJobs(&fakeConversation{}, &fakeChat{}, nil)
		if err := j.register(c, config.SchedulerConfig{AutoResumeSpec: "*/5 * * * *"}); err != nil {
			t.Fatalf("register: %v", err)
		}
		if got := len(c.Entries()); got != 1 {
			t.Errorf("entries = %d, want 1", got)
		}
	})

	t.Run("invalid spec", func(t *testing.T) {
		c := cron.New()
		j := newJobs(&fakeConversation{}, &fakeChat{}, nil)
		if err := j.register(c, config.SchedulerConfig{CleanupSpec: "not a spec"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestJobs(t *testing.T) {
	t.Run("auto resume", func(t *testing.T) {
		conv := &fakeConversation{resumed: 2}
		j := newJobs(conv, &fakeChat{}, nil)
		if err := j.autoResume(context.Background()); err != nil {
			t.Fatalf("autoResume: %v", err)
		}
		if conv.resumeCall != 1 {
			t.Errorf("AutoResume calls = %d, want 1", conv.resumeCall)
		}
	})

	t.Run("cleanup error propagates", func(t *testing.T) {
		conv := &fakeConversation{err: errors.New("db down")}
		j := newJobs(conv, &fakeChat{}, nil)
		if err := j.cleanupIdle(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("refresh catalog", func(t *testing.T) {
		chat := &fakeChat{}
		j := newJobs(&fakeConversation{}, chat, nil)
		if err := j.refreshCatalog(context.Background()); err != nil {
			t.Fatalf("refreshCatalog: %v", err)
		}
		if chat.refreshed != 1 {
			t.Errorf("RefreshFiles calls = %d, want 1", chat.refreshed)
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("failure is reported", func(t *testing.T) {
		d := &fakeDiscord{}
		chat := &fakeChat{err: errors.New("upload failed")}
		j := newJobs(&fakeConversation{}, chat, d)

		j.run("refreshCatalog", j.refreshCatalog)()

		if len(d.titles) != 1 || d.titles[0] != "Scheduler job failed: refreshCatalog" {
			t.Errorf("discord = %v", d.titles)
		}
	})

	t.Run("success is silent", func(t *testing.T) {
		d := &fakeDiscord{}
		j := newJobs(&fakeConversation{}, &fakeChat{}, d)

		j.run("autoResume", j.autoResume)()

		if len(d.titles) != 0 || len(d.infos) != 0 {
			t.Errorf("discord = %v %v", d.titles, d.infos)
		}
	})

	t.Run("changes are announced", func(t *testing.T) {
		tests := []struct {
			name string
			conv *fakeConversation
			job  func(j jobs) func(ctx context.Context) error
			want string
		}{
			{"resumed", &fakeConversation{resumed: 2}, func(j jobs) func(ctx context.Context) error { return j.autoResume },
				"Chatbot resumed: 2 paused conversations were handed back to the chatbot"},
			{"deleted", &fakeConversation{deleted: 3}, func(j jobs) func(ctx context.Context) error { return j.cleanupIdle },
				"Idle conversations deleted: 3 conversations and their archived images were removed"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := &fakeDiscord{}
				j := newJobs(tt.conv, &fakeChat{}, d)

				j.run(tt.name, tt.job(j))()

				if len(d.infos) != 1 || d.infos[0] != tt.want {
					t.Errorf("discord infos = %v", d.infos)
				}
			})
		}
	})

	t.Run("timeout reaches the job", func(t *testing.T) {
		j := newJobs(&fakeConversation{}, &fakeChat{}, nil)
		j.timeout = time.Millisecond

		var deadline bool
		j.run("deadline", func(ctx context.Context) error {
			_, deadline = ctx.Deadline()
			return nil
		})()

		if !deadline {
			t.Error("job context has no deadline")
		}
	})
}
