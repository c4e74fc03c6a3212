package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/linebot"
	"chatbot-srv/internal/model"
	pkgLine "chatbot-srv/pkg/line"
	"chatbot-srv/pkg/log"
	pkgMinio "chatbot-srv/pkg/minio"
	pkgRedis "chatbot-srv/pkg/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

type fakeChat struct {
	chatbot.UseCase

	reply     chatbot.ReplyOutput
	replyErr  error
	replies   []chatbot.ReplyInput
	images    []chatbot.ImageInput
	exchanges []chatbot.ExchangeInput
}

func (f *fakeChat) Reply(ctx context.Context, input chatbot.ReplyInput) (chatbot.ReplyOutput, error) {
	f.replies = append(f.replies, input)
	return f.reply, f.replyErr
}

func (f *fakeChat) ReplyToImage(ctx context.Context, input chatbot.ImageInput) (chatbot.ReplyOutput, error) {
	f.images = append(f.images, input)
	return f.reply, f.replyErr
}

func (f *fakeChat) RecordExchange(ctx context.Context, input chatbot.ExchangeInput) error {
	f.exchanges = append(f.exchanges, input)
	return nil
}

func (f *fakeChat) modelCalls() int { return len(f.replies) + len(f.images) }

type fakeConv struct {
	conversation.UseCase

	paused     map[string]bool
	authorized map[string]bool
	turns      []conversation.RecordTurnInput
	resets     []string
	groupReset []string
}

func newFakeConv() *fakeConv {
	return &fakeConv{paused: map[string]bool{}, authorized: map[string]bool{}}
}

func (f *fakeConv) IsActive(ctx context.Context, id string) bool { return !f.paused[id] }

func (f *fakeConv) Pause(ctx context.Context, id string) error {
	f.paused[id] = true
	return nil
}

func (f *fakeConv) Resume(ctx context.Context, id string) error {
	f.paused[id] = false
	return nil
}

func (f *fakeConv) History(ctx context.Context, id string) []model.Message { return nil }

func (f *fakeConv) RecordTurn(ctx context.Context, input conversation.RecordTurnInput) (model.Message, error) {
	f.turns = append(f.turns, input)
	return model.Message{}, nil
}

func (f *fakeConv) Reset(ctx context.Context, id string) int64 {
	f.resets = append(f.resets, id)
	return 1
}

func (f *fakeConv) ResetGroup(ctx context.Context, groupID string) int64 {
	f.groupReset = append(f.groupReset, groupID)
	return 3
}

func (f *fakeConv) IsAuthorized(ctx context.Context, callerID string) bool { return f.authorized[callerID] }

type push struct {
	to   string
	text string
}

type fakeLine struct {
	pushes   []push
	loadings []string
	content  []byte
	ctype    string
	err      error
}

func (f *fakeLine) PushText(ctx context.Context, to, text string) error {
	f.pushes = append(f.pushes, push{to: to, text: text})
	return nil
}

func (f *fakeLine) ShowLoading(ctx context.Context, chatID string, seconds int) error {
	f.loadings = append(f.loadings, chatID)
	return nil
}

func (f *fakeLine) Content(ctx context.Context, messageID string) ([]byte, string, error) {
	return f.content, f.ctype, f.err
}

func (f *fakeLine) GetProfile(ctx context.Context, userID string) (pkgLine.Profile, error) {
	return pkgLine.Profile{UserID: userID}, nil
}

type fakeStorage struct {
	uploads []pkgMinio.UploadRequest
}

func (f *fakeStorage) UploadFile(ctx context.Context, req *pkgMinio.UploadRequest) (*pkgMinio.FileInfo, error) {
	if _, err := io.ReadAll(req.Reader); err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, *req)
	return &pkgMinio.FileInfo{BucketName: req.BucketName, ObjectName: req.ObjectName}, nil
}

type fixture struct {
	uc      *implUseCase
	chat    *fakeChat
	conv    *fakeConv
	line    *fakeLine
	storage *fakeStorage
}

func newFixture(t *testing.T, redis pkgRedis.IRedis) fixture {
	t.Helper()
	f := fixture{
		chat:    &fakeChat{reply: chatbot.ReplyOutput{Text: "สวัสดีค่ะ", Language: "th", TokensUsed: 9}},
		conv:    newFakeConv(),
		line:    &fakeLine{},
		storage: &fakeStorage{},
	}
	f.uc = New(log.NewNop(), f.chat, f.conv, f.line, redis, f.storage, linebot.Config{
		TriggerPrefix: linebot.DefaultTriggerPrefix,
		ImageBucket:   "line-images",
	}).(*implUseCase)
	f.uc.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func textEvent(userID, text string) pkgLine.Event {
	return pkgLine.Event{
		Type:       pkgLine.EventTypeMessage,
		ReplyToken: "rt",
		Source:     pkgLine.Source{Type: pkgLine.SourceTypeUser, UserID: userID},
		Message:    &pkgLine.Message{ID: "m1", Type: pkgLine.MessageTypeText, Text: text},
	}
}

func payloadOf(events ...pkgLine.Event) pkgLine.WebhookPayload {
	return pkgLine.WebhookPayload{Destination: "Ubot", Events: events}
}

func TestProcess_Text(t *testing.T) {
	f := newFixture(t, nil)
	f.conv.authorized["U1"] = true

	f.uc.Process(context.Background(), payloadOf(textEvent("U1", "zx ราคาสายไฟ")))

	if len(f.chat.replies) != 1 {
		t.Fatalf("model calls = %d, want 1", len(f.chat.replies))
	}
	in := f.chat.replies[0]
	if in.Message != "ราคาสายไฟ" || !in.Authorized {
		t.Errorf("reply input = %+v", in)
	}
	if len(f.chat.exchanges) != 1 || f.chat.exchanges[0].ConversationID != "line_U1" || f.chat.exchanges[0].UserContent != "zx ราคาสายไฟ" {
		t.Errorf("exchanges = %+v", f.chat.exchanges)
	}
	if len(f.line.loadings) != 1 || f.line.loadings[0] != "U1" {
		t.Errorf("loadings = %v", f.line.loadings)
	}
	if len(f.line.pushes) != 1 || f.line.pushes[0] != (push{to: "U1", text: "สวัสดีค่ะ"}) {
		t.Errorf("pushes = %+v", f.line.pushes)
	}
}

func TestProcess_PausedConversationIsSilent(t *testing.T) {
	f := newFixture(t, nil)
	f.conv.paused["line_U1"] = true

	f.uc.Process(context.Background(), payloadOf(textEvent("U1", "hello")))

	if f.chat.modelCalls() != 0 {
		t.Errorf("model calls = %d, want 0", f.chat.modelCalls())
	}
	if len(f.line.pushes) != 0 {
		t.Errorf("pushes = %+v, want none", f.line.pushes)
	}
	if len(f.chat.exchanges) != 0 {
		t.Errorf("exchanges = %+v, want none", f.chat.exchanges)
	}
}

func TestProcess_LongReplyIsSplit(t *testing.T) {
	f := newFixture(t, nil)
	para := strings.Repeat("a", 3000)
	f.chat.reply.Text = para + "\n\n" + para

	f.uc.Process(context.Background(), payloadOf(textEvent("U1", "long")))

	if len(f.line.pushes) != 2 {
		t.Fatalf("pushes = %d, want 2", len(f.line.pushes))
	}
	for _, p := range f.line.pushes {
		if len(p.text) > pkgLine.MaxMessageLength {
			t.Errorf("chunk of %d bytes", len(p.text))
		}
	}
}

func TestProcess_Apologies(t *testing.T) {
	tests := []struct {
		name  string
		reply chatbot.ReplyOutput
		err   error
		want  string
	}{
		{
			name: "rate limited",
			err:  &chatbot.TurnError{Kind: chatbot.ErrModelStatus, Message: "HTTP error: 429 - quota", Status: 429},
			want: linebot.MsgRateLimited,
		},
		{
			name: "generic",
			err:  &chatbot.TurnError{Kind: chatbot.ErrEmptyStop, Message: "AI returned empty response: STOP"},
			want: linebot.MsgSystemError,
		},
		{
			name:  "function budget",
			reply: chatbot.ReplyOutput{Text: chatbot.FallbackReply},
			err:   &chatbot.TurnError{Kind: chatbot.ErrTooManyFunctionCalls, Message: "Too many function calls - possible infinite loop"},
			want:  chatbot.FallbackReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.chat.reply, f.chat.replyErr = tt.reply, tt.err

			f.uc.Process(context.Background(), payloadOf(textEvent("U1", "hi")))

			if len(f.line.pushes) != 1 || f.line.pushes[0].text != tt.want {
				t.Errorf("pushes = %+v", f.line.pushes)
			}
			if len(f.chat.exchanges) != 1 || f.chat.exchanges[0].ReplyErr == nil {
				t.Errorf("exchanges = %+v", f.chat.exchanges)
			}
		})
	}
}

func TestProcess_Commands(t *testing.T) {
	t.Run("pause then already paused", func(t *testing.T) {
		f := newFixture(t, nil)
		f.uc.Process(context.Background(), payloadOf(textEvent("U1", "ติดต่อพนักงาน")))
		f.uc.Process(context.Background(), payloadOf(textEvent("U1", "/HUMAN")))

		if !f.conv.paused["line_U1"] {
			t.Error("conversation not paused")
		}
		if len(f.line.pushes) != 2 || f.line.pushes[0].text != linebot.MsgPaused || f.line.pushes[1].text != linebot.MsgAlreadyPaused {
			t.Errorf("pushes = %+v", f.line.pushes)
		}
		if len(f.conv.turns) != 1 || f.conv.turns[0].Content != linebot.MarkerPause || f.conv.turns[0].Role != model.RoleUser {
			t.Errorf("turns = %+v", f.conv.turns)
		}
		if f.chat.modelCalls() != 0 {
			t.Error("command reached the model")
		}
	})

	t.Run("resume", func(t *testing.T) {
		f := newFixture(t, nil)
		f.conv.paused["line_U1"] = true
		f.uc.Process(context.Background(), payloadOf(textEvent("U1", "/bot")))

		if f.conv.paused["line_U1"] {
			t.Error("conversation still paused")
		}
		if len(f.line.pushes) != 1 || f.line.pushes[0].text != linebot.MsgResumed {
			t.Errorf("pushes = %+v", f.line.pushes)
		}
		if len(f.conv.turns) != 1 || f.conv.turns[0].Content != linebot.MarkerResume || f.conv.turns[0].Role != model.RoleAssistant {
			t.Errorf("turns = %+v", f.conv.turns)
		}
	})

	t.Run("already active", func(t *testing.T) {
		f := newFixture(t, nil)
		f.uc.Process(context.Background(), payloadOf(textEvent("U1", "เปิดบอท")))
		if len(f.line.pushes) != 1 || f.line.pushes[0].text != linebot.MsgAlreadyActive {
			t.Errorf("pushes = %+v", f.line.pushes)
		}
	})

	t.Run("reset in group", func(t *testing.T) {
		f := newFixture(t, nil)
		event := pkgLine.Event{
			Type:       pkgLine.EventTypeMessage,
			ReplyToken: "rt",
			Source:     pkgLine.Source{Type: pkgLine.SourceTypeGroup, UserID: "U1", GroupID: "G1"},
			Message: &pkgLine.Message{Type: pkgLine.MessageTypeText, Text: "@Bot /reset", Mention: &pkgLine.Mention{
				Mentionees: []pkgLine.Mentionee{{Index: 0, Length: 4, IsSelf: true}},
			}},
		}
		f.uc.Process(context.Background(), payloadOf(event))

		if len(f.conv.groupReset) != 1 || f.conv.groupReset[0] != "G1" {
			t.Errorf("group resets = %v", f.conv.groupReset)
		}
		if len(f.line.pushes) != 1 || f.line.pushes[0] != (push{to: "U1", text: linebot.MsgReset}) {
			t.Errorf("pushes = %+v", f.line.pushes)
		}
	})
}

func TestProcess_GroupRouting(t *testing.T) {
	mentioned := pkgLine.Event{
		Type:       pkgLine.EventTypeMessage,
		ReplyToken: "rt",
		Source:     pkgLine.Source{Type: pkgLine.SourceTypeGroup, UserID: "U1", GroupID: "G1"},
		Message: &pkgLine.Message{Type: pkgLine.MessageTypeText, Text: "@Bot price?", Mention: &pkgLine.Mention{
			Mentionees: []pkgLine.Mentionee{{Index: 0, Length: 4, UserID: "Ubot"}},
		}},
	}
	silent := mentioned
	silent.Message = &pkgLine.Message{Type: pkgLine.MessageTypeText, Text: "just chatting"}

	f := newFixture(t, nil)
	f.uc.Process(context.Background(), payloadOf(silent, mentioned))

	if len(f.chat.replies) != 1 {
		t.Fatalf("model calls = %d, want 1", len(f.chat.replies))
	}
	if got := f.chat.exchanges[0].ConversationID; got != "line_group_G1_U1" {
		t.Errorf("conversation id = %s", got)
	}
	if len(f.line.loadings) != 0 {
		t.Errorf("loading shown in group: %v", f.line.loadings)
	}
	if len(f.line.pushes) != 1 || f.line.pushes[0].to != "G1" {
		t.Errorf("pushes = %+v", f.line.pushes)
	}
}

func TestProcess_Image(t *testing.T) {
	event := textEvent("U1", "")
	event.Message = &pkgLine.Message{ID: "img1", Type: pkgLine.MessageTypeImage}

	t.Run("archived and answered", func(t *testing.T) {
		f := newFixture(t, nil)
		f.line.content, f.line.ctype = []byte{0x89, 'P', 'N', 'G'}, "image/png"

		f.uc.Process(context.Background(), payloadOf(event))

		if len(f.chat.images) != 1 || f.chat.images[0].MimeType != "image/png" {
			t.Fatalf("images = %+v", f.chat.images)
		}
		if len(f.chat.exchanges) != 1 || f.chat.exchanges[0].UserContent != linebot.MarkerImage {
			t.Errorf("exchanges = %+v", f.chat.exchanges)
		}
		if len(f.storage.uploads) != 1 {
			t.Fatalf("uploads = %d, want 1", len(f.storage.uploads))
		}
		up := f.storage.uploads[0]
		if up.BucketName != "line-images" || up.ObjectName != "line/line_U1/2026-03-01/img1.png" || up.Size != 4 {
			t.Errorf("upload = %+v", up)
		}
	})

	t.Run("download failure", func(t *testing.T) {
		f := newFixture(t, nil)
		f.line.err = errors.New("boom")

		f.uc.Process(context.Background(), payloadOf(event))

		if f.chat.modelCalls() != 0 {
			t.Error("model called without an image")
		}
		if len(f.line.pushes) != 1 || f.line.pushes[0].text != linebot.MsgImageFailed {
			t.Errorf("pushes = %+v", f.line.pushes)
		}
	})
}

func TestProcess_Dedupe(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	f := newFixture(t, rdb)

	event := textEvent("U1", "hi")
	event.WebhookEventID = "01HEVENT"
	f.uc.Process(context.Background(), payloadOf(event))
	f.uc.Process(context.Background(), payloadOf(event))

	if len(f.chat.replies) != 1 {
		t.Errorf("model calls = %d, want 1", len(f.chat.replies))
	}
	if ttl := mr.TTL(linebot.EventDedupeKeyPrefix + "01HEVENT"); ttl != linebot.EventDedupeTTL {
		t.Errorf("ttl = %v", ttl)
	}
}

func TestRouteEvent(t *testing.T) {
	tests := []struct {
		name  string
		event pkgLine.Event
		ok    bool
	}{
		{"follow event", pkgLine.Event{Type: "follow", ReplyToken: "rt", Source: pkgLine.Source{Type: "user", UserID: "U1"}}, false},
		{"sticker", pkgLine.Event{Type: "message", ReplyToken: "rt", Source: pkgLine.Source{Type: "user", UserID: "U1"}, Message: &pkgLine.Message{Type: "sticker"}}, false},
		{"no reply token", pkgLine.Event{Type: "message", Source: pkgLine.Source{Type: "user", UserID: "U1"}, Message: &pkgLine.Message{Type: "text"}}, false},
		{"group image", pkgLine.Event{Type: "message", ReplyToken: "rt", Source: pkgLine.Source{Type: "group", UserID: "U1", GroupID: "G1"}, Message: &pkgLine.Message{Type: "image"}}, false},
		{"direct text", textEvent("U1", "x"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := routeEvent(tt.event, "Ubot"); ok != tt.ok {
				t.Errorf("routeEvent() ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestStripTrigger(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "zx hello", want: "hello"},
		{in: "ZXสวัสดี", want: "สวัสดี"},
		{in: "hello zx", want: "hello zx"},
		{in: "  zx  ", want: ""},
		{in: "สวัสดีค่ะ", want: "สวัสดีค่ะ"},
	}
	for _, tt := range tests {
		if got := stripTrigger(tt.in, "zx"); got != tt.want {
			t.Errorf("stripTrigger(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
