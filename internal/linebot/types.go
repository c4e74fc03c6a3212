package linebot

import "time"

const (
	DefaultTriggerPrefix  = "zx"
	DefaultLoadingSeconds = 60
	DefaultImageMimeType  = "image/jpeg"

	// EventDedupeTTL is how long a webhookEventId is remembered.
	EventDedupeTTL       = 10 * time.Minute
	EventDedupeKeyPrefix = "chatbot:line:event:"
)

// History markers stored in place of real content.
const (
	MarkerImage  = "[ผู้ใช้ส่งรูปภาพ]"
	MarkerPause  = "[ผู้ใช้ขอติดต่อพนักงาน]"
	MarkerResume = "[แชทบอทกลับมาให้บริการ]"
)

// Push replies. Every text is bilingual, Thai first.
const (
	MsgSystemError = "ขออภัยครับ ขณะนี้ระบบมีปัญหา กรุณาลองใหม่อีกครั้งหรือติดต่อทีมงานโดยตรงครับ\n\nSorry, the system is experiencing issues. Please try again or contact our team directly."
	MsgRateLimited = "ขออภัยครับ ขณะนี้มีผู้ใช้งานเยอะมาก กรุณารอสักครู่แล้วลองใหม่อีกครั้งครับ\n\nSorry, we're experiencing high traffic. Please wait a moment and try again."
	MsgImageFailed = "ขออภัยครับ ไม่สามารถรับรูปภาพได้ กรุณาลองส่งใหม่อีกครั้งครับ\n\nSorry, we couldn't receive the image. Please try sending it again."

	MsgAlreadyPaused = "ขณะนี้ท่านกำลังรอพนักงานอยู่แล้วค่ะ กรุณารอสักครู่นะคะ\n\n" +
		"You are already waiting for a human agent. Please wait a moment."
	MsgPaused = "ได้รับคำขอแล้วค่ะ พนักงานจะติดต่อกลับโดยเร็วที่สุด\n" +
		"ระหว่างนี้แชทบอทจะหยุดตอบชั่วคราวค่ะ\n\n" +
		"Your request has been received. An agent will contact you soon.\n" +
		"The chatbot will be paused in the meantime.\n\n" +
		"💡 พิมพ์ \"/bot\" เพื่อกลับมาใช้แชทบอท"
	MsgAlreadyActive = "แชทบอทพร้อมให้บริการอยู่แล้วค่ะ มีอะไรให้ช่วยไหมคะ?\n\n" +
		"The chatbot is already active. How can I help you?"
	MsgResumed = "แชทบอทกลับมาให้บริการแล้วค่ะ 🤖\n" +
		"มีอะไรให้ช่วยไหมคะ?\n\n" +
		"The chatbot is now active again.\n" +
		"How can I help you?"
	MsgReset = "ล้างประวัติการสนทนาเรียบร้อยแล้วค่ะ\n" +
		"เริ่มต้นบทสนทนาใหม่ได้เลยค่ะ\n\n" +
		"Chat history has been cleared.\n" +
		"You can start a fresh conversation now."
)

var (
	PauseCommands  = []string{"ติดต่อพนักงาน", "คุยกับพนักงาน", "ขอคุยกับพนักงาน", "ต้องการคุยกับพนักงาน", "/human", "/agent"}
	ResumeCommands = []string{"เปิดแชทบอท", "เปิดบอท", "/bot", "/resume", "/on", "/chatbot"}
	ResetCommand   = "/reset"
)

// Config for the LINE usecase.
type Config struct {
	// TriggerPrefix is stripped from the start of text messages before they reach the model.
	TriggerPrefix  string
	LoadingSeconds int
	// ImageBucket receives a copy of every image users send. Empty disables the archive.
	ImageBucket string
}

// Command is a chat command recognized in text messages.
type Command int

const (
	CommandNone Command = iota
	CommandPause
	CommandResume
	CommandReset
)
