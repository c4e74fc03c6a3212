package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// VerifySignature checks base64(HMAC-SHA256(body, secret)) against signature in constant time.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(signature), []byte(expected))
}

// Sign returns the signature LINE would send for body. Used by tests and tooling.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// SplitMessage breaks text into chunks of at most maxLen bytes, preferring paragraph
// boundaries, then sentence boundaries, then rune boundaries.
func SplitMessage(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = MaxMessageLength
	}
	if len(text) <= maxLen {
		return []string{text}
	}

	var (
		chunks  []string
		current string
	)
	flush := func() {
		if s := strings.TrimSpace(current); s != "" {
			chunks = append(chunks, s)
		}
		current = ""
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		if len(current)+len(paragraph) <= maxLen {
			current += paragraph + "\n\n"
			continue
		}
		flush()
		if len(paragraph) <= maxLen {
			current = paragraph + "\n\n"
			continue
		}
		for _, sentence := range splitSentences(paragraph) {
			if len(current)+len(sentence) > maxLen && current != "" {
				flush()
			}
			if len(sentence) > maxLen {
				pieces := splitRunes(sentence, maxLen)
				chunks = append(chunks, pieces[:len(pieces)-1]...)
				sentence = pieces[len(pieces)-1]
			}
			current += sentence
		}
	}
	flush()
	return chunks
}

// splitSentences splits after each sentence terminator, keeping the terminator and trailing space.
func splitSentences(s string) []string {
	var parts []string
	last := 0
	for _, loc := range sentenceBoundary.FindAllStringIndex(s, -1) {
		parts = append(parts, s[last:loc[1]])
		last = loc[1]
	}
	if last < len(s) {
		parts = append(parts, s[last:])
	}
	return parts
}

func splitRunes(s string, maxLen int) []string {
	var parts []string
	for len(s) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		parts = append(parts, s[:cut])
		s = s[cut:]
	}
	return append(parts, s)
}

// IsBotMentioned reports whether msg mentions the bot, by isSelf or by the destination user id.
func IsBotMentioned(msg *Message, botUserID string) bool {
	if msg == nil || msg.Mention == nil {
		return false
	}
	for _, m := range msg.Mention.Mentionees {
		if m.IsSelf {
			return true
		}
		if botUserID != "" && m.UserID == botUserID {
			return true
		}
	}
	return false
}
