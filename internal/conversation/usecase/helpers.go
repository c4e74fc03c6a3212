package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chatbot-srv/internal/model"

	"github.com/google/uuid"
)

const (
	conversationIDPrefix = "conv_"
	conversationIDSuffix = 9
	groupPrefix          = "line_group_"
)

func (uc *implUseCase) NewConversationID() string {
	return newConversationID(uc.now())
}

func newConversationID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:conversationIDSuffix]
	return fmt.Sprintf("%s%d_%s", conversationIDPrefix, now.Unix(), suffix)
}

// groupPrefixOf is the conversation id prefix shared by every member of a LINE group.
func groupPrefixOf(groupID string) string {
	return groupPrefix + groupID + "_"
}

// matchesAuthorized reports whether stored authorizes callerID: an exact match, or stored
// equal to one whole "_"-delimited segment run of callerID.
func matchesAuthorized(callerID, stored string) bool {
	if stored == "" || callerID == "" {
		return false
	}
	if callerID == stored {
		return true
	}
	return strings.Contains("_"+callerID+"_", "_"+stored+"_")
}

func platformOf(conversationID string) string {
	if strings.HasPrefix(conversationID, model.LinePrefix) {
		return model.PlatformLine
	}
	return model.PlatformAPI
}

func userIDOf(conversationID string) string {
	if strings.HasPrefix(conversationID, model.LinePrefix) {
		return strings.TrimPrefix(conversationID, model.LinePrefix)
	}
	return ""
}

// deleteImages removes the archived images of deleted conversations. Failures are logged only.
func (uc *implUseCase) deleteImages(ctx context.Context, conversationIDs ...string) {
	if uc.images == nil {
		return
	}
	for _, id := range conversationIDs {
		n, err := uc.images.DeleteImages(ctx, id)
		if err != nil {
			uc.l.Warnf(ctx, "conversation.usecase.deleteImages: images.DeleteImages %s failed after %d: %v", id, n, err)
			continue
		}
		if n > 0 {
			uc.l.Debugf(ctx, "conversation.usecase.deleteImages: removed %d images of %s", n, id)
		}
	}
}
