package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processConversationIDRequest(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("conversation_id"))
	if id == "" {
		return "", errConversationIDEmpty
	}
	return id, nil
}

func (h *handler) processListActiveRequest(c *gin.Context) (listActiveReq, error) {
	var req listActiveReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errWrongQuery
	}
	return req, nil
}
