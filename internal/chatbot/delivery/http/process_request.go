package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *handler) processChatRequest(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidJSON
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, errMessageRequired
	}
	return req, nil
}
