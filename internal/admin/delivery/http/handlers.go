package http

import (
	"chatbot-srv/pkg/response"
	"chatbot-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Admin login
// @Description Exchange the admin username and password for a bearer token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body loginReq true "Credentials"
// @Success 200 {object} loginResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /admin/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "admin.delivery.http.Login: processLoginRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "admin.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newLoginResp(o))
}

// @Summary Current admin
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} meResp
// @Failure 401 {object} response.Resp
// @Router /admin/me [get]
func (h *handler) Me(c *gin.Context) {
	payload, ok := scope.GetPayloadFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, newMeResp(payload))
}
