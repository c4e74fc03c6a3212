package response

import (
	"errors"
	"net/http"

	pkgErrors "chatbot-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// PublicResp is the envelope of the public chat API, which keeps the success flag contract
// existing widget clients rely on.
type PublicResp struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Public writes body with status as-is.
func Public(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// PublicError writes {success:false, error}. HTTPErrors keep their status.
func PublicError(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, PublicResp{Success: false, Error: httpErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, PublicResp{Success: false, Error: MessageInternalError})
}
