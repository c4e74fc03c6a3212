package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"chatbot-srv/pkg/discord"
	pkgErrors "chatbot-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 Resp with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Error writes err as a Resp. HTTPErrors keep their status, everything else becomes a 500
// and is reported to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var vErrs []pkgErrors.ValidationError
	var vErr pkgErrors.ValidationError
	if errors.As(err, &vErr) {
		vErrs = append(vErrs, vErr)
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   vErr.Error(),
			Errors:    vErrs,
		})
		return
	}

	report(c.Request.Context(), d, "Unhandled error", err.Error())
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternal,
		Message:   MessageInternalError,
	})
}

// ErrorWithMap resolves err through m before writing it.
func ErrorWithMap(c *gin.Context, err error, m ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range m {
		if errors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// Unauthorized writes a 401 Resp.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: ErrorCodeUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// PanicError writes a 500 Resp for a recovered panic and reports the stack trace.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	report(c.Request.Context(), d, "Panic recovered",
		fmt.Sprintf("%s %s\n%v\n%s", c.Request.Method, c.Request.URL.Path, rec, debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternal,
		Message:   MessageInternalError,
	})
}

func report(ctx context.Context, d discord.IDiscord, title, description string) {
	if d == nil {
		return
	}
	// Discord limits embed descriptions to 4096 characters.
	if len(description) > 4000 {
		description = description[:4000]
	}
	_ = d.SendError(ctx, title, description, nil)
}
