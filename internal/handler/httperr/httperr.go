package httperr

import (
	"errors"
	"net/http"

	"bookswap-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithKind maps an engine error to an HTTP status by its errs kind.
// Untagged errors become 500 with a generic message.
func AbortWithKind(c *gin.Context, err error) {
	kind, ok := errs.KindOf(err)
	if !ok {
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	msg := err.Error()
	var ke errs.KindError
	if errors.As(err, &ke) {
		msg = ke.Message()
	}

	AbortWithError(c, statusOf(kind), err, msg, nil)
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindAuthorization:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindVerification:
		return http.StatusUnprocessableEntity
	case errs.KindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
