package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const requestIDKey = "request_id"

var errUnspecified = errors.New("unspecified error")

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

// AbortWithError writes the error envelope and keeps err on the context for the
// logging middleware. msg is what the caller sees; err never leaves the process.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errUnspecified
	}

	resp := Response{Status: status, RequestID: c.GetString(requestIDKey)}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
