// Package httperr defines the error envelope every API handler returns.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON body written for every failed request. Detail is
// optional and carries a displayable reason (e.g. a rule validation message).
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and records err on the gin context so
// the logging middleware can emit the underlying cause. err must be non-nil;
// callers without a source error wrap a sentinel instead.
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
