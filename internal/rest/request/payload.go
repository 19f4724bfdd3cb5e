package request

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// BindPayload decodes the JSON body into a raw payload. An empty body, with or
// without a Content-Length, is an empty payload so that entity validation
// reports the missing properties.
func BindPayload(c *gin.Context) (domain.Payload, error) {
	p := domain.Payload{}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return p, nil
	}
	if err := c.ShouldBindJSON(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		return nil, domain.ErrBadParamInput
	}
	return p, nil
}
