package common

import (
	"fmt"

	"axiapac.com/iclock/iclock/request"
	"github.com/gin-gonic/gin"
)

// ParseRequest reduces a gin request to the form the iclock decoders take.
func ParseRequest(c *gin.Context) (*request.Request, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return request.Parse(c.Request.Method, c.Request.URL.String(), c.Request.Header.Clone(), body), nil
}
