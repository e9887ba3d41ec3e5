package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processChatReq decodes the chat request body. An empty body reads as an empty message.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
