package http

import (
	"github.com/gin-gonic/gin"

	"rental-support-chatbot/pkg/response"
)

// Chat godoc
// @Summary     Ask the rental support assistant
// @Description Classifies the question, asks the completion API and returns a plain-text answer. Failures are returned as friendly answers, never as error codes.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body     chatReq true "Customer question"
// @Success     200  {object} chatResp
// @Failure     422  {object} response.Resp "Body is not valid JSON"
// @Failure     429  {object} response.Resp "Rate limit exceeded"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: invalid body: %v", err)
		response.UnprocessableEntity(c, err)
		return
	}

	output := h.uc.Answer(ctx, req.toInput())

	response.OK(c, h.newChatResp(output))
}
