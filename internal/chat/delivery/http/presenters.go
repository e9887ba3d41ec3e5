package http

import "rental-support-chatbot/internal/chat"

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" example:"Can I pay with UPI?"`
}

func (r chatReq) toInput() chat.AnswerInput {
	return chat.AnswerInput{Message: r.Message}
}

// --- Response DTOs ---

type chatResp struct {
	Answer string `json:"answer" example:"Yes, UPI, wallets and cards are fully supported."`
}

func (h *handler) newChatResp(out chat.AnswerOutput) chatResp {
	return chatResp{Answer: out.Answer}
}
