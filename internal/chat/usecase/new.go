package usecase

import (
	"rental-support-chatbot/internal/chat"
	"rental-support-chatbot/internal/completion"
	"rental-support-chatbot/internal/prompt"
	"rental-support-chatbot/internal/router"
	pkgLog "rental-support-chatbot/pkg/log"
)

type composeFunc func(intent router.Intent, message string) string

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	compose   composeFunc
	completer completion.Completer
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase.
func New(l pkgLog.Logger, r router.Router, completer completion.Completer) *implUseCase {
	return &implUseCase{
		l:         l,
		router:    r,
		compose:   prompt.Compose,
		completer: completer,
	}
}
