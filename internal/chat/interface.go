package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Answer turns a customer question into a user-safe answer. It never fails.
	Answer(ctx context.Context, input AnswerInput) AnswerOutput
}
