package usecase

import (
	"context"
	"strings"

	"rental-support-chatbot/internal/chat"
	"rental-support-chatbot/internal/metrics"
)

// Answer validates the message, then classifies, composes and completes it.
// Any panic along the way is logged and replaced by chat.ApologyAnswer.
func (uc *implUseCase) Answer(ctx context.Context, input chat.AnswerInput) (output chat.AnswerOutput) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "chat.usecase.Answer: %v: %v", chat.ErrUnexpected, r)
			output = chat.AnswerOutput{
				Answer:  chat.ApologyAnswer,
				Outcome: chat.OutcomeUnexpectedFallback,
			}
		}
		metrics.ChatRequests.WithLabelValues(string(output.Outcome)).Inc()
	}()

	if strings.TrimSpace(input.Message) == "" {
		uc.l.Debugf(ctx, "chat.usecase.Answer: %v", chat.ErrEmptyMessage)
		return chat.AnswerOutput{
			Answer:  chat.EmptyInputAnswer,
			Outcome: chat.OutcomeEmptyInput,
		}
	}

	intent := uc.router.Classify(input.Message)
	metrics.ChatIntents.WithLabelValues(string(intent)).Inc()
	uc.l.Infof(ctx, "chat.usecase.Answer: intent=%s", intent)

	finalPrompt := uc.compose(intent, input.Message)

	out := uc.completer.Complete(ctx, finalPrompt)

	output = chat.AnswerOutput{
		Answer:  out.Answer,
		Outcome: chat.OutcomeAnswered,
		Intent:  intent,
		Model:   out.Model,
	}
	if out.Fallback {
		output.Outcome = chat.OutcomeUpstreamFallback
		uc.l.Warnf(ctx, "chat.usecase.Answer: no model answered after %d attempt(s)", len(out.Attempts))
	}
	return output
}
