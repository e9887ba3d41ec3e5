package completion

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"rental-support-chatbot/pkg/gemini"
	"rental-support-chatbot/pkg/log"
)

// Completer produces an answer for a prompt. It never fails.
type Completer interface {
	Complete(ctx context.Context, prompt string) Output
}

// Gateway tries candidate models in priority order until one answers.
type Gateway struct {
	llm        gemini.IGemini
	l          log.Logger
	cfg        Config
	candidates []string
	tracer     trace.Tracer
}

var _ Completer = (*Gateway)(nil)

// New creates a Gateway. The candidate list is computed once here.
func New(l log.Logger, llm gemini.IGemini, cfg Config) *Gateway {
	return &Gateway{
		llm:        llm,
		l:          l,
		cfg:        cfg,
		candidates: BuildCandidates(cfg.ModelOverride),
		tracer:     otel.Tracer(tracerName),
	}
}

// Candidates returns a copy of the model candidate list.
func (g *Gateway) Candidates() []string {
	return append([]string(nil), g.candidates...)
}
