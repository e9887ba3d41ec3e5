package completion

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rental-support-chatbot/internal/metrics"
	"rental-support-chatbot/pkg/sanitize"
)

// Complete asks each candidate model in turn and returns the sanitized text of
// the first success. When all of them fail it returns FallbackAnswer.
func (g *Gateway) Complete(ctx context.Context, prompt string) Output {
	if g.cfg.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.MaxTotalTimeout)
		defer cancel()
	}

	var (
		out     Output
		lastErr error
	)

	for _, model := range g.candidates {
		if err := ctx.Err(); err != nil {
			lastErr = fmt.Errorf("%w after %d attempt(s): %v", ErrChainTimeout, len(out.Attempts), err)
			break
		}

		started := time.Now()
		res := g.attempt(ctx, model, prompt)
		elapsed := time.Since(started)

		out.Attempts = append(out.Attempts, Attempt{Model: model, Err: res.err, Duration: elapsed})
		metrics.CompletionAttemptDuration.WithLabelValues(model).Observe(elapsed.Seconds())

		if res.err == nil {
			metrics.CompletionAttempts.WithLabelValues(model, OutcomeSuccess).Inc()
			g.l.Infof(ctx, "%s: model=%s outcome=%s latency=%s", LogPrefixComplete, model, OutcomeSuccess, elapsed)

			out.Answer = sanitize.Markdown(res.text)
			out.Model = model
			return out
		}

		metrics.CompletionAttempts.WithLabelValues(model, OutcomeFailure).Inc()
		g.l.Warnf(ctx, "%s: model=%s outcome=%s latency=%s error=%v", LogPrefixComplete, model, OutcomeFailure, elapsed, res.err)
		lastErr = res.err
	}

	g.l.Errorf(ctx, "%s: %v", LogPrefixComplete, fmt.Errorf("%w: %v", ErrAllModelsFailed, lastErr))

	out.Answer = FallbackAnswer
	out.Fallback = true
	return out
}

// attempt performs one model call under the per-attempt timeout.
func (g *Gateway) attempt(ctx context.Context, model, prompt string) attemptResult {
	ctx, span := g.tracer.Start(ctx, "completion.attempt",
		trace.WithAttributes(attribute.String("llm.model", model)))
	defer span.End()

	if g.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.AttemptTimeout)
		defer cancel()
	}

	text, err := g.llm.GenerateText(ctx, model, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		return attemptResult{err: err}
	}

	span.SetStatus(codes.Ok, "")
	return attemptResult{text: text}
}
