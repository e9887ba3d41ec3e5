package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-support-chatbot/internal/chat"
	"rental-support-chatbot/internal/chat/usecase"
	"rental-support-chatbot/internal/completion"
	"rental-support-chatbot/internal/middleware"
	"rental-support-chatbot/internal/router"
	"rental-support-chatbot/pkg/log"
	"rental-support-chatbot/pkg/ratelimit"
)

// stubGemini always returns text.
type stubGemini struct {
	text  string
	calls int
}

func (s *stubGemini) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	s.calls++
	return s.text, nil
}

type recordingUseCase struct {
	input chat.AnswerInput
	calls int
}

func (r *recordingUseCase) Answer(ctx context.Context, input chat.AnswerInput) chat.AnswerOutput {
	r.calls++
	r.input = input
	return chat.AnswerOutput{Answer: "ok"}
}

func newTestRouter(t *testing.T, uc chat.UseCase, limit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := ratelimit.Config{Limit: limit, Window: time.Minute}
	limiter, err := ratelimit.NewMemory(cfg)
	require.NoError(t, err)

	mw := middleware.New(log.NewNop(), middleware.Config{Limiter: limiter, LimitConfig: cfg})
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc), mw)
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestChat_EndToEnd(t *testing.T) {
	llm := &stubGemini{text: "It costs 500 rupees per day."}
	gw := completion.New(log.NewNop(), llm, completion.Config{})
	uc := usecase.New(log.NewNop(), router.New(), gw)
	r := newTestRouter(t, uc, 15)

	w := postChat(r, `{"message":"how much does a bike cost per day"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"answer":"It costs 500 rupees per day."}`, w.Body.String())
	assert.Equal(t, 1, llm.calls)
}

func TestChat_EmptyMessage(t *testing.T) {
	llm := &stubGemini{text: "unused"}
	gw := completion.New(log.NewNop(), llm, completion.Config{})
	uc := usecase.New(log.NewNop(), router.New(), gw)
	r := newTestRouter(t, uc, 15)

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`, `{"message":null}`, ``} {
		w := postChat(r, body)

		assert.Equal(t, http.StatusOK, w.Code, body)
		assert.JSONEq(t, `{"answer":"Please ask me a question about vehicle rentals!"}`, w.Body.String(), body)
	}
	assert.Equal(t, 0, llm.calls)
}

func TestChat_InvalidJSON(t *testing.T) {
	uc := &recordingUseCase{}
	r := newTestRouter(t, uc, 15)

	w := postChat(r, `{"message":`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, uc.calls)
}

func TestChat_RateLimited(t *testing.T) {
	uc := &recordingUseCase{}
	r := newTestRouter(t, uc, 15)

	for i := 0; i < 15; i++ {
		w := postChat(r, `{"message":"hi"}`)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := postChat(r, `{"message":"hi"}`)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotContains(t, w.Body.String(), `"answer"`)
	assert.Equal(t, 15, uc.calls, "handler must not run for throttled calls")
}

func TestChat_PassesMessageVerbatim(t *testing.T) {
	uc := &recordingUseCase{}
	r := newTestRouter(t, uc, 15)

	postChat(r, `{"message":"  Cancel my CARD payment  "}`)

	assert.Equal(t, "  Cancel my CARD payment  ", uc.input.Message)
}
