package services

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// AnswerService submits a complete prompt to the generative model and
// returns its trimmed text response. The model is treated as an opaque
// oracle: no post-processing beyond whitespace trimming.
type AnswerService interface {
	GenerateAnswer(ctx context.Context, prompt string) (string, error)
}

type geminiAnswerService struct {
	client *genai.Client
	model  string
}

// NewGeminiAnswerService wraps a Gemini client with a fixed model
// identifier. The credential lives inside the client, injected at
// startup.
func NewGeminiAnswerService(client *genai.Client, model string) AnswerService {
	return &geminiAnswerService{
		client: client,
		model:  model,
	}
}

// GenerateAnswer sends the prompt as a single non-streaming request.
// No retries and no internal timeout; the caller's context carries the
// deadline.
func (s *geminiAnswerService) GenerateAnswer(ctx context.Context, prompt string) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}

	if len(result.Candidates) == 0 {
		return "", NewAnalysisError(KindProviderError, "the model returned no candidates", nil)
	}

	answer := strings.TrimSpace(result.Text())
	log.Printf("SERVICE: Gemini returned %d characters", len(answer))
	return answer, nil
}

// classifyGeminiError maps a failed model call onto the error
// taxonomy. The API error carries an HTTP status code: credential
// rejections come back as 401/403, everything else the provider
// reports is a provider error. Errors without an API payload never
// reached the provider.
func classifyGeminiError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return NewAnalysisError(KindCancelled, "the request was cancelled before the model responded", err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return NewAnalysisError(KindAuthenticationFailure, "the model provider rejected the configured credential", err)
		default:
			return NewAnalysisError(KindProviderError, "the model provider returned an error", err)
		}
	}

	return NewAnalysisError(KindServiceUnavailable, "could not reach the model provider", err)
}
