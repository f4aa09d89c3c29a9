package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/genai"
)

const systemPrompt = `You review short video demonstrations of professional skills for a hiring platform.
Answer with a single JSON object and nothing else:
{"rating": integer 1-5, "feedback": string, "verified": boolean, "strengths": [string], "improvements": [string], "confidence": integer 0-100}.
Set verified to true only when the video credibly shows the skill at the claimed level.`

// Completer is the subset of the genai client the analyzer needs.
type Completer interface {
	CompleteJSON(ctx context.Context, system, user string) (string, error)
}

type videoAnalyzer struct {
	client Completer
}

func NewVideoAnalyzer(client Completer) domain.VideoAnalyzer {
	return &videoAnalyzer{client: client}
}

// Analyze returns the model output as text. A 2xx answer whose envelope cannot
// be read yields a nil payload so the normalizer degrades it; only transport
// and HTTP failures are errors.
func (a *videoAnalyzer) Analyze(ctx context.Context, req domain.VideoAnalysisRequest) (any, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	user := fmt.Sprintf("%s.\nRequest: %s", req.Prompt(), payload)

	out, err := a.client.CompleteJSON(ctx, systemPrompt, user)
	if err != nil {
		if errors.Is(err, genai.ErrMalformedResponse) {
			return nil, nil
		}
		return nil, fmt.Errorf("video analysis: %w", err)
	}
	return out, nil
}
