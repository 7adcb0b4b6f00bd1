package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rockguard-srv/internal/model"
	"rockguard-srv/internal/risk"
)

// Analyze answers free-text mining-safety questions. Unlike Predict there is
// no deterministic fallback; without a working generator the operation fails.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input risk.AnalyzeInput) (risk.AnalyzeOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		uc.l.Warnf(ctx, "risk.usecase.Analyze: empty query")
		return risk.AnalyzeOutput{}, risk.ErrQueryRequired
	}

	if uc.groq == nil {
		uc.l.Errorf(ctx, "risk.usecase.Analyze: no generator configured")
		return risk.AnalyzeOutput{}, risk.ErrAnalysisUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, uc.config.NarrativeTimeout)
	defer cancel()

	answer, err := uc.groq.Generate(ctx, buildAnalysisPrompt(input))
	if err != nil {
		uc.l.Errorf(ctx, "risk.usecase.Analyze: generation failed: %v", err)
		return risk.AnalyzeOutput{}, risk.ErrAnalysisUnavailable
	}

	return risk.AnalyzeOutput{
		Response:  strings.TrimSpace(answer),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Model:     uc.config.ModelName,
	}, nil
}

func buildAnalysisPrompt(input risk.AnalyzeInput) string {
	var b strings.Builder
	b.WriteString("You are a mining safety expert AI assistant for a rockfall monitoring system. ")
	b.WriteString("Answer questions about mine safety, sensor readings and risk management. ")
	b.WriteString("Be concise and practical.\n\n")
	if strings.TrimSpace(input.Context) != "" {
		fmt.Fprintf(&b, "Current context:\n%s\n\n", input.Context)
	}
	fmt.Fprintf(&b, "Question: %s", input.Query)
	return b.String()
}
