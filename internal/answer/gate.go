// Package answer turns a FAQ search result into the reply a user sees. The
// gate enforces the grounding policy: no KB match means a fixed refusal,
// sensitive topics always route to a human, and when a generative backend is
// involved it only ever sees the facts extracted for the matched entry.
package answer

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hikarisalon/concierge/internal/domain"
	"github.com/hikarisalon/concierge/internal/llm"
)

// Mode selects how a grounded answer is rendered.
type Mode string

const (
	// ModeTemplate substitutes extracted facts directly into the answer
	// template. No backend call is made.
	ModeTemplate Mode = "template"

	// ModeGenerate asks the generative backend to phrase the answer, with
	// the extracted facts as its only allowed source.
	ModeGenerate Mode = "generate"
)

// Gate produces the final reply for a question turn. It holds no state
// across calls.
type Gate struct {
	mode   Mode
	client llm.Client
	log    *zap.Logger
}

// NewGate creates a Gate. A nil client forces template mode regardless of
// the configured mode.
func NewGate(mode Mode, client llm.Client, log *zap.Logger) *Gate {
	if client == nil {
		mode = ModeTemplate
	}
	return &Gate{mode: mode, client: client, log: log}
}

// Answer applies the grounding rules in order: refuse without a match,
// refuse sensitive topics, then render the grounded answer.
func (g *Gate) Answer(ctx context.Context, userMessage string, result *domain.SearchResult) string {
	if result == nil {
		return MsgRefusalNoMatch
	}

	if IsSensitive(userMessage) {
		return MsgRefusalSensitive
	}

	if g.mode == ModeGenerate {
		return g.generate(ctx, userMessage, result)
	}
	return Substitute(result.Entry.AnswerTemplate, result.ExtractedFacts)
}

func (g *Gate) generate(ctx context.Context, userMessage string, result *domain.SearchResult) string {
	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		SystemPrompt: buildAnswerSystemPrompt(result.ExtractedFacts),
		UserPrompt:   userMessage,
	})
	if err != nil {
		g.log.Warn("generation failed, returning unavailable message", zap.Error(err))
		return MsgUnavailable
	}
	return resp.Text
}

// Substitute replaces every {KEY} placeholder that has an extracted fact
// value. Placeholders without a fact are left untouched; nothing else is
// rewritten.
func Substitute(template string, facts map[string]string) string {
	out := template
	for key, value := range facts {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}
