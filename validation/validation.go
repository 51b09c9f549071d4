// Package validation checks submitted answers with a chat model. The
// gateway fails open: when the model is unreachable or its reply cannot
// be read, the answer is accepted so that a network outage never blocks
// an applicant.
package validation

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/permitly/permitagent/locale"
)

// Verdict is the outcome of checking one answer.
type Verdict struct {
	Valid          bool   `json:"valid"`
	Message        string `json:"message,omitempty"`
	CorrectedValue string `json:"correctedValue,omitempty"`
}

// Gateway validates a single answer for a field.
type Gateway interface {
	Validate(ctx context.Context, fieldID, answer, language string) (*Verdict, error)
}

// ModelGateway asks a chat model for a structured verdict.
type ModelGateway struct {
	chatModel   model.ToolCallingChatModel
	logger      *slog.Logger
	temperature float32
}

type Option func(*ModelGateway)

func WithLogger(logger *slog.Logger) Option {
	return func(g *ModelGateway) {
		g.logger = logger
	}
}

func WithTemperature(t float32) Option {
	return func(g *ModelGateway) {
		g.temperature = t
	}
}

func NewModelGateway(chatModel model.ToolCallingChatModel, opts ...Option) *ModelGateway {
	g := &ModelGateway{
		chatModel:   chatModel,
		logger:      slog.Default(),
		temperature: 0.1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

const skippedMessage = "Validation skipped due to error - answer accepted"

// Validate checks one answer. The error return is reserved for context
// cancellation; model failures resolve to an accepting verdict instead.
func (g *ModelGateway) Validate(ctx context.Context, fieldID, answer, language string) (*Verdict, error) {
	prompt := fmt.Sprintf(`Validiere diese Antwort für %s:
Antwort: "%s"

Prüfe ob die Antwort:
1. Vollständig und korrekt formatiert ist
2. Realistisch und gültig ist
3. Für einen offiziellen Antrag geeignet ist

Wenn ungültig, erkläre was falsch ist in %[3]s.
Wenn gültig aber Formatierung nötig, gib das korrigierte Format an.

Antworte im JSON Format:
{
  "valid": true/false,
  "message": "Erklärung in %[3]s",
  "correctedValue": "korrigierter Wert falls nötig"
}`, fieldID, answer, locale.Name(language))

	resp, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(locale.SystemPrompt(language)),
		schema.UserMessage(prompt),
	}, model.WithTemperature(g.temperature))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		g.logger.Warn("validation model unreachable, accepting answer",
			slog.String("field", fieldID),
			slog.Any("error", err))
		return &Verdict{Valid: true, Message: skippedMessage}, nil
	}

	return parseVerdict(resp.Content), nil
}

var (
	fenceOpenRe  = regexp.MustCompile("(?i)^```(?:json)?\n?")
	fenceCloseRe = regexp.MustCompile("\n?```$")
)

// negativeTokens is the heuristic used when the model answers in prose
// instead of JSON.
var negativeTokens = []string{"invalid", "incorrect", "wrong", "fehler", "falsch", "ungültig"}

func parseVerdict(content string) *Verdict {
	cleaned := strings.TrimSpace(content)
	cleaned = fenceOpenRe.ReplaceAllString(cleaned, "")
	cleaned = fenceCloseRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	var loose struct {
		Valid          any    `json:"valid"`
		Message        string `json:"message"`
		CorrectedValue string `json:"correctedValue"`
	}
	if err := sonic.UnmarshalString(cleaned, &loose); err == nil && loose.Valid != nil {
		v := &Verdict{Message: loose.Message, CorrectedValue: loose.CorrectedValue}
		switch b := loose.Valid.(type) {
		case bool:
			v.Valid = b
		case string:
			v.Valid = b == "true"
		}
		return v
	}

	lower := strings.ToLower(content)
	for _, tok := range negativeTokens {
		if strings.Contains(lower, tok) {
			return &Verdict{Valid: false, Message: content}
		}
	}
	return &Verdict{Valid: true, Message: content}
}
