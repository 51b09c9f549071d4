// Package question produces the localized question the assistant asks for
// a form field. A model backed generator grounds the question in what has
// already been collected; the bank generator serves the canned question
// text and never fails, so it closes a fallback chain.
package question

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"

	"github.com/permitly/permitagent/locale"
	"github.com/permitly/permitagent/schedule"
)

// Prompt is one fully assembled question for a field.
type Prompt struct {
	Question string
	Examples []string
	HelpText string
}

// Generator produces the next question for a field.
type Generator interface {
	NextQuestion(ctx context.Context, fieldID string, collected map[string]string, language string) (*Prompt, error)
}

// ModelGenerator asks a chat model to phrase the question, feeding it the
// values collected so far.
type ModelGenerator struct {
	chatModel   model.ToolCallingChatModel
	temperature float32
}

func NewModelGenerator(chatModel model.ToolCallingChatModel) *ModelGenerator {
	return &ModelGenerator{chatModel: chatModel, temperature: 0.3}
}

func (g *ModelGenerator) NextQuestion(ctx context.Context, fieldID string, collected map[string]string, language string) (*Prompt, error) {
	prompt := fmt.Sprintf(`%s

Frage jetzt nach: %s

Gib an:
1. Eine klare Frage für dieses Feld
2. 2-3 hilfreiche Beispiele
3. Wichtige Hinweise oder Anforderungen
4. Formatiere alles in %s`, collectedSection(collected), fieldID, locale.Name(language))

	resp, err := g.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(locale.SystemPrompt(language)),
		schema.UserMessage(prompt),
	}, model.WithTemperature(g.temperature))
	if err != nil {
		return nil, fmt.Errorf("generate question for %s: %w", fieldID, err)
	}
	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return nil, fmt.Errorf("empty question for %s", fieldID)
	}
	return &Prompt{
		Question: text,
		Examples: ExtractExamples(text),
		HelpText: ExtractHelpText(text),
	}, nil
}

// collectedSection renders the already collected values as a markdown
// table so the model keeps context across questions.
func collectedSection(collected map[string]string) string {
	var buf strings.Builder
	buf.WriteString("# Bisher gesammelte Informationen:\n")
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Feld", "Wert")
	for _, field := range schedule.Fields() {
		if v := collected[field.ID]; v != "" {
			_ = table.Append(field.ID, v)
		}
	}
	_ = table.Render()
	return buf.String()
}

var exampleMarkers = []string{"example", "Beispiel", "e.g.", "z.B.", "örnek", "ejemplo", "exemple"}

// ExtractExamples picks at most three example lines out of a question.
func ExtractExamples(text string) []string {
	var examples []string
	for _, line := range strings.Split(text, "\n") {
		for _, marker := range exampleMarkers {
			if strings.Contains(line, marker) {
				cleaned := line
				if i := strings.Index(line, ":"); i >= 0 {
					cleaned = line[i+1:]
				}
				if cleaned = strings.TrimSpace(cleaned); cleaned != "" {
					examples = append(examples, cleaned)
				}
				break
			}
		}
	}
	if len(examples) > 3 {
		examples = examples[:3]
	}
	return examples
}

var helpMarkers = []string{"Note", "Important", "Hinweis", "Wichtig"}

// ExtractHelpText joins the hint lines of a question.
func ExtractHelpText(text string) string {
	var help []string
	for _, line := range strings.Split(text, "\n") {
		for _, marker := range helpMarkers {
			if strings.Contains(line, marker) {
				help = append(help, line)
				break
			}
		}
	}
	return strings.TrimSpace(strings.Join(help, " "))
}

// BankGenerator serves the static question bank. It never fails.
type BankGenerator struct{}

func (BankGenerator) NextQuestion(_ context.Context, fieldID string, _ map[string]string, language string) (*Prompt, error) {
	return &Prompt{Question: locale.Question(fieldID, language)}, nil
}

// Failback tries each generator in order and returns the first success.
type Failback struct {
	generators []Generator
}

func NewFailback(generators ...Generator) *Failback {
	return &Failback{generators: generators}
}

func (f *Failback) NextQuestion(ctx context.Context, fieldID string, collected map[string]string, language string) (*Prompt, error) {
	var lastErr error
	for _, g := range f.generators {
		p, err := g.NextQuestion(ctx, fieldID, collected, language)
		if err == nil {
			return p, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("all question generators failed: %w", lastErr)
}
