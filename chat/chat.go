// Package chat is the free form assistant next to the guided flow. It
// answers general questions about the application process in the session
// language and can stream its replies.
package chat

import (
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// plainTextPrompts instruct the model per language. The markdown ban
// exists because replies go straight into plain text transcripts.
var plainTextPrompts = map[string]string{
	"de": "Du bist ein hilfreicher Assistent für Arbeitserlaubnis-Anträge in Deutschland. Antworte auf Deutsch. WICHTIG: Antworte OHNE <think> Tags und OHNE Markdown-Formatierung (kein **, __, *, _). Verwende nur einfachen Text.",
	"en": "You are a helpful assistant for work permit applications in Germany. Answer in English. IMPORTANT: Answer WITHOUT <think> tags and WITHOUT markdown formatting (no **, __, *, _). Use plain text only.",
	"tr": "Almanya'da çalışma izni başvuruları için yardımcı bir asistansınız. Türkçe cevap verin. ÖNEMLİ: <think> etiketleri ve markdown formatlaması OLMADAN cevap verin (**, __, *, _ yok). Sadece düz metin kullanın.",
	"ar": "أنت مساعد مفيد لطلبات تصاريح العمل في ألمانيا. أجب بالعربية. مهم: أجب بدون علامات <think> وبدون تنسيق markdown (لا **, __, *, _). استخدم نصًا عاديًا فقط.",
	"pl": "Jesteś pomocnym asystentem do wniosków o pozwolenie na pracę w Niemczech. Odpowiadaj po polsku. WAŻNE: Odpowiadaj BEZ tagów <think> i BEZ formatowania markdown (bez **, __, *, _). Używaj tylko zwykłego tekstu.",
	"uk": "Ви корисний асистент для заявок на дозвіл на роботу в Німеччині. Відповідайте українською. ВАЖЛИВО: Відповідайте БЕЗ тегів <think> і БЕЗ форматування markdown (без **, __, *, _). Використовуйте лише простий текст.",
	"es": "Eres un asistente útil para solicitudes de permisos de trabajo en Alemania. Responde en español. IMPORTANTE: Responde SIN etiquetas <think> y SIN formato markdown (sin **, __, *, _). Usa solo texto plano.",
	"fr": "Vous êtes un assistant utile pour les demandes de permis de travail en Allemagne. Répondez en français. IMPORTANT : Répondez SANS balises <think> et SANS formatage markdown (pas de **, __, *, _). Utilisez uniquement du texte brut.",
}

func systemPrompt(language string) string {
	if p, ok := plainTextPrompts[language]; ok {
		return p
	}
	return plainTextPrompts["de"]
}

// Assistant wraps a chat model for general questions.
type Assistant struct {
	chatModel model.ToolCallingChatModel
}

func NewAssistant(chatModel model.ToolCallingChatModel) *Assistant {
	return &Assistant{chatModel: chatModel}
}

// Chat answers a single question and cleans the reply.
func (a *Assistant) Chat(ctx context.Context, input, language string) (string, error) {
	resp, err := a.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt(language)),
		schema.UserMessage(input),
	})
	if err != nil {
		return "", err
	}
	return CleanResponse(resp.Content), nil
}

// Stream answers a question as a stream of text chunks. Chunks are not
// cleaned individually; run CleanResponse on the accumulated result.
func (a *Assistant) Stream(ctx context.Context, input, language string) (*schema.StreamReader[string], error) {
	stream, err := a.chatModel.Stream(ctx, []*schema.Message{
		schema.SystemMessage(systemPrompt(language)),
		schema.UserMessage(input),
	})
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderWithConvert(stream, func(msg *schema.Message) (string, error) {
		return msg.Content, nil
	}), nil
}

// ReadAll drains a text stream into one cleaned string. Cancellation of
// the context stops reading without returning the partial text.
func ReadAll(ctx context.Context, stream *schema.StreamReader[string]) (string, error) {
	defer stream.Close()
	var sb strings.Builder
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		sb.WriteString(chunk)
	}
	return CleanResponse(sb.String()), nil
}

var (
	thinkRe    = regexp.MustCompile(`(?is)<think>.*?</think>`)
	boldRe     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUndRe  = regexp.MustCompile(`__(.+?)__`)
	italicRe   = regexp.MustCompile(`\*(.+?)\*`)
	italUndRe  = regexp.MustCompile(`_(.+?)_`)
	newlinesRe = regexp.MustCompile(`\n{3,}`)
)

// CleanResponse strips reasoning tags and markdown emphasis from a model
// reply and collapses runs of blank lines.
func CleanResponse(content string) string {
	content = thinkRe.ReplaceAllString(content, "")
	content = boldRe.ReplaceAllString(content, "$1")
	content = boldUndRe.ReplaceAllString(content, "$1")
	content = italicRe.ReplaceAllString(content, "$1")
	content = italUndRe.ReplaceAllString(content, "$1")
	content = newlinesRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
