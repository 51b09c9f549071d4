// Package translate carries collected form values from one language to
// another when the applicant switches languages mid conversation.
// Identifier-like fields are never touched, select values map through
// literal tables, and only longer free text goes to the model.
package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/permitly/permitagent/structured"
)

// Translator rewrites form values from one language into another.
type Translator interface {
	TranslateValues(ctx context.Context, values map[string]string, from, to string) (map[string]string, error)
}

// doNotTranslate lists the fields whose values are identifiers, dates or
// canonical codes. They cross languages unchanged.
var doNotTranslate = map[string]bool{
	"dateOfBirth":    true,
	"passportNumber": true,
	"phoneNumber":    true,
	"email":          true,
	"salary":         true,
	"workHours":      true,
	"plannedArrival": true,
	"nationality":    true,
	"maritalStatus":  true,
	"germanLevel":    true,
	"criminalRecord": true,
}

var maritalLiterals = map[string]map[string]string{
	"single":   {"de": "ledig", "en": "single", "tr": "bekar", "ar": "أعزب", "pl": "kawaler", "uk": "неодружений", "es": "soltero", "fr": "célibataire"},
	"married":  {"de": "verheiratet", "en": "married", "tr": "evli", "ar": "متزوج", "pl": "żonaty", "uk": "одружений", "es": "casado", "fr": "marié"},
	"divorced": {"de": "geschieden", "en": "divorced", "tr": "boşanmış", "ar": "مطلق", "pl": "rozwiedziony", "uk": "розлучений", "es": "divorciado", "fr": "divorcé"},
	"widowed":  {"de": "verwitwet", "en": "widowed", "tr": "dul", "ar": "أرمل", "pl": "wdowiec", "uk": "вдівець", "es": "viudo", "fr": "veuf"},
}

var yesNoLiterals = map[string]map[string]string{
	"yes": {"de": "ja", "en": "yes", "tr": "evet", "ar": "نعم", "pl": "tak", "uk": "так", "es": "sí", "fr": "oui"},
	"no":  {"de": "nein", "en": "no", "tr": "hayır", "ar": "لا", "pl": "nie", "uk": "ні", "es": "no", "fr": "non"},
}

// lookupLiteral resolves a value through a literal table: whichever
// language variant the value currently is, it comes back in the target
// language.
func lookupLiteral(table map[string]map[string]string, value, to string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for _, variants := range table {
		for _, v := range variants {
			if strings.ToLower(v) == needle {
				if out, ok := variants[to]; ok {
					return out, true
				}
				return value, true
			}
		}
	}
	return "", false
}

// minModelLength is the shortest free text worth a model round trip.
// Short values are names, numbers or codes and stay as they are.
const minModelLength = 20

type translateInput struct {
	Text string
	From string
	To   string
}

type translateOutput struct {
	Translation string `json:"translation" jsonschema:"required,description=The translated text"`
}

// ModelTranslator translates free text fields with a chat model through a
// forced tool call.
type ModelTranslator struct {
	chain  *structured.Chain[translateInput, translateOutput]
	logger *slog.Logger
}

func NewModelTranslator(chatModel model.ToolCallingChatModel, logger *slog.Logger) (*ModelTranslator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	chain, err := structured.NewChain[translateInput, translateOutput](
		chatModel,
		buildTranslatePrompt,
		"submit_translation",
		"Submit the translation of the given text.",
	)
	if err != nil {
		return nil, err
	}
	return &ModelTranslator{chain: chain, logger: logger}, nil
}

func buildTranslatePrompt(_ context.Context, in translateInput) ([]*schema.Message, error) {
	prompt := fmt.Sprintf(`Translate the following text from %s to %s.
Only return the translation, nothing else.
Keep the same format and structure.
If the text contains addresses, keep street names but translate descriptive parts.

Text to translate:
%s`, in.From, in.To, in.Text)
	return []*schema.Message{
		schema.SystemMessage("Du bist ein professioneller Übersetzer für offizielle Dokumente."),
		schema.UserMessage(prompt),
	}, nil
}

// TranslateValues returns a fresh map with every value carried into the
// target language. A field whose model translation fails keeps its
// original value; when every model call fails the whole run is reported
// as failed so the caller can leave the form untouched.
func (t *ModelTranslator) TranslateValues(ctx context.Context, values map[string]string, from, to string) (map[string]string, error) {
	if from == to {
		return values, nil
	}

	out := make(map[string]string, len(values))
	var attempted, failed int
	for key, value := range values {
		if value == "" || doNotTranslate[key] {
			out[key] = value
			continue
		}
		if len([]rune(value)) <= minModelLength {
			out[key] = value
			continue
		}

		attempted++
		res, err := t.chain.Invoke(ctx, translateInput{Text: value, From: languageName(from), To: languageName(to)})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			t.logger.Warn("field translation failed, keeping original",
				slog.String("field", key),
				slog.Any("error", err))
			out[key] = value
			failed++
			continue
		}
		if translation := strings.TrimSpace(res.Translation); translation != "" {
			out[key] = translation
		} else {
			out[key] = value
		}
	}

	applyLiterals(values, out, to)

	if attempted > 0 && failed == attempted {
		return nil, fmt.Errorf("translation from %s to %s failed for all %d fields", from, to, attempted)
	}
	return out, nil
}

// applyLiterals maps the select values that have human readable variants.
// These fields are in the do-not-translate set, so the table is the only
// way they change language.
func applyLiterals(values, out map[string]string, to string) {
	if v := values["maritalStatus"]; v != "" {
		if mapped, ok := lookupLiteral(maritalLiterals, v, to); ok {
			out["maritalStatus"] = mapped
		}
	}
	if v := values["criminalRecord"]; v != "" {
		if mapped, ok := lookupLiteral(yesNoLiterals, v, to); ok {
			out["criminalRecord"] = mapped
		}
	}
}

var englishNames = map[string]string{
	"de": "German",
	"en": "English",
	"tr": "Turkish",
	"ar": "Arabic",
	"pl": "Polish",
	"uk": "Ukrainian",
	"es": "Spanish",
	"fr": "French",
}

func languageName(code string) string {
	if n, ok := englishNames[code]; ok {
		return n
	}
	return "English"
}
