package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/permitly/permitagent/locale"
	"github.com/permitly/permitagent/normalize"
	"github.com/permitly/permitagent/patch"
	"github.com/permitly/permitagent/question"
	"github.com/permitly/permitagent/schedule"
	"github.com/permitly/permitagent/translate"
	"github.com/permitly/permitagent/validation"
)

// Flow runs the form filling dialogue for the sessions routed through its
// state store.
type Flow struct {
	store      StateReadWriter
	validator  validation.Gateway
	questions  question.Generator
	translator translate.Translator
	chatModel  model.ToolCallingChatModel
	parser     *StaticCommandParser
	logger     *slog.Logger
}

type FlowOption func(*Flow)

func WithTranslator(t translate.Translator) FlowOption {
	return func(f *Flow) { f.translator = t }
}

// WithSummaryModel enables the closing summary once the form is complete.
func WithSummaryModel(m model.ToolCallingChatModel) FlowOption {
	return func(f *Flow) { f.chatModel = m }
}

func WithFlowLogger(logger *slog.Logger) FlowOption {
	return func(f *Flow) { f.logger = logger }
}

func WithCommandParser(p *StaticCommandParser) FlowOption {
	return func(f *Flow) { f.parser = p }
}

func NewFlow(store StateReadWriter, validator validation.Gateway, questions question.Generator, opts ...FlowOption) *Flow {
	f := &Flow{
		store:     store,
		validator: validator,
		questions: questions,
		parser:    NewStaticCommandParser(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Start opens a session: welcome message plus the first question.
func (f *Flow) Start(ctx context.Context, language string) (*State, error) {
	if !locale.Supported(language) {
		language = locale.Fallback
	}
	state := newState(language)
	state.Messages = append(state.Messages, newMessage(RoleBot, locale.Welcome(language), ""))
	f.askNext(ctx, state)
	if err := f.commit(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// commit bumps the mutation sequence and persists the state.
func (f *Flow) commit(ctx context.Context, state *State) error {
	state.Seq++
	if err := f.store.Write(ctx, state); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

// stale reports whether the session moved past the given sequence while a
// model call was in flight.
func (f *Flow) stale(ctx context.Context, seq uint64) (*State, bool) {
	latest, ok, err := f.store.Read(ctx)
	if err != nil || !ok {
		return nil, false
	}
	return latest, latest.Seq != seq
}

func (f *Flow) load(ctx context.Context) (*State, error) {
	state, ok, err := f.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session state: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("session not started")
	}
	return state, nil
}

// Snapshot returns the current state of the session.
func (f *Flow) Snapshot(ctx context.Context) (*State, error) {
	return f.load(ctx)
}

// Submit handles one chat input: commands first, then the input is taken
// as the answer to the field the cursor points at.
func (f *Flow) Submit(ctx context.Context, input string) (*State, error) {
	state, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	// An empty send stores nothing and never advances the cursor.
	input = strings.TrimSpace(input)
	if input == "" {
		return state, nil
	}

	switch f.parser.ParseCommand(ctx, input) {
	case CommandRestart:
		return f.Restart(ctx)
	case CommandHelp:
		f.appendHelp(ctx, state)
		if err := f.commit(ctx, state); err != nil {
			return nil, err
		}
		return state, nil
	}

	if state.Completed {
		state.Messages = append(state.Messages, newMessage(RoleUser, input, ""))
		// Remind about the completed form once, not on every input.
		if done := locale.Completion(state.Language); lastBotText(state) != done {
			state.Messages = append(state.Messages, newMessage(RoleBot, done, ""))
		}
		if err := f.commit(ctx, state); err != nil {
			return nil, err
		}
		return state, nil
	}

	field, ok := schedule.At(state.Cursor)
	if !ok {
		f.complete(ctx, state)
		if err := f.commit(ctx, state); err != nil {
			return nil, err
		}
		return state, nil
	}

	seq := state.Seq
	value := normalize.Normalize(field.ID, input)
	// The transcript keeps what the applicant typed; the Saved
	// confirmation marks what was stored.
	state.Messages = append(state.Messages, newMessage(RoleUser, input, field.ID))

	verdict, err := f.validator.Validate(ctx, field.ID, value, state.Language)
	if err != nil {
		return nil, err
	}
	// A direct edit, demo fill or restart may have advanced the session
	// while validation was in flight. The verdict targets a cursor that
	// no longer exists and is dropped.
	if latest, moved := f.stale(ctx, seq); moved {
		return latest, nil
	}
	if !verdict.Valid {
		// No FieldID on the warning: only Saved confirmations are
		// re-localized by template on language change.
		state.Messages = append(state.Messages, newMessage(RoleSystem, verdict.Message, ""))
		// Allow the question to be asked again after a rejected answer.
		state.LastAskedFieldID = ""
		f.askNext(ctx, state)
		if err := f.commit(ctx, state); err != nil {
			return nil, err
		}
		return state, nil
	}
	// A corrected value is adopted only when it normalizes to something;
	// a blank correction must not wipe the answer.
	if verdict.CorrectedValue != "" {
		if corrected := normalize.Normalize(field.ID, verdict.CorrectedValue); corrected != "" {
			value = corrected
		}
	}

	state.Values[field.ID] = value
	state.Messages = append(state.Messages, newMessage(RoleSystem, locale.Saved(state.Language), field.ID))

	state.Cursor++
	state.LastAskedFieldID = ""
	f.askNext(ctx, state)

	if err := f.commit(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// askNext advances the cursor over already filled fields and appends the
// question for the next empty one, or completes the form.
func (f *Flow) askNext(ctx context.Context, state *State) {
	for state.Cursor < schedule.Len() {
		field, _ := schedule.At(state.Cursor)
		if state.Values[field.ID] == "" {
			break
		}
		state.Cursor++
	}

	if state.Cursor >= schedule.Len() {
		f.complete(ctx, state)
		return
	}

	field, _ := schedule.At(state.Cursor)
	if state.LastAskedFieldID == field.ID {
		return
	}
	if last := lastMessage(state); last != nil && last.Role == RoleBot && last.FieldID == field.ID {
		return
	}

	prompt, err := f.questions.NextQuestion(ctx, field.ID, state.Values, state.Language)
	if err != nil {
		// The bank generator closes the usual chain, so this only
		// happens with a custom generator setup.
		f.logger.Warn("question generation failed",
			slog.String("field", field.ID),
			slog.Any("error", err))
		prompt = &question.Prompt{Question: locale.Question(field.ID, state.Language)}
	}
	state.LastAskedFieldID = field.ID
	state.Messages = append(state.Messages, newMessage(RoleBot, prompt.Question, field.ID))
}

func lastMessage(state *State) *Message {
	if len(state.Messages) == 0 {
		return nil
	}
	return &state.Messages[len(state.Messages)-1]
}

func lastBotText(state *State) string {
	for i := len(state.Messages) - 1; i >= 0; i-- {
		if state.Messages[i].Role == RoleBot {
			return state.Messages[i].Text
		}
	}
	return ""
}

// complete marks the form done and appends the completion message plus a
// best effort summary.
func (f *Flow) complete(ctx context.Context, state *State) {
	already := state.Completed
	state.Completed = true
	if already {
		return
	}
	state.Messages = append(state.Messages, newMessage(RoleBot, locale.Completion(state.Language), ""))
	f.appendSummary(ctx, state)
}

func (f *Flow) appendSummary(ctx context.Context, state *State) {
	if f.chatModel == nil {
		return
	}
	valuesJSON, err := sonic.MarshalIndent(state.Values, "", "  ")
	if err != nil {
		return
	}
	prompt := fmt.Sprintf(`Erstelle eine professionelle Zusammenfassung dieses Arbeitserlaubnis-Antrags in %[1]s:

%s

Erstelle eine gut formatierte Zusammenfassung die:
1. Verwandte Informationen gruppiert
2. Wichtige Details hervorhebt
3. Für die offizielle Einreichung bereit ist
4. Korrekte Formatierung mit Abschnitten verwendet

MUSS in %[1]s Sprache sein!`, locale.Name(state.Language), valuesJSON)

	resp, err := f.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(locale.SystemPrompt(state.Language)),
		schema.UserMessage(prompt),
	}, model.WithTemperature(0.2))
	if err != nil {
		f.logger.Warn("summary generation failed", slog.Any("error", err))
		state.Messages = append(state.Messages, newMessage(RoleSystem, locale.SummaryFailed(state.Language), ""))
		return
	}
	state.Messages = append(state.Messages, newMessage(RoleBot, resp.Content, ""))
}

// EditField writes a value directly, the way a form side edit does. No
// new question is asked; the chat continues from wherever it was.
func (f *Flow) EditField(ctx context.Context, fieldID, value string) (*State, error) {
	state, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := schedule.ByID(fieldID); !ok {
		return nil, fmt.Errorf("unknown field %q", fieldID)
	}

	normalized := normalize.Normalize(fieldID, value)
	if normalized == "" {
		delete(state.Values, fieldID)
		state.Completed = false
	} else {
		state.Values[fieldID] = normalized
	}
	f.recomputeCursor(state)

	if !state.Completed && f.allRequiredFilled(state) {
		state.Completed = true
	}

	if err := f.commit(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// recomputeCursor points the cursor at the first empty field.
func (f *Flow) recomputeCursor(state *State) {
	for i, field := range schedule.Fields() {
		if state.Values[field.ID] == "" {
			state.Cursor = i
			return
		}
	}
	state.Cursor = schedule.Len()
}

func (f *Flow) allRequiredFilled(state *State) bool {
	for _, field := range schedule.Fields() {
		if field.Required && state.Values[field.ID] == "" {
			return false
		}
	}
	return true
}

// FillDemo seeds the sample applicant into every still empty field.
func (f *Flow) FillDemo(ctx context.Context) (*State, error) {
	state, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	ops := patch.PrefillOps(state.Values, demoDataFor(state.Language))
	merged, err := patch.Apply(state.Values, ops, patch.AllowedPaths())
	if err != nil {
		return nil, fmt.Errorf("apply demo patch: %w", err)
	}
	state.Values = Values(merged)
	f.recomputeCursor(state)
	state.Messages = append(state.Messages, newMessage(RoleSystem, locale.DemoFilled(state.Language), ""))
	if f.allRequiredFilled(state) {
		state.Completed = true
	}

	if err := f.commit(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Restart drops the session state and starts over in the same language.
// The mutation sequence carries over so responses still in flight for the
// old session stay stale.
func (f *Flow) Restart(ctx context.Context) (*State, error) {
	language := locale.Fallback
	var seq uint64
	if state, ok, _ := f.store.Read(ctx); ok {
		language = state.Language
		seq = state.Seq
	}
	if err := f.store.Remove(ctx); err != nil {
		return nil, fmt.Errorf("remove session state: %w", err)
	}

	state := newState(language)
	state.Seq = seq
	state.Messages = append(state.Messages, newMessage(RoleBot, locale.Welcome(language), ""))
	f.askNext(ctx, state)
	if err := f.commit(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// appendHelp answers a help request for the field currently being asked.
func (f *Flow) appendHelp(ctx context.Context, state *State) {
	field, ok := schedule.At(state.Cursor)
	if !ok {
		state.Messages = append(state.Messages, newMessage(RoleBot, locale.Completion(state.Language), ""))
		return
	}

	text := f.generateHelp(ctx, field.ID, state.Language)
	if text == "" {
		text = locale.Question(field.ID, state.Language)
	}
	state.Messages = append(state.Messages, newMessage(RoleBot, text, ""))
}

func (f *Flow) generateHelp(ctx context.Context, fieldID, language string) string {
	if f.chatModel == nil {
		return ""
	}
	prompt := fmt.Sprintf(`Gib detaillierte Hilfe für das Ausfüllen des %s Feldes in einem deutschen Arbeitserlaubnisantrag.

Beinhalte:
1. Welche Informationen benötigt werden
2. Häufige Fehler die vermieden werden sollten
3. Tipps für dieses Feld
4. Beispiele für das korrekte Format

Antwort MUSS in %s sein!`, fieldID, locale.Name(language))

	resp, err := f.chatModel.Generate(ctx, []*schema.Message{
		schema.SystemMessage(locale.SystemPrompt(language)),
		schema.UserMessage(prompt),
	}, model.WithTemperature(0.3))
	if err != nil {
		f.logger.Warn("help generation failed",
			slog.String("field", fieldID),
			slog.Any("error", err))
		return ""
	}
	return resp.Content
}
