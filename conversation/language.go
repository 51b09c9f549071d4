package conversation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/permitly/permitagent/locale"
)

// ChangeLanguage switches the session to another language. Bot and system
// messages are re-localized from the static templates, user messages stay
// untouched, and the collected values are carried over by the translator
// when one is configured.
func (f *Flow) ChangeLanguage(ctx context.Context, to string) (*State, error) {
	state, err := f.load(ctx)
	if err != nil {
		return nil, err
	}
	if !locale.Supported(to) {
		return nil, fmt.Errorf("unsupported language %q", to)
	}
	from := state.Language
	if from == to {
		return state, nil
	}

	state.Language = to
	relocalizeMessages(state)

	if f.translator != nil && state.Values.Filled() > 0 {
		state.Messages = append(state.Messages, newMessage(RoleSystem, locale.Translating(to), ""))
		seq := state.Seq

		translated, err := f.translator.TranslateValues(ctx, state.Values, from, to)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			f.logger.Warn("value translation failed, keeping values",
				slog.String("from", from),
				slog.String("to", to),
				slog.Any("error", err))
			state.Messages = append(state.Messages, newMessage(RoleSystem, locale.TranslationFailed(to), ""))
		case f.moved(ctx, seq):
			// The values changed while the translation was in
			// flight; overwriting now would lose the newer edits.
			f.logger.Warn("value translation superseded, keeping values",
				slog.String("from", from),
				slog.String("to", to))
			state.Messages = append(state.Messages, newMessage(RoleSystem, locale.TranslationFailed(to), ""))
		default:
			state.Values = Values(translated)
			state.Messages = append(state.Messages, newMessage(RoleSystem, locale.Translated(to), ""))
		}
	}

	if err := f.commit(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (f *Flow) moved(ctx context.Context, seq uint64) bool {
	_, m := f.stale(ctx, seq)
	return m
}

// relocalizeMessages rewrites the template driven transcript entries into
// the session's current language.
func relocalizeMessages(state *State) {
	sawWelcome := false
	for i := range state.Messages {
		msg := &state.Messages[i]
		switch msg.Role {
		case RoleBot:
			if msg.FieldID != "" {
				msg.Text = locale.Question(msg.FieldID, state.Language)
			} else if !sawWelcome {
				msg.Text = locale.Welcome(state.Language)
				sawWelcome = true
			}
		case RoleSystem:
			if msg.FieldID != "" {
				msg.Text = locale.Saved(state.Language)
			}
		}
	}
}
