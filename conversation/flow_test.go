package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/permitly/permitagent/modeltest"
	"github.com/permitly/permitagent/question"
	"github.com/permitly/permitagent/schedule"
	"github.com/permitly/permitagent/validation"
)

// acceptAll approves every answer without a model round trip.
type acceptAll struct{}

func (acceptAll) Validate(_ context.Context, _, _, _ string) (*validation.Verdict, error) {
	return &validation.Verdict{Valid: true}, nil
}

// rejectOnce rejects the first answer and accepts everything after.
type rejectOnce struct {
	rejected bool
}

func (r *rejectOnce) Validate(_ context.Context, _, _, _ string) (*validation.Verdict, error) {
	if !r.rejected {
		r.rejected = true
		return &validation.Verdict{Valid: false, Message: "Bitte prüfen Sie die Eingabe."}, nil
	}
	return &validation.Verdict{Valid: true}, nil
}

func newTestFlow(opts ...FlowOption) *Flow {
	return NewFlow(NewMemoryStateReadWriter(), acceptAll{}, question.BankGenerator{}, opts...)
}

func TestStartAsksFirstQuestion(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())

	state, err := flow.Start(ctx, "de")
	require.NoError(t, err)
	require.Len(t, state.Messages, 2)
	require.Equal(t, RoleBot, state.Messages[0].Role)
	require.Empty(t, state.Messages[0].FieldID)
	require.Equal(t, "fullName", state.Messages[1].FieldID)
	require.Equal(t, 0, state.Cursor)
}

func TestStartUnknownLanguageFallsBack(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())

	state, err := flow.Start(ctx, "xx")
	require.NoError(t, err)
	require.Equal(t, "de", state.Language)
}

func TestSubmitStoresNormalizedValueAndAdvances(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	state, err := flow.Submit(ctx, "max mustermann")
	require.NoError(t, err)
	require.Equal(t, "Max Mustermann", state.Values["fullName"])
	require.Equal(t, 1, state.Cursor)

	// Transcript: the user's answer stays as typed, then the Saved
	// confirmation, then the next question.
	n := len(state.Messages)
	require.Equal(t, "dateOfBirth", state.Messages[n-1].FieldID)
	require.Equal(t, RoleSystem, state.Messages[n-2].Role)
	require.Equal(t, "Gespeichert", state.Messages[n-2].Text)
	require.Equal(t, RoleUser, state.Messages[n-3].Role)
	require.Equal(t, "max mustermann", state.Messages[n-3].Text)

	state, err = flow.Submit(ctx, "15.05.1990")
	require.NoError(t, err)
	require.Equal(t, "1990-05-15", state.Values["dateOfBirth"])
}

func TestSubmitBlankInputIsIgnored(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	start, err := flow.Start(ctx, "de")
	require.NoError(t, err)
	before := len(start.Messages)

	state, err := flow.Submit(ctx, "   ")
	require.NoError(t, err)
	// Nothing stored, cursor still on the first field, no new messages.
	require.Equal(t, 0, state.Cursor)
	require.Len(t, state.Messages, before)
	_, stored := state.Values["fullName"]
	require.False(t, stored)
	require.False(t, state.Completed)

	state, err = flow.Submit(ctx, "max mustermann")
	require.NoError(t, err)
	require.Equal(t, "Max Mustermann", state.Values["fullName"])
}

func TestBlankCorrectedValueKeepsAnswer(t *testing.T) {
	blanking := validatorFunc(func(_ context.Context, _, _, _ string) (*validation.Verdict, error) {
		return &validation.Verdict{Valid: true, CorrectedValue: "   "}, nil
	})
	flow := NewFlow(NewMemoryStateReadWriter(), blanking, question.BankGenerator{})
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	state, err := flow.Submit(ctx, "max mustermann")
	require.NoError(t, err)
	require.Equal(t, "Max Mustermann", state.Values["fullName"])
	require.Equal(t, 1, state.Cursor)
}

func TestSubmitInvalidAnswerStays(t *testing.T) {
	flow := NewFlow(NewMemoryStateReadWriter(), &rejectOnce{}, question.BankGenerator{})
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	state, err := flow.Submit(ctx, "???")
	require.NoError(t, err)
	require.Empty(t, state.Values["fullName"])
	require.Equal(t, 0, state.Cursor)
	// The question is asked again after the warning.
	last := state.Messages[len(state.Messages)-1]
	require.Equal(t, RoleBot, last.Role)
	require.Equal(t, "fullName", last.FieldID)

	state, err = flow.Submit(ctx, "Max Mustermann")
	require.NoError(t, err)
	require.Equal(t, "Max Mustermann", state.Values["fullName"])
}

func TestSubmitUsesCorrectedValue(t *testing.T) {
	correcting := validatorFunc(func(_ context.Context, fieldID, _, _ string) (*validation.Verdict, error) {
		if fieldID == "fullName" {
			return &validation.Verdict{Valid: true, CorrectedValue: "erika mustermann"}, nil
		}
		return &validation.Verdict{Valid: true}, nil
	})
	flow := NewFlow(NewMemoryStateReadWriter(), correcting, question.BankGenerator{})
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	state, err := flow.Submit(ctx, "erika")
	require.NoError(t, err)
	// The corrected value runs through normalization too.
	require.Equal(t, "Erika Mustermann", state.Values["fullName"])
}

type validatorFunc func(ctx context.Context, fieldID, answer, language string) (*validation.Verdict, error)

func (f validatorFunc) Validate(ctx context.Context, fieldID, answer, language string) (*validation.Verdict, error) {
	return f(ctx, fieldID, answer, language)
}

func TestNoDuplicateQuestionForSameField(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	state, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	for i := 1; i < len(state.Messages); i++ {
		prev, cur := state.Messages[i-1], state.Messages[i]
		if prev.Role == RoleBot && cur.Role == RoleBot {
			require.NotEqual(t, prev.FieldID, cur.FieldID)
		}
	}
}

func TestEditFieldSkipsQuestionInChat(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	// Fill the first field from the form side.
	state, err := flow.EditField(ctx, "fullName", "max mustermann")
	require.NoError(t, err)
	require.Equal(t, "Max Mustermann", state.Values["fullName"])
	require.Equal(t, 1, state.Cursor)
	// Direct edits do not add bot messages.
	require.Equal(t, RoleBot, state.Messages[len(state.Messages)-1].Role)
	require.Equal(t, "fullName", state.Messages[len(state.Messages)-1].FieldID)

	// The next chat answer lands on dateOfBirth, not fullName.
	state, err = flow.Submit(ctx, "15.05.1990")
	require.NoError(t, err)
	require.Equal(t, "1990-05-15", state.Values["dateOfBirth"])
	require.Equal(t, "Max Mustermann", state.Values["fullName"])
}

func TestEditFieldClearReopensForm(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)
	_, err = flow.FillDemo(ctx)
	require.NoError(t, err)

	state, err := flow.EditField(ctx, "email", "")
	require.NoError(t, err)
	require.False(t, state.Completed)
	require.Equal(t, schedule.IndexOf("email"), state.Cursor)
}

func TestEditFieldUnknownField(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	_, err = flow.EditField(ctx, "notAField", "x")
	require.Error(t, err)
}

func TestFillDemoCompletesAndKeepsExisting(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	_, err = flow.Submit(ctx, "ayşe yılmaz")
	require.NoError(t, err)

	state, err := flow.FillDemo(ctx)
	require.NoError(t, err)
	require.True(t, state.Completed)
	// The chat answer survives the demo fill.
	require.Equal(t, "Ayşe Yılmaz", state.Values["fullName"])
	require.NotEmpty(t, state.Values["email"])
	require.Equal(t, schedule.Len(), state.Cursor)
}

func TestCompleteAfterAllAnswers(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "en")
	require.NoError(t, err)

	var state *State
	answers := demoDataFor("en")
	for i := 0; i < schedule.Len(); i++ {
		snap, err := flow.Snapshot(ctx)
		require.NoError(t, err)
		if snap.Completed {
			break
		}
		field, ok := schedule.At(snap.Cursor)
		require.True(t, ok)
		state, err = flow.Submit(ctx, answers[field.ID])
		require.NoError(t, err)
	}
	require.NotNil(t, state)
	require.True(t, state.Completed)
	require.Equal(t, schedule.Len(), state.Values.Filled())

	last := state.Messages[len(state.Messages)-1]
	require.Equal(t, RoleBot, last.Role)
	require.Contains(t, last.Text, "Congratulations")
}

func TestCompletionReplyNotRepeated(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "en")
	require.NoError(t, err)
	_, err = flow.FillDemo(ctx)
	require.NoError(t, err)

	_, err = flow.Submit(ctx, "thanks")
	require.NoError(t, err)
	state, err := flow.Submit(ctx, "anything else?")
	require.NoError(t, err)

	completions := 0
	for _, msg := range state.Messages {
		if msg.Role == RoleBot && strings.Contains(msg.Text, "Congratulations") {
			completions++
		}
	}
	require.Equal(t, 1, completions)
}

func TestSummaryAppendedOnCompletion(t *testing.T) {
	cm := modeltest.New().QueueContent("Zusammenfassung: alles erfasst.")
	flow := newTestFlow(WithSummaryModel(cm))
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	answers := demoDataFor("de")
	var state *State
	for {
		snap, err := flow.Snapshot(ctx)
		require.NoError(t, err)
		if snap.Completed {
			state = snap
			break
		}
		field, ok := schedule.At(snap.Cursor)
		require.True(t, ok)
		state, err = flow.Submit(ctx, answers[field.ID])
		require.NoError(t, err)
	}
	require.True(t, state.Completed)
	require.Equal(t, "Zusammenfassung: alles erfasst.", state.Messages[len(state.Messages)-1].Text)
}

func TestSummaryFailureIsReported(t *testing.T) {
	cm := modeltest.New().QueueError(errors.New("down"))
	flow := NewFlow(NewMemoryStateReadWriter(), acceptAll{}, question.BankGenerator{}, WithSummaryModel(cm))
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	// Answer everything; the last Submit triggers completion plus the
	// summary attempt, which fails.
	answers := demoDataFor("de")
	var state *State
	for {
		snap, err := flow.Snapshot(ctx)
		require.NoError(t, err)
		if snap.Completed {
			state = snap
			break
		}
		field, ok := schedule.At(snap.Cursor)
		require.True(t, ok)
		state, err = flow.Submit(ctx, answers[field.ID])
		require.NoError(t, err)
	}
	require.True(t, state.Completed)

	var sawFailure bool
	for _, msg := range state.Messages {
		if msg.Role == RoleSystem && msg.Text == "Zusammenfassung derzeit nicht verfügbar." {
			sawFailure = true
		}
	}
	require.True(t, sawFailure)
}

func TestRestartCommand(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Start(ctx, "tr")
	require.NoError(t, err)
	_, err = flow.Submit(ctx, "Mehmet Yılmaz")
	require.NoError(t, err)

	state, err := flow.Submit(ctx, "yeniden başlat")
	require.NoError(t, err)
	require.Empty(t, state.Values)
	require.Equal(t, 0, state.Cursor)
	require.Equal(t, "tr", state.Language)
	require.Len(t, state.Messages, 2)
}

func TestSessionsAreIsolated(t *testing.T) {
	flow := newTestFlow()
	ctxA := WithSessionKey(context.Background(), "a")
	ctxB := WithSessionKey(context.Background(), "b")

	_, err := flow.Start(ctxA, "de")
	require.NoError(t, err)
	_, err = flow.Start(ctxB, "en")
	require.NoError(t, err)

	_, err = flow.Submit(ctxA, "Max Mustermann")
	require.NoError(t, err)

	stateB, err := flow.Snapshot(ctxB)
	require.NoError(t, err)
	require.Empty(t, stateB.Values)
	require.Equal(t, "en", stateB.Language)
}

func TestSubmitWithoutStart(t *testing.T) {
	flow := newTestFlow()
	ctx := WithSessionKey(context.Background(), t.Name())
	_, err := flow.Submit(ctx, "hello")
	require.Error(t, err)
}

func TestStaleVerdictIsDropped(t *testing.T) {
	var flow *Flow
	racing := validatorFunc(func(ctx context.Context, _, _, _ string) (*validation.Verdict, error) {
		// A direct form edit lands while validation is in flight.
		_, err := flow.EditField(ctx, "fullName", "Erika Musterfrau")
		require.NoError(t, err)
		return &validation.Verdict{Valid: true}, nil
	})
	flow = NewFlow(NewMemoryStateReadWriter(), racing, question.BankGenerator{})
	ctx := WithSessionKey(context.Background(), t.Name())

	_, err := flow.Start(ctx, "de")
	require.NoError(t, err)

	state, err := flow.Submit(ctx, "max mustermann")
	require.NoError(t, err)
	require.Equal(t, "Erika Musterfrau", state.Values["fullName"])
	for _, msg := range state.Messages {
		require.NotEqual(t, "Max Mustermann", msg.Text)
	}
}
