package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/permitly/permitagent/modeltest"
)

func TestCleanResponse(t *testing.T) {
	in := "<think>internal reasoning</think>**Wichtig**: Ihre __Antwort__ ist *fast* _fertig_.\n\n\n\nWeiter."
	require.Equal(t, "Wichtig: Ihre Antwort ist fast fertig.\n\nWeiter.", CleanResponse(in))
}

func TestChatUsesLanguagePrompt(t *testing.T) {
	cm := modeltest.New().QueueContent("**Yes**, you need a visa.")
	a := NewAssistant(cm)

	out, err := a.Chat(context.Background(), "Do I need a visa?", "en")
	require.NoError(t, err)
	require.Equal(t, "Yes, you need a visa.", out)

	calls := cm.Calls()
	require.Len(t, calls, 1)
	require.Contains(t, calls[0].Messages[0].Content, "Answer in English")
}

func TestStreamReadAll(t *testing.T) {
	cm := modeltest.New().QueueChunks("Hallo", ", ", "wie kann ich helfen?")
	a := NewAssistant(cm)

	stream, err := a.Stream(context.Background(), "Hallo", "de")
	require.NoError(t, err)
	out, err := ReadAll(context.Background(), stream)
	require.NoError(t, err)
	require.Equal(t, "Hallo, wie kann ich helfen?", out)
}

func TestReadAllStopsOnCancel(t *testing.T) {
	cm := modeltest.New().QueueChunks("chunk one", "chunk two")
	a := NewAssistant(cm)

	stream, err := a.Stream(context.Background(), "Hallo", "de")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ReadAll(ctx, stream)
	require.ErrorIs(t, err, context.Canceled)
}
