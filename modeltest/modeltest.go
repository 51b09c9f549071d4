// Package modeltest provides a scripted chat model for tests. Responses
// are queued up front and returned in order; every call is recorded.
package modeltest

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Call records one model invocation.
type Call struct {
	Messages []*schema.Message
}

// step is one scripted outcome.
type step struct {
	message *schema.Message
	chunks  []string
	err     error
}

// ChatModel is a scripted model.ToolCallingChatModel.
type ChatModel struct {
	mu    sync.Mutex
	steps []step
	calls []Call
}

var _ model.ToolCallingChatModel = (*ChatModel)(nil)

func New() *ChatModel {
	return &ChatModel{}
}

// QueueContent scripts a plain text reply.
func (m *ChatModel) QueueContent(content string) *ChatModel {
	return m.QueueMessage(&schema.Message{Role: schema.Assistant, Content: content})
}

// QueueToolCall scripts a reply that calls one tool with the given JSON
// arguments.
func (m *ChatModel) QueueToolCall(name, arguments string) *ChatModel {
	return m.QueueMessage(&schema.Message{
		Role: schema.Assistant,
		ToolCalls: []schema.ToolCall{
			{Function: schema.FunctionCall{Name: name, Arguments: arguments}},
		},
	})
}

func (m *ChatModel) QueueMessage(msg *schema.Message) *ChatModel {
	m.mu.Lock()
	m.steps = append(m.steps, step{message: msg})
	m.mu.Unlock()
	return m
}

// QueueError scripts a transport failure.
func (m *ChatModel) QueueError(err error) *ChatModel {
	m.mu.Lock()
	m.steps = append(m.steps, step{err: err})
	m.mu.Unlock()
	return m
}

// QueueChunks scripts a streamed reply.
func (m *ChatModel) QueueChunks(chunks ...string) *ChatModel {
	m.mu.Lock()
	m.steps = append(m.steps, step{chunks: chunks})
	m.mu.Unlock()
	return m
}

// Calls returns the recorded invocations.
func (m *ChatModel) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *ChatModel) next(messages []*schema.Message) (step, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Messages: messages})
	if len(m.steps) == 0 {
		return step{}, fmt.Errorf("modeltest: no scripted response left (call %d)", len(m.calls))
	}
	s := m.steps[0]
	m.steps = m.steps[1:]
	return s, nil
}

func (m *ChatModel) Generate(_ context.Context, messages []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	s, err := m.next(messages)
	if err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	if s.message != nil {
		return s.message, nil
	}
	// A chunked script answered through Generate collapses to one message.
	var content string
	for _, c := range s.chunks {
		content += c
	}
	return &schema.Message{Role: schema.Assistant, Content: content}, nil
}

func (m *ChatModel) Stream(_ context.Context, messages []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	s, err := m.next(messages)
	if err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	var msgs []*schema.Message
	if s.message != nil {
		msgs = []*schema.Message{s.message}
	} else {
		for _, c := range s.chunks {
			msgs = append(msgs, &schema.Message{Role: schema.Assistant, Content: c})
		}
	}
	return schema.StreamReaderFromArray(msgs), nil
}

func (m *ChatModel) WithTools(_ []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return m, nil
}
