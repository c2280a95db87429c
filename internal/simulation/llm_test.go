package simulation

import (
	"context"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type fakeMessager struct {
	lastParams anthropic.MessageNewParams
	resp       *anthropic.Message
	err        error
}

func (f *fakeMessager) New(_ context.Context, params anthropic.MessageNewParams, _ ...option.RequestOption) (*anthropic.Message, error) {
	f.lastParams = params
	return f.resp, f.err
}

func TestNewAnthropicCallerFromEnvMissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewAnthropicCallerFromEnv(); err == nil {
		t.Fatal("expected error without ANTHROPIC_API_KEY")
	}
}

func TestGenerateTextConcatenatesBlocks(t *testing.T) {
	fake := &fakeMessager{resp: &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: "Solution 1: A\n"},
			{Type: "text", Text: "- Description: d"},
		},
	}}
	caller := &AnthropicCaller{messages: fake}
	got, err := caller.GenerateText(context.Background(), scenarioSystemPrompt, "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Solution 1: A\n- Description: d" {
		t.Fatalf("unexpected text: %q", got)
	}
	if len(fake.lastParams.System) != 1 || fake.lastParams.System[0].Text != scenarioSystemPrompt {
		t.Fatalf("system prompt not forwarded: %+v", fake.lastParams.System)
	}
}
