package automation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGate_Decide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{name: "email marker", output: "[EMAIL] - They asked for a follow up", want: true},
		{name: "marker after quotes", output: "<quotes>x</quotes>\n[EMAIL] - ready", want: true},
		{name: "skip marker", output: "[SKIP] - Not enough detail", want: false},
		{name: "empty output", output: "", want: false},
		{name: "lowercase marker", output: "[email] - ready", want: false},
		{name: "marker without brackets", output: "EMAIL please", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			model := &scriptedModel{outputs: []string{tt.output}}
			gate := NewGate(&fakeRuntime{}, model, nil)

			got, err := gate.Decide(context.Background(), &Context{State: State{}})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Len(t, model.prompts, 1)
		})
	}
}

func TestGate_Decide_BindsState(t *testing.T) {
	t.Parallel()

	model := &scriptedModel{outputs: []string{"[SKIP]"}}
	gate := NewGate(&fakeRuntime{}, model, nil)

	state := State{
		"agentName": "Ada",
		"message":   map[string]any{"content": map[string]any{"text": "let us build together"}},
	}
	_, err := gate.Decide(context.Background(), &Context{State: state})
	require.NoError(t, err)
	require.Contains(t, model.prompts[0], "Latest message: let us build together")
	require.Contains(t, model.prompts[0], "Name: Ada")
	require.NotContains(t, model.prompts[0], "{{")
}

func TestGate_Decide_CustomPrompt(t *testing.T) {
	t.Parallel()

	model := &scriptedModel{outputs: []string{"[EMAIL]"}}
	rt := &fakeRuntime{settings: map[string]string{SettingEvaluationPrompt: "Classify: {{message.content.text}}"}}
	gate := NewGate(rt, model, nil)

	state := State{"message": map[string]any{"content": map[string]any{"text": "hi"}}}
	ok, err := gate.Decide(context.Background(), &Context{State: state})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"Classify: hi"}, model.prompts)
}

func TestGate_Decide_ModelFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("model overloaded")
	gate := NewGate(&fakeRuntime{}, &scriptedModel{errs: []error{cause}}, nil)

	ok, err := gate.Decide(context.Background(), &Context{})
	require.False(t, ok)
	require.ErrorIs(t, err, ErrEvaluation)
	require.ErrorIs(t, err, cause)
}
