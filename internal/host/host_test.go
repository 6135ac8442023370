package host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/convomail/pkg/automation"
	"github.com/dmitrymomot/convomail/pkg/history"
)

func TestRuntime_GetSetting(t *testing.T) {
	t.Parallel()

	settings := map[string]string{"EMAIL_AUTOMATION_ENABLED": " true \n"}
	rt := New(history.NewMemory(), Profile{}, WithLookup(func(k string) string { return settings[k] }))

	require.Equal(t, "true", rt.GetSetting("EMAIL_AUTOMATION_ENABLED"))
	require.Empty(t, rt.GetSetting("RESEND_API_KEY"))
}

func TestRuntime_GetSetting_Environment(t *testing.T) {
	t.Setenv("CONVOMAIL_TEST_SETTING", "value")

	rt := New(history.NewMemory(), Profile{})
	require.Equal(t, "value", rt.GetSetting("CONVOMAIL_TEST_SETTING"))
}

func TestRuntime_ComposeState(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := history.NewMemory()
	rt := New(store, Profile{Name: "Ada", Bio: "Go mentor", Topics: []string{"go", "email"}}, WithRecentMessages(2))

	msgs := []automation.Message{
		{ID: "1", UserID: "bob", RoomID: "r", Content: automation.Content{Text: "first"}},
		{ID: "2", UserID: "a@b.com", RoomID: "r", Content: automation.Content{Text: "second"}},
		{ID: "3", UserID: "bob", RoomID: "r", Content: automation.Content{Text: "third"}},
		{ID: "4", UserID: "123456789012345678", RoomID: "r", Content: automation.Content{Text: "current"}},
		{ID: "x", UserID: "bob", RoomID: "other", Content: automation.Content{Text: "elsewhere"}},
	}
	for _, m := range msgs {
		require.NoError(t, rt.Record(ctx, m))
	}

	state, err := rt.ComposeState(ctx, msgs[3])
	require.NoError(t, err)

	require.Equal(t, automation.State{
		"agentName":      "Ada",
		"bio":            "Go mentor",
		"topics":         "go, email",
		"senderName":     "Discord User 123456789012345678",
		"recentMessages": "a@b.com: second\nUser bob: third",
		"metadata": map[string]any{
			"roomId":       "r",
			"historyCount": 2,
		},
	}, state)
}

func TestRuntime_ComposeState_DirectMessages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rt := New(history.NewMemory(), Profile{Name: "Ada"})

	require.NoError(t, rt.Record(ctx, automation.Message{ID: "1", UserID: "bob", Content: automation.Content{Text: "hi"}}))
	require.NoError(t, rt.Record(ctx, automation.Message{ID: "2", UserID: "eve", Content: automation.Content{Text: "hey"}}))

	state, err := rt.ComposeState(ctx, automation.Message{ID: "3", UserID: "bob"})
	require.NoError(t, err)
	require.Equal(t, "User bob: hi", state["recentMessages"])
}

type failingStore struct{ history.Store }

func (failingStore) Recent(context.Context, string, int) ([]history.Entry, error) {
	return nil, history.ErrUnavailable
}

func TestRuntime_ComposeState_HistoryFailure(t *testing.T) {
	t.Parallel()

	rt := New(failingStore{}, Profile{})
	_, err := rt.ComposeState(context.Background(), automation.Message{ID: "1", UserID: "bob"})
	require.True(t, errors.Is(err, history.ErrUnavailable))
}
