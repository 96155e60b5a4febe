package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikayet/console-api/internal/clock"
)

func newTestNotifier(mode Mode) (*Notifier, *clock.Fake) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return NewNotifier(mode, clk), clk
}

func TestNotifier_QueueMode_KeepsAllToasts(t *testing.T) {
	n, _ := newTestNotifier(ModeQueue)

	n.Success("Saved", "")
	n.Error("Failed", "Something broke.")
	n.Info("Heads up", "")

	toasts := n.Active()
	require.Len(t, toasts, 3)
	assert.Equal(t, "Saved", toasts[0].Title)
	assert.Equal(t, "Failed", toasts[1].Title)
	assert.Equal(t, "Heads up", toasts[2].Title)
}

func TestNotifier_ReplaceMode_SingleSlot(t *testing.T) {
	n, _ := newTestNotifier(ModeReplace)

	n.Success("First", "")
	id := n.Error("Second", "")

	toasts := n.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, id, toasts[0].ID)
	assert.Equal(t, "Second", toasts[0].Title)
}

func TestNotifier_AutoCloseExpiry(t *testing.T) {
	n, clk := newTestNotifier(ModeQueue)

	n.Success("Default close", "")
	n.Info("Long close", "", WithAutoClose(10*time.Second))

	clk.Advance(DefaultAutoClose)
	toasts := n.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Long close", toasts[0].Title)

	clk.Advance(10 * time.Second)
	assert.Empty(t, n.Active())
}

func TestNotifier_Dismiss(t *testing.T) {
	n, _ := newTestNotifier(ModeQueue)

	id := n.Success("Saved", "")

	assert.True(t, n.Dismiss(id))
	assert.Empty(t, n.Active())
	assert.False(t, n.Dismiss(id), "second dismiss finds nothing")
}

func TestNotifier_InvokeAction(t *testing.T) {
	n, _ := newTestNotifier(ModeQueue)

	invoked := 0
	id := n.Info("Guide deleted", "You can undo this action.",
		WithAction("Undo", func() { invoked++ }),
	)

	assert.True(t, n.InvokeAction(id))
	assert.Equal(t, 1, invoked)
	assert.Empty(t, n.Active(), "invoking dismisses the toast")

	assert.False(t, n.InvokeAction(id), "a consumed action cannot fire again")
	assert.Equal(t, 1, invoked)
}

func TestNotifier_InvokeAction_ExpiredToast(t *testing.T) {
	n, clk := newTestNotifier(ModeQueue)

	invoked := false
	id := n.Info("Guide deleted", "", WithAction("Undo", func() { invoked = true }))

	clk.Advance(DefaultAutoClose)

	assert.False(t, n.InvokeAction(id))
	assert.False(t, invoked)
}

func TestNotifier_InvokeAction_NoAction(t *testing.T) {
	n, _ := newTestNotifier(ModeQueue)

	id := n.Success("Saved", "")
	assert.False(t, n.InvokeAction(id))
}

func TestNotifier_Close(t *testing.T) {
	n, clk := newTestNotifier(ModeQueue)

	n.Success("One", "")
	n.Success("Two", "")
	n.Close()

	assert.Empty(t, n.Active())
	assert.Zero(t, clk.Pending(), "close cancels every auto-close timer")
}

func TestToast_MarshalJSON_MillisecondAutoClose(t *testing.T) {
	n, _ := newTestNotifier(ModeQueue)
	n.Show(KindInfo, "Guide deleted", "You can undo this action.",
		WithAutoClose(5200*time.Millisecond),
		WithAction("Undo", func() {}),
	)

	buf, err := json.Marshal(n.Active())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf, &decoded))
	require.Len(t, decoded, 1)
	assert.EqualValues(t, 5200, decoded[0]["auto_close_ms"])
	assert.NotContains(t, decoded[0], "auto_close")
	assert.Equal(t, "Undo", decoded[0]["action"].(map[string]any)["label"])
}

func TestHub_ForSession_IsolatesSessions(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	hub := NewHub(ModeQueue, clk)

	a := hub.ForSession("sess-a")
	b := hub.ForSession("sess-b")
	require.NotSame(t, a, b)

	a.Success("Only for A", "")
	assert.Len(t, a.Active(), 1)
	assert.Empty(t, b.Active())

	assert.Same(t, a, hub.ForSession("sess-a"), "same session gets the same notifier")
}

func TestHub_Remove_TearsDown(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	hub := NewHub(ModeQueue, clk)

	n := hub.ForSession("sess-a")
	n.Success("Saved", "")

	hub.Remove("sess-a")

	assert.Empty(t, n.Active())
	assert.NotSame(t, n, hub.ForSession("sess-a"), "a removed session starts fresh")
}
