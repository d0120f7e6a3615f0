package responder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnrich_Idempotent(t *testing.T) {
	r := newTestResponder()
	queries := []string{
		"I need a repair estimate, where are you? can I call?",
		"what are your hours",
		"what services do you offer",
		"my bumper has a dent",
		"hello",
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			once := r.Enrich(q, "We can fix that.")
			twice := r.Enrich(q, once)
			require.Equal(t, once, twice)
			for _, mark := range []string{markBook, markChat, markPhone, markDirections} {
				require.LessOrEqual(t, strings.Count(twice, mark), 1, mark)
			}
		})
	}
}

func TestEnrich_AppendsAffordances(t *testing.T) {
	out := newTestResponder().Enrich("I need a repair estimate, where are you? can I call?", "Sure.")
	require.True(t, strings.HasPrefix(out, "Sure.\n\n"))
	require.Contains(t, out, "[book: Book Online]")
	require.Contains(t, out, "[chat: Book via Chat]")
	require.Contains(t, out, "[phone: Call Us]")
	require.Contains(t, out, "[directions: Get Directions]")
}

func TestEnrich_RespectsExistingMarkup(t *testing.T) {
	text := "Pick one:\n[chat: Dent Repair]"
	out := newTestResponder().Enrich("book a dent repair", text)
	require.Equal(t, text, out)
}

func TestEnrich_NoHintsLeavesTextAlone(t *testing.T) {
	require.Equal(t, "Thanks!", newTestResponder().Enrich("ok thanks", "Thanks!"))
}

func TestEnrich_HoursTableReplacesText(t *testing.T) {
	out := newTestResponder().Enrich("bumper repair, what are your hours?", "Specific bumper answer")
	require.NotContains(t, out, "Specific bumper answer")
	require.Contains(t, out, "[table:start]\nDay|Hours\nMonday - Friday|8:00 AM - 6:00 PM\n")
	require.Contains(t, out, "[table:end]")
}

func TestEnrich_ServicesTable(t *testing.T) {
	out := newTestResponder().Enrich("what services do you offer", "x")
	require.Contains(t, out, "Here's what Test Body Works can do for you")
	require.Contains(t, out, "[table:start]\nService|Details\n")
	require.Contains(t, out, "[book: Book Online]")
}
