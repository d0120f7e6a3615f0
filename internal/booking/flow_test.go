package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func advanceAll(t *testing.T, s Session, inputs ...string) (Session, string) {
	t.Helper()
	var reply string
	for _, in := range inputs {
		s, reply = Advance(s, in)
	}
	return s, reply
}

func TestIsTrigger(t *testing.T) {
	require.True(t, IsTrigger("book via chat"))
	require.True(t, IsTrigger("Can I BOOK VIA CHAT please?"))
	require.False(t, IsTrigger("how do I book?"))
}

func TestStart(t *testing.T) {
	s, prompt := Start("sess-1")
	require.Equal(t, "sess-1", s.ID)
	require.Equal(t, StepStart, s.Step)
	require.Equal(t, startPrompt, prompt)
	require.Contains(t, prompt, "[chat: Collision Repair]")
}

func TestAdvance_ServiceSelection(t *testing.T) {
	s, _ := Start("s")

	next, reply := Advance(s, "I need collision repair")
	require.Equal(t, StepService, next.Step)
	require.Equal(t, "Collision Repair", next.Service)
	require.Equal(t, timeframePrompt, reply)

	next, _ = Advance(s, "wheel alignment check")
	require.Equal(t, StepService, next.Step)
	require.Equal(t, "wheel alignment check", next.Service)
}

func TestAdvance_ServiceTooShortReprompts(t *testing.T) {
	s, prompt := Start("s")
	next, reply := Advance(s, "ok")
	require.Equal(t, s, next)
	require.Equal(t, prompt, reply)
}

func TestAdvance_MismatchRepromptsWithoutAdvancing(t *testing.T) {
	cases := []struct {
		name  string
		setup []string
	}{
		{name: "timeframe", setup: []string{"dent"}},
		{name: "day of week", setup: []string{"dent", "this week"}},
		{name: "contact method", setup: []string{"dent", "i'm flexible"}},
		{name: "time of day after asap", setup: []string{"dent", "asap"}},
		{name: "time of day after day", setup: []string{"dent", "next week", "friday"}},
		{name: "vin", setup: []string{"dent", "asap", "morning", "2019 Honda Civic"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, _ := Start("s")
			s, prompt := advanceAll(t, start, tc.setup...)
			again, reply := Advance(s, "purple elephants")
			require.Equal(t, s, again)
			require.Equal(t, prompt, reply)
			require.Equal(t, Prompt(s), reply)
		})
	}
}

func TestAdvance_TimeframeBranches(t *testing.T) {
	start, _ := Start("s")

	week, reply := advanceAll(t, start, "paint", "next week")
	require.Equal(t, StepTimeframe, week.Step)
	require.Equal(t, TimeframeNextWeek, week.Timeframe)
	require.Contains(t, reply, "Which day next week")

	flexible, reply := advanceAll(t, start, "paint", "I'm flexible")
	require.Equal(t, TimeframeFlexible, flexible.Timeframe)
	require.Equal(t, contactMethodPrompt, reply)

	asap, reply := advanceAll(t, start, "paint", "asap please")
	require.Equal(t, TimeframeASAP, asap.Timeframe)
	require.Equal(t, timeOfDayPrompt, reply)
}

func TestAdvance_SpecificTime(t *testing.T) {
	start, _ := Start("s")
	s, reply := advanceAll(t, start, "bumper", "this week", "Tuesday", "around 2:30 pm")
	require.Equal(t, StepTimeOfDay, s.Step)
	require.Equal(t, "Tuesday", s.DayOfWeek)
	require.Equal(t, "2:30 PM", s.SpecificTime)
	require.Empty(t, s.TimeOfDay)
	require.Equal(t, vehiclePrompt, reply)
}

func TestAdvance_FullFlowWithDay(t *testing.T) {
	start, _ := Start("s")
	s, reply := advanceAll(t, start,
		"collision",
		"this week",
		"wednesday",
		"morning",
		"2019 Honda Civic",
		"skip",
		"Jane Doe 555-123-4567",
		"rear bumper is cracked",
	)
	require.True(t, s.Done())
	require.Contains(t, reply, "Service: Collision Repair")
	require.Contains(t, reply, "Preferred time: Wednesday (this week), Morning (8am - 12pm)")
	require.Contains(t, reply, "Vehicle: 2019 Honda Civic")
	require.NotContains(t, reply, "VIN:")
	require.Contains(t, reply, "Contact: Jane Doe 555-123-4567")
	require.Contains(t, reply, "Additional info: rear bumper is cracked")
	require.Contains(t, reply, "[phone: Call Us]")
}

func TestAdvance_FullFlowFlexibleWithVIN(t *testing.T) {
	start, _ := Start("s")
	s, reply := advanceAll(t, start,
		"scratch",
		"whenever works",
		"text me",
		"BMW 335i",
		"vin is WBAWL73549P371949",
		"sam@example.com",
		"no",
	)
	require.True(t, s.Done())
	require.Equal(t, "text message", s.ContactMethod)
	require.Equal(t, "WBAWL73549P371949", s.VIN)
	require.Empty(t, s.AdditionalInfo)
	require.Contains(t, reply, "Timing: Flexible")
	require.Contains(t, reply, "We'll reach out by text message")
	require.Contains(t, reply, "VIN: WBAWL73549P371949")
	require.Contains(t, reply, "Identified as: 2009 BMW 3 Series Coupe")
	require.NotContains(t, reply, "Additional info")
}

func TestAdvance_TimeOfDayOnlyPhrasing(t *testing.T) {
	start, _ := Start("s")
	_, reply := advanceAll(t, start, "hail", "asap", "late afternoon", "Tesla Model 3", "don't have it", "Al 555", "no, that's all")
	require.Contains(t, reply, "Preferred time: As soon as possible, Late afternoon (3pm - 6pm)")
}

func TestAdvance_SpecificTimeOnlyPhrasing(t *testing.T) {
	start, _ := Start("s")
	_, reply := advanceAll(t, start, "dent", "asap", "14:00", "Ford F-150", "skip", "Bo 555", "none")
	require.Contains(t, reply, "Preferred time: As soon as possible, at 2:00 PM")
}

func TestAdvance_LastAnswerConfirms(t *testing.T) {
	s := Session{ID: "s", Step: StepContact, Service: "Dent Repair", Contact: "Pat 555-0100"}
	require.Equal(t, additionalInfoPrompt, Prompt(s))

	next, reply := Advance(s, "rear door too")
	require.Equal(t, StepConfirmation, next.Step)
	require.True(t, next.Done())
	require.Equal(t, "rear door too", next.AdditionalInfo)
	require.Equal(t, Summary(next), reply)
	require.Empty(t, Prompt(next))
}

func TestAdvance_TerminalSessionIsInert(t *testing.T) {
	s := Session{ID: "s", Step: StepConfirmation}
	next, reply := Advance(s, "anything")
	require.Equal(t, s, next)
	require.Empty(t, reply)
}

func TestParseSpecificTime(t *testing.T) {
	cases := map[string]string{
		"10am":          "10:00 AM",
		"at 9 AM":       "9:00 AM",
		"2:30 pm":       "2:30 PM",
		"12pm works":    "12:00 PM",
		"14:15":         "2:15 PM",
		"00:30":         "12:30 AM",
		"12:00":         "12:00 PM",
		"around 4 p.m.": "4:00 PM",
	}
	for in, want := range cases {
		got, ok := parseSpecificTime(in)
		require.True(t, ok, in)
		require.Equal(t, want, got, in)
	}
	_, ok := parseSpecificTime("morning")
	require.False(t, ok)
}

func TestPrompts_UseChatMarkup(t *testing.T) {
	for _, p := range []string{startPrompt, timeframePrompt, timeOfDayPrompt, contactMethodPrompt, dayPrompt("this week")} {
		require.True(t, strings.Contains(p, "[chat: "), p)
	}
}
