package responder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestResponder() *Responder {
	return New(Profile{Name: "Test Body Works", Phone: "(555) 000-1111", Address: "1 Test Lane"})
}

func TestMatch_BumperProcessBeatsDent(t *testing.T) {
	r := newTestResponder()
	reply, ok := r.Match("my bumper has a dent, what's your process?")
	require.True(t, ok)
	require.Equal(t, "bumper", reply.Rule)
	require.Contains(t, reply.Text, "Here's how our bumper repair process works")
}

func TestMatch_ShortVersusDetailed(t *testing.T) {
	r := newTestResponder()

	short, ok := r.Match("I have a dent in my hood")
	require.True(t, ok)
	require.Equal(t, "dent", short.Rule)
	require.NotContains(t, short.Text, "Here's how")

	detailed, ok := r.Match("How do you fix dents?")
	require.True(t, ok)
	require.Contains(t, detailed.Text, "Here's how we handle dents")

	priced, ok := r.Match("how much to fix a dent")
	require.True(t, ok)
	require.NotContains(t, priced.Text, "Here's how")
}

func TestMatch_AccidentIsNotADent(t *testing.T) {
	reply, ok := newTestResponder().Match("I was in an accident yesterday")
	require.True(t, ok)
	require.Equal(t, "collision", reply.Rule)
}

func TestMatch_RepairTableBeatsVIN(t *testing.T) {
	reply, ok := newTestResponder().Match("scratch on my car, VIN WBAWL73549P371949")
	require.True(t, ok)
	require.Equal(t, "scratch", reply.Rule)
	require.Nil(t, reply.VIN)
}

func TestMatch_VIN(t *testing.T) {
	reply, ok := newTestResponder().Match("my vin is wbawl73549p371949")
	require.True(t, ok)
	require.Equal(t, "vin", reply.Rule)
	require.NotNil(t, reply.VIN)
	require.Equal(t, "BMW", reply.VIN.Make)
	require.Contains(t, reply.Text, "Make: BMW")
	require.Contains(t, reply.Text, "Paint: Black Sapphire Metallic (code 475)")
	require.Contains(t, reply.Text, "best-effort")
}

func TestMatch_VINUnknownMake(t *testing.T) {
	reply, ok := newTestResponder().Match("ZZZ12345678901234")
	require.True(t, ok)
	require.Equal(t, "vin", reply.Rule)
	require.Contains(t, reply.Text, "couldn't identify")
}

func TestMatch_DirectDetectorsRenderProfile(t *testing.T) {
	r := newTestResponder()

	loc, ok := r.Match("what's the address?")
	require.True(t, ok)
	require.Equal(t, "location", loc.Rule)
	require.Contains(t, loc.Text, "1 Test Lane")

	phone, ok := r.Match("phone?")
	require.True(t, ok)
	require.Equal(t, "phone", phone.Rule)
	require.Contains(t, phone.Text, "(555) 000-1111")

	hours, ok := r.Match("are you open on weekdays")
	require.True(t, ok)
	require.Equal(t, "hours", hours.Rule)
	require.Contains(t, hours.Text, "Monday - Friday: 8:00 AM - 6:00 PM")

	services, ok := r.Match("what services do you have")
	require.True(t, ok)
	require.Equal(t, "services", services.Rule)
	require.Contains(t, services.Text, "Test Body Works offers")
}

func TestMatch_NoRule(t *testing.T) {
	_, ok := newTestResponder().Match("do you take credit cards")
	require.False(t, ok)
}

func TestFallback_Table(t *testing.T) {
	r := newTestResponder()
	cases := []struct {
		msg  string
		rule string
	}{
		{"hello there", "greeting"},
		{"are you around on saturday", "hours"},
		{"can I email someone", "contact"},
		{"do you specialize in trucks", "services"},
		{"will my insurance cover it", "insurance"},
		{"what does it cost", "estimate"},
		{"need a touch up", "paint"},
		{"I want an appointment", "booking"},
		{"can you match my color", "color"},
		{"I think it's totaled", "collision"},
		{"looking for bodywork", "bodywork"},
		{"curb rash on my rims", "wheels"},
		{"car won't start, need a tow", "towing"},
		{"is there a warranty", "warranty"},
		{"how long will it take", "timeframe"},
		{"do you have a loaner", "rental"},
		{"do you use oem parts", "oem"},
		{"will you beat a competitor", "price-match"},
		{"do you take credit cards", "default"},
	}
	for _, tc := range cases {
		t.Run(tc.rule, func(t *testing.T) {
			reply := r.Fallback(tc.msg)
			require.Equal(t, tc.rule, reply.Rule, tc.msg)
			require.NotEmpty(t, reply.Text)
			require.NotContains(t, reply.Text, "{")
		})
	}
}

func TestFallback_GreetingOnlyForShortMessages(t *testing.T) {
	reply := newTestResponder().Fallback("hi, will my insurance company pay for this")
	require.Equal(t, "insurance", reply.Rule)
}

func TestShortcut(t *testing.T) {
	r := newTestResponder()

	text, ok := r.Shortcut("Where are you located?")
	require.True(t, ok)
	require.Contains(t, text, "1 Test Lane")
	require.Contains(t, text, "[directions:")

	text, ok = r.Shortcut("what's your phone number")
	require.True(t, ok)
	require.Contains(t, text, "(555) 000-1111")

	_, ok = r.Shortcut("my bumper is cracked")
	require.False(t, ok)
}

func TestRespond_EnrichesFallback(t *testing.T) {
	reply := newTestResponder().Respond("what does an estimate cost")
	require.Equal(t, "estimate", reply.Rule)
	require.Contains(t, reply.Text, "[book: Book Online]")
}

func TestDefaultProfileUsedForEmptyFields(t *testing.T) {
	r := New(Profile{Phone: "(555) 999-0000"})
	p := r.Profile()
	require.Equal(t, DefaultProfile().Name, p.Name)
	require.Equal(t, "(555) 999-0000", p.Phone)
	require.NotEmpty(t, p.Hours)
	require.True(t, strings.Contains(r.Fallback("xyz").Text, "(555) 999-0000"))
}
