package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TriggerPhrase starts (or restarts) the booking dialogue.
const TriggerPhrase = "book via chat"

// customServiceMinLen is the shortest free-text answer accepted as a custom
// service when no listed option matches.
const customServiceMinLen = 4

type option struct {
	label    string
	value    string
	keywords []string
}

// Options are matched in order, so more specific keywords come first.
var (
	serviceOptions = []option{
		{label: "Collision Repair", value: "Collision Repair", keywords: []string{"collision", "accident"}},
		{label: "Dent Repair", value: "Dent Repair", keywords: []string{"dent"}},
		{label: "Paint & Scratch Repair", value: "Paint & Scratch Repair", keywords: []string{"paint", "scratch"}},
		{label: "Bumper Repair", value: "Bumper Repair", keywords: []string{"bumper"}},
		{label: "Hail Damage Repair", value: "Hail Damage Repair", keywords: []string{"hail"}},
		{label: "Free Estimate", value: "Free Estimate", keywords: []string{"estimate", "quote"}},
	}

	timeframeOptions = []option{
		{label: "As soon as possible", value: TimeframeASAP, keywords: []string{"as soon as possible", "asap", "urgent", "today", "tomorrow"}},
		{label: "This week", value: TimeframeThisWeek, keywords: []string{"this week"}},
		{label: "Next week", value: TimeframeNextWeek, keywords: []string{"next week"}},
		{label: "I'm flexible", value: TimeframeFlexible, keywords: []string{"flexible", "any time", "anytime", "whenever"}},
	}

	dayOptions = []option{
		{label: "Monday", value: "Monday", keywords: []string{"monday"}},
		{label: "Tuesday", value: "Tuesday", keywords: []string{"tuesday"}},
		{label: "Wednesday", value: "Wednesday", keywords: []string{"wednesday"}},
		{label: "Thursday", value: "Thursday", keywords: []string{"thursday"}},
		{label: "Friday", value: "Friday", keywords: []string{"friday"}},
		{label: "Saturday", value: "Saturday", keywords: []string{"saturday"}},
	}

	timeOfDayOptions = []option{
		{label: "Morning (8am - 12pm)", value: "Morning (8am - 12pm)", keywords: []string{"morning"}},
		{label: "Late afternoon (3pm - 6pm)", value: "Late afternoon (3pm - 6pm)", keywords: []string{"late afternoon", "evening"}},
		{label: "Afternoon (12pm - 3pm)", value: "Afternoon (12pm - 3pm)", keywords: []string{"afternoon", "midday", "lunch"}},
	}

	contactMethodOptions = []option{
		{label: "Phone call", value: "phone call", keywords: []string{"call", "phone"}},
		{label: "Text message", value: "text message", keywords: []string{"text", "sms"}},
		{label: "Email", value: "email", keywords: []string{"email", "e-mail"}},
	}

	skipWords = []string{"skip", "don't have", "dont have", "do not have", "no vin", "not sure", "later", "don't know", "dont know"}
	noneWords = []string{"no", "none", "nope", "nothing", "n/a", "that's all", "thats all", "no, that's all"}
)

func matchOption(opts []option, input string) (string, bool) {
	in := strings.ToLower(input)
	for _, o := range opts {
		for _, kw := range o.keywords {
			if strings.Contains(in, kw) {
				return o.value, true
			}
		}
	}
	return "", false
}

func containsAny(input string, words []string) bool {
	in := strings.ToLower(input)
	for _, w := range words {
		if strings.Contains(in, w) {
			return true
		}
	}
	return false
}

func isNone(input string) bool {
	in := strings.Trim(strings.ToLower(strings.TrimSpace(input)), ".! ")
	for _, w := range noneWords {
		if in == w {
			return true
		}
	}
	return false
}

func chatButtons(opts []option) string {
	lines := make([]string, 0, len(opts))
	for _, o := range opts {
		lines = append(lines, fmt.Sprintf("[chat: %s]", o.label))
	}
	return strings.Join(lines, "\n")
}

var (
	clock12 = regexp.MustCompile(`(?i)\b(1[0-2]|0?[1-9])(?::([0-5]\d))?\s*(am|pm|a\.m\.|p\.m\.)`)
	clock24 = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
)

// parseSpecificTime extracts a clock time such as "10am", "2:30 pm" or
// "14:00" and returns it as "2:30 PM".
func parseSpecificTime(input string) (string, bool) {
	if m := clock12.FindStringSubmatch(input); m != nil {
		minutes := m[2]
		if minutes == "" {
			minutes = "00"
		}
		hour, _ := strconv.Atoi(m[1])
		suffix := "AM"
		if strings.HasPrefix(strings.ToLower(m[3]), "p") {
			suffix = "PM"
		}
		return fmt.Sprintf("%d:%s %s", hour, minutes, suffix), true
	}
	if m := clock24.FindStringSubmatch(input); m != nil {
		hour, _ := strconv.Atoi(m[1])
		suffix := "AM"
		switch {
		case hour == 0:
			hour = 12
		case hour == 12:
			suffix = "PM"
		case hour > 12:
			hour -= 12
			suffix = "PM"
		}
		return fmt.Sprintf("%d:%s %s", hour, m[2], suffix), true
	}
	return "", false
}
