package booking

import (
	"fmt"
	"strings"

	"bodyshop-chat/internal/vin"
)

// Summary renders the confirmation message from whichever fields were
// collected. The timing line depends on the branch the dialogue took.
func Summary(s Session) string {
	var b strings.Builder
	b.WriteString("Thank you! Here's a summary of your appointment request:\n\n")

	fmt.Fprintf(&b, "Service: %s\n", s.Service)
	if timing := timingLine(s); timing != "" {
		b.WriteString(timing)
		b.WriteString("\n")
	}
	if s.Vehicle != "" {
		fmt.Fprintf(&b, "Vehicle: %s\n", s.Vehicle)
	}
	if s.VIN != "" {
		fmt.Fprintf(&b, "VIN: %s\n", s.VIN)
		if r := vin.Decode(s.VIN); r != nil && r.Make != vin.Unknown {
			fmt.Fprintf(&b, "Identified as: %s (best-effort, from VIN)\n", r.Vehicle())
		}
	}
	if s.Contact != "" {
		fmt.Fprintf(&b, "Contact: %s\n", s.Contact)
	}
	if s.AdditionalInfo != "" {
		fmt.Fprintf(&b, "Additional info: %s\n", s.AdditionalInfo)
	}

	b.WriteString("\n")
	if s.Timeframe == TimeframeFlexible && s.ContactMethod != "" {
		fmt.Fprintf(&b, "We'll reach out by %s within one business day to find a time that works for you.", s.ContactMethod)
	} else {
		b.WriteString("A member of our team will contact you within one business day to confirm your appointment.")
	}
	b.WriteString("\n\nNeed to talk to someone sooner? [phone: Call Us]")
	return b.String()
}

func timingLine(s Session) string {
	timeframe := s.Timeframe
	switch {
	case s.Timeframe == TimeframeFlexible:
		return "Timing: Flexible"
	case s.DayOfWeek != "" && s.SpecificTime != "":
		return fmt.Sprintf("Preferred time: %s (%s) at %s", s.DayOfWeek, timeframe, s.SpecificTime)
	case s.DayOfWeek != "" && s.TimeOfDay != "":
		return fmt.Sprintf("Preferred time: %s (%s), %s", s.DayOfWeek, timeframe, s.TimeOfDay)
	case s.SpecificTime != "":
		return fmt.Sprintf("Preferred time: %s, at %s", capitalize(timeframe), s.SpecificTime)
	case s.TimeOfDay != "":
		return fmt.Sprintf("Preferred time: %s, %s", capitalize(timeframe), s.TimeOfDay)
	case timeframe != "":
		return fmt.Sprintf("Preferred time: %s", capitalize(timeframe))
	default:
		return ""
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
