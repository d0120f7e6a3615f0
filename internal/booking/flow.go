package booking

import (
	"fmt"
	"strings"

	"bodyshop-chat/internal/vin"
)

// IsTrigger reports whether message asks to start the booking dialogue.
func IsTrigger(message string) bool {
	return strings.Contains(strings.ToLower(message), TriggerPhrase)
}

// Start returns a fresh session at StepStart together with its prompt.
func Start(sessionID string) (Session, string) {
	s := Session{ID: sessionID, Step: StepStart}
	return s, Prompt(s)
}

// Prompt returns the question a session is waiting on. Re-prompts reuse it
// verbatim.
func Prompt(s Session) string {
	switch s.Step {
	case StepStart:
		return startPrompt
	case StepService:
		return timeframePrompt
	case StepTimeframe:
		switch s.Timeframe {
		case TimeframeThisWeek, TimeframeNextWeek:
			return dayPrompt(s.Timeframe)
		case TimeframeFlexible:
			return contactMethodPrompt
		default:
			return timeOfDayPrompt
		}
	case StepDayOfWeek:
		return timeOfDayPrompt
	case StepTimeOfDay, StepContactMethod:
		return vehiclePrompt
	case StepVehicle:
		return vinPrompt
	case StepVIN:
		return contactPrompt
	case StepContact:
		return additionalInfoPrompt
	case StepConfirmation:
		return ""
	default:
		return startPrompt
	}
}

// Advance applies one user answer. It returns the next session and the reply
// to show. When the answer does not fit the pending question the session is
// returned unchanged with the same prompt. A returned session for which Done
// is true has been summarized and should be discarded.
func Advance(s Session, input string) (Session, string) {
	input = strings.TrimSpace(input)
	next := s

	switch s.Step {
	case StepStart:
		service, ok := matchOption(serviceOptions, input)
		if !ok {
			if len(input) < customServiceMinLen {
				return s, Prompt(s)
			}
			service = input
		}
		next.Service = service
		next.Step = StepService

	case StepService:
		timeframe, ok := matchOption(timeframeOptions, input)
		if !ok {
			return s, Prompt(s)
		}
		next.Timeframe = timeframe
		next.Step = StepTimeframe

	case StepTimeframe:
		switch s.Timeframe {
		case TimeframeThisWeek, TimeframeNextWeek:
			day, ok := matchOption(dayOptions, input)
			if !ok {
				return s, Prompt(s)
			}
			next.DayOfWeek = day
			next.Step = StepDayOfWeek
		case TimeframeFlexible:
			method, ok := matchOption(contactMethodOptions, input)
			if !ok {
				return s, Prompt(s)
			}
			next.ContactMethod = method
			next.Step = StepContactMethod
		default:
			if !applyTimeOfDay(&next, input) {
				return s, Prompt(s)
			}
		}

	case StepDayOfWeek:
		if !applyTimeOfDay(&next, input) {
			return s, Prompt(s)
		}

	case StepTimeOfDay, StepContactMethod:
		if len(input) < 2 {
			return s, Prompt(s)
		}
		next.Vehicle = input
		next.Step = StepVehicle

	case StepVehicle:
		if found := vin.Find(input); found != "" {
			next.VIN = found
		} else if !containsAny(input, skipWords) && !isNone(input) {
			return s, Prompt(s)
		}
		next.Step = StepVIN

	case StepVIN:
		if len(input) < 3 {
			return s, Prompt(s)
		}
		next.Contact = input
		next.Step = StepContact

	case StepContact:
		if !isNone(input) {
			next.AdditionalInfo = input
		}
		next.Step = StepConfirmation
		return next, Summary(next)

	default:
		return s, Prompt(s)
	}

	return next, Prompt(next)
}

func applyTimeOfDay(s *Session, input string) bool {
	if t, ok := parseSpecificTime(input); ok {
		s.SpecificTime = t
		s.Step = StepTimeOfDay
		return true
	}
	if tod, ok := matchOption(timeOfDayOptions, input); ok {
		s.TimeOfDay = tod
		s.Step = StepTimeOfDay
		return true
	}
	return false
}

var (
	startPrompt = "I'd be happy to help you book an appointment! What service are you interested in?\n\n" +
		chatButtons(serviceOptions) +
		"\n\nOr just type the service you need."

	timeframePrompt = "When would you like to bring your vehicle in?\n\n" + chatButtons(timeframeOptions)

	timeOfDayPrompt = "What time of day works best for you? You can also type a specific time, like \"10am\".\n\n" +
		chatButtons(timeOfDayOptions)

	contactMethodPrompt = "No problem! How would you prefer we reach out to schedule a time?\n\n" +
		chatButtons(contactMethodOptions)

	vehiclePrompt = "What vehicle will you be bringing in? Please include the year, make, and model (for example, \"2019 Honda Civic\")."

	vinPrompt = "If you have it handy, please share your 17-character VIN so we can look up your paint code and parts. " +
		"It's on the driver's side dashboard or door jamb.\n\n[chat: Skip]"

	contactPrompt = "How can we reach you? Please share your name and a phone number or email address."

	additionalInfoPrompt = "Is there anything else we should know about the damage or your visit? " +
		"Photos can be shared at your appointment.\n\n[chat: No, that's all]"
)

func dayPrompt(timeframe string) string {
	return fmt.Sprintf("Which day %s works best for you? We're open Monday through Saturday.\n\n%s",
		timeframe, chatButtons(dayOptions))
}
