// Package booking implements the chat appointment dialogue: a linear series of
// questions that collects service, timing, vehicle and contact details and
// ends in a confirmation summary.
package booking

// Step names the last stage the dialogue completed. A session at StepStart
// has collected nothing and is waiting for a service. Answering the final
// question moves StepContact straight to StepConfirmation.
type Step string

const (
	StepStart         Step = "start"
	StepService       Step = "service"
	StepTimeframe     Step = "timeframe"
	StepDayOfWeek     Step = "dayOfWeek"
	StepTimeOfDay     Step = "timeOfDay"
	StepContactMethod Step = "contactMethod"
	StepVehicle       Step = "vehicle"
	StepVIN           Step = "vin"
	StepContact       Step = "contact"
	StepConfirmation  Step = "confirmation"
)

// Timeframe values that drive branching after the timeframe question.
const (
	TimeframeASAP     = "as soon as possible"
	TimeframeThisWeek = "this week"
	TimeframeNextWeek = "next week"
	TimeframeFlexible = "i'm flexible"
)

// Session is the per-conversation booking state. It is serialized as JSON by
// the session stores.
type Session struct {
	ID             string `json:"id"`
	Step           Step   `json:"step"`
	Service        string `json:"service,omitempty"`
	Timeframe      string `json:"timeframe,omitempty"`
	DayOfWeek      string `json:"dayOfWeek,omitempty"`
	TimeOfDay      string `json:"timeOfDay,omitempty"`
	SpecificTime   string `json:"specificTime,omitempty"`
	ContactMethod  string `json:"contactMethod,omitempty"`
	Vehicle        string `json:"vehicle,omitempty"`
	VIN            string `json:"vin,omitempty"`
	Contact        string `json:"contact,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// Done reports whether the session reached its terminal step.
func (s Session) Done() bool {
	return s.Step == StepConfirmation
}
