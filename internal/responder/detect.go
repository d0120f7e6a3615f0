package responder

import "regexp"

var (
	asksLocation = words("where are you", "where is your shop", "location", "address", "directions", "located", "find you")
	asksPhone    = words("phone", "phone number", "your number", "call you", "telephone", "contact number")
	asksHours    = words("hours", "open", "opening", "closing", "close today", "what time")
	asksServices = words("services", "what do you offer", "what do you do", "what can you fix", "what do you fix")
)

const (
	locationReply = "We're located at {address}. Stop by any time during business hours for a free estimate.\n\n[directions: Get Directions]"
	phoneReply    = "You can reach us at {phone}. We're happy to answer questions or set up an appointment.\n\n[phone: Call Us]"
	hoursReply    = "Our hours are {hours}."
	servicesReply = "{name} offers collision repair, dent repair (including paintless dent repair), paint and scratch repair, " +
		"bumper repair, hail damage repair, frame straightening and free estimates."
)

func directRules() []Rule {
	return []Rule{
		{Name: "location", Match: asksLocation, Respond: fixed(locationReply)},
		{Name: "phone", Match: asksPhone, Respond: fixed(phoneReply)},
		{Name: "hours", Match: asksHours, Respond: fixed(hoursReply)},
		{Name: "services", Match: asksServices, Respond: fixed(servicesReply)},
	}
}

// Direct questions answered before any other logic, including an active
// booking dialogue.
var (
	shortcutLocation = regexp.MustCompile(`\b(where are you|where('s| is) (the|your) (shop|location)|what('s| is) your address|how do i get (there|to you))\b`)
	shortcutPhone    = regexp.MustCompile(`\b(what('s| is) your (phone )?number|what('s| is) the phone number|your phone number|number to call)\b`)
)

// Shortcut answers a direct location or phone-number question with a fixed
// template. It reports false for anything else.
func (r *Responder) Shortcut(message string) (string, bool) {
	q := normalize(message)
	switch {
	case shortcutLocation.MatchString(q):
		return r.render.Replace(locationReply), true
	case shortcutPhone.MatchString(q):
		return r.render.Replace(phoneReply), true
	default:
		return "", false
	}
}
