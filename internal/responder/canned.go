package responder

import "strings"

const defaultReply = "Thanks for reaching out to {name}! I can help with repair questions, estimates and appointments. " +
	"Tell me about the damage to your vehicle, or call us at {phone} to speak with our team."

var greeting = words("hi", "hello", "hey", "howdy", "good morning", "good afternoon", "good evening", "greetings")

// isGreeting matches short openers like "hi there" but not "hi, my bumper is cracked".
func isGreeting(q string) bool {
	return greeting(q) && len(strings.Fields(q)) <= 4
}

func cannedRules() []Rule {
	return []Rule{
		{
			Name:    "greeting",
			Match:   isGreeting,
			Respond: fixed("Hello! Welcome to {name}. How can I help with your vehicle today?"),
		},
		{
			Name:    "hours",
			Match:   words("weekend", "saturday", "sunday", "holiday", "today", "tomorrow"),
			Respond: fixed("Our hours are {hours}. Estimates are available any time we're open, no appointment needed."),
		},
		{
			Name:    "contact",
			Match:   words("contact", "email", "reach", "talk to someone", "speak to", "human", "person"),
			Respond: fixed("You can call us at {phone} or visit us at {address}. A team member will be glad to help."),
		},
		{
			Name:    "services",
			Match:   words("service", "offer", "specialize", "do you do", "do you fix"),
			Respond: fixed(servicesReply),
		},
		{
			Name:  "insurance",
			Match: words("insurance", "insurer", "claim", "adjuster", "deductible", "geico", "state farm", "allstate", "progressive"),
			Respond: fixed("We work with all major insurance companies and can handle the claim process for you. " +
				"You have the right to choose your repair shop, and we'll work directly with your adjuster."),
		},
		{
			Name:  "estimate",
			Match: words("estimate", "estimates", "quote", "cost", "price", "how much", "expensive"),
			Respond: fixed("Estimates are always free. Repair costs depend on the damage, so the best way to get an accurate price " +
				"is a quick in-person inspection. Stop by during business hours or book a time that suits you."),
		},
		{
			Name:    "paint",
			Match:   words("respray", "touch up", "touch-up", "refinish"),
			Respond: fixed("We offer everything from touch-ups to complete refinishing, color-matched to your factory paint code."),
		},
		{
			Name:  "booking",
			Match: words("book", "booking", "appointment", "schedule", "reserve", "drop off", "bring it in"),
			Respond: fixed("I'd be glad to help you book an appointment. You can book online, call us, or type \"Book via Chat\" " +
				"and I'll collect your details right here."),
		},
		{
			Name:  "color",
			Match: words("color", "colour", "paint code", "color match", "match"),
			Respond: fixed("We match colors using your factory paint code and a spectrophotometer, then blend into adjacent panels " +
				"for a seamless finish. If you share your VIN, I can try to look up your paint code."),
		},
		{
			Name:    "collision",
			Match:   words("totaled", "total loss", "airbag", "airbags"),
			Respond: fixed("After a serious accident we'll inspect the vehicle, document the damage for your insurer and help you decide between repair and a total-loss claim."),
		},
		{
			Name:    "bodywork",
			Match:   words("body work", "bodywork", "body shop", "panel", "panels"),
			Respond: fixed("Our body technicians repair and replace panels, straighten damaged metal and refinish to factory standards."),
		},
		{
			Name:    "wheels",
			Match:   words("wheel", "wheels", "rim", "rims", "curb rash", "alloy"),
			Respond: fixed("We repair curb rash and cosmetic wheel damage. Bent or cracked wheels are assessed for safety and replaced when needed."),
		},
		{
			Name:    "towing",
			Match:   words("tow", "towing", "tow truck", "not drivable", "undrivable", "won't start"),
			Respond: fixed("If your vehicle isn't drivable, call us at {phone} and we'll help arrange a tow to our shop."),
		},
		{
			Name:    "warranty",
			Match:   words("warranty", "guarantee", "guaranteed"),
			Respond: fixed("All of our repairs are backed by a lifetime warranty on workmanship for as long as you own the vehicle."),
		},
		{
			Name:  "timeframe",
			Match: words("how long", "turnaround", "when will", "ready", "days", "weeks"),
			Respond: fixed("Most minor repairs take 1-3 days and larger collision repairs 1-2 weeks. We'll give you a timeline " +
				"with your estimate and keep you updated."),
		},
		{
			Name:    "rental",
			Match:   words("rental", "loaner", "rent a car", "courtesy car", "ride"),
			Respond: fixed("We can arrange a rental car through our partners, and many insurance policies cover it during repairs."),
		},
		{
			Name:    "oem",
			Match:   words("oem", "original parts", "genuine parts", "aftermarket", "factory parts"),
			Respond: fixed("We use OEM parts whenever possible and will always tell you if aftermarket parts are being considered."),
		},
		{
			Name:    "price-match",
			Match:   words("price match", "beat", "cheaper", "competitor", "another shop", "other shop"),
			Respond: fixed("Bring us a written estimate from another shop and we'll review it. We aim to be competitive without cutting corners."),
		},
	}
}
