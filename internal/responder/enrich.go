package responder

import (
	"strings"
)

// Markup prefixes understood by the chat widget.
const (
	markBook       = "[book:"
	markChat       = "[chat:"
	markPhone      = "[phone:"
	markDirections = "[directions:"
)

var (
	wantsHoursTable    = words("hours", "open", "opening", "business hours", "what time")
	wantsServicesTable = words("services", "what do you offer", "what do you do")

	bookingHints    = words("book", "booking", "appointment", "schedule", "estimate", "quote", "repair", "fix", "damage", "dent", "scratch")
	phoneHints      = words("call", "phone", "urgent", "emergency", "tow", "towing", "speak")
	directionsHints = words("where", "location", "address", "directions", "located")
)

// Enrich post-processes a reply for the chat widget. An hours or services
// question replaces text with the matching table, even when text was a more
// specific answer. Action buttons are then appended unless the same kind of
// markup is already present, so Enrich(q, Enrich(q, t)) == Enrich(q, t).
func (r *Responder) Enrich(query, text string) string {
	q := normalize(query)
	switch {
	case wantsHoursTable(q):
		text = r.hoursTable()
	case wantsServicesTable(q):
		text = r.servicesTable()
	}

	lower := strings.ToLower(text)
	var add []string
	if !strings.Contains(text, markBook) && !strings.Contains(text, markChat) && (bookingHints(q) || bookingHints(lower)) {
		add = append(add, "[book: Book Online]", "[chat: Book via Chat]")
	}
	if !strings.Contains(text, markPhone) && (phoneHints(q) || phoneHints(lower)) {
		add = append(add, "[phone: Call Us]")
	}
	if !strings.Contains(text, markDirections) && directionsHints(q) {
		add = append(add, "[directions: Get Directions]")
	}
	if len(add) == 0 {
		return text
	}
	return text + "\n\n" + strings.Join(add, "\n")
}

func (r *Responder) hoursTable() string {
	var b strings.Builder
	b.WriteString("Here are our business hours:\n\n[table:start]\nDay|Hours\n")
	for _, h := range r.profile.Hours {
		b.WriteString(h.Days + "|" + h.Hours + "\n")
	}
	b.WriteString("[table:end]\n\nEstimates are available any time we're open.")
	return b.String()
}

var servicesRows = [][2]string{
	{"Collision Repair", "Complete accident repair, insurance claims welcome"},
	{"Dent Repair", "Paintless and conventional dent removal"},
	{"Paint & Scratch Repair", "Factory color matching and refinishing"},
	{"Bumper Repair", "Plastic repair, replacement and sensor recalibration"},
	{"Hail Damage Repair", "Paintless dent repair for hail"},
	{"Frame Straightening", "Computerized measuring to factory specs"},
	{"Free Estimates", "No appointment needed"},
}

func (r *Responder) servicesTable() string {
	var b strings.Builder
	b.WriteString(r.render.Replace("Here's what {name} can do for you:\n\n[table:start]\nService|Details\n"))
	for _, row := range servicesRows {
		b.WriteString(row[0] + "|" + row[1] + "\n")
	}
	b.WriteString("[table:end]")
	return b.String()
}
