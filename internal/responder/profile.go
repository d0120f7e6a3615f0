package responder

import "strings"

// HoursRow is one line of the business-hours table.
type HoursRow struct {
	Days  string
	Hours string
}

// Profile holds the business facts substituted into canned replies.
type Profile struct {
	Name    string
	Phone   string
	Address string
	MapsURL string
	Hours   []HoursRow
}

// DefaultProfile returns the built-in shop profile.
func DefaultProfile() Profile {
	return Profile{
		Name:    "Precision Auto Body",
		Phone:   "(555) 123-4567",
		Address: "1200 Industrial Way, Springfield",
		MapsURL: "https://maps.google.com/?q=1200+Industrial+Way+Springfield",
		Hours: []HoursRow{
			{Days: "Monday - Friday", Hours: "8:00 AM - 6:00 PM"},
			{Days: "Saturday", Hours: "9:00 AM - 3:00 PM"},
			{Days: "Sunday", Hours: "Closed"},
		},
	}
}

// withDefaults fills empty fields from DefaultProfile.
func (p Profile) withDefaults() Profile {
	d := DefaultProfile()
	if p.Name == "" {
		p.Name = d.Name
	}
	if p.Phone == "" {
		p.Phone = d.Phone
	}
	if p.Address == "" {
		p.Address = d.Address
	}
	if p.MapsURL == "" {
		p.MapsURL = d.MapsURL
	}
	if len(p.Hours) == 0 {
		p.Hours = d.Hours
	}
	return p
}

func (p Profile) replacer() *strings.Replacer {
	return strings.NewReplacer(
		"{name}", p.Name,
		"{phone}", p.Phone,
		"{address}", p.Address,
		"{maps}", p.MapsURL,
		"{hours}", p.HoursSummary(),
	)
}

// HoursSummary renders the hours as a single line for prompts.
func (p Profile) HoursSummary() string {
	parts := make([]string, 0, len(p.Hours))
	for _, h := range p.Hours {
		parts = append(parts, h.Days+": "+h.Hours)
	}
	return strings.Join(parts, "; ")
}
