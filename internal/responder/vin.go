package responder

import (
	"fmt"
	"strings"

	"bodyshop-chat/internal/vin"
)

func hasVIN(q string) bool {
	return vin.Find(q) != ""
}

func formatVIN(q string) string {
	r := vin.Decode(vin.Find(q))
	if r == nil {
		return ""
	}
	if r.Make == vin.Unknown {
		return fmt.Sprintf("Thanks for the VIN (%s). I couldn't identify the manufacturer from it, "+
			"but our team can look it up when you bring the vehicle in for a free estimate.", r.VIN)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Thanks! Here's what I could tell from VIN %s:\n\n", r.VIN)
	fmt.Fprintf(&b, "Make: %s\n", r.Make)
	fmt.Fprintf(&b, "Model: %s\n", r.Model)
	fmt.Fprintf(&b, "Year: %s\n", r.Year)
	if paint := r.Paint(); paint != "" {
		fmt.Fprintf(&b, "Paint: %s\n", paint)
	}
	b.WriteString("\nThis is a best-effort identification from the VIN, not official manufacturer data. ")
	b.WriteString("We'll confirm your exact paint code from the vehicle's label before any paint work.")
	return b.String()
}
