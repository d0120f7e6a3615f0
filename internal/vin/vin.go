// Package vin performs best-effort vehicle identification from a 17-character
// VIN. Nothing here verifies the ISO 3779 check digit, and every answer is a
// heuristic table lookup that callers must present as an estimate.
package vin

import (
	"regexp"
	"strings"
)

const (
	// Length is the number of characters in a modern VIN.
	Length = 17
	// Unknown is reported for any field the tables cannot resolve.
	Unknown = "Unknown"
)

var (
	exactPattern    = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
	embeddedPattern = regexp.MustCompile(`\b[A-HJ-NPR-Z0-9]{17}\b`)
)

// Result is the decoded view of a VIN. Color and ColorName are empty when no
// table produced a paint match.
type Result struct {
	VIN       string
	Make      string
	Model     string
	Year      string
	Color     string
	ColorName string
	// Estimated marks a paint guess inferred from model and year rather than
	// a direct table hit.
	Estimated bool
}

// IsVIN reports whether s is exactly a syntactically valid VIN. Letters are
// matched case-insensitively; I, O and Q are rejected.
func IsVIN(s string) bool {
	return exactPattern.MatchString(strings.ToUpper(s))
}

// Find returns the first VIN embedded in free text, upper-cased, or "".
func Find(text string) string {
	return embeddedPattern.FindString(strings.ToUpper(text))
}

// Decode identifies make, model, year and paint. It returns nil when s is not
// a valid VIN and never fails otherwise.
func Decode(s string) *Result {
	if !IsVIN(s) {
		return nil
	}
	v := strings.ToUpper(s)

	if known, ok := verifiedVehicles[v]; ok {
		known.VIN = v
		return &known
	}

	r := &Result{
		VIN:   v,
		Make:  lookupMake(v),
		Model: Unknown,
		Year:  Unknown,
	}
	if year, ok := yearCodes[v[9]]; ok {
		r.Year = year
	}
	if r.Make == Unknown {
		return r
	}
	r.Model = lookupModel(r.Make, v)
	if code, name, ok := probeColor(r.Make, v); ok {
		r.Color, r.ColorName = code, name
		return r
	}
	if r.Make == "BMW" {
		if code, name, ok := estimateBMWColor(r.Model, r.Year, v); ok {
			r.Color, r.ColorName, r.Estimated = code, name, true
		}
	}
	return r
}

// Vehicle returns "2009 BMW 3 Series Coupe", skipping unknown parts.
func (r *Result) Vehicle() string {
	if r == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{r.Year, r.Make, r.Model} {
		if p != "" && p != Unknown {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Unidentified vehicle"
	}
	return strings.Join(parts, " ")
}

// Paint describes the paint result, labelling inferred colors "(estimated)".
func (r *Result) Paint() string {
	if r == nil || r.ColorName == "" {
		return ""
	}
	label := r.ColorName
	if r.Color != "" {
		label += " (code " + r.Color + ")"
	}
	if r.Estimated {
		label += " (estimated)"
	}
	return label
}

func lookupMake(v string) string {
	if m, ok := manufacturers[v[:3]]; ok {
		return m
	}
	return Unknown
}

func lookupModel(brand, v string) string {
	for _, p := range modelProbes[brand] {
		if p.start+p.length > len(v) {
			continue
		}
		if model, ok := p.table[v[p.start:p.start+p.length]]; ok {
			return model
		}
	}
	return Unknown
}

// probeColor tries each candidate window for the make and accepts the first
// code present in that make's paint table.
func probeColor(brand, v string) (code, name string, ok bool) {
	probe, found := colorProbes[brand]
	if !found {
		return "", "", false
	}
	for _, start := range probe.offsets {
		end := start + probe.length
		if end > len(v) {
			continue
		}
		candidate := v[start:end]
		if name, hit := probe.table[candidate]; hit {
			return candidate, name, true
		}
	}
	return "", "", false
}
