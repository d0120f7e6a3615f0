// Package responder answers chat messages from fixed rule tables: specific
// repair questions, VINs, direct questions about the shop and a keyword FAQ.
// Every reply is passed through Enrich before it reaches the user.
package responder

import (
	"regexp"
	"strings"

	"bodyshop-chat/internal/vin"
)

// Rule pairs a predicate over the lower-cased message with the reply it
// produces. Rules are evaluated in order and the first match wins.
type Rule struct {
	Name    string
	Match   func(q string) bool
	Respond func(q string) string
}

// Reply is a rule answer before enrichment.
type Reply struct {
	Text string
	Rule string
	// VIN is set when the VIN rule answered.
	VIN *vin.Result
}

// Responder evaluates the rule tables for one shop profile.
type Responder struct {
	profile  Profile
	render   *strings.Replacer
	rules    []Rule
	canned   []Rule
	fallback string
}

// New returns a Responder for profile. Empty profile fields take the built-in
// defaults.
func New(profile Profile) *Responder {
	p := profile.withDefaults()
	r := &Responder{profile: p, render: p.replacer()}

	r.rules = append(r.rules, repairRules()...)
	r.rules = append(r.rules, Rule{Name: "vin", Match: hasVIN, Respond: formatVIN})
	r.rules = append(r.rules, directRules()...)
	r.canned = cannedRules()
	r.fallback = defaultReply
	return r
}

// Profile returns the effective shop profile.
func (r *Responder) Profile() Profile {
	return r.profile
}

// Match runs the repair table, VIN detection and direct-question detectors,
// in that order. It reports false when none of them applies, in which case
// the caller may consult the model before settling for Fallback.
func (r *Responder) Match(message string) (Reply, bool) {
	q := normalize(message)
	for _, rule := range r.rules {
		if rule.Match(q) {
			reply := Reply{Text: r.render.Replace(rule.Respond(q)), Rule: rule.Name}
			if rule.Name == "vin" {
				reply.VIN = vin.Decode(vin.Find(q))
			}
			return reply, true
		}
	}
	return Reply{}, false
}

// Fallback answers from the keyword FAQ table, ending in a generic default.
func (r *Responder) Fallback(message string) Reply {
	q := normalize(message)
	for _, rule := range r.canned {
		if rule.Match(q) {
			return Reply{Text: r.render.Replace(rule.Respond(q)), Rule: rule.Name}
		}
	}
	return Reply{Text: r.render.Replace(r.fallback), Rule: "default"}
}

// Respond runs Match and then Fallback, enriching whichever answered.
func (r *Responder) Respond(message string) Reply {
	reply, ok := r.Match(message)
	if !ok {
		reply = r.Fallback(message)
	}
	reply.Text = r.Enrich(message, reply.Text)
	return reply
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// words builds a predicate matching any keyword at a word boundary.
func words(keywords ...string) func(string) bool {
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}
	re := regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return re.MatchString
}

// contains builds a plain substring predicate.
func contains(keywords ...string) func(string) bool {
	return func(q string) bool {
		for _, k := range keywords {
			if strings.Contains(q, k) {
				return true
			}
		}
		return false
	}
}

func fixed(text string) func(string) string {
	return func(string) string { return text }
}
