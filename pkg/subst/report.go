package subst

// Span marks the byte offsets of a match in the text the rule scanned.
type Span struct {
	Start int
	End   int
}

// RuleReport records what one rule did during a run.
type RuleReport struct {
	// Rule is the rule's identity (name, or the pattern when unnamed).
	Rule string

	// Count is the number of occurrences replaced. Zero is valid: the
	// rule may be a no-op on already-migrated text, or it may need
	// revision; the engine does not distinguish the two.
	Count int

	// First is the span of the first match, for diagnostics. Nil when
	// Count is zero. Offsets are relative to the text as this rule saw
	// it, after all earlier rules had run.
	First *Span
}

// Report is the outcome of one Apply run: one entry per rule, in rule
// order.
type Report struct {
	Rules []RuleReport
}

// TotalReplacements sums the replacement counts across all rules.
func (r Report) TotalReplacements() int {
	total := 0
	for _, rr := range r.Rules {
		total += rr.Count
	}
	return total
}

// Fired returns how many rules replaced at least one occurrence.
func (r Report) Fired() int {
	fired := 0
	for _, rr := range r.Rules {
		if rr.Count > 0 {
			fired++
		}
	}
	return fired
}

// ZeroMatchRules lists the rules that matched nothing, so operators can
// spot drift between the catalog and the current state of the text.
func (r Report) ZeroMatchRules() []string {
	var rules []string
	for _, rr := range r.Rules {
		if rr.Count == 0 {
			rules = append(rules, rr.Rule)
		}
	}
	return rules
}

// Changed reports whether any rule replaced anything.
func (r Report) Changed() bool {
	return r.TotalReplacements() > 0
}
