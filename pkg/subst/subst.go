// Package subst implements the substitution engine: an ordered catalog
// of literal or regex replacement rules applied to one text at a time,
// with a per-rule report of what fired. The engine never touches
// storage; it is handed a value and returns a value.
package subst

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule is one entry in a migration catalog: a pattern to find and the
// replacement template to substitute for it. Rules declare explicitly
// whether the pattern is a literal string or a regular expression; there
// is no inference and no default.
type Rule struct {
	// Name identifies the rule in reports. Optional; when empty the
	// pattern itself is used as the identity.
	Name string

	// Pattern is the text to find. Interpreted as an exact substring
	// when Regex is false, as RE2 syntax when Regex is true.
	Pattern string

	// Regex declares the pattern as a regular expression. Literal rules
	// have every metacharacter escaped before compilation, so a literal
	// "(" matches only "(".
	Regex bool

	// Replace is the replacement template. For regex rules it may
	// reference capture groups with $1 or ${name}; for literal rules it
	// is pure text and "$" has no special meaning.
	Replace string

	// Files optionally restricts which source files the rule applies to
	// (a doublestar glob). The engine ignores it; callers filter with
	// RuleSet.Select before applying.
	Files string
}

// ID returns the rule's identity for reporting.
func (r Rule) ID() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Pattern
}

type compiledRule struct {
	rule    Rule
	re      *regexp.Regexp
	replace string
}

// RuleSet is a compiled, ordered rule catalog. It is immutable after
// Compile and safe for concurrent use by independent Apply calls.
type RuleSet struct {
	rules []*compiledRule
}

// Compile validates and compiles every rule up front. Rules are applied
// in the order given, and order is load-bearing: later rules see the text
// as left by earlier ones. Compile fails on the first broken rule with
// either a *MalformedPatternError (regex rule that does not compile) or a
// *UnresolvedReferenceError (template citing a capture group the pattern
// does not define); no partial rule set is returned.
func Compile(rules []Rule) (*RuleSet, error) {
	rs := &RuleSet{rules: make([]*compiledRule, 0, len(rules))}
	for _, rule := range rules {
		cr, err := compileRule(rule)
		if err != nil {
			return nil, err
		}
		rs.rules = append(rs.rules, cr)
	}
	return rs, nil
}

func compileRule(rule Rule) (*compiledRule, error) {
	pattern := rule.Pattern
	replace := rule.Replace
	if !rule.Regex {
		pattern = regexp.QuoteMeta(pattern)
		// Literal replacements are pure text, so a "$" in them must
		// not be treated as a group reference by ReplaceAllString.
		replace = strings.ReplaceAll(replace, "$", "$$")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &MalformedPatternError{Rule: rule.ID(), Pattern: rule.Pattern, Err: err}
	}

	if rule.Regex {
		if err := validateReferences(re, rule); err != nil {
			return nil, err
		}
	}

	return &compiledRule{rule: rule, re: re, replace: replace}, nil
}

// validateReferences checks every $-reference in the template against the
// capture groups the compiled pattern actually defines. Go's Expand
// substitutes an empty string for unknown groups, which would silently
// eat text; we reject the rule instead.
func validateReferences(re *regexp.Regexp, rule Rule) error {
	names := re.SubexpNames()
	for _, ref := range templateRefs(rule.Replace) {
		if idx, numeric := refIndex(ref); numeric {
			if idx <= re.NumSubexp() {
				continue
			}
			return &UnresolvedReferenceError{Rule: rule.ID(), Reference: ref}
		}
		found := false
		for _, name := range names[1:] {
			if name == ref {
				found = true
				break
			}
		}
		if !found {
			return &UnresolvedReferenceError{Rule: rule.ID(), Reference: ref}
		}
	}
	return nil
}

// templateRefs extracts the group references from a replacement template,
// using the same lexing as Regexp.Expand: $name, ${name}, and $$ for a
// literal dollar. A name is the longest run of letters, digits, and
// underscores, so "$1abc" is one reference named "1abc", not "$1" + "abc".
// Anything Expand would copy through as literal text — a stray "$", an
// empty or unterminated brace, a braced name containing other runes like
// "${a b}" — produces no reference here either.
func templateRefs(template string) []string {
	var refs []string
	for i := 0; i < len(template); {
		if template[i] != '$' {
			i++
			continue
		}
		if i+1 < len(template) && template[i+1] == '$' {
			i += 2
			continue
		}
		rest := template[i+1:]
		brace := false
		if len(rest) > 0 && rest[0] == '{' {
			brace = true
			rest = rest[1:]
		}
		j := 0
		for j < len(rest) {
			r, size := utf8.DecodeRuneInString(rest[j:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			j += size
		}
		if j == 0 {
			// "$" with no name after it stays a literal "$".
			i++
			continue
		}
		if brace {
			if j >= len(rest) || rest[j] != '}' {
				// "${" not closed right after the name is literal text.
				i++
				continue
			}
			refs = append(refs, rest[:j])
			i += j + 3
			continue
		}
		refs = append(refs, rest[:j])
		i += j + 1
	}
	return refs
}

// refIndex reports whether ref is a numeric group reference and its index.
func refIndex(ref string) (int, bool) {
	idx := 0
	for i := 0; i < len(ref); i++ {
		if ref[i] < '0' || ref[i] > '9' {
			return 0, false
		}
		idx = idx*10 + int(ref[i]-'0')
	}
	return idx, true
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Select returns a read-only view containing the rules keep reports true
// for, in the original order. The view shares the compiled patterns with
// the parent set, so building one per file is cheap.
func (rs *RuleSet) Select(keep func(Rule) bool) *RuleSet {
	view := &RuleSet{rules: make([]*compiledRule, 0, len(rs.rules))}
	for _, cr := range rs.rules {
		if keep(cr.rule) {
			view.rules = append(view.rules, cr)
		}
	}
	return view
}

// Apply runs every rule in listed order against src and returns the
// transformed text plus a per-rule report. Each rule scans the text as
// left by all earlier rules and replaces all non-overlapping occurrences
// left to right. src is never modified; a rule that matches nothing
// contributes a zero-count report entry, which is not an error — the
// caller decides whether a no-op rule is significant. An empty rule set
// returns src unchanged with an empty report.
//
// Rule authors must order specific-before-general: a rule whose pattern
// lives inside text an earlier rule already rewrote will not find its
// target, and the engine does not detect such shadowing. A well-formed
// catalog is also expected to be idempotent (no template re-matches its
// own rule's pattern); applying it a second time should report zero
// matches everywhere.
func (rs *RuleSet) Apply(src string) (string, Report) {
	report := Report{Rules: make([]RuleReport, 0, len(rs.rules))}
	current := src
	for _, cr := range rs.rules {
		entry := RuleReport{Rule: cr.rule.ID()}
		if locs := cr.re.FindAllStringIndex(current, -1); len(locs) > 0 {
			entry.Count = len(locs)
			entry.First = &Span{Start: locs[0][0], End: locs[0][1]}
			current = cr.re.ReplaceAllString(current, cr.replace)
		}
		report.Rules = append(report.Rules, entry)
	}
	return current, report
}

// Apply compiles rules and applies them to src in one call. Prefer
// Compile + RuleSet.Apply when the same catalog runs against many texts.
func Apply(src string, rules []Rule) (string, Report, error) {
	rs, err := Compile(rules)
	if err != nil {
		return "", Report{}, err
	}
	out, report := rs.Apply(src)
	return out, report, nil
}
