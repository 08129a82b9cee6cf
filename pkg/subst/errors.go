package subst

import "fmt"

// MalformedPatternError reports a rule whose regex-declared pattern does
// not compile. The run aborts rather than skipping the rule, since a
// skipped rule could leave text half-migrated with no record.
type MalformedPatternError struct {
	Rule    string
	Pattern string
	Err     error
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("rule %q: malformed pattern %q: %v", e.Rule, e.Pattern, e.Err)
}

func (e *MalformedPatternError) Unwrap() error {
	return e.Err
}

// UnresolvedReferenceError reports a replacement template that cites a
// capture group its pattern does not define.
type UnresolvedReferenceError struct {
	Rule      string
	Reference string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("rule %q: template references undefined capture group $%s", e.Rule, e.Reference)
}
