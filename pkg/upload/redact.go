package upload

import (
	"fmt"
	"regexp"
)

const redactedMark = "[REDACTED]"

// RegexRedactor masks every match of its patterns in extracted text.
type RegexRedactor struct {
	rx []*regexp.Regexp
}

// NewDefaultRedactor masks e-mail addresses and phone-like digit runs.
func NewDefaultRedactor() *RegexRedactor {
	return &RegexRedactor{
		rx: []*regexp.Regexp{
			regexp.MustCompile(`\b[\w\.-]+@[\w\.-]+\.\w+\b`),                      // emails
			regexp.MustCompile(`\b(?:\+?\d{1,3}[\s-]?)?(?:\d{3}[\s-]?){2,4}\d\b`), // phones-ish
		},
	}
}

// NewRegexRedactor compiles custom patterns.
func NewRegexRedactor(patterns ...string) (*RegexRedactor, error) {
	r := &RegexRedactor{rx: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("redact pattern %q: %w", p, err)
		}
		r.rx = append(r.rx, re)
	}
	return r, nil
}

func (r *RegexRedactor) Redact(s string) (string, bool) {
	changed := false
	out := s
	for _, re := range r.rx {
		if re.MatchString(out) {
			out = re.ReplaceAllString(out, redactedMark)
			changed = true
		}
	}
	return out, changed
}
