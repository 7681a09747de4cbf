// Package sanitize strips executable markup from inbound strings before they
// reach the domain services.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// Strict removes all markup from s.
func Strict(s string) string {
	return strict.Sanitize(s)
}

// StrictPtr sanitizes the pointee in place and returns the same pointer.
func StrictPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := strict.Sanitize(*s)
	return &clean
}

// Strings sanitizes every element of ss. A nil slice stays nil so field
// absence survives sanitization.
func Strings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strict.Sanitize(s)
	}
	return out
}

// Rich keeps benign user-generated markup (used for contentHtml) while
// dropping scripts and event handlers.
func Rich(s string) string {
	return ugc.Sanitize(s)
}

// RichPtr sanitizes the pointee with the UGC policy.
func RichPtr(s *string) *string {
	if s == nil {
		return nil
	}
	clean := ugc.Sanitize(*s)
	return &clean
}
