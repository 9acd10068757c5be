// Package htmlsanitize strips unsafe HTML from user-supplied content.
//
// Rich-text content fields (about descriptions, project narratives) and the
// public contact form all pass through here before the backend ever sees
// them. The policy is bluemonday's UGC policy: basic formatting and links
// survive, scripts and event handlers do not.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	return p
}()

// Sanitize returns s with unsafe HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(policy.Sanitize(s))
}

// StripAll removes all markup, returning plain text. Used for fields that
// should never carry HTML at all (names, subjects, phone numbers).
var strict = bluemonday.StrictPolicy()

func StripAll(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(strict.Sanitize(s))
}
