// Package inputval validates form input before any backend call is made.
//
// Validation rules are declared as struct tags:
//
//	type contactInput struct {
//		Name    string `validate:"required" label:"Name"`
//		Email   string `validate:"required,email" label:"Email"`
//		Message string `validate:"required,max=2000" label:"Message"`
//	}
//
// A failed validation is terminal for that user action; nothing is sent to
// the backend and the form re-renders with the first error.
package inputval

import (
	"fmt"
	"net/mail"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Result collects validation errors in field order.
type Result struct {
	Errors []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "".
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Validate applies the tag-declared rules to every string field of input,
// which must be a struct. Unknown rules are ignored.
func Validate(input any) Result {
	var res Result

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return res
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" || field.Type.Kind() != reflect.String {
			continue
		}
		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		value := strings.TrimSpace(v.Field(i).String())

		for _, rule := range strings.Split(rules, ",") {
			if msg := applyRule(rule, label, value); msg != "" {
				res.Errors = append(res.Errors, msg)
				break // one message per field
			}
		}
	}
	return res
}

func applyRule(rule, label, value string) string {
	switch {
	case rule == "required":
		if value == "" {
			return label + " is required."
		}
	case rule == "email":
		if value != "" && !IsValidEmail(value) {
			return label + " must be a valid email address."
		}
	case rule == "url":
		if value != "" && !IsValidHTTPURL(value) {
			return label + " must be a valid http(s) URL."
		}
	case strings.HasPrefix(rule, "max="):
		limit, err := strconv.Atoi(rule[len("max="):])
		if err == nil && len(value) > limit {
			return fmt.Sprintf("%s must be at most %d characters.", label, limit)
		}
	case strings.HasPrefix(rule, "oneof="):
		if value == "" {
			return ""
		}
		for _, allowed := range strings.Fields(rule[len("oneof="):]) {
			if value == allowed {
				return ""
			}
		}
		return label + " is invalid."
	}
	return ""
}

// IsValidEmail reports whether s is a plain RFC 5322 address. Display-name
// forms ("Jane <jane@example.com>") are rejected even though they parse.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// IsValidHTTPURL reports whether s is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidHexColor reports whether s is a #RGB or #RRGGBB color value.
func IsValidHexColor(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
