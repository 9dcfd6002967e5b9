package handlers

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// requiredString trims the value and rejects when nothing is left.
func requiredString(value, field string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	return v, nil
}

// optionalString trims the value and normalizes absent/empty to nil.
func optionalString(value string) *string {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil
	}
	return &v
}

// stringArray keeps the payload only when it actually is an array of
// strings; anything else normalizes to the empty slice. Elements are
// trimmed.
func stringArray(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, strings.TrimSpace(item))
	}
	return out
}

// coerceBool applies loose truthiness to whatever the client sent.
// Absent values default to false.
func coerceBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case nil:
		return false
	default:
		// arrays and objects are truthy
		return true
	}
}

// enumOrDefault falls back to the designated default instead of rejecting
// an out-of-set value.
func enumOrDefault(value string, allowed []string, fallback string) string {
	v := strings.TrimSpace(value)
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	return fallback
}

func validEmail(value string) bool {
	return emailPattern.MatchString(value)
}
