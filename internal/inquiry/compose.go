// Package inquiry validates public insurance inquiries and composes the
// pre-filled messaging deep link they are forwarded through. Inquiries are
// never persisted.
package inquiry

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Agent identifies the insurance agent named in composed messages.
type Agent struct {
	Name           string
	IPCode         string
	WhatsAppNumber string
}

var (
	digitsOnly  = regexp.MustCompile(`\D`)
	phoneDigits = regexp.MustCompile(`^\d{10,13}$`)
	pinPattern  = regexp.MustCompile(`^\d{6}$`)
)

// ValidationError reports an invalid or missing inquiry field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks the submitted values against the product's field set:
// required fields non-empty, phone 10-13 digits once separators are
// stripped, pincode exactly 6 digits.
func Validate(product Product, values map[string]string) error {
	for _, f := range product.Fields {
		v := strings.TrimSpace(values[f.Key])
		if f.Required && v == "" {
			return &ValidationError{Field: f.Key, Message: fmt.Sprintf("%s is required", f.Label)}
		}
		if v == "" {
			continue
		}
		switch f.Key {
		case "phone":
			raw := digitsOnly.ReplaceAllString(v, "")
			if !phoneDigits.MatchString(raw) {
				return &ValidationError{Field: f.Key, Message: "Enter valid mobile number (10-13 digits)"}
			}
		case "pin":
			if !pinPattern.MatchString(v) {
				return &ValidationError{Field: f.Key, Message: "Enter valid 6-digit pincode"}
			}
		}
	}
	return nil
}

// ComposeMessage builds the structured inquiry text: product, agent
// identity, then each filled field as "Label: value" in catalog order.
func ComposeMessage(product Product, agent Agent, values map[string]string) string {
	lines := []string{
		"Insurance Inquiry",
		"Product: " + product.Name,
		fmt.Sprintf("Agent: %s (IP: %s)", agent.Name, agent.IPCode),
		"----",
	}
	for _, f := range product.Fields {
		if v := strings.TrimSpace(values[f.Key]); v != "" {
			lines = append(lines, f.Label+": "+v)
		}
	}
	return strings.Join(lines, "\n")
}

// DeepLink returns the wa.me URL that opens the agent's chat pre-filled
// with the message.
func DeepLink(agent Agent, message string) string {
	return "https://wa.me/" + agent.WhatsAppNumber + "?text=" + url.QueryEscape(message)
}
