package usecases

import (
	"regexp"
	"strings"
)

const testMarker = "test:"

var (
	emailPattern       = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	orderNumberPattern = regexp.MustCompile(`(?i)(?:order\s*(?:number|no\.|#)?\s*|#)\s*(\d{3,10})\b`)
)

// Intent holds what the message told us about an order lookup. Empty
// fields mean "not mentioned".
type Intent struct {
	Email       string
	OrderNumber string
}

func (i Intent) HasBoth() bool {
	return i.Email != "" && i.OrderNumber != ""
}

// HasOne is true when exactly one of email / order number was found.
func (i Intent) HasOne() bool {
	return (i.Email != "") != (i.OrderNumber != "")
}

// DetectIntent takes the first email and the first order number in msg.
func DetectIntent(msg string) Intent {
	var intent Intent
	if email := emailPattern.FindString(msg); email != "" {
		intent.Email = strings.ToLower(email)
	}
	if m := orderNumberPattern.FindStringSubmatch(msg); len(m) > 1 {
		intent.OrderNumber = m[1]
	}
	return intent
}

// echoPayload reports whether msg is a diagnostic "test:" message and returns its remainder.
func echoPayload(msg string) (string, bool) {
	if !strings.HasPrefix(strings.ToLower(msg), testMarker) {
		return "", false
	}
	return strings.TrimSpace(msg[len(testMarker):]), true
}
