package validation

import (
	"regexp"
	"unicode/utf8"

	"tracking/internal/core/domain/model/party"
)

var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)
	addressPattern = regexp.MustCompile(`^[a-zA-Z0-9\s,\-#\./]+$`)
	phonePattern   = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

// ContactHolder is any entity exposing a party.Contact.
type ContactHolder interface {
	Contact() party.Contact
}

// ContactValidator enforces the contact rules shared by senders and recipients:
//
//	Name     required, 2-100 characters, letters, spaces, hyphens, apostrophes and periods
//	Address  required, 5-250 characters, letters, digits, spaces and , - # . /
//	Phone    required, 10-15 characters, optional leading +, no leading zero
//
// Each field reports at most one message: the first rule it breaks.
//
// Example:
//
//	senderValidator := validation.NewContactValidator[*party.Sender]()
//	if msgs := senderValidator.Validate(sender); len(msgs) > 0 {
//	    return result.Failures[*party.Sender](msgs)
//	}
type ContactValidator[T ContactHolder] struct{}

var _ EntityValidator[*party.Sender] = ContactValidator[*party.Sender]{}

func NewContactValidator[T ContactHolder]() ContactValidator[T] {
	return ContactValidator[T]{}
}

func (ContactValidator[T]) Validate(candidate T) []string {
	c := candidate.Contact()

	messages := make([]string, 0, 3)
	for _, rule := range []fieldRule{
		{
			value:      c.Name(),
			required:   "Name is required",
			minLen:     2,
			maxLen:     100,
			lengthMsg:  "Name must be between 2 and 100 characters",
			pattern:    namePattern,
			patternMsg: "Name can only contain letters, spaces, hyphens, apostrophes, and periods",
		},
		{
			value:      c.Address(),
			required:   "Address is required",
			minLen:     5,
			maxLen:     250,
			lengthMsg:  "Address must be between 5 and 250 characters",
			pattern:    addressPattern,
			patternMsg: "Address contains invalid characters",
		},
		{
			value:      c.Phone(),
			required:   "Phone number is required",
			minLen:     10,
			maxLen:     15,
			lengthMsg:  "Phone number must be between 10 and 15 digits",
			pattern:    phonePattern,
			patternMsg: "Phone number format is invalid",
		},
	} {
		if msg, ok := rule.check(); !ok {
			messages = append(messages, msg)
		}
	}

	return messages
}

type fieldRule struct {
	value      string
	required   string
	minLen     int
	maxLen     int
	lengthMsg  string
	pattern    *regexp.Regexp
	patternMsg string
}

func (r fieldRule) check() (string, bool) {
	if r.value == "" {
		return r.required, false
	}
	if n := utf8.RuneCountInString(r.value); n < r.minLen || n > r.maxLen {
		return r.lengthMsg, false
	}
	if !r.pattern.MatchString(r.value) {
		return r.patternMsg, false
	}
	return "", true
}
