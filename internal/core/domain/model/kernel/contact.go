package kernel

import (
	"strings"

	"feedo/internal/pkg/errs"
)

// Contact errors.
var (
	ErrContactNameIsRequired  = errs.NewValueIsRequiredError("contact name")
	ErrContactEmailIsRequired = errs.NewValueIsRequiredError("contact email")
)

// Contact is a value object holding the name and contact fields shared by
// person records (clients and couriers). Identity is managed by an external
// collaborator; this core only carries the fields it needs for dispatch and
// history, without a person type hierarchy.
type Contact struct {
	name  string
	phone string
	email string
}

// NewContact creates a Contact. Name and email are required, phone is
// optional. Surrounding whitespace is trimmed.
func NewContact(name, phone, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return Contact{}, ErrContactNameIsRequired
	}
	if email == "" {
		return Contact{}, ErrContactEmailIsRequired
	}
	return Contact{
		name:  name,
		phone: strings.TrimSpace(phone),
		email: email,
	}, nil
}

// Name returns the person's display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the phone number, possibly empty.
func (c Contact) Phone() string {
	return c.phone
}

// Email returns the email address.
func (c Contact) Email() string {
	return c.email
}

// Validate checks that the Contact was created through NewContact.
func (c Contact) Validate() error {
	if c.name == "" {
		return ErrContactNameIsRequired
	}
	if c.email == "" {
		return ErrContactEmailIsRequired
	}
	return nil
}

// IsEqual compares two contacts field by field.
func (c Contact) IsEqual(other Contact) bool {
	return c == other
}
