package kernel

import (
	"errors"

	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when a Recipient instance was not
// created through the NewRecipient constructor.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient describes who receives a delivery. All fields are required and
// immutable after creation. Format validation (email shape, phone shape)
// belongs to the HTTP boundary; the domain only enforces presence.
type Recipient struct {
	name    string
	address string
	email   string
	phone   string

	guard guard.ConstructorGuard
}

// NewRecipient creates a recipient after validating that every field is set.
func NewRecipient(name, address, email, phone string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient.name")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient.address")
	}
	if email == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient.email")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient.phone")
	}

	return Recipient{
		name:    name,
		address: address,
		email:   email,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Name returns the recipient's name.
func (r Recipient) Name() string {
	return r.name
}

// Address returns the recipient's delivery address.
func (r Recipient) Address() string {
	return r.address
}

// Email returns the recipient's email address.
func (r Recipient) Email() string {
	return r.email
}

// Phone returns the recipient's phone number.
func (r Recipient) Phone() string {
	return r.phone
}

// Validate ensures the recipient was created through NewRecipient.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}
