package domain

import (
	"encoding/json"
	"fmt"
)

// ShoppingItem is a line item built per checkout attempt; never persisted.
type ShoppingItem struct {
	ProductName        string `json:"productName"        validate:"required"`
	ProductDescription string `json:"productDescription"`
	PriceInCents       uint64 `json:"priceInCents"       validate:"gt=0"`
	Currency           string `json:"currency"           validate:"required,len=3"`
	Quantity           uint64 `json:"quantity"           validate:"gt=0"`
}

// BlogGeneratorItem is the subscription sold by the blog generator payment step.
func BlogGeneratorItem() ShoppingItem {
	return ShoppingItem{
		ProductName:        "Blog Generator Monthly Subscription",
		ProductDescription: "Unlimited blog and newsletter generation",
		PriceInCents:       1000,
		Currency:           "USD",
		Quantity:           1,
	}
}

// CheckoutSession is the parsed result of createCheckoutSession.
type CheckoutSession struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
}

// StripeConfiguration is the admin-only payment provider setup.
type StripeConfiguration struct {
	SecretKey        string   `json:"secretKey"`
	AllowedCountries []string `json:"allowedCountries"`
}

// SessionStatusKind discriminates StripeSessionStatus variants.
type SessionStatusKind string

const (
	SessionCompleted SessionStatusKind = "completed"
	SessionFailed    SessionStatusKind = "failed"
)

// StripeSessionStatus is a sealed sum type: SessionComplete or SessionFailure.
type StripeSessionStatus interface {
	Kind() SessionStatusKind
	isSessionStatus()
}

type SessionComplete struct {
	UserPrincipal *string `json:"userPrincipal,omitempty"`
	Response      string  `json:"response"`
}

type SessionFailure struct {
	Error string `json:"error"`
}

func (SessionComplete) Kind() SessionStatusKind { return SessionCompleted }
func (SessionFailure) Kind() SessionStatusKind  { return SessionFailed }

func (SessionComplete) isSessionStatus() {}
func (SessionFailure) isSessionStatus()  {}

// MarshalSessionStatus encodes the variant with the backend discriminator.
func MarshalSessionStatus(s StripeSessionStatus) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("session status: nil")
	}
	return marshalTagged(string(s.Kind()), s)
}

// UnmarshalSessionStatus decodes a tagged session status.
func UnmarshalSessionStatus(data []byte) (StripeSessionStatus, error) {
	kind, payload, err := unmarshalTagged(data)
	if err != nil {
		return nil, fmt.Errorf("session status: %w", err)
	}
	switch SessionStatusKind(kind) {
	case SessionCompleted:
		var s SessionComplete
		err = json.Unmarshal(payload, &s)
		return s, err
	case SessionFailed:
		var s SessionFailure
		err = json.Unmarshal(payload, &s)
		return s, err
	default:
		return nil, fmt.Errorf("session status: unknown kind %q", kind)
	}
}

// SessionStatusView is the flat rendering of a StripeSessionStatus.
type SessionStatusView struct {
	Status        SessionStatusKind `json:"status"`
	UserPrincipal string            `json:"userPrincipal,omitempty"`
	Response      string            `json:"response,omitempty"`
	Error         string            `json:"error,omitempty"`
}

// ViewSessionStatus flattens a session status for page responses.
func ViewSessionStatus(s StripeSessionStatus) SessionStatusView {
	switch v := s.(type) {
	case SessionComplete:
		out := SessionStatusView{Status: SessionCompleted, Response: v.Response}
		if v.UserPrincipal != nil {
			out.UserPrincipal = *v.UserPrincipal
		}
		return out
	case SessionFailure:
		return SessionStatusView{Status: SessionFailed, Error: v.Error}
	default:
		panic(fmt.Sprintf("domain: unknown session status %T", s))
	}
}
