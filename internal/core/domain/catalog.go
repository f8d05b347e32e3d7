package domain

import (
	"encoding/json"
	"fmt"
)

// PricingKind discriminates the PricingModel variants.
type PricingKind string

const (
	PricingCredits      PricingKind = "credits"
	PricingSubscription PricingKind = "subscription"
	PricingOneTime      PricingKind = "oneTime"
)

// PricingModel is a sealed sum type: CreditsPricing, SubscriptionPricing or OneTimePricing.
type PricingModel interface {
	Kind() PricingKind
	isPricingModel()
}

type CreditsPricing struct {
	PricePerCreditCents uint64 `json:"pricePerCreditCents"`
}

type SubscriptionPricing struct {
	MonthlyPriceCents uint64 `json:"monthlyPriceCents"`
}

type OneTimePricing struct {
	PriceCents uint64 `json:"priceCents"`
}

func (CreditsPricing) Kind() PricingKind      { return PricingCredits }
func (SubscriptionPricing) Kind() PricingKind { return PricingSubscription }
func (OneTimePricing) Kind() PricingKind      { return PricingOneTime }

func (CreditsPricing) isPricingModel()      {}
func (SubscriptionPricing) isPricingModel() {}
func (OneTimePricing) isPricingModel()      {}

// PricingBadge returns the catalog badge and price label for a pricing model.
// Both are empty when the model is nil or unknown.
func PricingBadge(p PricingModel) (badge, label string) {
	switch m := p.(type) {
	case CreditsPricing:
		return "Per Use", FormatCents(m.PricePerCreditCents) + "/use"
	case SubscriptionPricing:
		return "Subscription", FormatCents(m.MonthlyPriceCents) + "/month"
	case OneTimePricing:
		return "One-Time", FormatCents(m.PriceCents)
	default:
		return "", ""
	}
}

// FormatCents renders an amount in cents as US dollars.
func FormatCents(cents uint64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func marshalPricing(p PricingModel) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("pricing model: nil")
	}
	return marshalTagged(string(p.Kind()), p)
}

func unmarshalPricing(data []byte) (PricingModel, error) {
	kind, payload, err := unmarshalTagged(data)
	if err != nil {
		return nil, fmt.Errorf("pricing model: %w", err)
	}
	switch PricingKind(kind) {
	case PricingCredits:
		var m CreditsPricing
		err = json.Unmarshal(payload, &m)
		return m, err
	case PricingSubscription:
		var m SubscriptionPricing
		err = json.Unmarshal(payload, &m)
		return m, err
	case PricingOneTime:
		var m OneTimePricing
		err = json.Unmarshal(payload, &m)
		return m, err
	default:
		return nil, fmt.Errorf("pricing model: unknown kind %q", kind)
	}
}

// AppInfo is immutable catalog data.
type AppInfo struct {
	ID           string
	Name         string
	Description  string
	PricingModel PricingModel
}

type appInfoJSON struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	PricingModel json.RawMessage `json:"pricingModel"`
}

func (a AppInfo) MarshalJSON() ([]byte, error) {
	pricing, err := marshalPricing(a.PricingModel)
	if err != nil {
		return nil, err
	}
	return json.Marshal(appInfoJSON{ID: a.ID, Name: a.Name, Description: a.Description, PricingModel: pricing})
}

func (a *AppInfo) UnmarshalJSON(data []byte) error {
	var raw appInfoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pricing, err := unmarshalPricing(raw.PricingModel)
	if err != nil {
		return fmt.Errorf("app %q: %w", raw.ID, err)
	}
	*a = AppInfo{ID: raw.ID, Name: raw.Name, Description: raw.Description, PricingModel: pricing}
	return nil
}

// FounderProfile is static read-only data.
type FounderProfile struct {
	Name             string `json:"name"`
	Title            string `json:"title"`
	Bio              string `json:"bio"`
	CoreSkills       string `json:"coreSkills"`
	MissionStatement string `json:"missionStatement"`
}
