package domain

import "strings"

// UserRole mirrors the backend access-control roles.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// Identity is the authenticated caller. The zero value is anonymous.
type Identity struct {
	Principal string
}

func (i Identity) Authenticated() bool { return i.Principal != "" }

// SubscriptionStatus is the single optional subscription attached to a profile.
type SubscriptionStatus struct {
	AppID             string `json:"appId"`
	Status            string `json:"status"`
	StartDate         int64  `json:"startDate"`
	NextBillingDate   int64  `json:"nextBillingDate"`
	MonthlyPriceCents uint64 `json:"monthlyPriceCents"`
}

// UserProfile is owned by the backend; the portal only caches it.
type UserProfile struct {
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Credits            uint64              `json:"credits"`
	SubscriptionStatus *SubscriptionStatus `json:"subscriptionStatus,omitempty"`
}

// NewProfile validates the profile-setup form and returns a fresh profile with
// zero credits and no subscription.
func NewProfile(name, email string) (UserProfile, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return UserProfile{}, Invalid("Please enter your name")
	}
	if email == "" || !strings.Contains(email, "@") {
		return UserProfile{}, Invalid("Please enter a valid email")
	}
	return UserProfile{Name: name, Email: email}, nil
}

// Normalize applies the checks of NewProfile to a full replacement profile
// and returns it with name and email trimmed.
func (p UserProfile) Normalize() (UserProfile, error) {
	base, err := NewProfile(p.Name, p.Email)
	if err != nil {
		return UserProfile{}, err
	}
	p.Name, p.Email = base.Name, base.Email
	return p, nil
}

// Initials returns up to two upper-cased initials of the profile name, or "U".
func (p *UserProfile) Initials() string {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return "U"
	}
	var out []rune
	for _, part := range strings.Fields(p.Name) {
		out = append(out, []rune(strings.ToUpper(part))[0])
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

// SetupState is the profile-setup state machine.
type SetupState string

const (
	StateUnauthenticated SetupState = "unauthenticated"
	StateNeedsProfile    SetupState = "needs_profile"
	StateHasProfile      SetupState = "has_profile"
)

// ResolveSetupState decides whether the blocking profile-setup modal opens.
// fetched reports whether the profile query completed successfully.
func ResolveSetupState(id Identity, fetched bool, profile *UserProfile) SetupState {
	if !id.Authenticated() {
		return StateUnauthenticated
	}
	if fetched && profile == nil {
		return StateNeedsProfile
	}
	return StateHasProfile
}
