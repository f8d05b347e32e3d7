package domain

import (
	"errors"
	"testing"
)

func TestNewProfile(t *testing.T) {
	cases := []struct {
		name, inName, inEmail string
		wantErr               bool
	}{
		{"valid", " Ada Lovelace ", "ada@example.com", false},
		{"empty name", "   ", "ada@example.com", true},
		{"email without at", "Ada", "ada.example.com", true},
		{"empty email", "Ada", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProfile(tc.inName, tc.inEmail)
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name != "Ada Lovelace" || p.Credits != 0 || p.SubscriptionStatus != nil {
				t.Errorf("unexpected profile: %+v", p)
			}
		})
	}
}

func TestResolveSetupState(t *testing.T) {
	alice := Identity{Principal: "alice"}
	profile := &UserProfile{Name: "Alice", Email: "a@b.c"}

	if got := ResolveSetupState(Identity{}, true, nil); got != StateUnauthenticated {
		t.Errorf("anonymous: got %s", got)
	}
	if got := ResolveSetupState(alice, true, nil); got != StateNeedsProfile {
		t.Errorf("fetched empty: got %s", got)
	}
	if got := ResolveSetupState(alice, false, nil); got != StateHasProfile {
		t.Errorf("not fetched yet must not open the modal: got %s", got)
	}
	if got := ResolveSetupState(alice, true, profile); got != StateHasProfile {
		t.Errorf("with profile: got %s", got)
	}
}

func TestUserProfile_Normalize(t *testing.T) {
	sub := &SubscriptionStatus{AppID: "blog-newsletter", Status: "active"}
	p, err := UserProfile{Name: " Alice ", Email: "a@b.c ", Credits: 4, SubscriptionStatus: sub}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Alice" || p.Email != "a@b.c" || p.Credits != 4 || p.SubscriptionStatus != sub {
		t.Errorf("normalized = %+v", p)
	}
	if _, err := (UserProfile{Name: "  ", Email: "a@b.c"}).Normalize(); err == nil {
		t.Error("blank name accepted")
	}
}

func TestUserProfile_Initials(t *testing.T) {
	var none *UserProfile
	if got := none.Initials(); got != "U" {
		t.Errorf("nil profile: got %q", got)
	}
	p := &UserProfile{Name: "damien scott wentworth"}
	if got := p.Initials(); got != "DS" {
		t.Errorf("got %q, want DS", got)
	}
}
