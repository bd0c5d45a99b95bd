package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tiffin/internal/domain/entity"
)

func session(role entity.Role) entity.Session {
	return entity.Session{Authenticated: true, Role: role}
}

func TestResolve_ListingScreen(t *testing.T) {
	tests := []struct {
		name string
		sess entity.Session
		want Decision
	}{
		{name: "guest is redirected to login", sess: entity.GuestSession(), want: Decision{RedirectToLogin: true}},
		{name: "vendor is denied", sess: session(entity.RoleVendor), want: Decision{Branch: BranchDenied}},
		{name: "user sees standard branch", sess: session(entity.RoleUser), want: Decision{Branch: BranchStandard}},
		{name: "admin falls through to standard", sess: session(entity.RoleAdmin), want: Decision{Branch: BranchStandard}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.sess, ScreenListing))
		})
	}
}

func TestResolve_AdminAugmentedScreens(t *testing.T) {
	for _, screen := range []Screen{ScreenContact, ScreenFeedback} {
		assert.Equal(t, BranchAugmented, Resolve(session(entity.RoleAdmin), screen).Branch)
		assert.Equal(t, BranchStandard, Resolve(session(entity.RoleUser), screen).Branch)
		// Boards are open to guests; only the admin panel is gated.
		assert.Equal(t, BranchStandard, Resolve(entity.GuestSession(), screen).Branch)
	}
}

func TestResolve_UnknownRoleFallsThrough(t *testing.T) {
	odd := entity.Session{Authenticated: true, Role: entity.Role("Courier")}

	assert.Equal(t, BranchStandard, Resolve(odd, ScreenListing).Branch)
	assert.Equal(t, BranchStandard, Resolve(odd, ScreenContact).Branch)
}

func TestResolve_UnknownScreenRendersStandard(t *testing.T) {
	assert.Equal(t, BranchStandard, Resolve(entity.GuestSession(), Screen("foodblog")).Branch)
}

func TestResolve_IsDeterministic(t *testing.T) {
	sess := session(entity.RoleVendor)
	first := Resolve(sess, ScreenListing)
	for range 10 {
		assert.Equal(t, first, Resolve(sess, ScreenListing))
	}
}
