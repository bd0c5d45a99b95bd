// Package policy maps (session, screen) onto the render branch a screen
// shows. Branching lives in this one table so adding a role or a screen is
// a data change, not a conditional scattered across handlers.
package policy

import (
	"tiffin/internal/domain/entity"
)

// ViewBranch identifies one of the mutually exclusive render branches a
// screen can activate.
type ViewBranch string

const (
	// BranchStandard is the default rendering of a screen.
	BranchStandard ViewBranch = "standard"
	// BranchAugmented adds the admin-only panel to a screen.
	BranchAugmented ViewBranch = "augmented"
	// BranchDenied renders the access-denied placeholder.
	BranchDenied ViewBranch = "denied"
)

// Screen identifies a navigable screen of the client.
type Screen string

const (
	ScreenLogin          Screen = "login"
	ScreenSignup         Screen = "signup"
	ScreenSignupVendor   Screen = "signup-vendor"
	ScreenForgotPassword Screen = "forgot-password"
	ScreenListing        Screen = "listing"
	ScreenCheckout       Screen = "checkout"
	ScreenContact        Screen = "contact"
	ScreenFeedback       Screen = "feedback"
)

// Decision is the outcome of gating one navigation: either a branch to
// render or a redirect to the login screen.
type Decision struct {
	Branch          ViewBranch
	RedirectToLogin bool
}

// screenPolicy enumerates branch overrides per role; roles not listed fall
// through to the default branch. requireAuth marks the one screen-level
// policy where gating causes navigation instead of branch selection.
type screenPolicy struct {
	branches    map[entity.Role]ViewBranch
	defaultTo   ViewBranch
	requireAuth bool
}

var policies = map[Screen]screenPolicy{
	ScreenListing: {
		branches:    map[entity.Role]ViewBranch{entity.RoleVendor: BranchDenied},
		defaultTo:   BranchStandard,
		requireAuth: true,
	},
	ScreenContact: {
		branches:  map[entity.Role]ViewBranch{entity.RoleAdmin: BranchAugmented},
		defaultTo: BranchStandard,
	},
	ScreenFeedback: {
		branches:  map[entity.Role]ViewBranch{entity.RoleAdmin: BranchAugmented},
		defaultTo: BranchStandard,
	},
	ScreenLogin:          {defaultTo: BranchStandard},
	ScreenSignup:         {defaultTo: BranchStandard},
	ScreenSignupVendor:   {defaultTo: BranchStandard},
	ScreenForgotPassword: {defaultTo: BranchStandard},
	ScreenCheckout:       {defaultTo: BranchStandard},
}

// Resolve decides the active branch for a session on a screen. It is pure
// and deterministic; unknown screens render the standard branch.
func Resolve(session entity.Session, screen Screen) Decision {
	pol, ok := policies[screen]
	if !ok {
		return Decision{Branch: BranchStandard}
	}

	if pol.requireAuth && !session.Authenticated {
		return Decision{RedirectToLogin: true}
	}

	if branch, ok := pol.branches[session.Role]; ok {
		return Decision{Branch: branch}
	}

	return Decision{Branch: pol.defaultTo}
}
