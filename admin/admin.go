// Package admin resolves dashboard credentials into authorization roles.
package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spirit-symposium/event-registration/events"
)

// handlerSuffix is the event-handler login convention: a username of the
// form <slug>@2026 whose password equals the username authenticates as
// the handler for that slug's event.
const handlerSuffix = "@2026"

// RoleAll is the wire representation of full access.
const RoleAll = "ALL"

type Scope int

const (
	SCOPE_ALL Scope = iota
	SCOPE_EVENT
)

// Role is an authorization scope resolved once at login and carried as
// structured data afterwards, instead of being re-parsed from strings.
type Role struct {
	Scope Scope
	Event string
}

func SuperAdminRole() Role {
	return Role{Scope: SCOPE_ALL}
}

func EventRole(eventName string) Role {
	return Role{Scope: SCOPE_EVENT, Event: eventName}
}

func (r Role) IsAll() bool {
	return r.Scope == SCOPE_ALL
}

// String yields the wire form: "ALL" or the scoped event name.
func (r Role) String() string {
	if r.Scope == SCOPE_ALL {
		return RoleAll
	}
	return r.Event
}

// ParseRole interprets the legacy role query parameter. Absent or "ALL"
// means full access; anything else scopes to that exact event name.
func ParseRole(s string) Role {
	if s == "" || s == RoleAll {
		return SuperAdminRole()
	}
	return EventRole(s)
}

// EventFilter is the listing filter implied by the role: empty for full
// access, the event name otherwise.
func (r Role) EventFilter() string {
	if r.Scope == SCOPE_ALL {
		return ""
	}
	return r.Event
}

// Admin is a stored dashboard credential. Passwords are stored and
// compared in plaintext so the handler accounts created by earlier
// deployments keep working.
type Admin struct {
	ID        string    `json:"id,omitempty"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	CreateAdmin(ctx context.Context, admin *Admin) error
	// GetAdminByCredentials returns the admin matching the exact
	// username+password pair, or a NOT_FOUND error.
	GetAdminByCredentials(ctx context.Context, username, password string) (Admin, error)
}

// SuperAdminConfig is the hard-coded credential pair with full access.
type SuperAdminConfig struct {
	Username string
	Password string
}

// Authenticate resolves a credential pair to a role. Resolution order:
// the configured super-admin pair, the <slug>@2026 handler convention
// (username and password must be identical), then stored admins.
func Authenticate(ctx context.Context, username, password string, repo Repository, super SuperAdminConfig) (Role, error) {
	if username == super.Username && password == super.Password {
		return SuperAdminRole(), nil
	}

	if slug, ok := strings.CutSuffix(username, handlerSuffix); ok && slug != "" {
		if username != password {
			return Role{}, NewInvalidCredentialsError(username)
		}
		return EventRole(events.CanonicalEventName(slug)), nil
	}

	_, err := repo.GetAdminByCredentials(ctx, username, password)
	if err != nil {
		var adminErr *Error
		if errors.As(err, &adminErr) && adminErr.Reason == REASON_ADMIN_NOT_FOUND {
			return Role{}, NewInvalidCredentialsError(username)
		}
		return Role{}, err
	}

	return SuperAdminRole(), nil
}
