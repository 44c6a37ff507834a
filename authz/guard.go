// Package authz decides whether an actor may act on an owned resource.
package authz

import (
	"errors"

	"github.com/Inteegrus-Research/SP-tenderscope/auth"
)

// ErrForbidden means the actor is authenticated but not permitted.
var ErrForbidden = errors.New("authz: forbidden")

// Action is the kind of access being requested.
type Action int

const (
	ActionRead Action = iota
	ActionMutate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionMutate:
		return "mutate"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Can reports whether the actor may perform action on a resource owned by
// ownerID. Reads are public; mutation and deletion require ownership or the
// admin flag. Pure function of its inputs.
func Can(actor auth.Identity, ownerID uint, action Action) bool {
	switch action {
	case ActionRead:
		return true
	case ActionMutate, ActionDelete:
		return actor.ID == ownerID || actor.IsAdmin
	default:
		return false
	}
}

// Authorize is Can with an error result for call sites that propagate it.
func Authorize(actor auth.Identity, ownerID uint, action Action) error {
	if !Can(actor, ownerID, action) {
		return ErrForbidden
	}
	return nil
}

// AuthorizeAdmin allows admins only. Used where no ownership exception
// exists, such as report moderation.
func AuthorizeAdmin(actor auth.Identity) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}
	return nil
}
