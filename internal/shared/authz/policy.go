// Package authz implements the authorization policy for the API.
//
// The policy is a pure decision function: given an actor, an operation and an
// already-loaded target record it returns Allow or Forbidden. It performs no
// lookups and no writes. Callers resolve the target first (so a missing record
// surfaces as not-found before authorization) and consult the policy before
// invoking any store mutation.
package authz

import (
	productentity "inventory_backend/internal/feature/products/domain/entity"
	userentity "inventory_backend/internal/feature/users/domain/entity"
)

// Operation identifies the kind of access being requested.
type Operation int

const (
	// OpRead is a read of a single record.
	OpRead Operation = iota
	// OpCreate is the creation of a new record.
	OpCreate
	// OpUpdate is a partial or full mutation of an existing record.
	OpUpdate
	// OpDelete is the removal of an existing record.
	OpDelete
)

// Decision is the outcome of a policy evaluation.
type Decision int

const (
	// Allow permits the operation.
	Allow Decision = iota
	// Forbidden rejects the operation for an authenticated but unentitled actor,
	// or for an anonymous actor where authentication is required.
	Forbidden
)

// Actor is the identity performing a request. The zero value is anonymous.
type Actor struct {
	ID uint
}

// Anonymous is the unauthenticated actor.
var Anonymous = Actor{}

// IsAnonymous reports whether the actor carries no authenticated identity.
func (a Actor) IsAnonymous() bool {
	return a.ID == 0
}

// Policy evaluates access rules. It holds no state; a zero Policy is ready to use.
type Policy struct{}

// DecideProduct evaluates an operation against a product record.
//
// Rules:
//   - anyone, including anonymous, may read any product
//   - only an authenticated actor may create a product
//   - update and delete require the actor to be the product's owner
//
// target may be nil for OpCreate; for all other operations the caller must have
// resolved the record already.
func (Policy) DecideProduct(actor Actor, op Operation, target *productentity.Product) Decision {
	switch op {
	case OpRead:
		return Allow
	case OpCreate:
		if actor.IsAnonymous() {
			return Forbidden
		}
		return Allow
	case OpUpdate, OpDelete:
		if actor.IsAnonymous() || target == nil || actor.ID != target.OwnerID {
			return Forbidden
		}
		return Allow
	default:
		return Forbidden
	}
}

// DecideUser evaluates an operation against a user record.
//
// An actor may only read or update their own record; every other combination,
// including any anonymous access and any delete, is Forbidden.
func (Policy) DecideUser(actor Actor, op Operation, target *userentity.User) Decision {
	switch op {
	case OpRead, OpUpdate:
		if actor.IsAnonymous() || target == nil || actor.ID != target.ID {
			return Forbidden
		}
		return Allow
	default:
		return Forbidden
	}
}
