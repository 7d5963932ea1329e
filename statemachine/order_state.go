// Package statemachine defines the order lifecycle. The backend-of-record
// enforces transitions server-side; this mirror lets views reject illegal
// requests before spending a network round trip, and drives which actions a
// dashboard offers for an order.
package statemachine

import (
	"errors"

	"food-ordering-web/models"
)

// Actor identifies who requests a transition
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorProvider Actor = "provider"
	ActorAdmin    Actor = "admin"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor Actor
}

// validTransitions is the authoritative state machine definition. The
// progression is strictly linear; no state may be skipped, and CANCELLED is
// reachable only from PLACED.
var validTransitions = []Transition{
	// Provider advances the order through preparation
	{From: models.StatusPlaced, To: models.StatusPreparing, Actor: ActorProvider},
	{From: models.StatusPreparing, To: models.StatusReady, Actor: ActorProvider},
	{From: models.StatusReady, To: models.StatusDelivered, Actor: ActorProvider},
	// Customer or Provider can cancel an order that has not started
	{From: models.StatusPlaced, To: models.StatusCancelled, Actor: ActorCustomer},
	{From: models.StatusPlaced, To: models.StatusCancelled, Actor: ActorProvider},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Lookup maps built once at init
var (
	transitionMap = func() map[transitionKey]map[Actor]bool {
		m := make(map[transitionKey]map[Actor]bool)
		for _, t := range validTransitions {
			key := transitionKey{t.From, t.To}
			if m[key] == nil {
				m[key] = make(map[Actor]bool)
			}
			m[key][t.Actor] = true
		}
		return m
	}()
)

// CanTransition checks whether the actor may move an order between the two
// states. Admin may force any edge that is legal for some actor, matching
// the moderation dashboard's override powers.
func CanTransition(from, to models.OrderStatus, actor Actor) error {
	actors, legal := transitionMap[transitionKey{from, to}]
	if legal && (actor == ActorAdmin || actors[actor]) {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed for actor '" + string(actor) + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// NextStatusesFor returns the states the actor may move the order into,
// used to render the transition controls on order cards
func NextStatusesFor(status models.OrderStatus, actor Actor) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From != status {
			continue
		}
		if actor == ActorAdmin || t.Actor == actor {
			if !contains(nexts, t.To) {
				nexts = append(nexts, t.To)
			}
		}
	}
	return nexts
}

// CanCancel reports whether an order in the given state may still be
// cancelled; only PLACED orders qualify
func CanCancel(status models.OrderStatus) bool {
	return status == models.StatusPlaced
}

// IsTerminal reports whether the state admits no further transitions
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

func contains(statuses []models.OrderStatus, status models.OrderStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// AllTransitions returns the full state machine for documentation endpoints
func AllTransitions() []Transition {
	return validTransitions
}
