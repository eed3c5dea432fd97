package repair

import "github.com/movilfix/repairshop-api/internal/httperr"

// ===============================
// Repair Status
// ===============================

type Status string

const (
	StatusPending      Status = "Pending"
	StatusDiagnosed    Status = "Diagnosed"
	StatusInProgress   Status = "In Progress"
	StatusWaitingParts Status = "Waiting Parts"
	StatusCompleted    Status = "Completed"
	StatusDelivered    Status = "Delivered"
	StatusCancelled    Status = "Cancelled"
)

// Allowed transitions. Cancelled is reachable from any non-terminal state;
// Delivered and Cancelled are terminal. Waiting Parts and In Progress flip
// back and forth while parts arrive.
var transitions = map[Status][]Status{
	StatusPending:      {StatusDiagnosed, StatusCancelled},
	StatusDiagnosed:    {StatusInProgress, StatusCancelled},
	StatusInProgress:   {StatusWaitingParts, StatusCompleted, StatusCancelled},
	StatusWaitingParts: {StatusInProgress, StatusCancelled},
	StatusCompleted:    {StatusDelivered, StatusCancelled},
	StatusDelivered:    {},
	StatusCancelled:    {},
}

func IsValid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether a repair may move from one status to another.
// Re-entering the current status is allowed and re-stamps its date, except in
// terminal states, which admit no change at all.
func CanTransition(from, to Status) error {
	if !IsValid(to) {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}
	if from == to && !IsTerminal(from) {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}
