package models

// ApplicationStatus is the closed set of application review states.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusInReview  ApplicationStatus = "in_review"
	StatusApproved  ApplicationStatus = "approved"
	StatusRejected  ApplicationStatus = "rejected"
	StatusProcessed ApplicationStatus = "processed"
)

// statusTransitions is the single source of truth for legal review
// transitions. StatusProcessed is reachable only through candidate
// processing, never through a plain status update.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:  {StatusInReview, StatusApproved, StatusRejected},
	StatusInReview: {StatusApproved, StatusRejected},
	StatusApproved: {StatusProcessed},
}

// Valid reports whether s is a known status value.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInReview, StatusApproved, StatusRejected, StatusProcessed:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusRejected || s == StatusProcessed
}

// CanTransitionTo reports whether the edge s -> target exists.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionSources returns every status from which target is reachable.
// Repositories use the result as the guard set for conditional updates.
func TransitionSources(target ApplicationStatus) []ApplicationStatus {
	var sources []ApplicationStatus
	for from, targets := range statusTransitions {
		for _, t := range targets {
			if t == target {
				sources = append(sources, from)
				break
			}
		}
	}
	return sources
}
