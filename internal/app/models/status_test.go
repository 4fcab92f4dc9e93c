package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusPending, StatusInReview, StatusApproved, StatusRejected, StatusProcessed} {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}

	assert.False(t, ApplicationStatus("archived").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestApplicationStatusTransitions(t *testing.T) {
	all := []ApplicationStatus{StatusPending, StatusInReview, StatusApproved, StatusRejected, StatusProcessed}

	allowed := map[ApplicationStatus]map[ApplicationStatus]bool{
		StatusPending:  {StatusInReview: true, StatusApproved: true, StatusRejected: true},
		StatusInReview: {StatusApproved: true, StatusRejected: true},
		StatusApproved: {StatusProcessed: true},
	}

	for _, from := range all {
		for _, to := range all {
			expected := allowed[from][to]
			assert.Equal(t, expected, from.CanTransitionTo(to), "transition %s -> %s", from, to)
		}
	}
}

func TestApplicationStatusTerminal(t *testing.T) {
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusProcessed.Terminal())

	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusInReview.Terminal())
	assert.False(t, StatusApproved.Terminal())
}

func TestTransitionSources(t *testing.T) {
	assert.ElementsMatch(t,
		[]ApplicationStatus{StatusPending, StatusInReview},
		TransitionSources(StatusApproved))

	assert.ElementsMatch(t,
		[]ApplicationStatus{StatusApproved},
		TransitionSources(StatusProcessed))

	assert.Empty(t, TransitionSources(StatusPending))
}
