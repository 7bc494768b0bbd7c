package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type syncState string

const (
	statePending   syncState = "pending"
	stateFetching  syncState = "fetching"
	stateApplying  syncState = "applying"
	stateSucceeded syncState = "succeeded"
	stateFailed    syncState = "failed"
)

func newTestMachine(current syncState) *StateMachine[syncState] {
	return New(current,
		From(statePending).To(stateFetching),
		From(stateFetching).To(stateApplying, stateFailed),
		From(stateApplying).To(stateSucceeded, stateFailed),
	)
}

func TestToState(t *testing.T) {
	t.Run("allows a configured transition", func(t *testing.T) {
		m := newTestMachine(statePending)
		assert.NoError(t, m.ToState(stateFetching))
	})

	t.Run("rejects a skipped state", func(t *testing.T) {
		m := newTestMachine(statePending)
		assert.ErrorIs(t, m.ToState(stateSucceeded), ErrInvalidTransition)
	})

	t.Run("rejects a transition from an unknown state", func(t *testing.T) {
		m := newTestMachine(stateSucceeded)
		assert.ErrorIs(t, m.ToState(statePending), ErrInvalidTransition)
	})
}

func TestTransition(t *testing.T) {
	m := newTestMachine(statePending)

	assert.NoError(t, m.Transition(stateFetching))
	assert.Equal(t, stateFetching, m.Current())

	assert.NoError(t, m.Transition(stateApplying))
	assert.NoError(t, m.Transition(stateSucceeded))
	assert.Equal(t, stateSucceeded, m.Current())

	// terminal state
	assert.ErrorIs(t, m.Transition(stateFetching), ErrInvalidTransition)
	assert.Equal(t, stateSucceeded, m.Current())
}
