package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionAppendKeepsOrder(t *testing.T) {
	s := NewSession("s1", 20)

	for i := 0; i < 5; i++ {
		s.Append(Turn{UserText: fmt.Sprintf("q%d", i), Timestamp: time.Now()})
	}

	assert.Len(t, s.History, 5)
	assert.Equal(t, "q0", s.History[0].UserText)
	assert.Equal(t, "q4", s.History[4].UserText)
}

func TestSessionRingEvictsOldest(t *testing.T) {
	s := NewSession("s1", 3)

	for i := 0; i < 10; i++ {
		s.Append(Turn{UserText: fmt.Sprintf("q%d", i)})
	}

	assert.Len(t, s.History, 3)
	assert.Equal(t, "q7", s.History[0].UserText)
	assert.Equal(t, "q9", s.History[2].UserText)
}

func TestSessionUnboundedWhenZero(t *testing.T) {
	s := NewSession("s1", 0)

	for i := 0; i < 50; i++ {
		s.Append(Turn{UserText: "q"})
	}

	assert.Len(t, s.History, 50)
}

func TestLastTurns(t *testing.T) {
	s := NewSession("s1", 20)
	for i := 0; i < 5; i++ {
		s.Append(Turn{UserText: fmt.Sprintf("q%d", i)})
	}

	last := s.LastTurns(3)
	assert.Len(t, last, 3)
	assert.Equal(t, "q2", last[0].UserText)
	assert.Equal(t, "q4", last[2].UserText)

	assert.Len(t, s.LastTurns(100), 5)
	assert.Nil(t, s.LastTurns(0))
}
