// internal/game/game_store_test.go
package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStore(t *testing.T) {
	s := NewGameStore()

	g := NewCrazyTensGame(DecimalConfig(), 100)
	s.AddGame(g)

	got, ok := s.GetGame(g.ID)
	require.True(t, ok)
	assert.Same(t, g, got)

	_, ok = s.GetGame(uuid.New())
	assert.False(t, ok)

	s.DeleteGame(g.ID)
	_, ok = s.GetGame(g.ID)
	assert.False(t, ok)
}

func TestGameStoreListJoinable(t *testing.T) {
	s := NewGameStore()

	waiting := NewCrazyTensGame(DecimalConfig(), 100)
	ongoing := NewCrazyTensGame(DozenalConfig(), 100)
	ongoing.Status = StatusOngoing
	over := NewCrazyTensGame(DecimalConfig(), 100)
	over.Status = StatusGameOver

	s.AddGame(waiting)
	s.AddGame(ongoing)
	s.AddGame(over)

	assert.Equal(t, []uuid.UUID{waiting.ID}, s.ListJoinable())
}
