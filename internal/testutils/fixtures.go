package testutils

import (
	"github.com/KirkDiggler/arena/internal/domain/player"
)

// CreateTestPlayer creates a living player; level 10 and above get a mana pool
func CreateTestPlayer(id, ownerID, name string, level uint32) *player.Player {
	p := &player.Player{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		Health:  100,
		Level:   level,
	}
	if level >= player.ManaLevel {
		p.Mana = player.ManaPool(100)
	}
	return p
}

// CreateDeadPlayer creates a player with no health left
func CreateDeadPlayer(id, ownerID, name string, level uint32) *player.Player {
	p := CreateTestPlayer(id, ownerID, name, level)
	p.Health = 0
	return p
}
