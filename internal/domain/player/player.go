package player

import (
	"time"

	"github.com/KirkDiggler/arena/internal/domain/shared"
)

const (
	// ReviveHealth is the health a revived player comes back with
	ReviveHealth uint32 = 100

	// ReviveMana is the mana pool granted on revival to players at ManaLevel or above
	ReviveMana uint32 = 100

	// ManaLevel is the lowest level that gets a mana pool on revival
	ManaLevel uint32 = 10
)

// Player is a combatant with health, an optional mana pool and a level.
// A nil Mana means the player has no mana pool at all, which is different
// from a pool that has been drained to zero.
type Player struct {
	ID      string
	OwnerID string
	Name    string

	Health uint32
	Mana   *uint32
	Level  uint32

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ManaPool returns a pointer to a mana pool holding v
func ManaPool(v uint32) *uint32 {
	return &v
}

// IsAlive reports whether the player has any health left
func (p *Player) IsAlive() bool {
	return p.Health != 0
}

// CanUseMana reports whether the player's level qualifies for a mana pool
func (p *Player) CanUseMana() bool {
	return p.Level >= ManaLevel
}

// HasEnoughMana reports whether the player has a pool holding at least cost
func (p *Player) HasEnoughMana(cost uint32) bool {
	if p.Mana == nil {
		return false
	}
	return *p.Mana >= cost
}

// Revive returns a fresh player when p is dead and nil otherwise.
// The revived player keeps p's identity and level, and gets a full mana
// pool only if that level is high enough. p itself is left untouched.
func (p *Player) Revive() *Player {
	if p.IsAlive() {
		return nil
	}

	revived := &Player{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Health:    ReviveHealth,
		Level:     p.Level,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.CanUseMana() {
		revived.Mana = ManaPool(ReviveMana)
	}

	return revived
}

// CastSpell spends cost and returns the damage dealt.
//
// With a mana pool the spell only goes off if the pool covers the cost, in
// which case it deals double the cost. Without a pool the cost is paid in
// health instead, floored at zero, and the spell deals nothing.
func (p *Player) CastSpell(cost uint32) uint32 {
	if p.Mana == nil {
		p.Health = shared.ClampedSubtract(p.Health, cost)
		return 0
	}

	if !p.HasEnoughMana(cost) {
		return 0
	}

	p.Mana = ManaPool(shared.ClampedSubtract(*p.Mana, cost))
	return cost * 2
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}

	clone := *p
	if p.Mana != nil {
		clone.Mana = ManaPool(*p.Mana)
	}
	return &clone
}
