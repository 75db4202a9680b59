package entities

// PoolKind identifies one of the three resource pools
type PoolKind string

const (
	PoolHealth PoolKind = "health"
	PoolSanity PoolKind = "sanity"
	PoolSpirit PoolKind = "spirit"
)

// ParsePoolKind converts a string to a PoolKind
func ParsePoolKind(s string) (PoolKind, bool) {
	switch PoolKind(s) {
	case PoolHealth:
		return PoolHealth, true
	case PoolSanity:
		return PoolSanity, true
	case PoolSpirit:
		return PoolSpirit, true
	default:
		return "", false
	}
}

// Pool tracks a current/max resource pair
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Damage subtracts from current, clamped at 0. Returns the damage actually taken.
func (p *Pool) Damage(amount int) int {
	if amount <= 0 {
		return 0
	}

	old := p.Current
	p.Current -= amount
	if p.Current < 0 {
		p.Current = 0
	}

	return old - p.Current
}

// Heal adds to current, clamped at max. Returns the amount actually restored.
func (p *Pool) Heal(amount int) int {
	if amount <= 0 || p.Current >= p.Max {
		return 0
	}

	old := p.Current
	p.Current += amount
	if p.Current > p.Max {
		p.Current = p.Max
	}

	return p.Current - old
}

// Depleted reports whether the pool has hit 0
func (p *Pool) Depleted() bool {
	return p.Current <= 0
}

// Pools holds the three resource pools
type Pools struct {
	Health Pool `json:"health"`
	Sanity Pool `json:"sanity"`
	Spirit Pool `json:"spirit"`
}

// Get returns the pool for the given kind
func (p *Pools) Get(kind PoolKind) *Pool {
	switch kind {
	case PoolHealth:
		return &p.Health
	case PoolSanity:
		return &p.Sanity
	case PoolSpirit:
		return &p.Spirit
	default:
		return nil
	}
}
