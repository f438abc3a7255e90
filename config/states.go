package config

// FighterState is the action state a fighter is in.
type FighterState int

const (
	Idle FighterState = iota
	Walking
	Jumping
	Falling
	Crouching
	LightAttack
	HeavyAttack
	Launcher
	Special
	Super
	Blocking
	Dodging
	Parrying
	Hitstun
	Blockstun
	KnockedDown
)

var fighterStateNames = [...]string{
	Idle:        "Idle",
	Walking:     "Walking",
	Jumping:     "Jumping",
	Falling:     "Falling",
	Crouching:   "Crouching",
	LightAttack: "LightAttack",
	HeavyAttack: "HeavyAttack",
	Launcher:    "Launcher",
	Special:     "Special",
	Super:       "Super",
	Blocking:    "Blocking",
	Dodging:     "Dodging",
	Parrying:    "Parrying",
	Hitstun:     "Hitstun",
	Blockstun:   "Blockstun",
	KnockedDown: "KnockedDown",
}

func (s FighterState) String() string {
	if s < 0 || int(s) >= len(fighterStateNames) {
		return "Unknown"
	}
	return fighterStateNames[s]
}

// IsAttack reports whether the state spawns a hitbox on entry.
func (s FighterState) IsAttack() bool {
	switch s {
	case LightAttack, HeavyAttack, Launcher, Special:
		return true
	}
	return false
}

// IsStunned reports whether the fighter is locked out by a hit.
func (s FighterState) IsStunned() bool {
	return s == Hitstun || s == Blockstun || s == KnockedDown
}

// Actionable reports whether a new action may start from this state.
func (s FighterState) Actionable() bool {
	switch s {
	case Idle, Walking, Crouching:
		return true
	}
	return false
}

// Team groups fighters into alliances.
type Team int

const (
	TeamPlayer Team = iota
	TeamAlly
	TeamEnemy
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "Player"
	case TeamAlly:
		return "Ally"
	case TeamEnemy:
		return "Enemy"
	}
	return "Unknown"
}

// AlliedWith reports whether two teams never damage each other.
// Player and Ally form one side, Enemy the other.
func (t Team) AlliedWith(o Team) bool {
	if t == TeamEnemy || o == TeamEnemy {
		return t == o
	}
	return true
}

// HitKind tags a hitbox for reactions and scoring.
type HitKind int

const (
	HitLight HitKind = iota
	HitHeavy
	HitLauncher
	HitSpecial
	HitProjectile
	HitSuper
)

func (k HitKind) String() string {
	switch k {
	case HitLight:
		return "Light"
	case HitHeavy:
		return "Heavy"
	case HitLauncher:
		return "Launcher"
	case HitSpecial:
		return "Special"
	case HitProjectile:
		return "Projectile"
	case HitSuper:
		return "Super"
	}
	return "Unknown"
}
