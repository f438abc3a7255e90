package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Ally     = donburi.NewTag().SetName("Ally")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Boss     = donburi.NewTag().SetName("Boss")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for the combat broadphase
const (
	ResolvHurtbox = "hurtbox"
	ResolvPlayer  = "Player"
	ResolvAlly    = "Ally"
	ResolvEnemy   = "Enemy"
)
