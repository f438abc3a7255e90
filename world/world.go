// Package world wraps the donburi world with the match context every system
// needs: tuning, the seeded generator, the clock, the logger and the
// collision space.
package world

import (
	"os"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/events"
	"github.com/automoto/doomerang-brawl/rng"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// World is one simulated match.
type World struct {
	World  donburi.World
	Config *cfg.Config
	RNG    *rng.RNG
	Logger *log.Logger
	Events *events.Bus

	Tick uint32  // number of the running tick, or of the last one between ticks
	Time float64 // simulated seconds at the start of that tick
	Dt   float64

	space *donburi.Entry
	seq   uint64
}

// New creates an empty world for the given tuning.
func New(conf *cfg.Config, seed uint64, logger *log.Logger) *World {
	if conf == nil {
		conf = cfg.Default()
	}
	if logger == nil {
		logger = DefaultLogger()
	}
	w := &World{
		World:  donburi.NewWorld(),
		Config: conf,
		RNG:    rng.New(seed),
		Logger: logger,
		Dt:     conf.Sim.Dt(),
	}
	w.Events = events.NewBus(w.World)
	w.space = w.createSpace()
	return w
}

// DefaultLogger logs warnings and above to stderr.
func DefaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.WarnLevel,
		Prefix: "sim",
	})
}

func (w *World) createSpace() *donburi.Entry {
	st := w.Config.Stage
	entry := w.World.Entry(w.World.Create(components.Space))
	cell := max(st.CellSize, 1)
	components.Space.Set(entry, resolv.NewSpace(max(st.Width, cell), max(st.Height, cell), cell, cell))
	return entry
}

// Space is the combat broadphase.
func (w *World) Space() *resolv.Space {
	return components.Space.Get(w.space)
}

// Stage returns the playable floor bounds.
func (w *World) Stage() cfg.StageConfig {
	return w.Config.Stage
}

// NextSeq returns a counter that increases with every call. Pools use it to
// find their oldest member.
func (w *World) NextSeq() uint64 {
	w.seq++
	return w.seq
}

// Create adds an entity with the given components.
func (w *World) Create(cs ...donburi.IComponentType) donburi.Entity {
	return w.World.Create(cs...)
}

// Destroy removes an entity and every component it carries. Invalid handles
// are ignored.
func (w *World) Destroy(e donburi.Entity) {
	if !w.World.Valid(e) {
		return
	}
	entry := w.World.Entry(e)
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil {
			w.Space().Remove(obj.Object)
		}
	}
	w.World.Remove(e)
}

// Valid reports whether e still refers to a live entity.
func (w *World) Valid(e donburi.Entity) bool {
	return w.World.Valid(e)
}

// Entry resolves a handle.
func (w *World) Entry(e donburi.Entity) (*donburi.Entry, bool) {
	if !w.World.Valid(e) {
		return nil, false
	}
	return w.World.Entry(e), true
}

// ID is the observable 32-bit id of an entity.
func ID(e donburi.Entity) uint32 {
	return uint32(e.Id())
}
