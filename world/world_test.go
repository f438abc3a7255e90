package world

import (
	"io"
	"testing"

	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

func newWorld() *World {
	return New(cfg.Default(), 1, log.New(io.Discard))
}

func TestGetAbsentComponent(t *testing.T) {
	w := newWorld()
	e := w.Create(components.Transform)
	if _, ok := Get(w, e, components.Health); ok {
		t.Fatal("Get returned a component the entity lacks")
	}
	if _, ok := Get(w, e, components.Transform); !ok {
		t.Fatal("Get missed a present component")
	}
}

func TestRemoveAndDestroyAreForgiving(t *testing.T) {
	w := newWorld()
	e := w.Create(components.Transform)
	Remove(w, e, components.Health)
	Remove(w, e, components.Transform)
	if Has(w, e, components.Transform) {
		t.Fatal("Remove left the component")
	}

	w.Destroy(e)
	w.Destroy(e)
	w.Destroy(donburi.Null)
	if w.Valid(e) {
		t.Fatal("destroyed entity still valid")
	}
	if _, ok := Get(w, e, components.Transform); ok {
		t.Fatal("Get on a destroyed entity succeeded")
	}
}

func TestAddSetsOrAdds(t *testing.T) {
	w := newWorld()
	e := w.Create(components.Transform)
	Add(w, e, components.Health, components.HealthData{Current: 5, Maximum: 10})
	Add(w, e, components.Health, components.HealthData{Current: 7, Maximum: 10})
	h, ok := Get(w, e, components.Health)
	if !ok || h.Current != 7 {
		t.Fatalf("health = %+v, %v", h, ok)
	}
}

func TestEachVisitsInIDOrder(t *testing.T) {
	w := newWorld()
	var created []donburi.Entity
	for range 5 {
		created = append(created, w.Create(components.Transform, components.Health))
	}
	// Moving entities between archetypes must not change the visit order.
	Remove(w, created[1], components.Health)
	Add(w, created[1], components.Health, components.HealthData{})

	var seen []donburi.Entity
	Each(w, components.Transform, func(e donburi.Entity, _ *components.TransformData) {
		seen = append(seen, e)
	})
	if len(seen) != 5 {
		t.Fatalf("visited %d entities", len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if seen[i-1].Id() >= seen[i].Id() {
			t.Fatalf("order %v is not ascending", seen)
		}
	}

	n := 0
	Each2(w, components.Transform, components.Health, func(donburi.Entity, *components.TransformData, *components.HealthData) {
		n++
	})
	if n != 5 || Count(w, components.Health) != 5 {
		t.Fatalf("Each2 visited %d, Count %d", n, Count(w, components.Health))
	}
}

func TestEachSkipsEntitiesDestroyedMidIteration(t *testing.T) {
	w := newWorld()
	a := w.Create(components.Transform)
	b := w.Create(components.Transform)

	var seen int
	Each(w, components.Transform, func(e donburi.Entity, _ *components.TransformData) {
		seen++
		if e == a {
			w.Destroy(b)
		}
	})
	if seen != 1 {
		t.Fatalf("visited %d entities, want 1", seen)
	}
}

func TestSpaceAndSeq(t *testing.T) {
	w := newWorld()
	if w.Space() == nil {
		t.Fatal("no collision space")
	}
	if a, b := w.NextSeq(), w.NextSeq(); b <= a {
		t.Fatalf("NextSeq not increasing: %d, %d", a, b)
	}
}
