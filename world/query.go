package world

import (
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Get returns the component of e, or false when e is gone or lacks it.
func Get[T any](w *World, e donburi.Entity, c *donburi.ComponentType[T]) (*T, bool) {
	entry, ok := w.Entry(e)
	if !ok || !entry.HasComponent(c) {
		return nil, false
	}
	return c.Get(entry), true
}

// Has reports whether e carries c.
func Has(w *World, e donburi.Entity, c donburi.IComponentType) bool {
	entry, ok := w.Entry(e)
	return ok && entry.HasComponent(c)
}

// Add sets c on e, adding the component when missing.
func Add[T any](w *World, e donburi.Entity, c *donburi.ComponentType[T], v T) {
	entry, ok := w.Entry(e)
	if !ok {
		return
	}
	if !entry.HasComponent(c) {
		donburi.Add(entry, c, &v)
		return
	}
	c.SetValue(entry, v)
}

// Remove drops c from e. Removing an absent component is a no-op.
func Remove(w *World, e donburi.Entity, c donburi.IComponentType) {
	entry, ok := w.Entry(e)
	if !ok || !entry.HasComponent(c) {
		return
	}
	entry.RemoveComponent(c)
}

// Entities lists every entity carrying all of cs in ascending id order.
func Entities(w *World, cs ...donburi.IComponentType) []donburi.Entity {
	var out []donburi.Entity
	donburi.NewQuery(filter.Contains(cs...)).Each(w.World, func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Id() < out[j].Id() })
	return out
}

// Each visits every (entity, T) pair in ascending id order. The id list is
// collected up front; entities destroyed by fn before their turn are skipped.
func Each[T any](w *World, c *donburi.ComponentType[T], fn func(e donburi.Entity, v *T)) {
	for _, e := range Entities(w, c) {
		if v, ok := Get(w, e, c); ok {
			fn(e, v)
		}
	}
}

// Each2 visits every entity carrying both T and U. Ids are collected from T
// first, then U is looked up for each.
func Each2[T, U any](w *World, c *donburi.ComponentType[T], u *donburi.ComponentType[U], fn func(e donburi.Entity, a *T, b *U)) {
	for _, e := range Entities(w, c) {
		a, ok := Get(w, e, c)
		if !ok {
			continue
		}
		b, ok := Get(w, e, u)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

// Count is the number of entities carrying c.
func Count(w *World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w.World)
}
