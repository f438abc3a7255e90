package systems

import (
	"sort"

	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/components"
	cfg "github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/tags"
	"github.com/automoto/doomerang-brawl/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// syncBroadphase moves every hurtbox proxy onto its owner's hurtbox.
func syncBroadphase(w *world.World) {
	world.Each(w, components.Object, func(e donburi.Entity, obj *components.ObjectData) {
		if obj.Object == nil {
			return
		}
		t, ok := world.Get(w, e, components.Transform)
		if !ok {
			return
		}
		hurt, ok := world.Get(w, e, components.Hurtbox)
		if !ok {
			return
		}
		r := hurt.WorldRect(t.Position)
		obj.X, obj.Y = r.MinX, r.MinY
		obj.W, obj.H = max(r.W(), 1), max(r.H(), 1)
		obj.Update()
	})
}

// hurtboxCandidates returns, in ascending id order, the entities hostile to
// team whose hurtbox proxy shares a cell with r. It is a coarse test;
// callers still check the exact overlap.
func hurtboxCandidates(w *world.World, r components.Rect, team cfg.Team) []donburi.Entity {
	space := w.Space()
	// grown by a pixel so sub-pixel overlaps on a cell border still share a cell
	query := resolv.NewObject(r.MinX-1, r.MinY-1, r.W()+2, r.H()+2)
	space.Add(query)
	defer space.Remove(query)

	check := query.Check(0, 0, archetypes.ResolvHostileTags(team)...)
	if check == nil {
		return nil
	}
	seen := make(map[donburi.Entity]bool, len(check.Objects))
	var out []donburi.Entity
	for _, o := range check.Objects {
		e, ok := o.Data.(donburi.Entity)
		if !ok || seen[e] || !o.HasTags(tags.ResolvHurtbox) {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id() < out[j].Id() })
	return out
}
