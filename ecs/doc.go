/*
Package ecs is a small entity-component layer built on the sparse sets in
the parent package. A World hands out generation-checked Entity handles
and keeps one fixed-capacity sps.Set per component kind, so component
access stays O(1) and per-kind iteration runs over packed storage.

	var Position = ecs.NewKind[Vec2]()
	var Velocity = ecs.NewKind[Vec2]()

	w, _ := ecs.NewWorld(4096)
	e, _ := w.Create()
	ecs.Add(w, e, Position, Vec2{})
	ecs.Add(w, e, Velocity, Vec2{X: 1})

	ecs.Intersect2(w, Position, Velocity, func(_ ecs.Entity, p, v *Vec2) {
		p.X += v.X
		p.Y += v.Y
	})

Worlds inherit the single-owner model of the sets underneath them.
*/
package ecs
