package ecs

// Intersect2 calls fn for every live entity carrying both an A and a B
// component. The smaller store's dense array drives the walk, so cost is
// O(min(|A|, |B|)) probes.
func Intersect2[A, B any](w *World, ka Kind[A], kb Kind[B], fn func(e Entity, a *A, b *B)) {
	if w == nil || !ka.Valid() || !kb.Valid() || fn == nil {
		return
	}
	sa, oka := w.stores[ka.ID()]
	sb, okb := w.stores[kb.ID()]
	if !oka || !okb {
		return
	}

	drive, probe := sa, sb
	if probe.size() < drive.size() {
		drive, probe = probe, drive
	}
	for _, idx := range drive.keys() {
		if !probe.contains(idx) {
			continue
		}
		a, _ := sa.(typedStore[A]).set.Get(idx)
		b, _ := sb.(typedStore[B]).set.Get(idx)
		fn(w.entities.handleAt(idx), a, b)
	}
}

// Intersect3 is Intersect2 over three component kinds.
func Intersect3[A, B, C any](w *World, ka Kind[A], kb Kind[B], kc Kind[C], fn func(e Entity, a *A, b *B, c *C)) {
	if w == nil || !ka.Valid() || !kb.Valid() || !kc.Valid() || fn == nil {
		return
	}
	sa, oka := w.stores[ka.ID()]
	sb, okb := w.stores[kb.ID()]
	sc, okc := w.stores[kc.ID()]
	if !oka || !okb || !okc {
		return
	}

	drive := sa
	if sb.size() < drive.size() {
		drive = sb
	}
	if sc.size() < drive.size() {
		drive = sc
	}
	for _, idx := range drive.keys() {
		if !sa.contains(idx) || !sb.contains(idx) || !sc.contains(idx) {
			continue
		}
		a, _ := sa.(typedStore[A]).set.Get(idx)
		b, _ := sb.(typedStore[B]).set.Get(idx)
		c, _ := sc.(typedStore[C]).set.Get(idx)
		fn(w.entities.handleAt(idx), a, b, c)
	}
}
