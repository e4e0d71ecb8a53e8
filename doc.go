/*
Package sps implements a fixed-capacity sparse set: a container mapping
small integer keys to values with O(1) insert, lookup, and removal, and
fast iteration over a packed dense array. It is the storage building block
for entity-component systems and other index-addressed schemes where
iteration speed matters more than insertion order.

Two parallel tables drive it: a sparse table indexed directly by key that
points into the dense array, and the dense array itself holding keys and
values packed with no gaps. Removal swaps the last dense entry into the
vacated slot, so dense order is not insertion order once anything has been
removed; Sort establishes a caller-defined stable order when one is
needed.

Basic usage:

	set, _ := sps.New[Position](sps.DefaultCapacity)

	set.Add(7, Position{X: 1, Y: 2})

	if p, err := set.Get(7); err == nil {
		p.X += 3 // aliases stored value, valid until the next mutation
	}

	it := set.Iter()
	for key, pos, ok := it.Next(); ok; key, pos, ok = it.Next() {
		_ = key
		_ = pos
	}

Sets are single-owner: nothing is synchronized, and iterators are thin
cursors rather than snapshots. See Iterator for the exact guarantees when
the set is mutated mid-walk.

The ecs subpackage is a small entity-component layer built on these sets.
*/
package sps
