package sps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the sparse/dense cross-mapping after a public
// operation: every mapped key round-trips through the dense array, every
// live dense slot points back at itself, and the live count matches.
func checkInvariants[T any](t *testing.T, s *Set[T]) {
	t.Helper()

	mapped := 0
	for k, slot := range s.sparse {
		if slot == noSlot {
			continue
		}
		mapped++
		require.Less(t, slot, s.count, "key %d maps past the live range", k)
		require.Equal(t, k, s.dense[slot], "key %d dense slot holds the wrong key", k)
	}
	require.Equal(t, s.count, mapped, "sparse table disagrees with count")

	for i := 0; i < s.count; i++ {
		require.Equal(t, i, s.sparse[s.dense[i]], "dense slot %d not mapped back", i)
	}
	for i := s.count; i < len(s.dense); i++ {
		require.Equal(t, noSlot, s.dense[i], "dense slot %d past count not cleared", i)
	}
}

func TestAddAndGet(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		s, err := New[int](DefaultCapacity)
		require.NoError(t, err)

		entries := map[int]int{5: 10, 7: 42, 0: -1, DefaultCapacity - 1: 99}
		for k, v := range entries {
			placed, err := s.Add(k, v)
			require.NoError(t, err)
			require.Equal(t, v, *placed)
		}
		require.Equal(t, len(entries), s.Len())

		for k, v := range entries {
			require.True(t, s.Has(k))
			got, err := s.Get(k)
			require.NoError(t, err)
			require.Equal(t, v, *got)
		}
		checkInvariants(t, s)
	})

	t.Run("absent_key", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)

		_, err = s.Get(8)
		require.ErrorIs(t, err, ErrNotFound)
		require.False(t, s.Has(8))
	})

	t.Run("duplicate_add_rejected", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)

		_, err = s.Add(3, 30)
		require.NoError(t, err)
		_, err = s.Add(3, 31)
		require.ErrorIs(t, err, ErrDuplicateKey)

		got, err := s.Get(3)
		require.NoError(t, err)
		require.Equal(t, 30, *got, "failed add must leave the first value in place")
		checkInvariants(t, s)
	})

	t.Run("stored_pointer_aliases_storage", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)

		placed, err := s.Add(1, 10)
		require.NoError(t, err)
		*placed = 11

		got, err := s.Get(1)
		require.NoError(t, err)
		require.Equal(t, 11, *got)
	})

	t.Run("nil_set", func(t *testing.T) {
		var s *Set[int]
		_, err := s.Add(1, 10)
		require.ErrorIs(t, err, ErrNilSet)
		_, err = s.Get(1)
		require.ErrorIs(t, err, ErrNilSet)
		require.False(t, s.Has(1))
		require.Equal(t, 0, s.Len())
		require.Equal(t, 0, s.Cap())
	})
}

func TestKeyValidation(t *testing.T) {
	const capacity = 16
	s, err := New[int](capacity)
	require.NoError(t, err)

	for _, key := range []int{-1, capacity, capacity + 100} {
		_, err := s.Add(key, 1)
		require.ErrorIs(t, err, ErrInvalidKey, "Add(%d)", key)

		_, err = s.AddOrReplace(key, 1)
		require.ErrorIs(t, err, ErrInvalidKey, "AddOrReplace(%d)", key)

		_, err = s.Get(key)
		require.ErrorIs(t, err, ErrInvalidKey, "Get(%d)", key)

		require.ErrorIs(t, s.Remove(key), ErrInvalidKey, "Remove(%d)", key)
		require.False(t, s.Has(key), "Has(%d)", key)
	}
	require.Equal(t, 0, s.Len())
}

func TestAddOrReplace(t *testing.T) {
	t.Run("inserts_when_absent", func(t *testing.T) {
		s, err := New[string](8)
		require.NoError(t, err)

		placed, err := s.AddOrReplace(2, "a")
		require.NoError(t, err)
		require.Equal(t, "a", *placed)
		require.Equal(t, 1, s.Len())
		checkInvariants(t, s)
	})

	t.Run("replaces_in_place", func(t *testing.T) {
		s, err := New[string](8)
		require.NoError(t, err)

		_, err = s.Add(2, "a")
		require.NoError(t, err)
		_, err = s.Add(5, "b")
		require.NoError(t, err)

		placed, err := s.AddOrReplace(2, "c")
		require.NoError(t, err)
		require.Equal(t, "c", *placed)
		require.Equal(t, 2, s.Len(), "replace must not grow the set")
		require.Equal(t, []int{2, 5}, s.Keys(), "replace must not move dense slots")

		got, err := s.Get(2)
		require.NoError(t, err)
		require.Equal(t, "c", *got)
		checkInvariants(t, s)
	})

	t.Run("replaces_on_full_set", func(t *testing.T) {
		s, err := New[int](4)
		require.NoError(t, err)
		for k := 0; k < 4; k++ {
			_, err := s.Add(k, k)
			require.NoError(t, err)
		}

		_, err = s.AddOrReplace(1, 100)
		require.NoError(t, err)
		got, err := s.Get(1)
		require.NoError(t, err)
		require.Equal(t, 100, *got)
		checkInvariants(t, s)
	})
}

func TestRemove(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)

		_, err = s.Add(5, 10)
		require.NoError(t, err)
		_, err = s.Add(8, 20)
		require.NoError(t, err)

		require.NoError(t, s.Remove(5))
		require.False(t, s.Has(5))
		_, err = s.Get(5)
		require.ErrorIs(t, err, ErrNotFound)

		got, err := s.Get(8)
		require.NoError(t, err)
		require.Equal(t, 20, *got)
		require.Equal(t, 1, s.Len())
		checkInvariants(t, s)
	})

	t.Run("swaps_last_into_vacated_slot", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)
		for _, k := range []int{10, 20, 30} {
			_, err := s.Add(k, k*10)
			require.NoError(t, err)
		}

		require.NoError(t, s.Remove(10))
		require.Equal(t, []int{30, 20}, s.Keys(), "last key must take the removed slot")
		checkInvariants(t, s)
	})

	t.Run("remove_last_slot", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)
		for _, k := range []int{1, 2, 3} {
			_, err := s.Add(k, k)
			require.NoError(t, err)
		}

		require.NoError(t, s.Remove(3))
		require.Equal(t, []int{1, 2}, s.Keys())
		checkInvariants(t, s)
	})

	t.Run("remove_only_entry", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)
		_, err = s.Add(7, 70)
		require.NoError(t, err)

		require.NoError(t, s.Remove(7))
		require.Equal(t, 0, s.Len())
		checkInvariants(t, s)
	})

	t.Run("absent_is_reported_not_fatal", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)

		require.ErrorIs(t, s.Remove(2), ErrNotFound)
		require.Equal(t, 0, s.Len())
	})

	t.Run("readd_after_remove", func(t *testing.T) {
		s, err := New[int](64)
		require.NoError(t, err)
		_, err = s.Add(4, 40)
		require.NoError(t, err)
		require.NoError(t, s.Remove(4))

		placed, err := s.Add(4, 41)
		require.NoError(t, err)
		require.Equal(t, 41, *placed)
		checkInvariants(t, s)
	})
}

func TestCapacityBoundary(t *testing.T) {
	const capacity = 256
	s, err := New[int](capacity)
	require.NoError(t, err)

	for k := 0; k < capacity; k++ {
		_, err := s.Add(k, k*3)
		require.NoError(t, err, "key %d", k)
	}
	require.Equal(t, capacity, s.Len())

	_, err = s.Add(0, 0)
	require.ErrorIs(t, err, ErrFull)
	_, err = s.Add(capacity, 0)
	require.ErrorIs(t, err, ErrInvalidKey)

	for k := 0; k < capacity; k++ {
		got, err := s.Get(k)
		require.NoError(t, err)
		require.Equal(t, k*3, *got, "failed adds must not disturb existing entries")
	}
	checkInvariants(t, s)
}

func TestNew(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		_, err := New[int](capacity)
		require.ErrorIs(t, err, ErrInvalidCapacity, "capacity %d", capacity)
	}

	s, err := New[int](1)
	require.NoError(t, err)
	require.Equal(t, 1, s.Cap())
	_, err = s.Add(0, 9)
	require.NoError(t, err)
	_, err = s.Add(1, 9)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestClear(t *testing.T) {
	s, err := New[int](32)
	require.NoError(t, err)
	for k := 0; k < 10; k++ {
		_, err := s.Add(k, k)
		require.NoError(t, err)
	}

	s.Clear()
	require.Equal(t, 0, s.Len())
	require.False(t, s.Has(3))
	checkInvariants(t, s)

	// The set is reusable after a clear.
	_, err = s.Add(3, 33)
	require.NoError(t, err)
	got, err := s.Get(3)
	require.NoError(t, err)
	require.Equal(t, 33, *got)

	s.Clear()
	s.Clear() // idempotent
	require.Equal(t, 0, s.Len())
}

func TestEach(t *testing.T) {
	s, err := New[int](64)
	require.NoError(t, err)
	for _, k := range []int{3, 1, 2} {
		_, err := s.Add(k, k*100)
		require.NoError(t, err)
	}

	var keys []int
	s.Each(func(key int, value *int) {
		require.Equal(t, key*100, *value)
		keys = append(keys, key)
	})
	require.Equal(t, []int{3, 1, 2}, keys, "Each walks dense order")

	s.Each(nil) // tolerated
}
