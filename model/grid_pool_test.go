package model

import "testing"

func TestGridPoolReturnsClearedGrid(t *testing.T) {
	pool := NewGridPool()

	g := pool.Get(4)
	_ = g.Set(Coord{Row: 3, Col: 3}, Alive)
	GridToPool(g, pool)

	for _, n := range []int{4, 6, 2, 0} {
		got := pool.Get(n)
		if got.Size() != n {
			t.Fatalf("Get(%d) size = %d", n, got.Size())
		}
		if living := got.CountLiving(); living != 0 {
			t.Fatalf("Get(%d) returned %d living cells", n, living)
		}
		GridToPool(got, pool)
	}
}

func TestGridToPoolNil(t *testing.T) {
	GridToPool(mustNew(t, 2), nil)
	GridToPool(nil, NewGridPool())
}
