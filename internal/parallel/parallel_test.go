package parallel

import (
	"sync/atomic"
	"testing"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		n, tasks, want int
	}{
		{n: 4, tasks: 10, want: 4},
		{n: 8, tasks: 3, want: 3},
		{n: 1, tasks: 0, want: 1},
		{n: 5, tasks: 0, want: 1},
	}
	for _, c := range cases {
		if got := Resolve(c.n, c.tasks); got != c.want {
			t.Errorf("Resolve(%d, %d) = %d, expected %d", c.n, c.tasks, got, c.want)
		}
	}

	if got := Resolve(0, 1<<20); got != NumWorkers() {
		t.Errorf("Resolve(0, large) = %d, expected NumWorkers() = %d", got, NumWorkers())
	}
}

func TestParallelForDynamicVisitsEachIndexOnce(t *testing.T) {
	for _, chunk := range []int{0, 1, 7, 200} {
		counts := make([]int32, 57)
		ParallelForDynamic(5, len(counts), chunk, 4, func(i int) {
			atomic.AddInt32(&counts[i], 1)
		})
		for i, c := range counts {
			want := int32(1)
			if i < 5 {
				want = 0
			}
			if c != want {
				t.Errorf("chunk=%d: index %d visited %d times, expected %d", chunk, i, c, want)
			}
		}
	}
}

func TestEmptyRange(t *testing.T) {
	called := false
	ParallelForDynamic(3, 3, 1, 4, func(int) { called = true })
	ParallelForDynamic(3, 1, 1, 1, func(int) { called = true })
	if called {
		t.Error("fn should not be called for an empty range")
	}
}
