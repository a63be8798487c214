package types_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/sipevent/internal/types"
)

func TestCallbackManager(t *testing.T) {
	t.Parallel()

	var (
		m     types.CallbackManager[func() int]
		calls []int
	)

	rm1 := m.Add(func() int { return 1 })
	m.Add(func() int { return 2 })
	m.Add(func() int { return 3 })

	if got, want := m.Len(), 3; got != want {
		t.Fatalf("m.Len() = %d, want %d", got, want)
	}

	rm1()
	rm1()

	for fn := range m.All() {
		calls = append(calls, fn())
	}
	if diff := cmp.Diff([]int{2, 3}, calls); diff != "" {
		t.Fatalf("callbacks mismatch (-want +got):\n%s", diff)
	}

	m.Clear()
	if got := slices.Collect(m.All()); len(got) != 0 {
		t.Fatalf("len(m.All()) = %d after Clear(), want 0", len(got))
	}
}

func TestCallbackManager_RemoveWhileIterating(t *testing.T) {
	t.Parallel()

	var (
		m     types.CallbackManager[func()]
		calls []string
		rmB   func()
	)

	m.Add(func() {
		calls = append(calls, "a")
		rmB()
	})
	rmB = m.Add(func() { calls = append(calls, "b") })

	for fn := range m.All() {
		fn()
	}
	for fn := range m.All() {
		fn()
	}

	if diff := cmp.Diff([]string{"a", "b", "a"}, calls); diff != "" {
		t.Fatalf("callbacks mismatch (-want +got):\n%s", diff)
	}
}

func TestCallbackManager_Nil(t *testing.T) {
	t.Parallel()

	var m *types.CallbackManager[func()]
	if got := m.Len(); got != 0 {
		t.Fatalf("m.Len() = %d, want 0", got)
	}
	for range m.All() {
		t.Fatal("nil manager yielded a callback")
	}
}
