package session

import (
	"sync"
	"testing"

	"acoustic-planner/internal/placement/interaction"

	"github.com/google/uuid"
)

func TestManagerLifecycle(t *testing.T) {
	m := NewManager()

	id, state := m.Create()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("session id %q is not a uuid: %v", id, err)
	}
	if state != interaction.NewState() {
		t.Errorf("new session should start from a fresh state, got %+v", state)
	}

	updated := interaction.State{HoveredIndex: 1, DraggedIndex: 1, Cursor: interaction.CursorGrabbing}
	if !m.Put(id, updated) {
		t.Fatal("put on existing session failed")
	}
	got, ok := m.Get(id)
	if !ok || got != updated {
		t.Errorf("got %+v (ok=%v), want %+v", got, ok, updated)
	}

	if !m.Delete(id) {
		t.Error("delete of existing session failed")
	}
	if _, ok := m.Get(id); ok {
		t.Error("session still present after delete")
	}
	if m.Put(id, updated) {
		t.Error("put must not resurrect a deleted session")
	}
	if m.Delete(id) {
		t.Error("second delete should report missing session")
	}
}

func TestManagerConcurrentCreate(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, s := m.Create()
			s.HoveredIndex = 0
			m.Put(id, s)
		}()
	}
	wg.Wait()

	if m.Len() != 32 {
		t.Errorf("len = %d, want 32", m.Len())
	}
}

func TestManagerUpdateSerializes(t *testing.T) {
	m := NewManager()
	id, _ := m.Create()

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Update(id, func(s interaction.State) interaction.State {
				s.HoveredIndex++
				return s
			})
		}()
	}
	wg.Wait()

	got, _ := m.Get(id)
	// NewState начинает с -1
	if got.HoveredIndex != n-1 {
		t.Errorf("hovered = %d, want %d: updates were lost", got.HoveredIndex, n-1)
	}

	if _, ok := m.Update("missing", func(s interaction.State) interaction.State { return s }); ok {
		t.Error("update of unknown session should fail")
	}
}
