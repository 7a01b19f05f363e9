package session

import (
	"sync"

	"acoustic-planner/internal/placement/interaction"

	"github.com/google/uuid"
)

// ============================================================
// Session Manager
// ============================================================

// Manager хранит состояние взаимодействия для каждого клиента сцены.
type Manager struct {
	mu     sync.Mutex
	states map[string]interaction.State // session id -> state
}

func NewManager() *Manager {
	return &Manager{
		states: make(map[string]interaction.State),
	}
}

func (m *Manager) Create() (string, interaction.State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	state := interaction.NewState()
	m.states[id] = state
	return id, state
}

func (m *Manager) Get(id string) (interaction.State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[id]
	return state, ok
}

// Put сохраняет состояние существующей сессии.
func (m *Manager) Put(id string, state interaction.State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.states[id]; !ok {
		return false
	}
	m.states[id] = state
	return true
}

// Update применяет fn к состоянию сессии под блокировкой, чтобы
// параллельные события одной сессии не затирали друг друга.
func (m *Manager) Update(id string, fn func(interaction.State) interaction.State) (interaction.State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.states[id]
	if !ok {
		return interaction.State{}, false
	}
	state = fn(state)
	m.states[id] = state
	return state, true
}

func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.states[id]; !ok {
		return false
	}
	delete(m.states, id)
	return true
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.states)
}
