package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"xiangqi/internal/record"
	"xiangqi/internal/xiangqi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame() *GameState {
	return m.add(xiangqi.NewBoard(true), record.New())
}

// Import 重放记谱，成功后登记为新对局
func (m *Manager) Import(rec *record.Record) (*GameState, error) {
	b, err := rec.Replay()
	if err != nil {
		return nil, err
	}
	return m.add(b, rec.Clone()), nil
}

func (m *Manager) add(b *xiangqi.Board, rec *record.Record) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	g := &GameState{
		ID:        id,
		board:     b,
		record:    rec,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = g
	return g
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
