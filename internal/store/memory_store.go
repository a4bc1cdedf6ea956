package store

import (
	"maps"
	"sort"
	"sync"

	"github.com/preston-bernstein/scorebug-service/internal/domain/teams"
	"github.com/preston-bernstein/scorebug-service/internal/editor"
)

// MemoryStore keeps the team catalog and the live board in memory.
type MemoryStore struct {
	mu    sync.RWMutex
	teams map[string]teams.Team
	board editor.Board
}

// NewMemoryStore constructs a store with no teams and initial showing on the board.
func NewMemoryStore(initial editor.Board) *MemoryStore {
	return &MemoryStore{
		teams: make(map[string]teams.Team),
		board: initial,
	}
}

// ListTeams returns a copy of the teams, sorted by key.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// GetTeam retrieves a team by key.
func (s *MemoryStore) GetTeam(key string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[key]
	return t, ok
}

// HasTeam reports whether key is in the catalog.
func (s *MemoryStore) HasTeam(key string) bool {
	_, ok := s.GetTeam(key)
	return ok
}

// SetTeams replaces the existing catalog with a new snapshot.
func (s *MemoryStore) SetTeams(items []teams.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.teams = make(map[string]teams.Team, len(items))
	for _, t := range items {
		s.teams[t.Key] = t
	}
}

// Board returns the live board.
func (s *MemoryStore) Board() editor.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBoard(s.board)
}

// UpdateBoard applies fn to the live board under the write lock. The board is
// replaced with fn's result even when fn also returns an error, so that inline
// validation errors from a rejected save are kept.
func (s *MemoryStore) UpdateBoard(fn func(editor.Board) (editor.Board, error)) (editor.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(cloneBoard(s.board))
	s.board = next
	return cloneBoard(next), err
}

func cloneBoard(b editor.Board) editor.Board {
	b.Errors = maps.Clone(b.Errors)
	return b
}
