package testutil

import (
	"github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/domain/teams"
	"github.com/preston-bernstein/scorebug-service/internal/editor"
	"github.com/preston-bernstein/scorebug-service/internal/store"
)

// NewStore builds an in-memory store loaded with the NBA catalog and the tip-off board.
func NewStore() *store.MemoryStore {
	ms := store.NewMemoryStore(editor.NewBoard(scoreboard.Default()))
	ms.SetTeams(teams.NBA())
	return ms
}
