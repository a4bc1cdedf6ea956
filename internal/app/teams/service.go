package teams

import "github.com/preston-bernstein/scorebug-service/internal/domain/teams"

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(key string) (teams.Team, bool)
	SetTeams([]teams.Team)
}

// Service coordinates team catalog lookups using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Teams returns the catalog with logo URLs resolved.
func (s *Service) Teams() []teams.View {
	items := s.store.ListTeams()
	views := make([]teams.View, 0, len(items))
	for _, t := range items {
		views = append(views, teams.NewView(t))
	}
	return views
}

// TeamByKey returns a single team if present.
func (s *Service) TeamByKey(key string) (teams.View, bool) {
	t, ok := s.store.GetTeam(key)
	if !ok {
		return teams.View{}, false
	}
	return teams.NewView(t), true
}

// HasTeam reports whether key names a team in the catalog.
func (s *Service) HasTeam(key string) bool {
	_, ok := s.store.GetTeam(key)
	return ok
}

// ReplaceTeams swaps the in-memory catalog with a new snapshot.
func (s *Service) ReplaceTeams(items []teams.Team) {
	s.store.SetTeams(items)
}
