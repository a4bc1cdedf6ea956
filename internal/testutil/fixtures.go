package testutil

import (
	"github.com/preston-bernstein/scorebug-service/internal/demo"
	"github.com/preston-bernstein/scorebug-service/internal/domain/scoreboard"
	"github.com/preston-bernstein/scorebug-service/internal/domain/teams"
)

// SampleState returns a fully valid mid-game scoreboard.
func SampleState() scoreboard.State {
	return scoreboard.State{
		HomeTeam:   "lakers",
		AwayTeam:   "warriors",
		HomeScore:  98,
		AwayScore:  100,
		HomeRecord: "(41-41)",
		AwayRecord: "(50-32)",
		Quarter:    "4th",
		GameClock:  "1:05",
		ShotClock:  ":14",
	}
}

// SampleTeam returns a minimal team fixture with the provided key.
func SampleTeam(key string) teams.Team {
	return teams.Team{Key: key, Name: key, Abbreviation: "TST", LogoID: 1610612700}
}

// SampleScenario returns a short scenario with round numbers: the clock starts at 2s
// with 10s left and the basket lands at 8s with 4s left.
func SampleScenario(id string) demo.Scenario {
	return demo.Scenario{
		ID:                      id,
		Name:                    "Sample " + id,
		VideoFile:               "/videos/" + id + ".mp4",
		ClockStartTime:          2,
		InitialGameClockSeconds: 10,
		EventTime:               8,
		EventGameClockSeconds:   4,
		Initial:                 SampleState(),
		FinalHomeScore:          101,
		FinalAwayScore:          100,
	}
}
