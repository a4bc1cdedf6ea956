package teams

import "fmt"

// LogoBaseURL is the CDN prefix team logos are served from.
const LogoBaseURL = "https://cdn.nba.com/logos/nba"

// Team is the display metadata the scorebug needs for a club.
// Key is the lookup identifier stored on the scoreboard (e.g. "celtics").
type Team struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Abbreviation   string `json:"abbreviation"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	LogoID         int    `json:"logoId"`
	Conference     string `json:"conference"`
	Division       string `json:"division"`
}

// LogoURL builds the SVG logo URL for the team.
func (t Team) LogoURL() string {
	return fmt.Sprintf("%s/%d/global/L/logo.svg", LogoBaseURL, t.LogoID)
}

// View is the JSON shape returned to overlay clients, with the logo URL resolved.
type View struct {
	Team
	LogoURL string `json:"logoUrl"`
}

// NewView wraps a team with its resolved logo URL.
func NewView(t Team) View {
	return View{Team: t, LogoURL: t.LogoURL()}
}
