package teams

// NBA returns the built-in 30 team catalog keyed by nickname.
func NBA() []Team {
	return []Team{
		// Atlantic
		{Key: "celtics", Name: "Celtics", Abbreviation: "BOS", PrimaryColor: "#007A33", SecondaryColor: "#BA9653", LogoID: 1610612738, Conference: "East", Division: "Atlantic"},
		{Key: "nets", Name: "Nets", Abbreviation: "BKN", PrimaryColor: "#000000", SecondaryColor: "#FFFFFF", LogoID: 1610612751, Conference: "East", Division: "Atlantic"},
		{Key: "knicks", Name: "Knicks", Abbreviation: "NYK", PrimaryColor: "#006BB6", SecondaryColor: "#F58426", LogoID: 1610612752, Conference: "East", Division: "Atlantic"},
		{Key: "sixers", Name: "76ers", Abbreviation: "PHI", PrimaryColor: "#006BB6", SecondaryColor: "#ED174C", LogoID: 1610612755, Conference: "East", Division: "Atlantic"},
		{Key: "raptors", Name: "Raptors", Abbreviation: "TOR", PrimaryColor: "#CE1141", SecondaryColor: "#000000", LogoID: 1610612761, Conference: "East", Division: "Atlantic"},
		// Central
		{Key: "bulls", Name: "Bulls", Abbreviation: "CHI", PrimaryColor: "#CE1141", SecondaryColor: "#000000", LogoID: 1610612741, Conference: "East", Division: "Central"},
		{Key: "cavaliers", Name: "Cavaliers", Abbreviation: "CLE", PrimaryColor: "#860038", SecondaryColor: "#041E42", LogoID: 1610612739, Conference: "East", Division: "Central"},
		{Key: "pistons", Name: "Pistons", Abbreviation: "DET", PrimaryColor: "#C8102E", SecondaryColor: "#1D42BA", LogoID: 1610612765, Conference: "East", Division: "Central"},
		{Key: "pacers", Name: "Pacers", Abbreviation: "IND", PrimaryColor: "#002D62", SecondaryColor: "#FDBB30", LogoID: 1610612754, Conference: "East", Division: "Central"},
		{Key: "bucks", Name: "Bucks", Abbreviation: "MIL", PrimaryColor: "#00471B", SecondaryColor: "#EEE1C6", LogoID: 1610612749, Conference: "East", Division: "Central"},
		// Southeast
		{Key: "hawks", Name: "Hawks", Abbreviation: "ATL", PrimaryColor: "#E03A3E", SecondaryColor: "#C1D32F", LogoID: 1610612737, Conference: "East", Division: "Southeast"},
		{Key: "hornets", Name: "Hornets", Abbreviation: "CHA", PrimaryColor: "#1D1160", SecondaryColor: "#00788C", LogoID: 1610612766, Conference: "East", Division: "Southeast"},
		{Key: "heat", Name: "Heat", Abbreviation: "MIA", PrimaryColor: "#98002E", SecondaryColor: "#F9A01B", LogoID: 1610612748, Conference: "East", Division: "Southeast"},
		{Key: "magic", Name: "Magic", Abbreviation: "ORL", PrimaryColor: "#0077C0", SecondaryColor: "#C4CED4", LogoID: 1610612753, Conference: "East", Division: "Southeast"},
		{Key: "wizards", Name: "Wizards", Abbreviation: "WAS", PrimaryColor: "#002B5C", SecondaryColor: "#E31837", LogoID: 1610612764, Conference: "East", Division: "Southeast"},
		// Northwest
		{Key: "nuggets", Name: "Nuggets", Abbreviation: "DEN", PrimaryColor: "#0E2240", SecondaryColor: "#FEC524", LogoID: 1610612743, Conference: "West", Division: "Northwest"},
		{Key: "timberwolves", Name: "Timberwolves", Abbreviation: "MIN", PrimaryColor: "#0C2340", SecondaryColor: "#236192", LogoID: 1610612750, Conference: "West", Division: "Northwest"},
		{Key: "thunder", Name: "Thunder", Abbreviation: "OKC", PrimaryColor: "#007AC1", SecondaryColor: "#EF3B24", LogoID: 1610612760, Conference: "West", Division: "Northwest"},
		{Key: "trailblazers", Name: "Trail Blazers", Abbreviation: "POR", PrimaryColor: "#E03A3E", SecondaryColor: "#000000", LogoID: 1610612757, Conference: "West", Division: "Northwest"},
		{Key: "jazz", Name: "Jazz", Abbreviation: "UTA", PrimaryColor: "#002B5C", SecondaryColor: "#00471B", LogoID: 1610612762, Conference: "West", Division: "Northwest"},
		// Pacific
		{Key: "warriors", Name: "Warriors", Abbreviation: "GSW", PrimaryColor: "#1D428A", SecondaryColor: "#FFC72C", LogoID: 1610612744, Conference: "West", Division: "Pacific"},
		{Key: "clippers", Name: "Clippers", Abbreviation: "LAC", PrimaryColor: "#C8102E", SecondaryColor: "#1D428A", LogoID: 1610612746, Conference: "West", Division: "Pacific"},
		{Key: "lakers", Name: "Lakers", Abbreviation: "LAL", PrimaryColor: "#552583", SecondaryColor: "#FDB927", LogoID: 1610612747, Conference: "West", Division: "Pacific"},
		{Key: "suns", Name: "Suns", Abbreviation: "PHX", PrimaryColor: "#1D1160", SecondaryColor: "#E56020", LogoID: 1610612756, Conference: "West", Division: "Pacific"},
		{Key: "kings", Name: "Kings", Abbreviation: "SAC", PrimaryColor: "#5A2D81", SecondaryColor: "#63727A", LogoID: 1610612758, Conference: "West", Division: "Pacific"},
		// Southwest
		{Key: "mavericks", Name: "Mavericks", Abbreviation: "DAL", PrimaryColor: "#00538C", SecondaryColor: "#002B5E", LogoID: 1610612742, Conference: "West", Division: "Southwest"},
		{Key: "rockets", Name: "Rockets", Abbreviation: "HOU", PrimaryColor: "#CE1141", SecondaryColor: "#000000", LogoID: 1610612745, Conference: "West", Division: "Southwest"},
		{Key: "grizzlies", Name: "Grizzlies", Abbreviation: "MEM", PrimaryColor: "#5D76A9", SecondaryColor: "#12173F", LogoID: 1610612763, Conference: "West", Division: "Southwest"},
		{Key: "pelicans", Name: "Pelicans", Abbreviation: "NOP", PrimaryColor: "#0C2340", SecondaryColor: "#C8102E", LogoID: 1610612740, Conference: "West", Division: "Southwest"},
		{Key: "spurs", Name: "Spurs", Abbreviation: "SAS", PrimaryColor: "#C4CED4", SecondaryColor: "#000000", LogoID: 1610612759, Conference: "West", Division: "Southwest"},
	}
}
