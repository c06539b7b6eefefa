package config

const (
	defaultConfigPath        = "~/.config/holocron/config.toml"
	projectConfigName        = "holocron.toml"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLayout            = LayoutTitles
	defaultDirectoryFilename = "data.json"
	defaultPolicy            = PolicyLeadingPair
)

// Output layouts.
const (
	LayoutTitles   = "titles"
	LayoutEpisodes = "episodes"
)

// Character classification policies.
const (
	// PolicyLeadingPair lets up to the first two unknown names count as main
	// until a known main character appears.
	PolicyLeadingPair = "leading-pair"
	// PolicyFirstOnly makes only the first name main unless listed as main.
	PolicyFirstOnly = "first-only"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Layout:            defaultLayout,
			DirectoryFilename: defaultDirectoryFilename,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Characters: Characters{
			Policy: defaultPolicy,
			Main:   defaultMainCharacters(),
			Side:   defaultSideCharacters(),
		},
		Series: defaultSeries(),
		Macros: defaultMacros(),
	}
}

func defaultSeries() []Series {
	return []Series{
		{Code: "C", Name: "The Clone Wars", ChronologicalOffset: 2000},
		{Code: "T", Name: "Tales of the Jedi", ChronologicalOffset: 2000},
		{Code: "B", Name: "The Bad Batch", ChronologicalOffset: 3000},
		{Code: "R", Name: "Star Wars Rebels", ChronologicalOffset: 4000},
	}
}

func defaultMacros() map[string][]string {
	return map[string][]string{
		"Crew":  {"Ezra", "Kanan", "Hera", "Sabine", "Zeb", "Chopper"},
		"Batch": {"Hunter", "Wrecker", "Tech", "Echo", "Omega"},
	}
}

func defaultMainCharacters() []string {
	return []string{
		"Ahsoka", "Anakin", "Obi-Wan", "Rex", "Cody", "Fives",
		"Ezra", "Kanan", "Hera", "Sabine", "Zeb", "Chopper",
		"Hunter", "Wrecker", "Tech", "Echo", "Omega", "Crosshair",
	}
}

func defaultSideCharacters() []string {
	return []string{
		"Ventress", "Grevious", "Kalani", "Dooku", "Maul", "Savage",
		"Padme", "R2-D2", "C-3PO", "Organa", "Leia", "Monmothma",
		"Tarkin", "Rampart", "Kallus", "Minister Tua", "Pryce", "Thrawn",
		"Grand Inquisitor", "Seventh Sister", "Fifth Brother", "Vader", "Emperor",
		"Lama Su", "Nala Se",
		"Saw", "Cham Syndulla",
		"Sato", "Dodonna",
		"Bo-Katan", "Fenn Rau", "Ursa Wren", "Tristan Wren", "Gar Saxon", "Saxon",
		"Hondo", "Lando", "Vizago", "Azmorigan", "Cid",
		"Cad Bane", "Boba Fett", "Ketsu Onyo",
		"Cut Lawquane", "Fennec Shand",
	}
}
