package normalizer

// defaultAliases maps long/official team names as returned by the fixtures
// API to the canonical short forms used in the training corpus. Names absent
// from the table pass through unchanged.
var defaultAliases = map[string]string{
	// La Liga
	"Deportivo Alavés":          "Alaves",
	"Deportivo Alaves":          "Alaves",
	"Almeria":                   "Almeria",
	"UD Almería":                "Almeria",
	"Athletic Club":             "Athletic Club",
	"Club Atlético de Madrid":   "Atletico Madrid",
	"Club Atletico de Madrid":   "Atletico Madrid",
	"FC Barcelona":              "Barcelona",
	"Real Betis Balompié":       "Betis",
	"Real Betis Balompie":       "Betis",
	"RC Celta de Vigo":          "Celta Vigo",
	"Cadiz CF":                  "Cadiz",
	"Cádiz CF":                  "Cadiz",
	"Eibar":                     "Eibar",
	"SD Eibar":                  "Eibar",
	"Elche CF":                  "Elche",
	"RCD Espanyol de Barcelona": "Espanyol",
	"Getafe CF":                 "Getafe",
	"Girona FC":                 "Girona",
	"Granada CF":                "Granada",
	"Huesca":                    "Huesca",
	"SD Huesca":                 "Huesca",
	"Deportivo La Coruna":       "La Coruna",
	"UD Las Palmas":             "Las Palmas",
	"CD Leganés":                "Leganes",
	"CD Leganes":                "Leganes",
	"Levante UD":                "Levante",
	"RCD Mallorca":              "Mallorca",
	"Malaga CF":                 "Malaga",
	"Málaga CF":                 "Malaga",
	"CA Osasuna":                "Osasuna",
	"Rayo Vallecano de Madrid":  "Rayo Vallecano",
	"Real Madrid CF":            "Real Madrid",
	"Real Sociedad de Fútbol":   "Real Sociedad",
	"Real Sociedad de Futbol":   "Real Sociedad",
	"Sevilla FC":                "Sevilla",
	"Valencia CF":               "Valencia",
	"Real Valladolid CF":        "Valladolid",
	"Villarreal CF":             "Villarreal",

	// Premier League
	"AFC Bournemouth":            "Bournemouth",
	"Arsenal FC":                 "Arsenal",
	"Aston Villa FC":             "Aston Villa",
	"Brentford FC":               "Brentford",
	"Brighton & Hove Albion FC":  "Brighton",
	"Burnley FC":                 "Burnley",
	"Chelsea FC":                 "Chelsea",
	"Crystal Palace FC":          "Crystal Palace",
	"Everton FC":                 "Everton",
	"Fulham FC":                  "Fulham",
	"Ipswich Town FC":            "Ipswich",
	"Leeds United FC":            "Leeds",
	"Leicester City FC":          "Leicester",
	"Liverpool FC":               "Liverpool",
	"Luton Town FC":              "Luton",
	"Manchester City FC":         "Manchester City",
	"Manchester United FC":       "Manchester Utd",
	"Newcastle United FC":        "Newcastle Utd",
	"Norwich City FC":            "Norwich",
	"Nottingham Forest FC":       "Nott'ham Forest",
	"Sheffield United FC":        "Sheffield Utd",
	"Southampton FC":             "Southampton",
	"Tottenham Hotspur FC":       "Tottenham",
	"Watford FC":                 "Watford",
	"West Ham United FC":         "West Ham",
	"Wolverhampton Wanderers FC": "Wolves",
}
