package theme

// Theme is one entry in the fixed visual theme table. Background and
// Preview are the tailwind gradient classes the templates apply.
type Theme struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"background"`
	Preview    string `json:"preview"`
}

// themes is the complete theme table. The first entry is the fallback for
// absent or unknown theme ids.
var themes = []Theme{
	{
		ID:         "default",
		Name:       "Padrão",
		Background: "from-gray-50 to-blue-100 dark:from-slate-900 dark:to-slate-800",
		Preview:    "bg-gradient-to-r from-gray-200 to-blue-200",
	},
	{
		ID:         "sunrise",
		Name:       "Amanhecer",
		Background: "from-rose-100 via-orange-100 to-yellow-100 dark:from-rose-900/80 dark:via-orange-900/80 dark:to-yellow-900/80",
		Preview:    "bg-gradient-to-r from-rose-200 to-yellow-200",
	},
	{
		ID:         "forest",
		Name:       "Floresta",
		Background: "from-emerald-100 via-teal-100 to-green-200 dark:from-emerald-900/80 dark:via-teal-900/80 dark:to-green-900/80",
		Preview:    "bg-gradient-to-r from-emerald-200 to-green-200",
	},
	{
		ID:         "ocean",
		Name:       "Oceano",
		Background: "from-cyan-100 via-sky-200 to-blue-200 dark:from-cyan-900/80 dark:via-sky-900/80 dark:to-blue-900/80",
		Preview:    "bg-gradient-to-r from-cyan-200 to-blue-200",
	},
	{
		ID:         "galaxy",
		Name:       "Galáxia",
		Background: "from-indigo-200 via-purple-300 to-slate-400 dark:from-indigo-900 dark:via-purple-900 dark:to-slate-800",
		Preview:    "bg-gradient-to-r from-indigo-300 to-purple-400",
	},
}

// DefaultID is the id assigned to newly materialized boards.
const DefaultID = "default"

// All returns the full theme table in display order.
func All() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// Lookup resolves a theme id. Unknown or empty ids fall back to the first
// theme; a board can never fail to render because of its theme field.
func Lookup(id string) Theme {
	for _, t := range themes {
		if t.ID == id {
			return t
		}
	}
	return themes[0]
}

// Valid reports whether id names a defined theme.
func Valid(id string) bool {
	for _, t := range themes {
		if t.ID == id {
			return true
		}
	}
	return false
}

// accents is the cyclic accent palette applied to sections by position.
var accents = []string{"rose", "sky", "teal", "amber", "violet", "pink"}

// Accent returns the accent color for the section at the given index.
func Accent(index int) string {
	if index < 0 {
		index = 0
	}
	return accents[index%len(accents)]
}
