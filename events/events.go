// Package events holds the static symposium event catalog and the
// classification rules derived from it.
package events

import "strings"

type Category string

const (
	TECHNICAL     Category = "Technical"
	NON_TECHNICAL Category = "Non-Technical"
	ONLINE        Category = "Online"
)

type Event struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	Venue        string   `json:"venue,omitempty"`
	TimeSlot     string   `json:"timeSlot,omitempty"`
	Handler      string   `json:"handler"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`
	TeamSize     string   `json:"teamSize"`
	Fee          int      `json:"fee,omitempty"`
}

// Catalog is the full event lineup. Names are the wire contract: the
// client submits them verbatim in registration event lists, and admin
// roles are scoped by them.
var Catalog = []Event{
	{
		ID:           "paper-pres",
		Name:         "Idea Presentation",
		Category:     TECHNICAL,
		Description:  "Showcase your research and presentation skills.",
		Venue:        "Seminar Hall 1",
		TimeSlot:     "Full Day",
		Handler:      "G.Prathiksha",
		ContactName:  "Jhonson Antony",
		ContactPhone: "6383185531",
		TeamSize:     "3-4 members",
	},
	{
		ID:           "bug-buster",
		Name:         "Bug Buster",
		Category:     TECHNICAL,
		Description:  "Debug complex code and find the hidden logic.",
		Venue:        "Infozone",
		TimeSlot:     "11:10 AM - 12:10 PM",
		Handler:      "Vishnu G",
		ContactName:  "Vishnu G",
		ContactPhone: "9789781513",
		TeamSize:     "Individual",
	},
	{
		ID:           "startup-30",
		Name:         "30 Minutes Startup",
		Category:     TECHNICAL,
		Description:  "Create innovative solutions and pitch your startup idea.",
		Venue:        "Work Station",
		TimeSlot:     "12:00 PM - 1:00 PM",
		Handler:      "Priyadharshan A",
		ContactName:  "Priyadharshan A",
		ContactPhone: "8939723022",
		TeamSize:     "3-4 members",
	},
	{
		ID:           "prompt-prodigy",
		Name:         "Prompt Prodigy",
		Category:     TECHNICAL,
		Description:  "Master the art of AI communication and prompt engineering.",
		Venue:        "Infozone",
		TimeSlot:     "12:00 PM - 1:00 PM",
		Handler:      "Padmapriya R N",
		ContactName:  "Padmapriya R N",
		ContactPhone: "8778214419",
		TeamSize:     "Individual",
	},
	{
		ID:           "web-design",
		Name:         "Web Design",
		Category:     TECHNICAL,
		Description:  "Create stunning, responsive, and functional web interfaces.",
		Venue:        "Work Station",
		TimeSlot:     "11:10 AM - 12:10 PM",
		Handler:      "Logeshwaran G",
		ContactName:  "Logeshwaran G",
		ContactPhone: "6374706481",
		TeamSize:     "2-3 members",
	},
	{
		ID:           "connectify-fiesta",
		Name:         "Connectify Fiesta",
		Category:     NON_TECHNICAL,
		Description:  "Connect the dots and solve visual and lyrical puzzles.",
		Venue:        "Class Room",
		TimeSlot:     "12:00 PM - 1:00 PM",
		Handler:      "Vyshali S",
		ContactName:  "Vyshali S",
		ContactPhone: "7845250204",
		TeamSize:     "3 members",
	},
	{
		ID:           "blind-drawing",
		Name:         "Blind Drawing",
		Category:     NON_TECHNICAL,
		Description:  "Draw without looking, guided only by your team.",
		Venue:        "Class Room",
		TimeSlot:     "11:10 AM - 12:10 PM",
		Handler:      "Keerthana K",
		ContactName:  "Keerthana K",
		ContactPhone: "8778781887",
		TeamSize:     "2-3 members",
	},
	{
		ID:           "stress-interview",
		Name:         "Stress Interview",
		Category:     NON_TECHNICAL,
		Description:  "A comedy show under pressure. Unexpected questions, dramatic reactions, and unlimited entertainment!",
		Venue:        "Class Room",
		TimeSlot:     "2:00 PM - 3:00 PM",
		Handler:      "Gokul",
		ContactName:  "Gokul",
		ContactPhone: "7373138989",
		TeamSize:     "Individual Only",
	},
	{
		ID:           "photography",
		Name:         "Photography",
		Category:     NON_TECHNICAL,
		Description:  "Capture the essence of the symposium on campus.",
		Venue:        "Campus Wide",
		TimeSlot:     "Full Day",
		Handler:      "Kanmani",
		ContactName:  "Kanmani",
		ContactPhone: "9342247385",
		TeamSize:     "Individual",
	},
	{
		ID:           "emoji-story",
		Name:         "Emoji Story Creation",
		Category:     NON_TECHNICAL,
		Description:  "Tell a compelling story using only emojis.",
		Venue:        "Class Room",
		TimeSlot:     "2:00 PM - 3:00 PM",
		Handler:      "Sarojini Banu P",
		ContactName:  "Sarojini Banu P",
		ContactPhone: "9597761794",
		TeamSize:     "2 members",
	},
	{
		ID:           "short-film",
		Name:         "Short Film",
		Category:     ONLINE,
		Description:  "Capture moments and tell stories through the lens.",
		Handler:      "Priyadharshan",
		ContactName:  "Priyadharshan",
		ContactPhone: "8939723022",
		TeamSize:     "Team",
	},
	{
		ID:           "efootball",
		Name:         "E-Football (PES)",
		Category:     ONLINE,
		Description:  "The ultimate virtual football showdown.",
		Venue:        "Online",
		TimeSlot:     "Will be announced",
		Handler:      "B.Bareeth",
		ContactName:  "B.Bareeth",
		ContactPhone: "8122976882",
		TeamSize:     "Individual (1 vs 1)",
		Fee:          50,
	},
	{
		ID:           "freefire",
		Name:         "Free Fire",
		Category:     ONLINE,
		Description:  "Squad battle royale for survival.",
		Venue:        "Online",
		TimeSlot:     "Will be announced",
		Handler:      "Naveen Raj",
		ContactName:  "Naveen Raj",
		ContactPhone: "6374520749",
		TeamSize:     "Squad (4 members)",
		Fee:          100,
	},
}

// onlineGames is the designated set of events exempt from the global
// per-email uniqueness rule. Short Film is an Online-category event but
// is not a game title, so it follows the symposium rule.
var onlineGames = map[string]bool{
	"E-Football (PES)": true,
	"Free Fire":        true,
}

// IsOnlineGame reports whether name is one of the designated online game
// events, which are duplicate-checked per game rather than per category.
func IsOnlineGame(name string) bool {
	return onlineGames[name]
}

// ByName returns the catalog entry with the given canonical name.
func ByName(name string) (Event, bool) {
	for _, e := range Catalog {
		if e.Name == name {
			return e, true
		}
	}
	return Event{}, false
}

// roleAliases maps the handler-login slugs that don't normalize cleanly
// onto a catalog name.
var roleAliases = map[string]string{
	"efootball":        "E-Football (PES)",
	"e-football":       "E-Football (PES)",
	"e-football (pes)": "E-Football (PES)",
	"freefire":         "Free Fire",
	"free fire":        "Free Fire",
	"idea":             "Idea Presentation",
}

// CanonicalEventName resolves a handler-login slug to its catalog event
// name. Aliases win first, then a case/space/hyphen-insensitive match
// against the catalog; unrecognized slugs pass through unchanged.
func CanonicalEventName(slug string) string {
	if name, ok := roleAliases[strings.ToLower(slug)]; ok {
		return name
	}

	folded := foldName(slug)
	for _, e := range Catalog {
		if foldName(e.Name) == folded {
			return e.Name
		}
	}

	return slug
}

func foldName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
