package eventline

import "strings"

// CardColor is the normalized one-letter card code.
type CardColor string

const (
	CardYellow CardColor = "Y"
	CardRed    CardColor = "R"
)

// NormalizeCardColor maps admin input to a card code. French and English
// words are both accepted; anything unrecognized falls back to yellow.
func NormalizeCardColor(raw string) CardColor {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "R", "ROUGE", "RED":
		return CardRed
	default:
		return CardYellow
	}
}

func isCardColorToken(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "Y", "JAUNE", "YELLOW", "R", "ROUGE", "RED":
		return true
	default:
		return false
	}
}

// CardEvent is the structured form of one card line.
type CardEvent struct {
	Minute int
	Player *ActorRef
	Color  CardColor
}

// ParseCardLine parses one line of admin-entered card text. Tolerated forms:
//
//	"John Doe 17' Y"
//	"23 52' R"
//	"#5 90+2 Y"
//	"Diallo 52' Red"
//	"id:42 12'"          color defaults to yellow
//
// The tail is scanned first for a (minute, color) pair, then for a lone
// minute. A line with no actor text left is not an event.
func ParseCardLine(line string) (CardEvent, bool) {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return CardEvent{}, false
	}

	minute := 0
	color := CardColor("")
	whoParts := parts

	if len(parts) >= 2 {
		if m := ExtractMinute(parts[len(parts)-2]); m > 0 && isCardColorToken(parts[len(parts)-1]) {
			minute = m
			color = NormalizeCardColor(parts[len(parts)-1])
			whoParts = parts[:len(parts)-2]
		} else if m := ExtractMinute(parts[len(parts)-1]); m > 0 {
			minute = m
			whoParts = parts[:len(parts)-1]
		}
	} else if m := ExtractMinute(parts[len(parts)-1]); m > 0 {
		minute = m
		whoParts = parts[:len(parts)-1]
	}

	if color == "" {
		color = CardYellow
	}

	who := strings.Join(whoParts, " ")
	if strings.TrimSpace(who) == "" {
		return CardEvent{}, false
	}

	event := CardEvent{Minute: minute, Color: color}
	if player, ok := ParseActorToken(who); ok {
		event.Player = &player
	}

	return event, true
}
