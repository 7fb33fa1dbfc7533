package matchevent

import "strings"

// Profile is the closed description of which optional event columns the
// deployed schema carries. It is resolved once at startup and threaded into
// the materializer; nothing probes field names at runtime.
type Profile struct {
	// GoalBoolFlags: schema has is_penalty / is_own_goal boolean columns.
	GoalBoolFlags bool
	// GoalKindLen: max length of a categorical kind column ("PEN"/"OG");
	// zero when the column does not exist.
	GoalKindLen int
	// GoalAssistLabel: schema has a free-text assist label column, usable
	// for the CSC fallback marker.
	GoalAssistLabel bool
	// CardColorLen: max length of the card color column; a short column
	// (<= 2) stores the letter code, a longer one the full word. Zero when
	// the column does not exist.
	CardColorLen int
	// CardBoolFlags: schema has is_yellow / is_red boolean columns.
	CardBoolFlags bool
}

// DefaultProfile matches the schema shipped in migrations/.
func DefaultProfile() Profile {
	return Profile{
		GoalBoolFlags:   true,
		GoalKindLen:     3,
		GoalAssistLabel: true,
		CardColorLen:    1,
	}
}

// ApplyGoalFlags writes the penalty/own-goal state into every representation
// the profile exposes, and clears stale ones. The CSC fallback marker is
// only written when no dedicated storage exists and no real assist is set;
// clearing the own-goal flag removes a previously written marker.
func (p Profile) ApplyGoalFlags(g *Goal, isPenalty, isOwnGoal bool) {
	if p.GoalBoolFlags {
		g.IsPenalty = isPenalty
		g.IsOwnGoal = isOwnGoal
	}

	if p.GoalKindLen > 0 {
		kind := ""
		if isPenalty {
			kind = GoalKindPenalty
		} else if isOwnGoal {
			kind = GoalKindOwnGoal
		}
		if len(kind) > p.GoalKindLen {
			kind = kind[:p.GoalKindLen]
		}
		g.Kind = kind
	}

	hasDedicatedOwnGoalStore := p.GoalBoolFlags || p.GoalKindLen > 0
	if p.GoalAssistLabel {
		switch {
		case isOwnGoal && !hasDedicatedOwnGoalStore:
			if g.AssistPlayerID == nil && strings.TrimSpace(g.AssistName) == "" {
				g.AssistName = OwnGoalMarker
			}
		case !isOwnGoal:
			if strings.EqualFold(strings.TrimSpace(g.AssistName), OwnGoalMarker) {
				g.AssistName = ""
			}
		}
	}
}

// ApplyCardColor writes a normalized color code ("Y"/"R") into whichever
// card fields the profile exposes, respecting the color column length.
func (p Profile) ApplyCardColor(c *Card, code string) {
	code = normalizeCardCode(code)
	if p.CardColorLen > 0 {
		if p.CardColorLen <= 2 {
			c.Color = code
		} else {
			c.Color = cardWord(code)
		}
	}
	if p.CardBoolFlags {
		c.IsYellow = code == CardCodeYellow
		c.IsRed = code == CardCodeRed
	}
}

// GoalIsPenalty reads the penalty state back from whichever representation
// is populated.
func (p Profile) GoalIsPenalty(g Goal) bool {
	if p.GoalBoolFlags {
		return g.IsPenalty
	}
	return g.Kind == GoalKindPenalty
}

// GoalIsOwnGoal reads the own-goal state back from whichever representation
// is populated, including the CSC fallback marker.
func (p Profile) GoalIsOwnGoal(g Goal) bool {
	if p.GoalBoolFlags {
		return g.IsOwnGoal
	}
	if p.GoalKindLen > 0 {
		return g.Kind == GoalKindOwnGoal
	}
	return p.GoalAssistLabel && strings.EqualFold(strings.TrimSpace(g.AssistName), OwnGoalMarker)
}

// CardColorCode reads the normalized "Y"/"R" code back from whichever card
// representation is populated.
func (p Profile) CardColorCode(c Card) string {
	if p.CardColorLen > 0 && c.Color != "" {
		return normalizeCardCode(c.Color)
	}
	if p.CardBoolFlags && c.IsRed {
		return CardCodeRed
	}
	return CardCodeYellow
}

func normalizeCardCode(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case CardCodeRed, CardWordRed, "ROUGE":
		return CardCodeRed
	default:
		return CardCodeYellow
	}
}

func cardWord(code string) string {
	if code == CardCodeRed {
		return CardWordRed
	}
	return CardWordYellow
}
