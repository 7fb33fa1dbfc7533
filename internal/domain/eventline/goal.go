package eventline

import "strings"

// Tag vocabularies for goal lines. Kept as package-level sets so the whole
// grammar lives in one place.
var (
	penaltyTags = map[string]struct{}{
		"pen": {}, "p": {}, "pk": {}, "penalty": {},
	}
	ownGoalTags = map[string]struct{}{
		"csc": {}, "og": {}, "owngoal": {}, "own": {},
	}
)

// GoalEvent is the structured form of one goal line. Scorer may be nil when
// the line reduced to an empty actor; resolution discards such events.
type GoalEvent struct {
	Minute    int
	Scorer    *ActorRef
	Assist    *ActorRef
	IsPenalty bool
	IsOwnGoal bool
}

// ParseGoalLine parses one line of admin-entered goal text. Tolerated forms:
//
//	"John Doe 12'"
//	"John Doe 12' (Assist Name)"
//	"23 45' (10)"        shirt 23 scores, shirt 10 assists
//	"#9 67' (id:42)"     explicit reference kinds
//	"#9 45+2' (pen)"     penalty
//	"Traoré 37' csc"     own goal
//
// A blank line returns ok=false. Parenthesized content is an assist reference
// unless it matches the tag vocabulary, in which case it sets a flag instead.
func ParseGoalLine(line string) (GoalEvent, bool) {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return GoalEvent{}, false
	}

	var assistToken string
	var tags []string

	if open := strings.Index(raw, "("); open >= 0 {
		if close := strings.LastIndex(raw, ")"); close > open {
			inside := strings.TrimSpace(raw[open+1 : close])
			if inside != "" {
				if isGoalTag(inside) {
					tags = append(tags, inside)
				} else {
					assistToken = inside
				}
			}
			raw = strings.TrimSpace(raw[:open] + raw[close+1:])
		}
	}

	parts := strings.Fields(raw)

	minute := 0
	minuteIdx := -1
	for i, tok := range parts {
		if m := ExtractMinute(tok); m > 0 {
			minute = m
			minuteIdx = i
			break
		}
	}

	who := strings.Join(parts, " ")
	if minuteIdx >= 0 {
		who = strings.Join(parts[:minuteIdx], " ")
		for _, tok := range parts[minuteIdx+1:] {
			tags = append(tags, strings.Trim(tok, "[]().,;"))
		}
	}

	event := GoalEvent{Minute: minute}
	for _, tag := range tags {
		t := normalizeGoalTag(tag)
		if _, ok := penaltyTags[t]; ok {
			event.IsPenalty = true
		}
		if _, ok := ownGoalTags[t]; ok {
			event.IsOwnGoal = true
		}
	}

	if scorer, ok := ParseActorToken(who); ok {
		event.Scorer = &scorer
	}
	if assistToken != "" {
		if assist, ok := ParseActorToken(assistToken); ok {
			event.Assist = &assist
		}
	}

	return event, true
}

// isGoalTag reports whether parenthesized content is a pen/csc marker rather
// than an assist reference.
func isGoalTag(inside string) bool {
	t := normalizeGoalTag(inside)
	if _, ok := penaltyTags[t]; ok {
		return true
	}
	_, ok := ownGoalTags[t]
	return ok
}

// normalizeGoalTag lowercases and strips punctuation so "P.", "own goal" and
// "own_goal" all land on their canonical vocabulary entries.
func normalizeGoalTag(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	t = strings.NewReplacer(".", "", "_", "", " ", "").Replace(t)
	return t
}
