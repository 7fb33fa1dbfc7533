package matchevent

// Goal is one scoring event inside a match. PlayerID is nullable because
// deleting a player keeps the goal (minute and club survive for history).
// The flag fields mirror the storage schema: depending on the deployed
// Profile a goal's penalty/own-goal nature may live in the booleans, in the
// categorical Kind, or as the CSC marker inside AssistName.
type Goal struct {
	ID             int64
	MatchID        int64
	ClubID         int64
	PlayerID       *int64
	Minute         int
	AssistPlayerID *int64
	AssistName     string
	IsPenalty      bool
	IsOwnGoal      bool
	Kind           string
}

// Card is one disciplinary event inside a match.
type Card struct {
	ID       int64
	MatchID  int64
	ClubID   int64
	PlayerID *int64
	Minute   int
	Color    string
	IsYellow bool
	IsRed    bool
}

// Card color codes and words as stored.
const (
	CardCodeYellow = "Y"
	CardCodeRed    = "R"
	CardWordYellow = "YELLOW"
	CardWordRed    = "RED"
)

// Goal kind values for schemas with a categorical column.
const (
	GoalKindPenalty = "PEN"
	GoalKindOwnGoal = "OG"
)

// OwnGoalMarker is the conventional free-text label written into AssistName
// when the schema has no dedicated own-goal storage at all.
const OwnGoalMarker = "CSC"
