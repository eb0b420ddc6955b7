package entity

type State uint8

const (
	NotStarted State = iota
	AwaitingHumanMove
	AwaitingComputerMove
	Terminal
)

func (that State) String() string {
	switch that {
	case NotStarted:
		return "not_started"
	case AwaitingHumanMove:
		return "awaiting_human"
	case AwaitingComputerMove:
		return "awaiting_computer"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

type Outcome uint8

const (
	NoOutcome Outcome = iota
	HumanWin
	ComputerWin
	Draw
)

func (that Outcome) String() string {
	switch that {
	case NoOutcome:
		return "none"
	case HumanWin:
		return "human_win"
	case ComputerWin:
		return "computer_win"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of a match handed out to the presentation layer.
type Snapshot struct {
	MatchID     string     `json:"match_id"`
	Board       Board      `json:"board"`
	HumanMark   Mark       `json:"human_mark"`
	CPUMark     Mark       `json:"cpu_mark"`
	Turn        Mark       `json:"turn"`
	Difficulty  Difficulty `json:"difficulty"`
	State       State      `json:"state"`
	Outcome     Outcome    `json:"outcome"`
	WinningLine []int      `json:"winning_line,omitempty"`
	Moves       int        `json:"moves"`
}

func (that Snapshot) IsOver() bool {
	return that.State == Terminal
}
