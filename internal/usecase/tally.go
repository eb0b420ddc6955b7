package usecase

import "github.com/rocketscienceinc/tictactoe-cpu/internal/entity"

// Tally counts finished matches by outcome. Register it as a controller observer.
type Tally struct {
	HumanWins    int `json:"human_wins"`
	ComputerWins int `json:"computer_wins"`
	Draws        int `json:"draws"`
}

func (that *Tally) OnMove(entity.Snapshot, entity.Mark, int) {}

func (that *Tally) OnMatchEnd(snapshot entity.Snapshot) {
	switch snapshot.Outcome {
	case entity.HumanWin:
		that.HumanWins++
	case entity.ComputerWin:
		that.ComputerWins++
	case entity.Draw:
		that.Draws++
	case entity.NoOutcome:
	}
}

func (that *Tally) Rounds() int {
	return that.HumanWins + that.ComputerWins + that.Draws
}

func (that *Tally) Reset() {
	*that = Tally{}
}
