package game

// Cue is a discrete sound event emitted by a step. Hosts decide how to play it.
type Cue string

const (
	CueWall    Cue = "wall"
	CuePong    Cue = "pong"
	CueScore   Cue = "score"
	CuePowerUp Cue = "powerUp"
	CueWinner  Cue = "winner"
	CueLoser   Cue = "loser"
)

// GameOverNotice is raised once, on the step a score reaches the target.
type GameOverNotice struct {
	Message       string `json:"message"`
	PlayerScore   int    `json:"playerScore"`
	OpponentScore int    `json:"opponentScore"`
	PlayerWon     bool   `json:"playerWon"`
}

// StepResult carries everything a step produced besides the state change.
type StepResult struct {
	Cues      []Cue
	GameOver  *GameOverNotice
	Restarted bool // Overlay should be hidden
}

func (r *StepResult) emit(cue Cue) {
	r.Cues = append(r.Cues, cue)
}

// Has reports whether the step emitted the cue at least once.
func (r StepResult) Has(cue Cue) bool {
	for _, c := range r.Cues {
		if c == cue {
			return true
		}
	}
	return false
}
