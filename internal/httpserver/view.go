package httpserver

import "github.com/robalobadob/wordle/internal/game"

// cellView is one grid cell; State serializes as its name.
type cellView struct {
	Letter string           `json:"letter"`
	State  game.LetterState `json:"state"`
}

// signalView reports an InvalidWord or GameEnd to the client.
type signalView struct {
	Type     string `json:"type"` // invalid_word | game_end
	Word     string `json:"word"`
	Message  string `json:"message,omitempty"`
	Found    bool   `json:"found,omitempty"`
	Tries    int    `json:"tries,omitempty"`
	MaxTries int    `json:"maxTries,omitempty"`
}

// gameView is the render payload returned by every game endpoint.
type gameView struct {
	GameID     string                      `json:"gameId"`
	Rows       [][]cellView                `json:"rows"`
	Keyboard   map[string]game.LetterState `json:"keyboard"`
	Buffer     string                      `json:"buffer"`
	CanSubmit  bool                        `json:"canSubmit"`
	Ended      bool                        `json:"ended"`
	Found      bool                        `json:"found"`
	Tries      int                         `json:"tries"`
	MaxTries   int                         `json:"maxTries"`
	WordLength int                         `json:"wordLength"`
	Answer     string                      `json:"answer,omitempty"` // only once ended
	Signals    []signalView                `json:"signals,omitempty"`
}

func viewOf(id string, s game.Session, sigs []game.Signal) gameView {
	v := gameView{
		GameID:     id,
		Keyboard:   s.Keyboard().Map(),
		Buffer:     s.Buffer(),
		CanSubmit:  s.CanSubmit(),
		Ended:      s.Ended(),
		Found:      s.Found(),
		Tries:      s.Tries(),
		MaxTries:   s.MaxTries(),
		WordLength: s.WordLength(),
	}
	if v.Ended {
		v.Answer = s.Target()
	}
	for _, row := range s.Rows() {
		cells := make([]cellView, len(row))
		for i, l := range row {
			cells[i] = cellView{Letter: l.String(), State: l.State}
		}
		v.Rows = append(v.Rows, cells)
	}
	for _, sg := range sigs {
		switch sg := sg.(type) {
		case game.InvalidWord:
			v.Signals = append(v.Signals, signalView{
				Type:    "invalid_word",
				Word:    sg.Word,
				Message: sg.Word + " is not in word list.",
			})
		case game.GameEnd:
			v.Signals = append(v.Signals, signalView{
				Type:     "game_end",
				Word:     sg.Word,
				Found:    sg.Found,
				Tries:    len(sg.Guesses),
				MaxTries: sg.MaxTries,
			})
		}
	}
	return v
}
