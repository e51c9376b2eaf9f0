package game

// Op is one input event for Apply.
type Op interface{ isOp() }

// AppendChar adds Ch to the buffer. Filtering non-letters is the caller's job.
type AppendChar struct{ Ch rune }

// RemoveLast drops the last buffered character.
type RemoveLast struct{}

// Submit evaluates the full buffer as a guess.
type Submit struct{}

// Reset replaces the session with a fresh one for Target.
type Reset struct {
	Target   string
	MaxTries int
}

func (AppendChar) isOp() {}
func (RemoveLast) isOp() {}
func (Submit) isOp()     {}
func (Reset) isOp()      {}

// Signal is a notification produced by Apply.
type Signal interface{ isSignal() }

// InvalidWord reports a full-length guess missing from the dictionary.
// The buffer is kept so the player can edit it.
type InvalidWord struct{ Word string }

// GameEnd is emitted once, on the submission that ends the game.
type GameEnd struct {
	Word     string
	Found    bool
	Guesses  []Guess
	MaxTries int
}

func (InvalidWord) isSignal() {}
func (GameEnd) isSignal()     {}

// Apply runs op against s and returns the next session plus any signals.
// s itself is never modified.
func Apply(s Session, op Op) (Session, []Signal) {
	switch op := op.(type) {
	case AppendChar:
		return s.appendChar(op.Ch), nil
	case RemoveLast:
		return s.removeLast(), nil
	case Submit:
		return s.submit()
	case Reset:
		return s.reset(op.Target, op.MaxTries), nil
	}
	return s, nil
}
