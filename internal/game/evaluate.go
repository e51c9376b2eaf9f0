package game

import "strings"

// Evaluate scores guess against target and returns one Letter per position.
// Both words are lower-cased first; guess must already have the target's
// length (Submit enforces this).
//
// An exact match is all Correct regardless of mode.
func Evaluate(target, guess string, mode Scoring) Guess {
	target, guess = strings.ToLower(target), strings.ToLower(guess)
	gr := []rune(guess)

	if guess == target {
		out := make(Guess, len(gr))
		for i, r := range gr {
			out[i] = Letter{Char: r, State: Correct}
		}
		return out
	}

	tr := []rune(target)
	if mode == ScoringStandard {
		return scoreBudgeted(tr, gr)
	}
	return scoreSimple(tr, gr)
}

// scoreSimple checks each position on its own:
// Correct if target[i] == L, else Misplaced if L occurs anywhere in target,
// else Absent.
func scoreSimple(target, guess []rune) Guess {
	out := make(Guess, len(guess))
	for i, r := range guess {
		out[i] = Letter{Char: r, State: letterState(target, r, i)}
	}
	return out
}

func letterState(target []rune, r rune, i int) LetterState {
	if i < len(target) && target[i] == r {
		return Correct
	}
	for _, t := range target {
		if t == r {
			return Misplaced
		}
	}
	return Absent
}

// scoreBudgeted implements the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count remaining (unmatched) target letters.
//
// Pass 2:
//   - For each other guess letter: if a count remains, mark Misplaced and
//     decrement; otherwise mark Absent.
func scoreBudgeted(target, guess []rune) Guess {
	out := make(Guess, len(guess))
	counts := make(map[rune]int, len(target))

	for i, r := range guess {
		out[i].Char = r
		if i < len(target) && target[i] == r {
			out[i].State = Correct
		} else if i < len(target) {
			counts[target[i]]++
		}
	}

	for i, r := range guess {
		if out[i].State == Correct {
			continue
		}
		if counts[r] > 0 {
			out[i].State = Misplaced
			counts[r]--
		} else {
			out[i].State = Absent
		}
	}
	return out
}
