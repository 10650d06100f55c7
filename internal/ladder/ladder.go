// Package ladder maps review intervals onto the fixed progression of day
// counts the study client walks a card through.
package ladder

import "time"

var rungs = [...]int{1, 3, 7, 14, 30, 60, 120, 240, 365}

// LastStep is the index of the top rung.
const LastStep = len(rungs) - 1

// Rungs returns a copy of the rung lengths in days, shortest first.
func Rungs() []int {
	out := make([]int, len(rungs))
	copy(out, rungs[:])
	return out
}

// StepForInterval returns the display step for a stored interval.
//
// An interval equal to a rung moves the card to the rung after it, capped at
// LastStep. Every other value, zero and negative included, reports step 0:
// intervals are day differences to a client-chosen due date and only count
// when they land exactly on a rung.
func StepForInterval(intervalDays int) int {
	if intervalDays < 0 {
		intervalDays = 0
	}
	for i, days := range rungs {
		if intervalDays == days {
			return min(i+1, LastStep)
		}
	}
	return 0
}

// Advance applies one answer the way the study client does. A wrong answer
// drops the card to step 0 with no due date, so the server falls back to
// "now" and the card stays due. A right answer schedules the card the current
// rung's length of calendar days after now and moves it up one rung.
func Advance(step int, correct bool, now time.Time) (int, *time.Time) {
	if !correct {
		return 0, nil
	}
	step = max(step, 0)
	days := rungs[min(step, LastStep)]
	due := now.AddDate(0, 0, days)
	return min(step+1, LastStep), &due
}
