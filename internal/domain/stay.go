package domain

import (
	"fmt"
	"time"
)

type Verdict string

const (
	VerdictWithinLimit Verdict = "within-limit"
	VerdictOverstayed  Verdict = "overstayed"
)

// Evaluation is the result of comparing one visit to the allowance.
// DeltaMinutes is the overstay when overstayed and the margin left otherwise.
type Evaluation struct {
	Verdict             Verdict
	StayDurationMinutes int
	AllowedMinutes      int
	DeltaMinutes        int
	Message             string
}

// StayDurationMinutes rounds to the nearest minute, halves away from zero.
// A sign-out before the sign-in yields a negative value.
func StayDurationMinutes(signIn, signOut time.Time) int {
	return int(signOut.Sub(signIn).Round(time.Minute) / time.Minute)
}

func Evaluate(signIn, signOut time.Time, allowedMinutes int) Evaluation {
	stayed := StayDurationMinutes(signIn, signOut)

	ev := Evaluation{
		StayDurationMinutes: stayed,
		AllowedMinutes:      allowedMinutes,
	}

	if stayed > allowedMinutes {
		ev.Verdict = VerdictOverstayed
		ev.DeltaMinutes = stayed - allowedMinutes
		ev.Message = fmt.Sprintf("Visitor stayed %s. They overstayed the allotted time of %s by %s.",
			minutes(stayed), minutes(allowedMinutes), minutes(ev.DeltaMinutes))
		return ev
	}

	ev.Verdict = VerdictWithinLimit
	ev.DeltaMinutes = allowedMinutes - stayed
	ev.Message = fmt.Sprintf("Visitor stayed %s. They left within the allotted time of %s with %s to spare.",
		minutes(stayed), minutes(allowedMinutes), minutes(ev.DeltaMinutes))
	return ev
}

func minutes(n int) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d minute", n)
	}
	return fmt.Sprintf("%d minutes", n)
}
