package dice

import "fmt"

// Outcome classifies a skill test result.
type Outcome string

const (
	OutcomeCriticalSuccess Outcome = "critical success"
	OutcomeSuccess         Outcome = "success"
	OutcomeFailure         Outcome = "failure"
	OutcomeFumble          Outcome = "fumble"
)

// TestResult holds the full resolution of a WFRP percentile skill test.
type TestResult struct {
	Roll         int     `json:"roll"`
	Target       int     `json:"target"`
	SuccessLevel int     `json:"success_level"`
	Success      bool    `json:"success"`
	Outcome      Outcome `json:"outcome"`
}

// SkillTest resolves a d100 roll against a target skill value.
//
// Success level is the tens digit of the target minus the tens digit of the
// roll. Rolls of 01–05 always succeed and 96–00 always fail, regardless of
// target. Doubles (11, 22, ... 99, and 00) upgrade a success to a critical
// and a failure to a fumble.
func SkillTest(src Source, target int) TestResult {
	roll := D100(src)
	return ResolveTest(roll, target)
}

// ResolveTest applies the success-level arithmetic to an already-rolled d100.
func ResolveTest(roll, target int) TestResult {
	r := TestResult{
		Roll:         roll,
		Target:       target,
		SuccessLevel: target/10 - roll/10,
	}

	switch {
	case roll <= 5:
		r.Success = true
		if r.SuccessLevel < 1 {
			r.SuccessLevel = 1
		}
	case roll >= 96:
		r.Success = false
		if r.SuccessLevel > -1 {
			r.SuccessLevel = -1
		}
	default:
		r.Success = roll <= target
	}

	switch {
	case r.Success && isDouble(roll):
		r.Outcome = OutcomeCriticalSuccess
	case r.Success:
		r.Outcome = OutcomeSuccess
	case isDouble(roll):
		r.Outcome = OutcomeFumble
	default:
		r.Outcome = OutcomeFailure
	}

	return r
}

// isDouble reports whether a d100 roll shows matching digits. 100 is the
// "00" face and counts as a double.
func isDouble(roll int) bool {
	if roll == 100 {
		return true
	}
	return roll >= 11 && roll/10 == roll%10
}

// String renders the result the way handlers display it.
func (r TestResult) String() string {
	return fmt.Sprintf("%d vs %d: %s (SL %+d)", r.Roll, r.Target, r.Outcome, r.SuccessLevel)
}
