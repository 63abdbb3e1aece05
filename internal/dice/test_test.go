package dice

import "testing"

func TestResolveTest(t *testing.T) {
	tests := []struct {
		name        string
		roll        int
		target      int
		wantSuccess bool
		wantSL      int
		wantOutcome Outcome
	}{
		{"comfortable success", 23, 55, true, 3, OutcomeSuccess},
		{"exact hit", 54, 55, true, 0, OutcomeSuccess},
		{"exact hit on doubles is critical", 55, 55, true, 0, OutcomeCriticalSuccess},
		{"plain failure", 72, 55, false, -2, OutcomeFailure},
		{"critical on doubles", 33, 55, true, 2, OutcomeCriticalSuccess},
		{"fumble on doubles", 88, 55, false, -3, OutcomeFumble},
		{"auto success on 03", 3, 1, true, 1, OutcomeSuccess},
		{"auto failure on 97", 97, 99, false, -1, OutcomeFailure},
		{"00 fumbles", 100, 120, false, -1, OutcomeFumble},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ResolveTest(tt.roll, tt.target)
			if r.Success != tt.wantSuccess {
				t.Errorf("success = %v, want %v", r.Success, tt.wantSuccess)
			}
			if r.SuccessLevel != tt.wantSL {
				t.Errorf("SL = %d, want %d", r.SuccessLevel, tt.wantSL)
			}
			if r.Outcome != tt.wantOutcome {
				t.Errorf("outcome = %s, want %s", r.Outcome, tt.wantOutcome)
			}
		})
	}
}

func TestSkillTestRange(t *testing.T) {
	src := NewSource(42)
	for i := 0; i < 1000; i++ {
		r := SkillTest(src, 45)
		if r.Roll < 1 || r.Roll > 100 {
			t.Fatalf("roll %d out of range", r.Roll)
		}
	}
}

func TestSourceDeterminism(t *testing.T) {
	a, b := NewSource(7), NewSource(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Roll(100), b.Roll(100); x != y {
			t.Fatalf("iteration %d: %d != %d for the same seed", i, x, y)
		}
	}
}

func TestSourceBounds(t *testing.T) {
	src := NewSource(3)
	for _, sides := range []int{2, 5, 10, 100} {
		for i := 0; i < 500; i++ {
			v := src.Roll(sides)
			if v < 1 || v > sides {
				t.Fatalf("Roll(%d) = %d out of range", sides, v)
			}
		}
	}
}
