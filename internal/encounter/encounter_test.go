package encounter

import (
	"testing"

	"github.com/ostland/riverwarden/internal/dice"
)

func TestTableCoversAllRolls(t *testing.T) {
	for roll := 1; roll <= 100; roll++ {
		e := At(roll)
		if e.Title == "" || e.Player == "" || e.GM == "" {
			t.Fatalf("roll %d: incomplete entry %+v", roll, e)
		}
		if e.Roll != roll {
			t.Fatalf("roll %d: entry reports roll %d", roll, e.Roll)
		}
	}
}

func TestTableHasNoOverlaps(t *testing.T) {
	covered := make(map[int]string)
	for _, e := range table {
		for roll := e.min; roll <= e.max; roll++ {
			if prior, ok := covered[roll]; ok {
				t.Fatalf("roll %d covered by both %q and %q", roll, prior, e.title)
			}
			covered[roll] = e.title
		}
	}
	if len(covered) != 100 {
		t.Fatalf("table covers %d rolls, want 100", len(covered))
	}
}

func TestGenerate(t *testing.T) {
	src := dice.NewSource(6)
	for i := 0; i < 200; i++ {
		e := Generate(src)
		if e.Roll < 1 || e.Roll > 100 {
			t.Fatalf("generated roll %d out of range", e.Roll)
		}
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for roll 0")
		}
	}()
	At(0)
}
