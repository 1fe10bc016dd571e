package progression

import "testing"

func TestLevelFor(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{1, 1},
		{450, 1},
		{999, 1},
		{1000, 2},
		{1001, 2},
		{1999, 2},
		{2000, 3},
		{10000, 11},
	}
	for _, c := range cases {
		if got := LevelFor(c.xp); got != c.want {
			t.Errorf("LevelFor(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	prev := LevelFor(0)
	for xp := 1; xp <= 5000; xp++ {
		cur := LevelFor(xp)
		if cur < prev {
			t.Fatalf("LevelFor not monotonic: LevelFor(%d) = %d < %d", xp, cur, prev)
		}
		prev = cur
	}
}

func TestLevelFor_NegativeClamped(t *testing.T) {
	if got := LevelFor(-50); got != 1 {
		t.Errorf("LevelFor(-50) = %d, want 1", got)
	}
}

func TestProgressFraction(t *testing.T) {
	cases := []struct {
		xp   int
		want float64
	}{
		{0, 0},
		{250, 0.25},
		{999, 0.999},
		{1000, 0},
		{1450, 0.45},
	}
	for _, c := range cases {
		if got := ProgressFraction(c.xp); got != c.want {
			t.Errorf("ProgressFraction(%d) = %f, want %f", c.xp, got, c.want)
		}
	}
}

func TestProgressFraction_Range(t *testing.T) {
	for xp := 0; xp <= 3000; xp += 7 {
		f := ProgressFraction(xp)
		if f < 0 || f >= 1 {
			t.Fatalf("ProgressFraction(%d) = %f, want [0, 1)", xp, f)
		}
	}
}

func TestLevelXP(t *testing.T) {
	if got := LevelXP(1450); got != 450 {
		t.Errorf("LevelXP(1450) = %d, want 450", got)
	}
	if got := LevelXP(999); got != 999 {
		t.Errorf("LevelXP(999) = %d, want 999", got)
	}
}
