package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/freckers/internal/core"
)

func TestCoordInBounds(t *testing.T) {
	testCases := []struct {
		coord    core.Coord
		expected bool
	}{
		{core.C(0, 0), true},
		{core.C(7, 7), true},
		{core.C(3, 4), true},
		{core.C(-1, 0), false},
		{core.C(0, -1), false},
		{core.C(8, 0), false},
		{core.C(0, 8), false},
	}

	for _, tc := range testCases {
		if got := tc.coord.InBounds(); got != tc.expected {
			t.Errorf("InBounds(%v): expected %v, got %v", tc.coord, tc.expected, got)
		}
	}
}

func TestCoordStepNoWrap(t *testing.T) {
	// Stepping left from column 0 must not wrap to column 7.
	if _, ok := core.C(3, 0).Step(core.DirLeft); ok {
		t.Error("expected step off the left edge to fail")
	}
	if _, ok := core.C(7, 3).Step(core.DirDown); ok {
		t.Error("expected step off the bottom edge to fail")
	}

	next, ok := core.C(3, 3).Step(core.DirDownLeft)
	if !ok || next != core.C(4, 2) {
		t.Errorf("expected (4,2), got %v ok=%v", next, ok)
	}
}

func TestAgentDirsExcludeUpward(t *testing.T) {
	for _, d := range core.AgentDirs {
		dr, _ := d.Delta()
		if dr < 0 {
			t.Errorf("direction %s moves upward", d)
		}
	}
	if core.DirUp.Legal() || core.DirUpLeft.Legal() || core.DirUpRight.Legal() {
		t.Error("upward directions must not be legal")
	}
	if len(core.AgentDirs) != 5 {
		t.Errorf("expected 5 agent directions, got %d", len(core.AgentDirs))
	}
}

func TestParseDir(t *testing.T) {
	tests := []struct {
		in   string
		want core.Dir
		ok   bool
	}{
		{"Down", core.DirDown, true},
		{"down-left", core.DirDownLeft, true},
		{"DOWN_RIGHT", core.DirDownRight, true},
		{"sideways", 0, false},
	}
	for _, tt := range tests {
		got, ok := core.ParseDir(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseDir(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNewBoardCopiesInput(t *testing.T) {
	cells := map[core.Coord]core.CellState{
		core.C(0, 3): core.CellAgent,
		core.C(1, 3): core.CellPad,
		core.C(9, 9): core.CellPad, // dropped, off the board
	}
	b := core.NewBoard(cells)

	cells[core.C(2, 3)] = core.CellPad
	if b.Len() != 2 {
		t.Errorf("expected 2 cells, got %d", b.Len())
	}
	if _, ok := b.At(core.C(2, 3)); ok {
		t.Error("board must not see later changes to the input map")
	}

	agent, ok := b.Agent()
	if !ok || agent != core.C(0, 3) {
		t.Errorf("expected agent at (0,3), got %v ok=%v", agent, ok)
	}
}

func TestBoardWithoutAgent(t *testing.T) {
	b := core.NewBoard(map[core.Coord]core.CellState{core.C(1, 1): core.CellPad})
	if _, ok := b.Agent(); ok {
		t.Error("expected no agent")
	}
}

func TestMoveDestination(t *testing.T) {
	b := core.NewBoard(map[core.Coord]core.CellState{
		core.C(0, 2): core.CellAgent,
		core.C(1, 2): core.CellObstacle,
		core.C(2, 2): core.CellPad,
		core.C(3, 2): core.CellObstacle,
		core.C(4, 2): core.CellPad,
		core.C(0, 3): core.CellPad,
	})

	tests := []struct {
		name string
		move core.Move
		want core.Coord
		ok   bool
	}{
		{"step right", core.Move{From: core.C(0, 2), Dirs: []core.Dir{core.DirRight}}, core.C(0, 3), true},
		{"single jump", core.Move{From: core.C(0, 2), Dirs: []core.Dir{core.DirDown}}, core.C(2, 2), true},
		{"double jump", core.Move{From: core.C(0, 2), Dirs: []core.Dir{core.DirDown, core.DirDown}}, core.C(4, 2), true},
		{"step onto nothing", core.Move{From: core.C(0, 2), Dirs: []core.Dir{core.DirLeft}}, core.C(0, 2), false},
		{"upward", core.Move{From: core.C(2, 2), Dirs: []core.Dir{core.DirUp}}, core.C(2, 2), false},
		{"empty", core.Move{From: core.C(0, 2)}, core.C(0, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.move.Destination(b)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Destination() = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	b := core.NewBoard(map[core.Coord]core.CellState{
		core.C(0, 0): core.CellAgent,
		core.C(1, 0): core.CellPad,
		core.C(2, 0): core.CellPad,
	})
	moves := []core.Move{
		{From: core.C(0, 0), Dirs: []core.Dir{core.DirDown}},
		{From: core.C(1, 0), Dirs: []core.Dir{core.DirDown}},
	}

	path, ok := core.Replay(b, core.C(0, 0), moves)
	if !ok {
		t.Fatal("expected replay to succeed")
	}
	if len(path) != 3 || path[2] != core.C(2, 0) {
		t.Errorf("unexpected path %v", path)
	}

	// A move that does not start where the previous one ended is rejected.
	bad := []core.Move{{From: core.C(1, 0), Dirs: []core.Dir{core.DirDown}}}
	if _, ok := core.Replay(b, core.C(0, 0), bad); ok {
		t.Error("expected replay with wrong origin to fail")
	}
}

func TestRenderASCII(t *testing.T) {
	b := core.NewBoard(map[core.Coord]core.CellState{
		core.C(0, 0): core.CellAgent,
		core.C(1, 1): core.CellObstacle,
		core.C(2, 2): core.CellPad,
	})

	out := core.RenderASCII(b)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != core.BoardN+1 {
		t.Fatalf("expected %d lines, got %d", core.BoardN+1, len(lines))
	}
	if lines[1] != "0  R . . . . . . ." {
		t.Errorf("unexpected row 0: %q", lines[1])
	}
	if lines[2] != "1  . B . . . . . ." {
		t.Errorf("unexpected row 1: %q", lines[2])
	}
}

func TestRenderCompactRoundTrip(t *testing.T) {
	b := core.NewBoard(map[core.Coord]core.CellState{
		core.C(0, 4): core.CellAgent,
		core.C(5, 5): core.CellPad,
	})
	out := core.RenderCompact(b)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "....R..." {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[5] != ".....*.." {
		t.Errorf("row 5 = %q", lines[5])
	}
}

func TestParseMove(t *testing.T) {
	m := core.Move{From: core.C(2, 5), Dirs: []core.Dir{core.DirDown, core.DirDownLeft}}

	got, err := core.ParseMove(m.String())
	if err != nil {
		t.Fatalf("ParseMove(%q) failed: %v", m.String(), err)
	}
	if got.String() != m.String() {
		t.Errorf("ParseMove(%q) = %q", m.String(), got.String())
	}

	for _, bad := range []string{"", "MOVE (1,2)", "STEP (1,2) Down", "MOVE 1,2 Down", "MOVE (1,2) Sideways"} {
		if _, err := core.ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) should fail", bad)
		}
	}
}
