package sim

import (
	"testing"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

func TestResolveFreeMove(t *testing.T) {
	lvl, _ := Load(1, testLayout())
	st := lvl.State // player at (4,1), floor below at (4,2)

	moves, ok := Resolve(st, core.DirDown)
	if !ok {
		t.Fatal("Move into empty floor should be legal")
	}
	if len(moves) != 1 {
		t.Fatalf("Expected 1 pending move, got %d", len(moves))
	}
	if moves[0].Entity != st.PlayerEntity {
		t.Error("Pending move should belong to the player")
	}
	if moves[0].From != core.Pos(4, 1) || moves[0].To != core.Pos(4, 2) {
		t.Errorf("Player move = %v -> %v, expected (4,1) -> (4,2)", moves[0].From, moves[0].To)
	}
}

func TestResolveWallRejected(t *testing.T) {
	lvl, _ := Load(1, testLayout())
	st := lvl.State // wall above the player at (4,0)

	before := st.Clone()
	moves, ok := Resolve(st, core.DirUp)
	if ok || moves != nil {
		t.Error("Move into a wall must be rejected with no pending moves")
	}
	if !st.Equal(before) {
		t.Error("Rejected move must not change state")
	}
}

func TestResolvePush(t *testing.T) {
	lvl, _ := Load(1, testLayout())
	st := lvl.State // block at (3,1), empty at (2,1)

	moves, ok := Resolve(st, core.DirLeft)
	if !ok {
		t.Fatal("Push into empty tile should be legal")
	}
	if len(moves) != 2 {
		t.Fatalf("Expected 2 pending moves for a push, got %d", len(moves))
	}

	player, block := moves[0], moves[1]
	if player.Entity != st.PlayerEntity {
		t.Error("First pending move should be the player's")
	}
	if player.From != core.Pos(4, 1) || player.To != core.Pos(3, 1) {
		t.Errorf("Player move = %v -> %v", player.From, player.To)
	}
	if block.From != core.Pos(3, 1) || block.To != core.Pos(2, 1) {
		t.Errorf("Block move = %v -> %v, expected (3,1) -> (2,1)", block.From, block.To)
	}

	obs, _ := st.ObstacleAt(core.Pos(3, 1))
	if block.Entity != obs.Entity {
		t.Error("Block pending move should carry the block's entity handle")
	}
}

func TestResolvePushIntoWallRejected(t *testing.T) {
	// Block with a wall directly behind it.
	layout := Layout{
		{8, 8, 8, 8, 8},
		{8, 2, 1, 0, 8},
		{8, 8, 8, 8, 8},
	}
	lvl, _ := Load(1, layout)
	st := lvl.State

	before := st.Clone()
	if _, ok := Resolve(st, core.DirLeft); ok {
		t.Error("Push with a wall behind the block must be rejected")
	}
	if !st.Equal(before) {
		t.Error("Rejected push must not change state")
	}
}

func TestResolveChainedPushRejected(t *testing.T) {
	// Two blocks in a row: pushing the first would push the second.
	layout := Layout{
		{8, 8, 8, 8, 8, 8},
		{8, 0, 2, 2, 1, 8},
		{8, 8, 8, 8, 8, 8},
	}
	lvl, _ := Load(1, layout)
	st := lvl.State

	before := st.Clone()
	if _, ok := Resolve(st, core.DirLeft); ok {
		t.Error("Chained push of two blocks must be rejected")
	}
	if !st.Equal(before) {
		t.Error("Rejected chained push must not change state")
	}
}

func TestResolvePushOntoGoal(t *testing.T) {
	// Goals never block movement; a block may be pushed onto one.
	layout := Layout{
		{8, 8, 8, 8, 8},
		{8, 4, 2, 1, 8},
		{8, 8, 8, 8, 8},
	}
	lvl, _ := Load(1, layout)

	moves, ok := Resolve(lvl.State, core.DirLeft)
	if !ok {
		t.Fatal("Push onto a goal tile should be legal")
	}
	if moves[1].To != core.Pos(1, 1) {
		t.Errorf("Block should land on the goal at (1,1), got %v", moves[1].To)
	}
}
