package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"xiangqi/internal/xiangqi"
)

func press(m model, keys ...tea.KeyMsg) model {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(model)
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	right = tea.KeyMsg{Type: tea.KeyRight}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSelectAndMove(t *testing.T) {
	m := initialModel(nil, "")
	// (9,4) -> (7,7) 红炮
	m = press(m, up, up, right, right, right)
	if m.cursorRow != 7 || m.cursorCol != 7 {
		t.Fatalf("cursor = (%d,%d)", m.cursorRow, m.cursorCol)
	}
	m = press(m, enter)
	if m.selected == nil || !slicesHas(m.targets, xiangqi.Sq(7, 4)) {
		t.Fatalf("cannon not selected: %+v", m.targets)
	}
	m = press(m, left, left, left, enter)
	if m.rec.PlyCount() != 1 || m.rec.Moves[0][0] != "炮二平五" {
		t.Fatalf("record = %v", m.rec.Moves)
	}
	if m.board.SideToMove() != xiangqi.Black || m.selected != nil {
		t.Fatalf("move not applied")
	}
	if !strings.Contains(m.View(), "炮二平五") {
		t.Fatalf("move list missing from view")
	}

	// 不能选对方的子
	m.cursorRow, m.cursorCol = 9, 0
	m = press(m, enter)
	if m.selected != nil {
		t.Fatalf("selected a piece of the side not to move")
	}

	m = press(m, runes("u"))
	if m.board.HistoryLen() != 0 || m.rec.PlyCount() != 0 {
		t.Fatalf("undo did not revert")
	}
}

func TestEscapeAndBounds(t *testing.T) {
	m := initialModel(nil, "")
	m.cursorRow, m.cursorCol = 7, 1
	m = press(m, enter, tea.KeyMsg{Type: tea.KeyEscape})
	if m.selected != nil || len(m.targets) != 0 {
		t.Fatalf("escape did not clear the selection")
	}
	m.cursorRow, m.cursorCol = 0, 0
	m = press(m, up, left, runes("k"), runes("h"))
	if m.cursorRow != 0 || m.cursorCol != 0 {
		t.Fatalf("cursor left the board: (%d,%d)", m.cursorRow, m.cursorCol)
	}
	if _, cmd := m.Update(runes("q")); cmd == nil {
		t.Fatalf("q should quit")
	}
}

func TestGameOverBannerAndSave(t *testing.T) {
	b, err := xiangqi.ParseBoardFEN("4k4/R8/9/9/9/8R/9/9/9/3K5 r")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "game.pgn")
	m := initialModel(b, path)
	if m.rec.FEN == "" {
		t.Fatalf("set-up position not recorded")
	}
	m.cursorRow, m.cursorCol = 5, 8
	m = press(m, enter)
	m.cursorRow, m.cursorCol = 0, 8
	m = press(m, enter)
	if !strings.Contains(m.View(), "b+") {
		t.Fatalf("result banner missing")
	}

	m = press(m, runes("s"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `[Result "1-0"]`) || !strings.Contains(string(data), "[FEN ") {
		t.Fatalf("saved record = %s", data)
	}
}

func slicesHas(sqs []xiangqi.Square, sq xiangqi.Square) bool {
	for _, s := range sqs {
		if s == sq {
			return true
		}
	}
	return false
}
