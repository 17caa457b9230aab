package xiangqi

import (
	"math/rand"
	"testing"
)

func TestInitialMoveCounts(t *testing.T) {
	b := NewBoard(true)
	if n := len(b.GeneratePseudoLegalMoves(Red)); n != 44 {
		t.Fatalf("red pseudo-legal moves = %d, want 44", n)
	}
	if n := len(b.LegalMoves()); n != 44 {
		t.Fatalf("red legal moves = %d, want 44", n)
	}
	if n := len(b.GenerateLegalMoves(Black)); n != 44 {
		t.Fatalf("black legal moves = %d, want 44", n)
	}
	if b.HistoryLen() != 0 || b.BoardFEN() != startFEN {
		t.Fatalf("legal move generation left the board modified")
	}
}

func TestInitialCannonMoves(t *testing.T) {
	b := NewBoard(true)
	legal := b.LegalMoves()

	// 炮八平五：空线平移
	if !hasMove(legal, Sq(7, 1), Sq(7, 4)) {
		t.Errorf("cannon slide (7,1)->(7,4) should be legal")
	}
	// 隔黑炮打马
	if !hasMove(legal, Sq(7, 1), Sq(0, 1)) {
		t.Errorf("cannon capture over one screen should be legal")
	}
	// 没有炮架不能吃
	if hasMove(legal, Sq(7, 1), Sq(2, 1)) {
		t.Errorf("cannon capture without a screen must be rejected")
	}
	// 越过炮架后不能落空格
	if hasMove(legal, Sq(7, 1), Sq(1, 1)) {
		t.Errorf("cannon cannot land on an empty square beyond the screen")
	}
	// 炮架后无子可打
	if hasMove(legal, Sq(7, 1), Sq(9, 1)) {
		t.Errorf("cannon must not capture own pieces")
	}
}

func TestCannonScreenCount(t *testing.T) {
	kings := []placed{at(Red, PieceKing, 9, 4), at(Black, PieceKing, 0, 3)}
	cannon := at(Red, PieceCannon, 5, 0)
	target := at(Black, PiecePawn, 5, 4)
	from, to := Sq(5, 0), Sq(5, 4)

	zero := boardWith(Red, append(kings, cannon, target)...)
	if hasMove(zero.GeneratePseudoLegalMoves(Red), from, to) {
		t.Errorf("zero screens: capture must be impossible")
	}
	if !hasMove(zero.GeneratePseudoLegalMoves(Red), from, Sq(5, 3)) {
		t.Errorf("zero screens: slide to (5,3) should be possible")
	}

	one := boardWith(Red, append(kings, cannon, target, at(Black, PiecePawn, 5, 2))...)
	pseudo := one.GeneratePseudoLegalMoves(Red)
	if !hasMove(pseudo, from, to) {
		t.Errorf("one screen: capture should be possible")
	}
	if hasMove(pseudo, from, Sq(5, 3)) {
		t.Errorf("one screen: cannot land on empty square beyond the screen")
	}
	if hasMove(pseudo, from, Sq(5, 2)) {
		t.Errorf("one screen: cannot capture the screen itself")
	}

	two := boardWith(Red, append(kings, cannon, target, at(Black, PiecePawn, 5, 2), at(Red, PiecePawn, 5, 3))...)
	pseudo = two.GeneratePseudoLegalMoves(Red)
	if hasMove(pseudo, from, to) {
		t.Errorf("two screens: capture must be impossible")
	}
	if hasMove(pseudo, from, Sq(5, 3)) {
		t.Errorf("friendly piece beyond the screen must block")
	}
}

func TestRookMoves(t *testing.T) {
	b := boardWith(Red,
		at(Red, PieceKing, 9, 4), at(Black, PieceKing, 0, 3),
		at(Red, PieceRook, 5, 5), at(Black, PiecePawn, 5, 7), at(Red, PiecePawn, 3, 5),
	)
	pseudo := b.GeneratePseudoLegalMoves(Red)
	from := Sq(5, 5)
	for _, to := range []Square{Sq(5, 6), Sq(5, 7), Sq(5, 0), Sq(4, 5), Sq(9, 5)} {
		if !hasMove(pseudo, from, to) {
			t.Errorf("rook should reach %v", to)
		}
	}
	for _, to := range []Square{Sq(5, 8), Sq(3, 5), Sq(2, 5), Sq(4, 4)} {
		if hasMove(pseudo, from, to) {
			t.Errorf("rook must not reach %v", to)
		}
	}
}

func TestKnightHobbledLeg(t *testing.T) {
	kings := []placed{at(Red, PieceKing, 9, 4), at(Black, PieceKing, 0, 3)}
	free := boardWith(Red, append(kings, at(Red, PieceKnight, 5, 4))...)
	got := 0
	for _, m := range free.GeneratePseudoLegalMoves(Red) {
		if m.From == Sq(5, 4) {
			got++
		}
	}
	if got != 8 {
		t.Fatalf("free knight moves = %d, want 8", got)
	}

	// 上方马腿被任意子（此处黑卒）堵住：两个向上的跳法都没了
	hobbled := boardWith(Red, append(kings, at(Red, PieceKnight, 5, 4), at(Black, PiecePawn, 4, 4))...)
	pseudo := hobbled.GeneratePseudoLegalMoves(Red)
	if hasMove(pseudo, Sq(5, 4), Sq(3, 3)) || hasMove(pseudo, Sq(5, 4), Sq(3, 5)) {
		t.Errorf("knight with blocked leg must not jump forward")
	}
	if !hasMove(pseudo, Sq(5, 4), Sq(4, 2)) || !hasMove(pseudo, Sq(5, 4), Sq(7, 3)) {
		t.Errorf("other knight jumps should stay available")
	}

	// 初始局面：马二进一、马二进三可走，马腿在 (9,6) 是相，不影响向上
	start := NewBoard(true)
	legal := start.LegalMoves()
	if !hasMove(legal, Sq(9, 7), Sq(7, 6)) || !hasMove(legal, Sq(9, 7), Sq(7, 8)) {
		t.Errorf("opening knight jumps missing")
	}
	if hasMove(legal, Sq(9, 7), Sq(8, 5)) {
		t.Errorf("knight jump onto own advisor row blocked by elephant leg")
	}
}

func TestElephantEyeAndRiver(t *testing.T) {
	kings := []placed{at(Red, PieceKing, 9, 4), at(Black, PieceKing, 0, 3)}
	b := boardWith(Red, append(kings, at(Red, PieceElephant, 5, 2), at(Black, PiecePawn, 6, 3))...)
	pseudo := b.GeneratePseudoLegalMoves(Red)
	if hasMove(pseudo, Sq(5, 2), Sq(3, 0)) || hasMove(pseudo, Sq(5, 2), Sq(3, 4)) {
		t.Errorf("red elephant must not cross the river")
	}
	if hasMove(pseudo, Sq(5, 2), Sq(7, 4)) {
		t.Errorf("elephant with blocked eye must not move")
	}
	if !hasMove(pseudo, Sq(5, 2), Sq(7, 0)) {
		t.Errorf("elephant should move to (7,0)")
	}

	bb := boardWith(Black, append(kings, at(Black, PieceElephant, 4, 6))...)
	for _, m := range bb.GeneratePseudoLegalMoves(Black) {
		if m.From == Sq(4, 6) && m.To.Row > RiverBlack {
			t.Errorf("black elephant crossed the river: %v", m)
		}
	}
}

func TestPawnMoves(t *testing.T) {
	kings := []placed{at(Red, PieceKing, 9, 4), at(Black, PieceKing, 0, 3)}
	b := boardWith(Red, append(kings,
		at(Red, PiecePawn, 6, 0), // 未过河
		at(Red, PiecePawn, 4, 6), // 已过河
		at(Black, PiecePawn, 5, 2),
		at(Black, PiecePawn, 3, 8), // 未过河
	)...)
	pseudo := b.GeneratePseudoLegalMoves(Red)
	if !hasMove(pseudo, Sq(6, 0), Sq(5, 0)) {
		t.Errorf("pawn should advance")
	}
	if hasMove(pseudo, Sq(6, 0), Sq(6, 1)) {
		t.Errorf("pawn before the river must not move sideways")
	}
	for _, to := range []Square{Sq(3, 6), Sq(4, 5), Sq(4, 7)} {
		if !hasMove(pseudo, Sq(4, 6), to) {
			t.Errorf("crossed pawn should reach %v", to)
		}
	}
	if hasMove(pseudo, Sq(4, 6), Sq(5, 6)) {
		t.Errorf("pawn must never move backward")
	}

	black := b.GeneratePseudoLegalMoves(Black)
	for _, to := range []Square{Sq(6, 2), Sq(5, 1), Sq(5, 3)} {
		if !hasMove(black, Sq(5, 2), to) {
			t.Errorf("crossed black pawn should reach %v", to)
		}
	}
	if hasMove(black, Sq(5, 2), Sq(4, 2)) {
		t.Errorf("black pawn must never move backward")
	}
	if hasMove(black, Sq(3, 8), Sq(3, 7)) {
		t.Errorf("black pawn before the river must not move sideways")
	}
}

func TestPalaceConfinement(t *testing.T) {
	b := boardWith(Red,
		at(Red, PieceKing, 7, 3), at(Red, PieceAdvisor, 8, 4),
		at(Black, PieceKing, 2, 5), at(Black, PieceAdvisor, 1, 4),
	)
	for _, c := range []Color{Red, Black} {
		for _, m := range b.GeneratePseudoLegalMoves(c) {
			if !inPalace(c, m.To.Row, m.To.Col) {
				t.Errorf("%v %v left the palace", c, m)
			}
		}
	}
	if n := len(b.GeneratePseudoLegalMoves(Red)); n != 2+3 {
		t.Errorf("red pseudo moves = %d, want 5", n)
	}
}

func TestFlyingGeneral(t *testing.T) {
	b := boardWith(Red, at(Red, PieceKing, 9, 4), at(Black, PieceKing, 0, 4))
	if !b.IsInCheck(Red) || !b.IsInCheck(Black) {
		t.Fatalf("facing kings must be check for both colors")
	}
	b.SetPiece(Sq(5, 4), MakePiece(Red, PiecePawn))
	if b.IsInCheck(Red) || b.IsInCheck(Black) {
		t.Fatalf("a piece between the kings blocks the flying general")
	}

	// 将不能走到对脸的位置
	side := boardWith(Red, at(Red, PieceKing, 9, 3), at(Black, PieceKing, 0, 4))
	if _, ok := side.FindLegalMove(Sq(9, 3), Sq(9, 4)); ok {
		t.Fatalf("king must not step into the open file of the enemy king")
	}
	if _, ok := side.FindLegalMove(Sq(9, 3), Sq(8, 3)); !ok {
		t.Fatalf("king should step forward")
	}
}

func TestMissingKingIsCheck(t *testing.T) {
	b := boardWith(Red, at(Black, PieceKing, 0, 4), at(Red, PieceRook, 5, 0))
	if !b.IsInCheck(Red) {
		t.Fatalf("absent king must be treated as in check")
	}
	if n := len(b.LegalMoves()); n != 0 {
		t.Fatalf("side without king has %d legal moves, want 0", n)
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// 红车挡在黑车与红帅之间，只能沿线走
	b := boardWith(Red,
		at(Red, PieceKing, 9, 4), at(Black, PieceKing, 0, 3),
		at(Red, PieceRook, 6, 4), at(Black, PieceRook, 2, 4),
	)
	for _, m := range b.LegalMoves() {
		if m.From == Sq(6, 4) && m.To.Col != 4 {
			t.Errorf("pinned rook left the file: %v", m)
		}
	}
	if _, ok := b.FindLegalMove(Sq(6, 4), Sq(2, 4)); !ok {
		t.Errorf("pinned rook should capture the pinning rook")
	}
}

func TestCheckmateAndResult(t *testing.T) {
	b, err := ParseBoardFEN("4k4/R8/9/9/9/8R/9/9/9/3K5 r")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.GameResult(); ok {
		t.Fatalf("game should still be going")
	}
	mv, ok := b.FindLegalMove(Sq(5, 8), Sq(0, 8))
	if !ok {
		t.Fatalf("rook lift should be legal")
	}
	if _, err := b.MakeMove(mv); err != nil {
		t.Fatal(err)
	}
	if !b.IsInCheck(Black) || !b.IsCheckmate(Black) {
		t.Fatalf("black should be checkmated")
	}
	res, ok := b.GameResult()
	// 结果码以负方开头：黑被将死记 b+
	if !ok || res != BlackMated {
		t.Fatalf("GameResult() = %q %v, want b+", res, ok)
	}
	if res != "b+" {
		t.Fatalf("GameResult() = %q %v, want b+", res, ok)
	}
	if res.Loser() != Black || res.Winner() != Red || !res.IsMate() {
		t.Fatalf("result helpers wrong: %v %v %v", res.Loser(), res.Winner(), res.IsMate())
	}

	red, _ := ParseBoardFEN("3k5/9/9/9/8r/9/9/9/r8/4K4 b")
	mv, ok = red.FindLegalMove(Sq(4, 8), Sq(9, 8))
	if !ok {
		t.Fatalf("black rook drop should be legal")
	}
	red.MakeMove(mv)
	if res, ok := red.GameResult(); !ok || res != RedMated || res.Winner() != Black {
		t.Fatalf("GameResult() = %q %v, want r+", res, ok)
	} else if res != "r+" {
		t.Fatalf("GameResult() = %q %v, want r+", res, ok)
	}
}

func TestStalemateResult(t *testing.T) {
	b, err := ParseBoardFEN("3k5/8R/9/9/9/9/9/9/9/4K4 b")
	if err != nil {
		t.Fatal(err)
	}
	if b.IsInCheck(Black) {
		t.Fatalf("black should not be in check")
	}
	if !b.IsStalemate(Black) || b.IsCheckmate(Black) {
		t.Fatalf("black should be stalemated, not mated")
	}
	res, ok := b.GameResult()
	if !ok || res != BlackStalemated || res.IsMate() || res.Winner() != Red || res != "b-" {
		t.Fatalf("GameResult() = %q %v, want b-", res, ok)
	}
}

// 随机对局：检查悔棋还原、合法性的正确与完备、相不过河、九宫限制
func TestRandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	for game := 0; game < 4; game++ {
		b := NewBoard(true)
		for ply := 0; ply < 60; ply++ {
			color := b.SideToMove()
			legal := b.LegalMoves()
			if len(legal) == 0 {
				break
			}
			fen, hash, n := b.BoardFEN(), b.Hash(), b.HistoryLen()

			for _, m := range legal {
				if _, err := b.MakeMove(m); err != nil {
					t.Fatalf("legal move %v failed: %v", m, err)
				}
				if b.IsInCheck(color) {
					t.Fatalf("legal move %v leaves %v in check at %s", m, color, fen)
				}
				if b.Hash() != b.CalculateHash() {
					t.Fatalf("incremental hash drifted after %v", m)
				}
				b.UndoMove()
				if b.BoardFEN() != fen || b.Hash() != hash || b.HistoryLen() != n {
					t.Fatalf("make/undo of %v did not round trip at %s", m, fen)
				}
				checkConfinement(t, b, m)
			}

			for _, m := range b.GeneratePseudoLegalMoves(color) {
				if hasMove(legal, m.From, m.To) {
					continue
				}
				b.MakeMove(m)
				if !b.IsInCheck(color) {
					t.Fatalf("pseudo move %v rejected but leaves %v safe at %s", m, color, fen)
				}
				b.UndoMove()
			}

			if _, err := b.MakeMove(legal[rng.Intn(len(legal))]); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func checkConfinement(t *testing.T, b *Board, m Move) {
	t.Helper()
	pc := b.PieceAt(m.From)
	switch pc.Type() {
	case PieceElephant:
		if pc.Color() == Red && m.To.Row < RiverRed || pc.Color() == Black && m.To.Row > RiverBlack {
			t.Fatalf("elephant crossed the river: %v", m)
		}
	case PieceAdvisor, PieceKing:
		if !inPalace(pc.Color(), m.To.Row, m.To.Col) {
			t.Fatalf("%v left the palace: %v", pc, m)
		}
	}
}
