package xiangqi

import "testing"

func TestHashInitializedFromStartAndFEN(t *testing.T) {
	b := NewBoard(true)
	if b.Hash() != b.CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", b.Hash(), b.CalculateHash())
	}

	decoded, err := ParseBoardFEN(startFEN)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Hash() != b.Hash() {
		t.Fatalf("decoded hash mismatch: got=%d want=%d", decoded.Hash(), b.Hash())
	}
}

func TestMakeMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	b := NewBoard(true)
	seen := map[uint64]string{b.Hash(): b.BoardFEN()}
	for ply := 0; ply < 24; ply++ {
		moves := b.LegalMoves()
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		if _, err := b.MakeMove(mv); err != nil {
			t.Fatalf("make move failed at ply %d: %v", ply, err)
		}
		got, want := b.Hash(), b.CalculateHash()
		if got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%v", ply, got, want, mv)
		}
		if fen, ok := seen[got]; ok && fen != b.BoardFEN() {
			t.Fatalf("hash collision: %s vs %s", fen, b.BoardFEN())
		}
		seen[got] = b.BoardFEN()
	}
}

func TestSideToMoveChangesHash(t *testing.T) {
	b := NewBoard(true)
	h := b.Hash()
	b.SetSideToMove(Black)
	if b.Hash() == h {
		t.Fatalf("side to move not part of the hash")
	}
	b.SetSideToMove(Black)
	b.SetSideToMove(NoColor)
	b.SetSideToMove(Red)
	if b.Hash() != h {
		t.Fatalf("hash not restored after switching back")
	}
}

func TestHashKeysReadyOnEmptyBoard(t *testing.T) {
	b := NewBoard(false)
	if b.Hash() != 0 {
		t.Fatalf("empty red-to-move board hash = %d, want 0", b.Hash())
	}
	b.SetSideToMove(Black)
	if b.Hash() == 0 || b.Hash() != b.CalculateHash() {
		t.Fatalf("side key missing: hash=%d full=%d", b.Hash(), b.CalculateHash())
	}
	b.SetPiece(Sq(0, 4), MakePiece(Black, PieceKing))
	if b.Hash() != b.CalculateHash() {
		t.Fatalf("piece key mismatch: hash=%d full=%d", b.Hash(), b.CalculateHash())
	}
}
