package xiangqi

import "fmt"

// GeneratePseudoLegalMoves 生成指定一方的伪合法走法（不考虑自己被将）
func (b *Board) GeneratePseudoLegalMoves(c Color) []Move {
	var moves []Move
	for r := 0; r < Rows; r++ {
		for col := 0; col < Cols; col++ {
			pc := b.cells[r][col]
			if pc == NoPiece || pc.Color() != c {
				continue
			}
			genPieceMoves(b, Sq(r, col), pc.Type(), &moves)
		}
	}
	return moves
}

func genPieceMoves(b *Board, from Square, pt PieceType, moves *[]Move) {
	switch pt {
	case PieceRook:
		genRookMoves(b, from, moves)
	case PieceCannon:
		genCannonMoves(b, from, moves)
	case PieceKnight:
		genKnightMoves(b, from, moves)
	case PieceElephant:
		genElephantMoves(b, from, moves)
	case PieceAdvisor:
		genAdvisorMoves(b, from, moves)
	case PieceKing:
		genKingMoves(b, from, moves)
	case PiecePawn:
		genPawnMoves(b, from, moves)
	}
}

// PseudoLegalMoves 当前走子方的伪合法走法
func (b *Board) PseudoLegalMoves() []Move {
	return b.GeneratePseudoLegalMoves(b.sideToMove)
}

// GenerateLegalMoves 试走 + 检查 + 悔棋：走完不被将才算合法
func (b *Board) GenerateLegalMoves(c Color) []Move {
	pseudo := b.GeneratePseudoLegalMoves(c)
	out := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		if _, err := b.MakeMove(mv); err != nil {
			continue
		}
		inCheck := b.IsInCheck(c)
		b.UndoMove()
		if !inCheck {
			out = append(out, mv)
		}
	}
	return out
}

// LegalMoves 当前走子方的合法走法
func (b *Board) LegalMoves() []Move {
	return b.GenerateLegalMoves(b.sideToMove)
}

// FindLegalMove 在当前走子方的合法走法里按起止格查找
func (b *Board) FindLegalMove(from, to Square) (Move, bool) {
	for _, mv := range b.LegalMoves() {
		if mv.From == from && mv.To == to {
			return mv, true
		}
	}
	return Move{}, false
}

// MakeMove 不检查合法性（由上层负责）；起点无子时报错且不改动棋盘
func (b *Board) MakeMove(m Move) (Piece, error) {
	pc := b.PieceAt(m.From)
	if pc == NoPiece {
		return NoPiece, fmt.Errorf("make move %v: %w", m.From, ErrNoPieceAtSource)
	}
	if !m.To.Valid() {
		return NoPiece, fmt.Errorf("make move to %v: %w", m.To, ErrOffBoard)
	}
	captured := b.PieceAt(m.To)
	sideBefore := b.sideToMove

	b.SetPiece(m.To, pc)
	b.SetPiece(m.From, NoPiece)
	b.history = append(b.history, HistoryEntry{Move: m, Captured: captured, SideBefore: sideBefore})
	b.SetSideToMove(sideBefore.Opposite())
	return captured, nil
}

// UndoMove 撤销最后一步；历史为空时什么都不做
func (b *Board) UndoMove() bool {
	n := len(b.history)
	if n == 0 {
		return false
	}
	e := b.history[n-1]
	b.history = b.history[:n-1]

	pc := b.PieceAt(e.Move.To)
	b.SetPiece(e.Move.From, pc)
	b.SetPiece(e.Move.To, e.Captured)
	b.SetSideToMove(e.SideBefore)
	return true
}
