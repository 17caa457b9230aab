package xiangqi

import (
	"strings"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 楚河汉界：红方 5..9，黑方 0..4
	RiverRed   = 5
	RiverBlack = 4
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func pawnDir(c Color) int {
	if c == Red {
		return -1
	}
	if c == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func pawnCrossedRiver(c Color, row int) bool {
	if c == Red {
		return row < RiverRed
	}
	if c == Black {
		return row > RiverBlack
	}
	return false
}

// 相/象不能过河
func ownHalf(c Color, row int) bool {
	if c == Red {
		return row >= RiverRed
	}
	if c == Black {
		return row <= RiverBlack
	}
	return false
}

// 是否在九宫
func inPalace(c Color, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if c == Black {
		return row >= 0 && row <= 2
	}
	if c == Red {
		return row >= 7 && row <= 9
	}
	return false
}

// Board 棋盘 + 轮到谁走 + 走子历史
type Board struct {
	cells      [Rows][Cols]Piece
	sideToMove Color
	history    []HistoryEntry
	hash       uint64
}

// NewBoard startPosition 为 false 时返回空盘（红先）
func NewBoard(startPosition bool) *Board {
	b := &Board{sideToMove: Red}
	if startPosition {
		b.SetStartPosition()
	} else {
		b.hash = b.CalculateHash()
	}
	return b
}

const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

// SetStartPosition 清空棋盘并摆出标准开局，红先，清空历史
func (b *Board) SetStartPosition() {
	b.cells = [Rows][Cols]Piece{}
	lines := strings.Split(initialBoardString, "\n")
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r, line := range lines {
		if len(line) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c := 0; c < Cols; c++ {
			ch := line[c]
			if ch == '.' {
				continue
			}
			pt, ok := pieceTypeFromLetter(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			color := Red
			if ch >= 'a' && ch <= 'z' {
				color = Black
			}
			b.cells[r][c] = MakePiece(color, pt)
		}
	}
	b.sideToMove = Red
	b.history = b.history[:0]
	b.hash = b.CalculateHash()
}

func (b *Board) SideToMove() Color { return b.sideToMove }

// SetSideToMove 摆局用，不记历史
func (b *Board) SetSideToMove(c Color) {
	if c != Red && c != Black {
		return
	}
	if c != b.sideToMove {
		b.hash ^= zobristSide
	}
	b.sideToMove = c
}

// PieceAt 越界返回空
func (b *Board) PieceAt(sq Square) Piece {
	if !onBoard(sq.Row, sq.Col) {
		return NoPiece
	}
	return b.cells[sq.Row][sq.Col]
}

func (b *Board) at(row, col int) Piece {
	if !onBoard(row, col) {
		return NoPiece
	}
	return b.cells[row][col]
}

// SetPiece 直接写格子，越界忽略，不做任何规则检查
func (b *Board) SetPiece(sq Square, p Piece) {
	if !onBoard(sq.Row, sq.Col) {
		return
	}
	old := b.cells[sq.Row][sq.Col]
	b.hash ^= pieceHashKey(old, sq)
	b.hash ^= pieceHashKey(p, sq)
	b.cells[sq.Row][sq.Col] = p
}

// FindKing 全盘扫描
func (b *Board) FindKing(c Color) (Square, bool) {
	king := MakePiece(c, PieceKing)
	if king == NoPiece {
		return Square{}, false
	}
	for r := 0; r < Rows; r++ {
		for col := 0; col < Cols; col++ {
			if b.cells[r][col] == king {
				return Sq(r, col), true
			}
		}
	}
	return Square{}, false
}

func (b *Board) HistoryLen() int { return len(b.history) }

// LastEntry 最近一步
func (b *Board) LastEntry() (HistoryEntry, bool) {
	if len(b.history) == 0 {
		return HistoryEntry{}, false
	}
	return b.history[len(b.history)-1], true
}
