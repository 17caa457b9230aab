package xiangqi

import (
	"fmt"
	"strings"
)

// BoardFEN 简单 FEN-like：10 行用“/”隔开，空位用数字压缩；空格后 r/b 表示走子方。
// 不是标准 FEN，没有其它字段。
func (b *Board) BoardFEN() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.cells[r][c]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Code())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(b.sideToMove.Code())
	return sb.String()
}

// ParseBoardFEN BoardFEN 的逆操作，历史为空。走子方缺省为红，"w" 也当红方。
func ParseBoardFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty FEN string: %w", ErrInvalidFEN)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("want %d rows, got %d: %w", Rows, len(rows), ErrInvalidFEN)
	}
	b := NewBoard(false)
	for r, row := range rows {
		c := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if c >= Cols {
				return nil, fmt.Errorf("row %d too long: %w", r, ErrInvalidFEN)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			pt, ok := pieceTypeFromLetter(ch)
			if !ok {
				return nil, fmt.Errorf("invalid piece character %q: %w", ch, ErrInvalidFEN)
			}
			color := Red
			if ch >= 'a' && ch <= 'z' {
				color = Black
			}
			b.SetPiece(Sq(r, c), MakePiece(color, pt))
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("row %d has %d columns: %w", r, c, ErrInvalidFEN)
		}
	}
	if len(parts) > 1 {
		switch parts[1] {
		case "r", "w":
			b.SetSideToMove(Red)
		case "b":
			b.SetSideToMove(Black)
		default:
			return nil, fmt.Errorf("invalid side to move %q: %w", parts[1], ErrInvalidFEN)
		}
	}
	return b, nil
}
