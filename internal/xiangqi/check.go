package xiangqi

// IsAttacked 判断 sq 是否被 bySide 攻击：对方任何棋子的伪合法走法能到达即算
func (b *Board) IsAttacked(sq Square, bySide Color) bool {
	for _, mv := range b.GeneratePseudoLegalMoves(bySide) {
		if mv.To == sq {
			return true
		}
	}
	return false
}

// IsInCheck 王不在棋盘上也视为被将
func (b *Board) IsInCheck(c Color) bool {
	kingSq, ok := b.FindKing(c)
	if !ok {
		return true
	}
	if b.IsAttacked(kingSq, c.Opposite()) {
		return true
	}
	return b.kingsFace()
}

// kingsFace 两王同列且中间无子（飞将）
func (b *Board) kingsFace() bool {
	red, okRed := b.FindKing(Red)
	black, okBlack := b.FindKing(Black)
	if !okRed || !okBlack {
		return false
	}
	if red.Col != black.Col {
		return false
	}
	lo, hi := red.Row, black.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if b.cells[r][red.Col] != NoPiece {
			return false
		}
	}
	return true
}

// IsCheckmate 无合法走法且被将
func (b *Board) IsCheckmate(c Color) bool {
	return len(b.GenerateLegalMoves(c)) == 0 && b.IsInCheck(c)
}

// IsStalemate 无合法走法但未被将（困毙）
func (b *Board) IsStalemate(c Color) bool {
	return len(b.GenerateLegalMoves(c)) == 0 && !b.IsInCheck(c)
}

// Result 负方代码 + "+"（被将死）或 "-"（被困毙）
type Result string

const (
	RedMated        Result = "r+"
	BlackMated      Result = "b+"
	RedStalemated   Result = "r-"
	BlackStalemated Result = "b-"
)

// Loser 结果码首字母即负方
func (r Result) Loser() Color {
	if len(r) == 0 {
		return NoColor
	}
	if r[0] == 'r' {
		return Red
	}
	return Black
}

func (r Result) Winner() Color {
	return r.Loser().Opposite()
}

func (r Result) IsMate() bool {
	return len(r) == 2 && r[1] == '+'
}

// GameResult 检查顺序固定：红被将死、黑被将死、红困毙、黑困毙
func (b *Board) GameResult() (Result, bool) {
	if b.IsCheckmate(Red) {
		return RedMated, true
	}
	if b.IsCheckmate(Black) {
		return BlackMated, true
	}
	if len(b.GenerateLegalMoves(Red)) == 0 {
		return RedStalemated, true
	}
	if len(b.GenerateLegalMoves(Black)) == 0 {
		return BlackStalemated, true
	}
	return "", false
}
