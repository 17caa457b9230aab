package xiangqi

// Perft 数出 depth 层内的合法着法叶子数，用来核对走法生成
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, mv := range moves {
		if _, err := b.MakeMove(mv); err != nil {
			continue
		}
		n += b.Perft(depth - 1)
		b.UndoMove()
	}
	return n
}
