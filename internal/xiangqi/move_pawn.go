package xiangqi

// 兵：前进一格；过河后可左右一格，永不后退
func genPawnMoves(b *Board, from Square, moves *[]Move) {
	pc := b.PieceAt(from)
	if pc == NoPiece {
		return
	}
	color := pc.Color()

	r1 := from.Row + pawnDir(color)
	if b.canLand(r1, from.Col, color) {
		*moves = append(*moves, NewMove(from, Sq(r1, from.Col)))
	}

	if !pawnCrossedRiver(color, from.Row) {
		return
	}
	for _, dc := range [2]int{-1, +1} {
		c2 := from.Col + dc
		if b.canLand(from.Row, c2, color) {
			*moves = append(*moves, NewMove(from, Sq(from.Row, c2)))
		}
	}
}
