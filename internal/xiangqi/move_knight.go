package xiangqi

// 马 8 种“日”字：终点 + 马腿
var knightLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

func genKnightMoves(b *Board, from Square, moves *[]Move) {
	color := b.PieceAt(from).Color()
	for _, m := range knightLegMoves {
		r := from.Row + m.Dr
		c := from.Col + m.Dc
		if !onBoard(r, c) {
			continue
		}
		if b.at(from.Row+m.Br, from.Col+m.Bc) != NoPiece {
			continue // 憋马腿
		}
		if b.canLand(r, c, color) {
			*moves = append(*moves, NewMove(from, Sq(r, c)))
		}
	}
}
