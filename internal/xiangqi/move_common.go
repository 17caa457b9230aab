package xiangqi

var (
	rookDirs   = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
)

// 目标格可落子：空格或敌子
func (b *Board) canLand(row, col int, c Color) bool {
	if !onBoard(row, col) {
		return false
	}
	dst := b.cells[row][col]
	return dst == NoPiece || dst.Color() != c
}

// 车：横竖随便走
func genRookMoves(b *Board, from Square, moves *[]Move) {
	color := b.PieceAt(from).Color()
	for _, d := range rookDirs {
		r, c := from.Row+d[0], from.Col+d[1]
		for onBoard(r, c) {
			pc := b.cells[r][c]
			if pc == NoPiece {
				*moves = append(*moves, NewMove(from, Sq(r, c)))
			} else {
				if pc.Color() != color {
					*moves = append(*moves, NewMove(from, Sq(r, c)))
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：车走法 + 隔一子吃
func genCannonMoves(b *Board, from Square, moves *[]Move) {
	color := b.PieceAt(from).Color()
	for _, d := range rookDirs {
		r, c := from.Row+d[0], from.Col+d[1]

		// 走子阶段：直到第一个棋子（炮架）
		for onBoard(r, c) {
			if b.cells[r][c] == NoPiece {
				*moves = append(*moves, NewMove(from, Sq(r, c)))
				r += d[0]
				c += d[1]
				continue
			}
			r += d[0]
			c += d[1]
			break
		}

		// 吃子阶段：越过炮架，遇到的第一子若是敌子可吃；己方子挡住
		for onBoard(r, c) {
			pc := b.cells[r][c]
			if pc != NoPiece {
				if pc.Color() != color {
					*moves = append(*moves, NewMove(from, Sq(r, c)))
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字 + 塞象眼 + 不过河
func genElephantMoves(b *Board, from Square, moves *[]Move) {
	color := b.PieceAt(from).Color()
	for _, d := range bishopDirs {
		r := from.Row + 2*d[0]
		c := from.Col + 2*d[1]
		if !onBoard(r, c) {
			continue
		}
		if !ownHalf(color, r) {
			continue
		}
		if b.at(from.Row+d[0], from.Col+d[1]) != NoPiece {
			continue
		}
		if b.canLand(r, c, color) {
			*moves = append(*moves, NewMove(from, Sq(r, c)))
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(b *Board, from Square, moves *[]Move) {
	color := b.PieceAt(from).Color()
	for _, d := range bishopDirs {
		r := from.Row + d[0]
		c := from.Col + d[1]
		if !inPalace(color, r, c) {
			continue
		}
		if b.canLand(r, c, color) {
			*moves = append(*moves, NewMove(from, Sq(r, c)))
		}
	}
}

// 将：九宫内上下左右一格（对脸在 IsInCheck 里处理）
func genKingMoves(b *Board, from Square, moves *[]Move) {
	color := b.PieceAt(from).Color()
	for _, d := range rookDirs {
		r := from.Row + d[0]
		c := from.Col + d[1]
		if !inPalace(color, r, c) {
			continue
		}
		if b.canLand(r, c, color) {
			*moves = append(*moves, NewMove(from, Sq(r, c)))
		}
	}
}
