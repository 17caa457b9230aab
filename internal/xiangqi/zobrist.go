package xiangqi

import "sync"

const zobristPieceTypes = 8 // PieceType 范围 [1..7]，0 保留空位不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

// initZobrist 第一次 CalculateHash 时生成键表；所有棋盘构造都会先走 CalculateHash
func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for color := 0; color < 2; color++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[color][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc == NoPiece || !sq.Valid() {
		return 0
	}
	var colorIdx int
	switch pc.Color() {
	case Red:
		colorIdx = 0
	case Black:
		colorIdx = 1
	default:
		return 0
	}
	pt := int(pc.Type())
	if pt <= 0 || pt >= zobristPieceTypes {
		return 0
	}
	return zobristPieces[colorIdx][pt][sq.Row*Cols+sq.Col]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希
func (b *Board) CalculateHash() uint64 {
	initZobrist()
	var h uint64
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			h ^= pieceHashKey(b.cells[r][c], Sq(r, c))
		}
	}
	if b.sideToMove == Black {
		h ^= zobristSide
	}
	return h
}

// Hash 增量维护的局面键，走子/悔棋后与 CalculateHash 一致
func (b *Board) Hash() uint64 { return b.hash }
