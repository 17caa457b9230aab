package xiangqi

import (
	"fmt"
	"strconv"
	"strings"
)

// 汉字数字（列号、步数）
var cnNum = [...]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// 红方列号从右到左 9..1 用汉字，黑方从左到右 1..9 用数字
func colLabel(col int, c Color) string {
	if c == Red {
		return cnNum[Cols-col]
	}
	return strconv.Itoa(col + 1)
}

func stepLabel(n int, c Color) string {
	if c == Red && n >= 0 && n < len(cnNum) {
		return cnNum[n]
	}
	return strconv.Itoa(n)
}

// MoveToChinese 生成中文记谱，如“炮二平五”“马8进7”“前车进一”。
// 若这步刚走完（历史最后一步就是它），从终点取子，并按走子前的局面判断前后；
// 否则取起点上的子。
func (b *Board) MoveToChinese(m Move) string {
	before := b.PieceAt
	mover := b.PieceAt(m.From)
	if last, ok := b.LastEntry(); ok && last.Move.SameSquares(m) && b.PieceAt(m.To) != NoPiece {
		mover = b.PieceAt(m.To)
		before = func(sq Square) Piece {
			switch sq {
			case m.From:
				return mover
			case m.To:
				return last.Captured
			}
			return b.PieceAt(sq)
		}
	}
	if mover == NoPiece {
		return fmt.Sprintf("%v->%v", m.From, m.To)
	}

	color := mover.Color()
	from, to := m.From, m.To

	// 同列同种子：红方行号小的在前，黑方行号大的在前
	prefix := ""
	front, count := -1, 0
	for r := 0; r < Rows; r++ {
		if before(Sq(r, from.Col)) != mover {
			continue
		}
		count++
		if front == -1 || color == Black {
			front = r
		}
	}
	if count > 1 {
		if from.Row == front {
			prefix = "前"
		} else {
			prefix = "后"
		}
	}

	diff := to.Row - from.Row
	action := "退"
	if (color == Red && diff < 0) || (color == Black && diff > 0) {
		action = "进"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(mover.String())
	sb.WriteString(colLabel(from.Col, color))

	switch mover.Type() {
	case PieceKnight, PieceElephant, PieceAdvisor:
		// 斜走的子不用“平”
		sb.WriteString(action)
		sb.WriteString(colLabel(to.Col, color))
	default:
		if from.Col == to.Col {
			steps := diff
			if steps < 0 {
				steps = -steps
			}
			sb.WriteString(action)
			sb.WriteString(stepLabel(steps, color))
		} else {
			sb.WriteString("平")
			sb.WriteString(colLabel(to.Col, color))
		}
	}
	return sb.String()
}

// ParseChinese 在当前走子方的合法走法中找记谱完全一致的一步，找不到再去掉首尾空白比较
func (b *Board) ParseChinese(s string) (Move, error) {
	legal := b.LegalMoves()
	for _, mv := range legal {
		if b.MoveToChinese(mv) == s {
			return mv, nil
		}
	}
	want := strings.TrimSpace(s)
	for _, mv := range legal {
		if strings.TrimSpace(b.MoveToChinese(mv)) == want {
			return mv, nil
		}
	}
	return Move{}, fmt.Errorf("%q: %w", s, ErrNoMatchingNotation)
}
