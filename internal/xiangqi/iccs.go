package xiangqi

import "fmt"

// ICCS 坐标：列 a..i 从左到右，行 0..9 从红方底线算起，例如炮二平五 = "h2e2"
func (s Square) ICCS() string {
	return string([]byte{byte('a' + s.Col), byte('0' + (Rows - 1 - s.Row))})
}

func (m Move) ICCS() string {
	return m.From.ICCS() + m.To.ICCS()
}

func parseICCSSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'I' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'i' || rank < '0' || rank > '9' {
		return Square{}, false
	}
	return Sq(Rows-1-int(rank-'0'), int(file-'a')), true
}

// ParseICCS 解析 "h2e2" 或 "h2-e2"
func ParseICCS(s string) (Move, error) {
	if len(s) == 5 && s[2] == '-' {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidICCS)
	}
	from, ok1 := parseICCSSquare(s[:2])
	to, ok2 := parseICCSSquare(s[2:])
	if !ok1 || !ok2 {
		return Move{}, fmt.Errorf("%q: %w", s, ErrInvalidICCS)
	}
	return NewMove(from, to), nil
}
