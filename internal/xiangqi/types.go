package xiangqi

import "fmt"

type Color int8

const (
	NoColor Color = -1
	Red     Color = 0
	Black   Color = 1
)

func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoColor
}

// Code 单字母：r / b，FEN 和结果码里使用
func (c Color) Code() byte {
	if c == Black {
		return 'b'
	}
	return 'r'
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceRook               // 车
	PieceKnight             // 马
	PieceCannon             // 炮
	PieceElephant           // 相 / 象
	PieceAdvisor            // 仕 / 士
	PieceKing               // 帅 / 將
	PiecePawn               // 兵 / 卒
)

// Letter 返回红方（大写）字母代码
func (pt PieceType) Letter() byte {
	switch pt {
	case PieceRook:
		return 'R'
	case PieceKnight:
		return 'N'
	case PieceCannon:
		return 'C'
	case PieceElephant:
		return 'B'
	case PieceAdvisor:
		return 'A'
	case PieceKing:
		return 'K'
	case PiecePawn:
		return 'P'
	}
	return '.'
}

func pieceTypeFromLetter(ch byte) (PieceType, bool) {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'R':
		return PieceRook, true
	case 'N', 'H':
		return PieceKnight, true
	case 'C':
		return PieceCannon, true
	case 'B', 'E':
		return PieceElephant, true
	case 'A':
		return PieceAdvisor, true
	case 'K':
		return PieceKing, true
	case 'P':
		return PiecePawn, true
	}
	return PieceNone, false
}

// Piece 0=空；>0 红；<0 黑；abs=PieceType
type Piece int8

const NoPiece Piece = 0

func MakePiece(c Color, pt PieceType) Piece {
	if pt == PieceNone || c == NoColor {
		return NoPiece
	}
	if c == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Color() Color {
	if p == 0 {
		return NoColor
	}
	if p > 0 {
		return Red
	}
	return Black
}

// Code 红方大写、黑方小写，空位为 '.'
func (p Piece) Code() byte {
	if p == NoPiece {
		return '.'
	}
	l := p.Type().Letter()
	if p.Color() == Black {
		return l + ('a' - 'A')
	}
	return l
}

var redNames = [...]string{"", "车", "马", "炮", "相", "仕", "帅", "兵"}
var blackNames = [...]string{"", "車", "馬", "炮", "象", "士", "將", "卒"}

// String 返回中文棋子名
func (p Piece) String() string {
	if p == NoPiece {
		return "・"
	}
	pt := p.Type()
	if pt <= PieceNone || pt > PiecePawn {
		return "?"
	}
	if p.Color() == Red {
		return redNames[pt]
	}
	return blackNames[pt]
}

// Square 行 0 是黑方底线，行 9 是红方底线
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) Valid() bool { return onBoard(s.Row, s.Col) }

func (s Square) String() string { return fmt.Sprintf("(%d,%d)", s.Row, s.Col) }

// Move 只描述意图，不校验合法性
type Move struct {
	From        Square    `json:"from"`
	To          Square    `json:"to"`
	Promotion   PieceType `json:"-"` // 象棋没有升变，字段保留
	Comment     string    `json:"comment,omitempty"`
	IsVariation bool      `json:"is_variation,omitempty"`
}

func NewMove(from, to Square) Move { return Move{From: from, To: to} }

// SameSquares 只比较起止格
func (m Move) SameSquares(o Move) bool {
	return m.From == o.From && m.To == o.To
}

func (m Move) String() string {
	return fmt.Sprintf("Move(%v->%v)", m.From, m.To)
}

// HistoryEntry 悔棋所需的全部信息
type HistoryEntry struct {
	Move       Move
	Captured   Piece
	SideBefore Color
}
