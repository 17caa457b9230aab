package xiangqi

import "errors"

var (
	ErrNoPieceAtSource    = errors.New("no piece at source square")
	ErrOffBoard           = errors.New("square off board")
	ErrInvalidFEN         = errors.New("invalid FEN")
	ErrInvalidICCS        = errors.New("invalid ICCS move")
	ErrNoMatchingNotation = errors.New("no legal move matches notation")
)
