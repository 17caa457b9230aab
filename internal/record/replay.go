package record

import (
	"fmt"

	"xiangqi/internal/xiangqi"
)

// Replay 从开局起逐步按中文记谱找合法着法并落子
func Replay(plies []string) (*xiangqi.Board, error) {
	return replayOn(xiangqi.NewBoard(true), plies)
}

// ReplayFrom 同 Replay，但从 fen 局面开始
func ReplayFrom(fen string, plies []string) (*xiangqi.Board, error) {
	b, err := xiangqi.ParseBoardFEN(fen)
	if err != nil {
		return nil, err
	}
	return replayOn(b, plies)
}

func replayOn(b *xiangqi.Board, plies []string) (*xiangqi.Board, error) {
	for i, s := range plies {
		mv, err := b.ParseChinese(s)
		if err != nil {
			return nil, fmt.Errorf("ply %d: %w", i+1, err)
		}
		if _, err := b.MakeMove(mv); err != nil {
			return nil, fmt.Errorf("ply %d: %w", i+1, err)
		}
	}
	return b, nil
}

// Replay 重放整份记谱
func (r *Record) Replay() (*xiangqi.Board, error) {
	if r.FEN != "" {
		return ReplayFrom(r.FEN, r.Plies())
	}
	return Replay(r.Plies())
}

// Play 在 b 上按记谱走一步并记下来，返回实际着法
func (r *Record) Play(b *xiangqi.Board, mv xiangqi.Move) (string, error) {
	mover := b.SideToMove()
	if _, err := b.MakeMove(mv); err != nil {
		return "", err
	}
	ply := b.MoveToChinese(mv)
	r.Append(ply, mover)
	return ply, nil
}
