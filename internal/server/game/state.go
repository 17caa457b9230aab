package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"xiangqi/internal/record"
	"xiangqi/internal/xiangqi"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over")
)

// GameState 一局棋：棋盘和记谱一起改，用 mu 串行化
type GameState struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu     sync.Mutex
	board  *xiangqi.Board
	record *record.Record
}

// Snapshot 某一时刻的只读视图
type Snapshot struct {
	FEN        string
	ToMove     xiangqi.Color
	LegalMoves []xiangqi.Move
	LastMove   *xiangqi.Move
	LastPly    string
	InCheck    bool
	Result     xiangqi.Result
	Over       bool
	Hash       uint64
	Plies      int
	Record     *record.Record
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked()
}

func (g *GameState) snapshotLocked() Snapshot {
	b := g.board
	s := Snapshot{
		FEN:     b.BoardFEN(),
		ToMove:  b.SideToMove(),
		InCheck: b.IsInCheck(b.SideToMove()),
		Hash:    b.Hash(),
		Plies:   b.HistoryLen(),
		Record:  g.record.Clone(),
	}
	s.Result, s.Over = b.GameResult()
	if !s.Over {
		s.LegalMoves = b.LegalMoves()
	}
	if last, ok := b.LastEntry(); ok {
		mv := last.Move
		s.LastMove = &mv
		s.LastPly = b.MoveToChinese(mv)
	}
	return s
}

// Play 只接受当前走子方的合法着法
func (g *GameState) Play(from, to xiangqi.Square) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playLocked(from, to)
}

func (g *GameState) playLocked(from, to xiangqi.Square) (Snapshot, error) {
	if _, over := g.board.GameResult(); over {
		return Snapshot{}, ErrGameOver
	}
	mv, ok := g.board.FindLegalMove(from, to)
	if !ok {
		return Snapshot{}, fmt.Errorf("%v->%v: %w", from, to, ErrIllegalMove)
	}
	if _, err := g.record.Play(g.board, mv); err != nil {
		return Snapshot{}, err
	}
	g.UpdatedAt = time.Now()
	return g.snapshotLocked(), nil
}

// PlayNotation 按中文记谱走一步
func (g *GameState) PlayNotation(s string) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, over := g.board.GameResult(); over {
		return Snapshot{}, ErrGameOver
	}
	mv, err := g.board.ParseChinese(s)
	if err != nil {
		return Snapshot{}, err
	}
	return g.playLocked(mv.From, mv.To)
}

// Undo 悔一步；没有可悔的返回 false
func (g *GameState) Undo() (Snapshot, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.board.UndoMove() {
		return g.snapshotLocked(), false
	}
	g.record.Undo()
	g.UpdatedAt = time.Now()
	return g.snapshotLocked(), true
}

// Goto 只保留前 moves 个回合，从开局重放
func (g *GameState) Goto(moves int) (Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec := g.record.Clone()
	rec.KeepMoves(moves)
	b, err := rec.Replay()
	if err != nil {
		return Snapshot{}, err
	}
	g.board, g.record = b, rec
	g.UpdatedAt = time.Now()
	return g.snapshotLocked(), nil
}

// Record 带上当前结果的记谱拷贝
func (g *GameState) Record() *record.Record {
	g.mu.Lock()
	defer g.mu.Unlock()
	rec := g.record.Clone()
	res, over := g.board.GameResult()
	rec.Result = record.PGNResult(res, over)
	return rec
}
