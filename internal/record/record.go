// Package record 保存对局的中文记谱：按回合分成红、黑两列，可以导出、导入并重放。
package record

import (
	"fmt"

	"xiangqi/internal/xiangqi"
)

// Record 一局棋的记谱。Moves[i] = {红方着法, 黑方着法}，未走的一侧为空串。
// FEN 非空时表示从该局面开始，否则从标准开局开始。
type Record struct {
	Event  string      `json:"event,omitempty"`
	Date   string      `json:"date,omitempty"`
	Result string      `json:"result,omitempty"`
	FEN    string      `json:"fen,omitempty"`
	Moves  [][2]string `json:"moves"`
}

func New() *Record {
	return &Record{Moves: [][2]string{}}
}

// Append 记下一步。红方总是开新回合；黑方填进当前回合，黑先时单独开一回合。
func (r *Record) Append(ply string, mover xiangqi.Color) {
	n := len(r.Moves)
	if mover == xiangqi.Black {
		if n > 0 && r.Moves[n-1][1] == "" {
			r.Moves[n-1][1] = ply
			return
		}
		r.Moves = append(r.Moves, [2]string{"", ply})
		return
	}
	r.Moves = append(r.Moves, [2]string{ply, ""})
}

// Undo 删掉最后一步，没有记录时返回 false
func (r *Record) Undo() bool {
	n := len(r.Moves)
	if n == 0 {
		return false
	}
	last := &r.Moves[n-1]
	if last[1] != "" && last[0] != "" {
		last[1] = ""
		return true
	}
	r.Moves = r.Moves[:n-1]
	return true
}

// Plies 按走子顺序展开，跳过空位
func (r *Record) Plies() []string {
	out := make([]string, 0, 2*len(r.Moves))
	for _, mv := range r.Moves {
		for _, s := range mv {
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func (r *Record) PlyCount() int {
	n := 0
	for _, mv := range r.Moves {
		for _, s := range mv {
			if s != "" {
				n++
			}
		}
	}
	return n
}

// Truncate 只保留前 plies 步
func (r *Record) Truncate(plies int) {
	if plies < 0 {
		plies = 0
	}
	for r.PlyCount() > plies {
		r.Undo()
	}
}

// KeepMoves 只保留前 n 个回合
func (r *Record) KeepMoves(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(r.Moves) {
		r.Moves = r.Moves[:n]
	}
}

func (r *Record) Clone() *Record {
	nr := *r
	nr.Moves = append([][2]string{}, r.Moves...)
	return &nr
}

// Lines 每回合一行，如 "1. 兵七进一  炮2平3"
func (r *Record) Lines() []string {
	out := make([]string, len(r.Moves))
	for i, mv := range r.Moves {
		red := mv[0]
		if red == "" {
			red = blackFirstMark
		}
		out[i] = fmt.Sprintf("%d. %s  %s", i+1, red, mv[1])
	}
	return out
}

// PGNResult 把对局结果换成 PGN 的结果标记，未结束为 "*"
func PGNResult(res xiangqi.Result, over bool) string {
	if !over {
		return "*"
	}
	switch res.Winner() {
	case xiangqi.Red:
		return "1-0"
	case xiangqi.Black:
		return "0-1"
	}
	return "*"
}
