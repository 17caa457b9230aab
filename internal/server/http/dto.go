package httpserver

import (
	"fmt"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构；三种写法任选其一：from/to、iccs、中文记谱
type MoveDTO struct {
	From     xiangqi.Square `json:"from"`
	To       xiangqi.Square `json:"to"`
	ICCS     string         `json:"iccs,omitempty"`
	Notation string         `json:"notation,omitempty"`
}

// NewGame 请求：fen 为空则标准开局
type NewGameRequest struct {
	FEN string `json:"fen"`
}

// Play 请求：move、iccs、notation 三选一
type PlayRequest struct {
	GameID   string   `json:"game_id"`
	Move     *MoveDTO `json:"move,omitempty"`
	ICCS     string   `json:"iccs,omitempty"`
	Notation string   `json:"notation,omitempty"`
}

// State / Undo 请求
type StateRequest struct {
	GameID string `json:"game_id"`
}

// Goto 请求：保留前 moves 个回合
type GotoRequest struct {
	GameID string `json:"game_id"`
	Moves  int    `json:"moves"`
}

type ExportRequest struct {
	GameID string `json:"game_id"`
	Format string `json:"format"` // json / txt / pgn
}

type ExportResponse struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

// Delete 请求复用 StateRequest；games 为剩余对局数
type DeleteResponse struct {
	GameID string `json:"game_id"`
	Games  int    `json:"games"`
}

type ImportRequest struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

// 所有对局类接口统一返回
type GameResponse struct {
	GameID       string      `json:"game_id"`
	Position     string      `json:"position"` // FEN 字符串
	ToMove       int         `json:"to_move"`  // 0=红, 1=黑
	LegalMoves   []MoveDTO   `json:"legal_moves"`
	LastMove     *MoveDTO    `json:"last_move,omitempty"`
	LastNotation string      `json:"last_notation,omitempty"`
	Status       string      `json:"status"` // "ongoing" 或结果码 r+ / b+ / r- / b-
	Message      string      `json:"message,omitempty"`
	InCheck      bool        `json:"in_check"`
	Hash         string      `json:"hash"`
	Moves        [][2]string `json:"moves"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func sideToInt(s xiangqi.Color) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{From: m.From, To: m.To, ICCS: m.ICCS()}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// 结果码对应的提示
func resultMessage(res xiangqi.Result) string {
	switch res {
	case xiangqi.RedMated:
		return "红方被将死，黑方胜"
	case xiangqi.BlackMated:
		return "黑方被将死，红方胜"
	case xiangqi.RedStalemated:
		return "红方困毙，黑方胜"
	case xiangqi.BlackStalemated:
		return "黑方困毙，红方胜"
	}
	return ""
}

func snapshotToResponse(id string, s game.Snapshot) GameResponse {
	resp := GameResponse{
		GameID:       id,
		Position:     s.FEN,
		ToMove:       sideToInt(s.ToMove),
		LegalMoves:   movesToDTO(s.LegalMoves),
		LastNotation: s.LastPly,
		Status:       "ongoing",
		InCheck:      s.InCheck,
		Hash:         fmt.Sprintf("%016x", s.Hash),
		Moves:        s.Record.Moves,
	}
	if s.LastMove != nil {
		mv := moveToDTO(*s.LastMove)
		mv.Notation = s.LastPly
		resp.LastMove = &mv
	}
	if s.Over {
		resp.Status = string(s.Result)
		resp.Message = resultMessage(s.Result)
	}
	return resp
}
