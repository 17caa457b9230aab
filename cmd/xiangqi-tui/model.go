package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"xiangqi/internal/record"
	"xiangqi/internal/xiangqi"
)

var (
	redPiece   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	blackPiece = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	emptyCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorBg   = lipgloss.NewStyle().Background(lipgloss.Color("1"))
	selectBg   = lipgloss.NewStyle().Background(lipgloss.Color("3"))
	targetBg   = lipgloss.NewStyle().Background(lipgloss.Color("2"))
	lastMoveBg = lipgloss.NewStyle().Background(lipgloss.Color("4"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	bannerBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Foreground(lipgloss.Color("11"))
	infoBox    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(26)
)

type model struct {
	board     *xiangqi.Board
	rec       *record.Record
	cursorRow int
	cursorCol int
	selected  *xiangqi.Square
	targets   []xiangqi.Square
	message   string
	savePath  string
}

func initialModel(b *xiangqi.Board, savePath string) model {
	rec := record.New()
	if b == nil {
		b = xiangqi.NewBoard(true)
	} else if fen := b.BoardFEN(); fen != xiangqi.NewBoard(true).BoardFEN() {
		rec.FEN = fen
	}
	return model{
		board:     b,
		rec:       rec,
		cursorRow: 9,
		cursorCol: 4,
		savePath:  savePath,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEscape:
		m.clearSelection()
		return m, nil
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < xiangqi.Rows-1 {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < xiangqi.Cols-1 {
			m.cursorCol++
		}
	case "enter", " ":
		m.selectOrMove()
	case "u":
		m.clearSelection()
		if m.board.UndoMove() {
			m.rec.Undo()
			m.message = "悔棋"
		}
	case "n":
		m = initialModel(nil, m.savePath)
		m.message = "新局"
	case "s":
		m.save()
	}
	return m, nil
}

func (m *model) clearSelection() {
	m.selected = nil
	m.targets = nil
}

func (m *model) selectOrMove() {
	if _, over := m.board.GameResult(); over {
		return
	}
	cur := xiangqi.Sq(m.cursorRow, m.cursorCol)

	if m.selected != nil {
		if *m.selected == cur {
			m.clearSelection()
			return
		}
		if mv, ok := m.board.FindLegalMove(*m.selected, cur); ok {
			ply, err := m.rec.Play(m.board, mv)
			if err != nil {
				m.message = err.Error()
			} else {
				m.message = ply
			}
			m.clearSelection()
			return
		}
	}

	pc := m.board.PieceAt(cur)
	if pc == xiangqi.NoPiece || pc.Color() != m.board.SideToMove() {
		return
	}
	m.selected = &cur
	m.targets = m.targets[:0]
	for _, mv := range m.board.LegalMoves() {
		if mv.From == cur {
			m.targets = append(m.targets, mv.To)
		}
	}
}

func (m *model) save() {
	if m.savePath == "" {
		m.message = "未指定 -save"
		return
	}
	f, err := os.Create(m.savePath)
	if err != nil {
		m.message = err.Error()
		return
	}
	defer f.Close()
	rec := m.rec.Clone()
	res, over := m.board.GameResult()
	rec.Result = record.PGNResult(res, over)
	if err := rec.Encode(f, record.FormatFromPath(m.savePath)); err != nil {
		m.message = err.Error()
		return
	}
	m.message = "已保存 " + m.savePath
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("象棋"))
	s.WriteString("\n方向键移动，回车/空格 选子走子，Esc 取消，u 悔棋，n 新局，s 保存，q 退出\n\n")

	if res, over := m.board.GameResult(); over {
		s.WriteString(bannerBox.Render(resultText(res)))
		s.WriteString("\n")
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(m.boardLines(), "\n"),
		"   ",
		infoBox.Render(strings.Join(m.infoLines(), "\n")),
	))
	s.WriteString("\n")
	return s.String()
}

func resultText(res xiangqi.Result) string {
	loser := "红方"
	if res.Loser() == xiangqi.Black {
		loser = "黑方"
	}
	if res.IsMate() {
		return fmt.Sprintf("%s被将死 (%s)", loser, res)
	}
	return fmt.Sprintf("%s困毙 (%s)", loser, res)
}

func (m model) boardLines() []string {
	var lines []string
	var head, foot strings.Builder
	head.WriteString("  ")
	foot.WriteString("  ")
	for c := 0; c < xiangqi.Cols; c++ {
		head.WriteString(fmt.Sprintf(" %d ", c+1))
		foot.WriteString(fmt.Sprintf("%s ", []string{"九", "八", "七", "六", "五", "四", "三", "二", "一"}[c]))
	}
	lines = append(lines, head.String())

	var last *xiangqi.Move
	if e, ok := m.board.LastEntry(); ok {
		last = &e.Move
	}
	for r := 0; r < xiangqi.Rows; r++ {
		var line strings.Builder
		line.WriteString(fmt.Sprintf("%d ", r))
		for c := 0; c < xiangqi.Cols; c++ {
			sq := xiangqi.Sq(r, c)
			line.WriteString(m.cell(sq, last))
		}
		lines = append(lines, line.String())
		if r == 4 {
			lines = append(lines, "  ～～～ 楚河      汉界 ～～～")
		}
	}
	lines = append(lines, foot.String())
	return lines
}

func (m model) cell(sq xiangqi.Square, last *xiangqi.Move) string {
	pc := m.board.PieceAt(sq)
	text := " ＋"
	style := emptyCell
	switch pc.Color() {
	case xiangqi.Red:
		text, style = " "+pc.String(), redPiece
	case xiangqi.Black:
		text, style = " "+pc.String(), blackPiece
	}

	switch {
	case m.cursorRow == sq.Row && m.cursorCol == sq.Col:
		style = style.Inherit(cursorBg)
	case m.selected != nil && *m.selected == sq:
		style = style.Inherit(selectBg)
	case slices.Contains(m.targets, sq):
		style = style.Inherit(targetBg)
	case last != nil && (last.From == sq || last.To == sq):
		style = style.Inherit(lastMoveBg)
	}
	return style.Render(text)
}

func (m model) infoLines() []string {
	side := "红方"
	if m.board.SideToMove() == xiangqi.Black {
		side = "黑方"
	}
	lines := []string{"轮到: " + side}
	if m.board.IsInCheck(m.board.SideToMove()) {
		lines = append(lines, "将军!")
	}
	cur := xiangqi.Sq(m.cursorRow, m.cursorCol)
	lines = append(lines, fmt.Sprintf("光标: %s %s", cur.ICCS(), m.board.PieceAt(cur)))
	if m.message != "" {
		lines = append(lines, m.message)
	}
	lines = append(lines, "", "着法:")

	moves := m.rec.Lines()
	if len(moves) > 12 {
		moves = moves[len(moves)-12:]
	}
	return append(lines, moves...)
}
