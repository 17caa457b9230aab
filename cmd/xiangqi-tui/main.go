package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"xiangqi/internal/record"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "start from this position")
	load := flag.String("load", "", "replay a saved record (.json/.txt/.pgn)")
	save := flag.String("save", "", "file written by the s key")
	flag.Parse()

	var b *xiangqi.Board
	if *fen != "" {
		var err error
		if b, err = xiangqi.ParseBoardFEN(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	m := initialModel(b, *save)

	if *load != "" {
		rec, err := loadRecord(*load)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if m.board, err = rec.Replay(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		m.rec = rec
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadRecord(path string) (*record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return record.Decode(f, record.FormatFromPath(path))
}
