package main

import (
	"flag"
	"fmt"
	"os"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: start position)")
	depth := flag.Int("perft", 0, "also print perft counts up to this depth")
	flag.Parse()

	b := xiangqi.NewBoard(true)
	if *fen != "" {
		var err error
		if b, err = xiangqi.ParseBoardFEN(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	side := b.SideToMove()
	fmt.Println("FEN:", b.BoardFEN())
	fmt.Println("Hash:", fmt.Sprintf("%016x", b.Hash()))
	fmt.Println("Pseudo legal moves:", len(b.PseudoLegalMoves()))
	legal := b.LegalMoves()
	fmt.Println("Legal moves:", len(legal))
	for _, mv := range legal {
		fmt.Printf("  %s  %s\n", mv.ICCS(), b.MoveToChinese(mv))
	}
	fmt.Println("In check:", b.IsInCheck(side))
	if res, over := b.GameResult(); over {
		fmt.Println("Result:", res)
	}
	for d := 1; d <= *depth; d++ {
		fmt.Printf("perft(%d) = %d\n", d, b.Perft(d))
	}
}
