package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"xiangqi/internal/xiangqi"
)

// TestCase 一个局面：FEN、全部合法着法（ICCS）、随机选中的一步及其中文记谱
type TestCase struct {
	FEN      string   `json:"fen"`
	Legal    []string `json:"legal"`
	InCheck  bool     `json:"in_check"`
	Move     string   `json:"move,omitempty"`
	Notation string   `json:"notation,omitempty"`
	Result   string   `json:"result,omitempty"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxMoves := flag.Int("maxmoves", 300, "ply limit per game")
	seed := flag.Int64("seed", 0, "random seed (default: current time)")
	out := flag.String("o", "move_gen_test_data.json", "output file")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		b := xiangqi.NewBoard(true)
		for ply := 0; ply < *maxMoves; ply++ {
			tc := TestCase{FEN: b.BoardFEN(), InCheck: b.IsInCheck(b.SideToMove())}
			legalMoves := b.LegalMoves()
			for _, mv := range legalMoves {
				tc.Legal = append(tc.Legal, mv.ICCS())
			}
			if res, over := b.GameResult(); over {
				tc.Result = string(res)
				testCases = append(testCases, tc)
				break
			}

			chosen := legalMoves[rng.Intn(len(legalMoves))]
			tc.Move = chosen.ICCS()
			tc.Notation = b.MoveToChinese(chosen)
			testCases = append(testCases, tc)

			if _, err := b.MakeMove(chosen); err != nil {
				break
			}
		}
	}

	file, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, file, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Generated %d test cases from %d random games (seed %d) to %s\n", len(testCases), *numGames, *seed, *out)
}
