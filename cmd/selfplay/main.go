package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"xiangqi/internal/record"
	"xiangqi/internal/xiangqi"
)

func main() {
	totalGames := flag.Int("games", 10, "number of games to play")
	maxMoves := flag.Int("maxmoves", 200, "ply limit per game")
	seed := flag.Int64("seed", 0, "random seed (default: current time)")
	save := flag.String("save", "", "write the last game's record here (.json/.txt/.pgn)")
	bench := flag.Int("bench", 0, "run a perft benchmark to this depth instead of playing")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *bench > 0 {
		runBenchmark(*bench)
		return
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	results := make(map[xiangqi.Result]int)
	unfinished := 0
	var last *record.Record
	start := time.Now()

	for g := 0; g < *totalGames; g++ {
		rec, res, over := playRandom(rng, *maxMoves)
		if over {
			results[res]++
		} else {
			unfinished++
		}
		logrus.WithFields(logrus.Fields{
			"game":   g + 1,
			"plies":  rec.PlyCount(),
			"result": rec.Result,
		}).Info("game finished")
		last = rec
	}

	fmt.Printf("Played %d games in %v (seed %d)\n", *totalGames, time.Since(start), *seed)
	for _, r := range []xiangqi.Result{xiangqi.BlackMated, xiangqi.RedMated, xiangqi.BlackStalemated, xiangqi.RedStalemated} {
		fmt.Printf("  %s: %d\n", r, results[r])
	}
	fmt.Printf("  unfinished: %d\n", unfinished)

	if *save != "" && last != nil {
		f, err := os.Create(*save)
		if err != nil {
			logrus.Fatalf("save: %v", err)
		}
		defer f.Close()
		if err := last.Encode(f, record.FormatFromPath(*save)); err != nil {
			logrus.Fatalf("save: %v", err)
		}
	}
}

func playRandom(rng *rand.Rand, maxMoves int) (*record.Record, xiangqi.Result, bool) {
	b := xiangqi.NewBoard(true)
	rec := record.New()
	rec.Event = "selfplay"
	rec.Date = time.Now().Format("2006.01.02")
	for i := 0; i < maxMoves; i++ {
		if res, over := b.GameResult(); over {
			rec.Result = record.PGNResult(res, over)
			return rec, res, true
		}
		legal := b.LegalMoves()
		mv := legal[rng.Intn(len(legal))]
		ply, err := rec.Play(b, mv)
		if err != nil {
			logrus.Fatalf("failed to apply move %v: %v", mv, err)
		}
		logrus.Debugf("%d. %s %s", i+1, b.SideToMove().Opposite(), ply)
	}
	res, over := b.GameResult()
	rec.Result = record.PGNResult(res, over)
	return rec, res, over
}
