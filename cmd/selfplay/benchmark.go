package main

import (
	"fmt"
	"time"

	"xiangqi/internal/xiangqi"
)

// runBenchmark 从开局逐层跑 perft，输出节点数和速度
func runBenchmark(maxDepth int) {
	for d := 1; d <= maxDepth; d++ {
		b := xiangqi.NewBoard(true)
		start := time.Now()
		nodes := b.Perft(d)
		elapsed := time.Since(start)
		nps := int64(0)
		if elapsed > 0 {
			nps = int64(float64(nodes) / elapsed.Seconds())
		}
		fmt.Printf("perft(%d) = %d, time %v, nps %d\n", d, nodes, elapsed, nps)
	}
}
