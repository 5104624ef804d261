// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command disruptorqbench runs disruptorq's fixed-size end-to-end
// scenarios and reports their throughput, optionally rendering a
// throughput chart.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"code.hybscloud.com/disruptorq/internal/bench"
)

func main() {
	plotPath := flag.String("plot", "", "if set, render a throughput chart to this PNG path")
	flag.Parse()

	scenarios := bench.Scenarios()
	bar := progressbar.Default(int64(len(scenarios)), "running scenarios")

	host := bench.GatherHostInfo()
	fmt.Printf("host: %d cpus (%s), %s, %d MB ram\n",
		host.NumCPU, host.GOARCH, host.CPUModel, host.TotalMemory/(1024*1024))

	results := make([]bench.Result, 0, len(scenarios))
	for _, scenario := range scenarios {
		result := scenario()
		results = append(results, result)
		fmt.Printf("%-18s items=%-10d elapsed=%-12s throughput=%.0f items/sec\n",
			result.Name, result.Items, result.Elapsed, result.Throughput)
		_ = bar.Add(1)
	}
	fmt.Println()

	if *plotPath != "" {
		if err := renderThroughputChart(results, *plotPath); err != nil {
			fmt.Fprintf(os.Stderr, "render chart: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *plotPath)
	}
}
