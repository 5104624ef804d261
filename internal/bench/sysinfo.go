// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench backs cmd/disruptorqbench: host fingerprinting and the
// scenario runner the CLI drives. It is not imported by the core
// disruptorq package.
package bench

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo describes the machine a benchmark run executed on, printed
// alongside throughput numbers so results can be compared across runs.
type HostInfo struct {
	NumCPU      int
	CPUModel    string
	CPUSpeedMHz float64
	GOARCH      string
	TotalMemory uint64
}

// GatherHostInfo collects CPU and memory information via gopsutil,
// tolerating partial failure: a platform that cannot report one field
// still reports the rest.
func GatherHostInfo() HostInfo {
	info := HostInfo{
		NumCPU: runtime.NumCPU(),
		GOARCH: runtime.GOARCH,
	}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.CPUModel = infos[0].ModelName
		info.CPUSpeedMHz = infos[0].Mhz
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		info.TotalMemory = vm.Total
	}

	return info
}
