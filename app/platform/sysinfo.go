package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type SystemInfo struct {
	OS     string
	CPU    string
	Cores  int
	Memory uint64
}

func (info SystemInfo) String() string {
	return fmt.Sprintf("%s | %s (%d threads) | %s RAM", info.OS, info.CPU, info.Cores, humanize.IBytes(info.Memory))
}

// GetSystemInfo collects what's available, missing parts are left at zero values.
func GetSystemInfo() SystemInfo {
	info := SystemInfo{
		OS:    runtime.GOOS + "/" + runtime.GOARCH,
		CPU:   "Unknown CPU",
		Cores: runtime.NumCPU(),
	}

	if hInfo, err := host.Info(); err == nil {
		info.OS = fmt.Sprintf("%s %s (%s)", hInfo.Platform, hInfo.PlatformVersion, hInfo.KernelArch)
	}

	if cInfo, err := cpu.Info(); err == nil && len(cInfo) > 0 {
		info.CPU = cInfo[0].ModelName
	}

	if vMem, err := mem.VirtualMemory(); err == nil {
		info.Memory = vMem.Total
	}

	return info
}

func LogSystemInfo() {
	log.Println("System:", GetSystemInfo().String())
}
