package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const DefaultSystemMetricsInterval = 5 * time.Second

var (
	HostCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "host_cpu_usage_percent",
			Help: "Host CPU usage percentage",
		},
	)

	HostMemoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "host_memory_bytes",
			Help: "Host memory by kind",
		},
		[]string{"kind"},
	)

	ProcessHeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_heap_alloc_bytes",
			Help: "Go heap allocation of this process",
		},
	)

	ProcessGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_goroutines_current",
			Help: "Goroutines alive at last sample, includes in-flight carrier calls",
		},
	)
)

// StartSystemMetricsCollector снимает метрики хоста и процесса до отмены ctx.
func StartSystemMetricsCollector(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSystemMetricsInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				collectSystemMetrics(ctx)
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context) {
	// замер CPU блокирует на секунду
	cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		HostCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		HostMemoryUsage.WithLabelValues("used").Set(float64(vmStat.Used))
		HostMemoryUsage.WithLabelValues("available").Set(float64(vmStat.Available))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ProcessHeapAlloc.Set(float64(m.Alloc))
	ProcessGoroutines.Set(float64(runtime.NumGoroutine()))
}
