package workers

import (
	"context"
	"log/slog"
	"os"
	"time"
	"voice-relay/contract"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

type SessionCounter interface {
	Len() int
}

type HeartbeatWorker struct {
	log      *slog.Logger
	sessions SessionCounter
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, sessions SessionCounter, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:      log,
		sessions: sessions,
		interval: interval,
	}
}

// Run logs process health (CPU, RAM, status) and the number of chat sessions at every tick.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Warn("Failed to collect self stats", "error", err)
				continue
			}
			w.log.Info("Heartbeat",
				"pid", p.Pid,
				"status", status,
				"cpu_percent", cpu,
				"ram_bytes", rss,
				"sessions", w.sessions.Len(),
			)
		}
	}
}

// getSelfStats retrieves memory, CPU and OS status for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
