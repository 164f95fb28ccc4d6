package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/mem"
)

// PipelineStats aggregates runtime metrics for the health and statistics
// endpoints.
type PipelineStats struct {
	MessagesStored       uint64  `json:"messages_stored"`
	AnalysesRun          uint64  `json:"analyses_run"`
	MeetingsScheduled    uint64  `json:"meetings_scheduled"`
	NotificationFailures uint64  `json:"notification_failures"`
	MessageRate          float64 `json:"message_rate"`

	AllocMemMb    uint64  `json:"alloc_mem_mb"`
	NumGC         uint32  `json:"num_gc"`
	SystemMemUsed float64 `json:"system_mem_used_percent"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// MonitoringManager collects pipeline telemetry from atomic counters.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats PipelineStats

	messagesStored       uint64
	messagesInWindow     uint64
	analysesRun          uint64
	meetingsScheduled    uint64
	notificationFailures uint64

	startedAt time.Time
	lastCheck time.Time
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	now := time.Now()
	return &MonitoringManager{
		log:       log,
		startedAt: now,
		lastCheck: now,
	}
}

func (mm *MonitoringManager) IncrMessagesStored() {
	atomic.AddUint64(&mm.messagesStored, 1)
	atomic.AddUint64(&mm.messagesInWindow, 1)
}

func (mm *MonitoringManager) IncrAnalysesRun() {
	atomic.AddUint64(&mm.analysesRun, 1)
}

func (mm *MonitoringManager) IncrMeetingsScheduled() {
	atomic.AddUint64(&mm.meetingsScheduled, 1)
}

func (mm *MonitoringManager) IncrNotificationFailures() {
	atomic.AddUint64(&mm.notificationFailures, 1)
}

// Listen refreshes the snapshot every second until the context is cancelled.
func (mm *MonitoringManager) Listen(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return
		case <-ticker.C:
			mm.updateStats()
		}
	}
}

func (mm *MonitoringManager) updateStats() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	duration := now.Sub(mm.lastCheck).Seconds()
	if duration > 0 {
		window := atomic.SwapUint64(&mm.messagesInWindow, 0)
		mm.latestStats.MessageRate = float64(window) / duration
	}
	mm.lastCheck = now

	mm.latestStats.MessagesStored = atomic.LoadUint64(&mm.messagesStored)
	mm.latestStats.AnalysesRun = atomic.LoadUint64(&mm.analysesRun)
	mm.latestStats.MeetingsScheduled = atomic.LoadUint64(&mm.meetingsScheduled)
	mm.latestStats.NotificationFailures = atomic.LoadUint64(&mm.notificationFailures)
	mm.latestStats.UptimeSeconds = now.Sub(mm.startedAt).Seconds()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC

	if vm, err := mem.VirtualMemory(); err == nil {
		mm.latestStats.SystemMemUsed = vm.UsedPercent
	}

	mm.log.Debug("Stats refreshed",
		"messages_stored", mm.latestStats.MessagesStored,
		"message_rate", mm.latestStats.MessageRate,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

func (mm *MonitoringManager) GetLatest() PipelineStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
