package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mizuki-dev/task-tracker-api/internal/constants"
	"github.com/mizuki-dev/task-tracker-api/internal/repository"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Version   string  `json:"version"`
	Database  string  `json:"database"`
	Uptime    float64 `json:"uptime"`
}

// MonitorService reports store connectivity and aggregate counters. The
// process start time is injected once at startup; the service holds no other
// state.
type MonitorService struct {
	statsRepo repository.StatsRepository
	startTime time.Time
}

// NewMonitorService creates a new MonitorService.
func NewMonitorService(statsRepo repository.StatsRepository, startTime time.Time) *MonitorService {
	return &MonitorService{
		statsRepo: statsRepo,
		startTime: startTime,
	}
}

// Health probes the store and reports overall status. A failing probe yields
// an unhealthy report, never an error.
func (s *MonitorService) Health() HealthStatus {
	dbStatus := "healthy"
	if err := s.statsRepo.Ping(); err != nil {
		dbStatus = "unhealthy"
	}

	return HealthStatus{
		Status:    dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   constants.AppVersion,
		Database:  dbStatus,
		Uptime:    time.Since(s.startTime).Seconds(),
	}
}

// Metrics renders a Prometheus-style text exposition of the application
// counters and system gauges.
func (s *MonitorService) Metrics() (string, error) {
	userCount, err := s.statsRepo.CountUsers()
	if err != nil {
		return "", fmt.Errorf("failed to count users: %w", err)
	}
	taskCount, err := s.statsRepo.CountTasks()
	if err != nil {
		return "", fmt.Errorf("failed to count tasks: %w", err)
	}
	completedCount, err := s.statsRepo.CountCompletedTasks()
	if err != nil {
		return "", fmt.Errorf("failed to count completed tasks: %w", err)
	}

	var cpuPercent float64
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuPercent = percents[0]
	}

	var memPercent float64
	if vm, err := mem.VirtualMemory(); err == nil {
		memPercent = vm.UsedPercent
	}

	var b strings.Builder
	writeSeries(&b, "taskapi_users_total", "Total number of users", "counter", strconv.FormatInt(userCount, 10))
	writeSeries(&b, "taskapi_tasks_total", "Total number of tasks", "counter", strconv.FormatInt(taskCount, 10))
	writeSeries(&b, "taskapi_tasks_completed", "Total number of completed tasks", "counter", strconv.FormatInt(completedCount, 10))
	writeSeries(&b, "taskapi_cpu_usage", "CPU usage percentage", "gauge", formatGauge(cpuPercent))
	writeSeries(&b, "taskapi_memory_usage", "Memory usage percentage", "gauge", formatGauge(memPercent))
	writeSeries(&b, "taskapi_uptime", "Application uptime in seconds", "counter", formatGauge(time.Since(s.startTime).Seconds()))

	return b.String(), nil
}

func formatGauge(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func writeSeries(b *strings.Builder, name, help, kind, value string) {
	fmt.Fprintf(b, "# HELP %s %s\n", name, help)
	fmt.Fprintf(b, "# TYPE %s %s\n", name, kind)
	fmt.Fprintf(b, "%s %s\n\n", name, value)
}
