package application

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/quentel/tally/internal/domain"
	"github.com/quentel/tally/internal/ports"
)

const historyLogKey = "history.json"

const (
	topTaskLimit      = 5
	frequentTaskLimit = 8
	chartWindowDays   = 30
	msPerMinute       = 60_000.0
)

type historySchema struct {
	Version int                    `json:"version"`
	Records []domain.SessionRecord `json:"records"`
}

// HistoryService owns the append-only session log and its derived
// statistics. The whole log is the unit of persistence: it is read once on
// first use and rewritten on every mutation. A corrupt persisted log is
// treated as no history, and a failed write leaves the in-memory log
// authoritative for the rest of the process.
type HistoryService struct {
	store  ports.StateStore
	ids    ports.IDGenerator
	clock  ports.Clock
	logger *slog.Logger

	loaded  bool
	records []domain.SessionRecord
}

func NewHistoryService(store ports.StateStore, ids ports.IDGenerator, clock ports.Clock, logger *slog.Logger) *HistoryService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &HistoryService{store: store, ids: ids, clock: clock, logger: logger}
}

// Add commits a finished session to the log, most recent first. A session
// with no elapsed time is rejected with ErrEmptySession; there is nothing
// meaningful to record.
func (s *HistoryService) Add(ctx context.Context, taskName string, durationMs int64) (domain.SessionRecord, error) {
	s.ensureLoaded(ctx)

	if durationMs <= 0 {
		return domain.SessionRecord{}, domain.ErrEmptySession
	}

	record := domain.NewSessionRecord(
		domain.RecordID(s.ids.NewID()),
		taskName,
		durationMs,
		s.clock.Now(),
	)

	s.records = append([]domain.SessionRecord{record}, s.records...)
	s.persist(ctx)

	return record, nil
}

// List returns the log, most recent first.
func (s *HistoryService) List(ctx context.Context) []domain.SessionRecord {
	s.ensureLoaded(ctx)
	return slices.Clone(s.records)
}

// Delete removes exactly the record with the given id, keeping the order of
// the rest. An unknown id is a no-op, not an error.
func (s *HistoryService) Delete(ctx context.Context, id domain.RecordID) {
	s.ensureLoaded(ctx)

	for i, record := range s.records {
		if record.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the log unconditionally. Confirmation is the caller's job.
func (s *HistoryService) Clear(ctx context.Context) {
	s.ensureLoaded(ctx)

	s.records = nil
	s.persist(ctx)
}

// RenameTask rewrites the task name across all matching records and reports
// how many were changed.
func (s *HistoryService) RenameTask(ctx context.Context, oldName, newName string) int {
	s.ensureLoaded(ctx)

	newName = strings.TrimSpace(newName)
	if newName == "" {
		newName = domain.PlaceholderTaskName
	}

	renamed := 0
	for i := range s.records {
		if s.records[i].TaskName == oldName {
			s.records[i].TaskName = newName
			renamed++
		}
	}

	if renamed > 0 {
		s.persist(ctx)
	}

	return renamed
}

// Statistics recomputes all derived aggregates from the current log.
func (s *HistoryService) Statistics(ctx context.Context) Statistics {
	s.ensureLoaded(ctx)
	return computeStatistics(s.records, s.clock.Now())
}

func computeStatistics(records []domain.SessionRecord, now time.Time) Statistics {
	today := now.Format(domain.DateLayout)

	type taskAggregate struct {
		name       string
		totalMs    int64
		todayMs    int64
		count      int
		activeDays map[string]struct{}
	}

	byName := map[string]*taskAggregate{}
	encountered := []*taskAggregate{}
	for _, record := range records {
		agg, ok := byName[record.TaskName]
		if !ok {
			agg = &taskAggregate{name: record.TaskName, activeDays: map[string]struct{}{}}
			byName[record.TaskName] = agg
			encountered = append(encountered, agg)
		}

		agg.totalMs += record.DurationMs
		agg.count++
		agg.activeDays[record.Date] = struct{}{}
		if record.Date == today {
			agg.todayMs += record.DurationMs
		}
	}

	// Stable sorts keep encounter order for ties.
	byTotal := slices.Clone(encountered)
	sort.SliceStable(byTotal, func(i, j int) bool { return byTotal[i].totalMs > byTotal[j].totalMs })

	summaries := make([]TaskSummary, 0, len(byTotal))
	for _, agg := range byTotal {
		var average int64
		if days := len(agg.activeDays); days > 0 {
			average = agg.totalMs / int64(days)
		}
		summaries = append(summaries, TaskSummary{
			TaskName:  agg.name,
			TotalMs:   agg.totalMs,
			TodayMs:   agg.todayMs,
			AverageMs: average,
		})
	}

	topTasks := make([]string, 0, topTaskLimit)
	for _, summary := range summaries {
		if len(topTasks) == topTaskLimit {
			break
		}
		topTasks = append(topTasks, summary.TaskName)
	}

	byCount := slices.Clone(encountered)
	sort.SliceStable(byCount, func(i, j int) bool { return byCount[i].count > byCount[j].count })

	frequent := make([]string, 0, frequentTaskLimit)
	for _, agg := range byCount {
		if len(frequent) == frequentTaskLimit {
			break
		}
		frequent = append(frequent, agg.name)
	}

	return Statistics{
		Summaries:     summaries,
		TopTasks:      topTasks,
		Chart:         computeChart(records, topTasks, now),
		FrequentTasks: frequent,
	}
}

// computeChart builds the fixed window of the last chartWindowDays calendar
// dates ending today, zero-filled for every top task so no date/task pair is
// ever absent.
func computeChart(records []domain.SessionRecord, topTasks []string, now time.Time) []ChartPoint {
	chart := make([]ChartPoint, 0, chartWindowDays)
	dateIndex := make(map[string]int, chartWindowDays)
	for offset := chartWindowDays - 1; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset).Format(domain.DateLayout)
		minutes := make(map[string]float64, len(topTasks))
		for _, task := range topTasks {
			minutes[task] = 0
		}
		dateIndex[date] = len(chart)
		chart = append(chart, ChartPoint{Date: date, Minutes: minutes})
	}

	topSet := make(map[string]struct{}, len(topTasks))
	for _, task := range topTasks {
		topSet[task] = struct{}{}
	}

	for _, record := range records {
		if _, ok := topSet[record.TaskName]; !ok {
			continue
		}
		i, ok := dateIndex[record.Date]
		if !ok {
			continue
		}
		chart[i].Minutes[record.TaskName] += float64(record.DurationMs) / msPerMinute
	}

	return chart
}

// ensureLoaded restores the persisted log once per service lifetime. Absent
// or corrupt payloads fail open to an empty log.
func (s *HistoryService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true

	raw, err := s.store.Get(ctx, historyLogKey)
	if err != nil {
		if !errors.Is(err, ports.ErrKeyNotFound) {
			s.logger.Warn("load history log", "error", err)
		}
		return
	}

	var schema historySchema
	if err := json.Unmarshal([]byte(raw), &schema); err != nil {
		s.logger.Warn("discard corrupt history log", "error", err)
		return
	}

	s.records = schema.Records
}

func (s *HistoryService) persist(ctx context.Context) {
	data, err := json.Marshal(historySchema{Version: 1, Records: s.records})
	if err != nil {
		s.logger.Warn("encode history log", "error", err)
		return
	}

	if err := s.store.Put(ctx, historyLogKey, string(data)); err != nil {
		s.logger.Warn("persist history log", "error", err)
	}
}
