package application

// Sample is a read-only stopwatch snapshot handed to presentation layers.
type Sample struct {
	ElapsedMs int64  `json:"elapsed_ms"`
	Running   bool   `json:"running"`
	TaskName  string `json:"task_name"`
}

// TaskSummary aggregates one task across the whole history log.
type TaskSummary struct {
	TaskName  string `json:"task_name"`
	TotalMs   int64  `json:"total_ms"`
	TodayMs   int64  `json:"today_ms"`
	AverageMs int64  `json:"average_ms"` // per active day, not per record
}

// ChartPoint is one calendar date in the trend window. Minutes holds an
// entry for every top task, zero-filled, so chart consumers never see gaps.
type ChartPoint struct {
	Date    string             `json:"date"`
	Minutes map[string]float64 `json:"minutes"`
}

// Statistics is a pure function of the history log at query time.
type Statistics struct {
	Summaries     []TaskSummary `json:"summaries"`
	TopTasks      []string      `json:"top_tasks"`
	Chart         []ChartPoint  `json:"chart"`
	FrequentTasks []string      `json:"frequent_tasks"`
}
