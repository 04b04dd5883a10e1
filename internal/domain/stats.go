package domain

import "math"

// TaskStats aggregates a task collection for the statistics panel.
type TaskStats struct {
	Total      int
	Todo       int
	InProgress int
	Done       int

	// CompletionRate is done/total as a whole percentage, 0 when empty.
	CompletionRate int

	HighPriority   int
	MediumPriority int
	LowPriority    int
}

// ComputeStats tallies the given tasks by status and priority.
func ComputeStats(tasks []Task) TaskStats {
	var s TaskStats
	s.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case TaskTodo:
			s.Todo++
		case TaskInProgress:
			s.InProgress++
		case TaskDone:
			s.Done++
		}
		switch t.Priority {
		case PriorityHigh:
			s.HighPriority++
		case PriorityMedium:
			s.MediumPriority++
		case PriorityLow:
			s.LowPriority++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Done) / float64(s.Total) * 100))
	}
	return s
}
