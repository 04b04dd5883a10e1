package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_Empty(t *testing.T) {
	s := ComputeStats(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.CompletionRate, "empty task list must not divide by zero")
}

func TestComputeStats_HalfDone(t *testing.T) {
	tasks := []Task{
		{ID: 1, Status: TaskTodo},
		{ID: 2, Status: TaskDone},
	}
	s := ComputeStats(tasks)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Todo)
	assert.Equal(t, 1, s.Done)
	assert.Equal(t, 50, s.CompletionRate)
}

func TestComputeStats_RoundsRate(t *testing.T) {
	tasks := []Task{
		{ID: 1, Status: TaskDone},
		{ID: 2, Status: TaskDone},
		{ID: 3, Status: TaskInProgress},
	}
	s := ComputeStats(tasks)
	// 2/3 = 66.67 rounds to 67.
	assert.Equal(t, 67, s.CompletionRate)
	assert.Equal(t, 1, s.InProgress)
}

func TestComputeStats_PriorityBreakdown(t *testing.T) {
	tasks := []Task{
		{ID: 1, Status: TaskTodo, Priority: PriorityHigh},
		{ID: 2, Status: TaskTodo, Priority: PriorityHigh},
		{ID: 3, Status: TaskTodo, Priority: PriorityMedium},
		{ID: 4, Status: TaskTodo, Priority: PriorityLow},
		{ID: 5, Status: TaskTodo}, // no priority set
	}
	s := ComputeStats(tasks)
	assert.Equal(t, 2, s.HighPriority)
	assert.Equal(t, 1, s.MediumPriority)
	assert.Equal(t, 1, s.LowPriority)
}
