package types

import "time"

// ArchiveKind distinguishes project and task archive records.
type ArchiveKind string

const (
	ArchiveProject ArchiveKind = "project"
	ArchiveTask    ArchiveKind = "task"
)

// ProjectRecord is the display data pushed when a project is archived.
type ProjectRecord struct {
	Name      string   `json:"name"`
	Status    string   `json:"status"`
	Progress  int      `json:"progress"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	TeamType  string   `json:"teamType"`
	Members   []string `json:"members"`
	Category  string   `json:"category,omitempty"`
}

// TaskRecord is the display data pushed when a task is archived.
type TaskRecord struct {
	Name           string   `json:"name"`
	ProjectName    string   `json:"projectName"`
	TaskType       string   `json:"taskType"`
	Progress       int      `json:"progress"`
	Assignees      []string `json:"assignees"`
	RequiredSkills []string `json:"requiredSkills"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
}

// ArchiveJob is one queued archive push. Exactly one of Project and Task is set.
type ArchiveJob struct {
	ID         string         `json:"id"`
	Key        string         `json:"key"`
	Kind       ArchiveKind    `json:"kind"`
	Project    *ProjectRecord `json:"project,omitempty"`
	Task       *TaskRecord    `json:"task,omitempty"`
	EnqueuedAt time.Time      `json:"enqueued_at"`
}

// PushResult is the outcome of one archive push.
type PushResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PullResult is the outcome of a database query.
type PullResult struct {
	Success bool             `json:"success"`
	Results []map[string]any `json:"results,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// ConnectionStatus reports whether the archive store is reachable.
type ConnectionStatus struct {
	Connected bool   `json:"connected"`
	Error     string `json:"error,omitempty"`
}
