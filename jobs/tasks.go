package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardWarmup pre-populates the cached dashboard panels.
	TaskDashboardWarmup = "dashboard:warmup"
	// TaskCustomerLinkAudit reports waybills that do not resolve to one customer.
	TaskCustomerLinkAudit = "customers:link_audit"
)

// DashboardWarmupPayload selects the panels to warm; empty means all.
type DashboardWarmupPayload struct {
	Panels []string `json:"panels,omitempty"`
}

// NewDashboardWarmupTask constructs an Asynq task.
func NewDashboardWarmupTask(panels ...string) (*asynq.Task, error) {
	data, err := json.Marshal(DashboardWarmupPayload{Panels: panels})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, data), nil
}

// NewCustomerLinkAuditTask constructs an Asynq task.
func NewCustomerLinkAuditTask() *asynq.Task {
	return asynq.NewTask(TaskCustomerLinkAudit, []byte("{}"))
}

// NewTask builds a task by type with its default payload.
func NewTask(name string) (*asynq.Task, error) {
	switch name {
	case TaskDashboardWarmup:
		return NewDashboardWarmupTask()
	case TaskCustomerLinkAudit:
		return NewCustomerLinkAuditTask(), nil
	default:
		return nil, fmt.Errorf("jobs: unsupported task %q", name)
	}
}

// TaskTypes lists every task the worker handles.
func TaskTypes() []string {
	return []string{TaskDashboardWarmup, TaskCustomerLinkAudit}
}
