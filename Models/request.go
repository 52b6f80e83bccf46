package Models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrConflict is returned by the version-checked save helpers when the stored
// record no longer carries the version the caller read. The caller should
// reload and retry the edit.
var ErrConflict = errors.New("record was modified by another user")

// Request is one client event request moving through the approval chain.
type Request struct {
	gorm.Model
	ClientName       string `json:"client_name" gorm:"not null"`
	EventType        string `json:"event_type" gorm:"not null"`
	EventDetails     string `json:"event_details" gorm:"not null"`
	ClientBudget     int    `json:"client_budget" gorm:"not null"`
	Feedback         string `json:"feedback"`
	Status           string `json:"status" gorm:"index"`
	AssignedTo       string `json:"assigned_to" gorm:"index"`
	CreatedBy        string `json:"created_by" gorm:"index"`
	ReadyForPlanning bool   `json:"ready_for_planning"`
	TasksFor         string `json:"tasks_for"`
	Version          int    `json:"version"`
	UserID           uint   `json:"user_id" gorm:"index"`
	Tasks            []Task `json:"tasks,omitempty" gorm:"foreignKey:RequestID"`
}

// Task is a unit of work planned against an approved request. Tasks have no
// update or delete path once created.
type Task struct {
	gorm.Model
	TaskName    string `json:"task_name" gorm:"not null"`
	TaskDetails string `json:"task_details" gorm:"not null"`
	Subteam     string `json:"subteam" gorm:"not null;index"`
	CreatedBy   string `json:"created_by"`
	RequestID   uint   `json:"request_id" gorm:"not null;index"`
}

var requestColumns = []string{
	"client_name", "event_type", "event_details", "client_budget", "feedback",
	"status", "assigned_to", "created_by", "ready_for_planning", "tasks_for",
	"version", "updated_at",
}

// SaveRequest persists an advanced request with an optimistic-concurrency
// check: the update only lands if the stored version still matches the one
// the caller read. Two actors racing on the same request cannot silently
// overwrite each other.
func SaveRequest(db *gorm.DB, req *Request) error {
	if req.ID == 0 {
		return db.Create(req).Error
	}
	readVersion := req.Version
	req.Version = readVersion + 1
	result := db.Model(&Request{}).
		Where("id = ? AND version = ?", req.ID, readVersion).
		Select(requestColumns).
		Updates(req)
	if result.Error != nil {
		req.Version = readVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		req.Version = readVersion
		return ErrConflict
	}
	return nil
}
