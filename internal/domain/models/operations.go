package models

import "time"

type EquipmentStatus string

const (
	EquipmentOperational    EquipmentStatus = "Operational"
	EquipmentMaintenance    EquipmentStatus = "Maintenance"
	EquipmentRequiresRepair EquipmentStatus = "Requires Repair"
	EquipmentDecommissioned EquipmentStatus = "Decommissioned"
)

// EquipmentStatuses lists every equipment status in display order.
var EquipmentStatuses = []EquipmentStatus{EquipmentOperational, EquipmentMaintenance, EquipmentRequiresRepair, EquipmentDecommissioned}

func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentOperational, EquipmentMaintenance, EquipmentRequiresRepair, EquipmentDecommissioned:
		return true
	}
	return false
}

// EquipmentItem is a physical asset used by one or more business units.
type EquipmentItem struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Type                string          `json:"type"`
	PurchaseDate        time.Time       `json:"purchaseDate"`
	Status              EquipmentStatus `json:"status"`
	Location            string          `json:"location"`
	AssignedTo          string          `json:"assignedTo,omitempty"`
	LastMaintenanceDate *time.Time      `json:"lastMaintenanceDate,omitempty"`
}

func (e EquipmentItem) Identity() string { return e.ID }

func (e EquipmentItem) Clone() EquipmentItem {
	e.LastMaintenanceDate = cloneTime(e.LastMaintenanceDate)
	return e
}

// EquipmentInput holds the equipment form fields. A zero PurchaseDate is
// replaced by the creation time.
type EquipmentInput struct {
	Name         string
	Type         string
	PurchaseDate time.Time
	Status       EquipmentStatus
	Location     string
	AssignedTo   string
}

type EquipmentPatch struct {
	Name                *string
	Type                *string
	PurchaseDate        *time.Time
	Status              *EquipmentStatus
	Location            *string
	AssignedTo          *string
	LastMaintenanceDate *time.Time
}

func (p EquipmentPatch) Apply(e *EquipmentItem) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.PurchaseDate != nil {
		e.PurchaseDate = *p.PurchaseDate
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.AssignedTo != nil {
		e.AssignedTo = *p.AssignedTo
	}
	if p.LastMaintenanceDate != nil {
		e.LastMaintenanceDate = cloneTime(p.LastMaintenanceDate)
	}
}

type TaskStatus string

const (
	TaskToDo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
	TaskBlocked    TaskStatus = "Blocked"
)

// TaskStatuses lists every task status in board order.
var TaskStatuses = []TaskStatus{TaskToDo, TaskInProgress, TaskDone, TaskBlocked}

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskToDo, TaskInProgress, TaskDone, TaskBlocked:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Assignee    string       `json:"assignee"`
	DueDate     time.Time    `json:"dueDate"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
}

func (t Task) Identity() string { return t.ID }

// Overdue reports whether the task is still open after its due date.
func (t Task) Overdue(now time.Time) bool {
	return t.Status != TaskDone && t.DueDate.Before(now)
}

type TaskInput struct {
	Title       string
	Description string
	Assignee    string
	DueDate     time.Time
	Status      TaskStatus
	Priority    TaskPriority
}

type TaskPatch struct {
	Title       *string
	Description *string
	Assignee    *string
	DueDate     *time.Time
	Status      *TaskStatus
	Priority    *TaskPriority
}

func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
}

type EventType string

const (
	EventMarket      EventType = "market"
	EventExpenditure EventType = "expenditure"
	EventMeeting     EventType = "meeting"
	EventOther       EventType = "other"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventMarket, EventExpenditure, EventMeeting, EventOther:
		return true
	}
	return false
}

// CalendarEvent is a dated market day, planned expenditure or meeting.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Type        EventType `json:"type"`
	Description string    `json:"description,omitempty"`
	Cost        *float64  `json:"cost,omitempty"`
	Location    string    `json:"location,omitempty"`
}

func (e CalendarEvent) Identity() string { return e.ID }

func (e CalendarEvent) Clone() CalendarEvent {
	e.Cost = cloneFloat(e.Cost)
	return e
}

type EventInput struct {
	Title       string
	Date        time.Time
	Time        string
	Type        EventType
	Description string
	Cost        *float64
	Location    string
}

type EventPatch struct {
	Title       *string
	Date        *time.Time
	Time        *string
	Type        *EventType
	Description *string
	Cost        *float64
	Location    *string
}

func (p EventPatch) Apply(e *CalendarEvent) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Cost != nil {
		e.Cost = cloneFloat(p.Cost)
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
}
