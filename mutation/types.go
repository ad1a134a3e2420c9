package mutation

// Operation is the kind tag of a mutation.
type Operation string

const (
	OpCreate     Operation = "create"
	OpUpdate     Operation = "update"
	OpComplete   Operation = "complete"
	OpDelete     Operation = "delete"
	OpBatch      Operation = "batch"
	OpBulkDelete Operation = "bulk_delete"
)

// Target is the entity kind a mutation applies to.
type Target string

const (
	TargetTask    Target = "task"
	TargetProject Target = "project"
)

// Caps on list-shaped mutations.
const (
	MaxBatchOperations = 100
	MaxBulkDeleteIDs   = 100
)

// Mutation is one of Create, Update, Complete, Delete, Batch or BulkDelete.
// The set is closed: only this package can add variants.
type Mutation interface {
	Operation() Operation
	mutation()
}

// RepetitionRule describes how a task repeats. DaysOfWeek uses 0 for Sunday.
type RepetitionRule struct {
	Frequency  string `json:"frequency" validate:"required,oneof=daily weekly monthly yearly"`
	Interval   *int   `json:"interval,omitempty" validate:"omitempty,min=1"`
	DaysOfWeek []int  `json:"daysOfWeek,omitempty" validate:"omitempty,dive,min=0,max=6"`
	EndDate    string `json:"endDate,omitempty"`
}

// CreateData is the payload of a task or project creation.
type CreateData struct {
	Name             string          `json:"name"`
	Note             string          `json:"note,omitempty"`
	ProjectID        string          `json:"projectId,omitempty"`
	ParentTaskID     string          `json:"parentTaskId,omitempty"`
	FolderID         string          `json:"folderId,omitempty"`
	DueDate          string          `json:"dueDate,omitempty"`
	DeferDate        string          `json:"deferDate,omitempty"`
	PlannedDate      string          `json:"plannedDate,omitempty"`
	Flagged          *bool           `json:"flagged,omitempty"`
	EstimatedMinutes *int            `json:"estimatedMinutes,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	Sequential       *bool           `json:"sequential,omitempty"`
	Status           string          `json:"status,omitempty"`
	RepetitionRule   *RepetitionRule `json:"repetitionRule,omitempty"`
}

// Changes is the payload of an update. Nil fields are left untouched. Tags
// replaces the whole tag set and cannot be combined with AddTags/RemoveTags.
type Changes struct {
	Name                *string         `json:"name,omitempty"`
	Note                *string         `json:"note,omitempty"`
	DueDate             *string         `json:"dueDate,omitempty"`
	DeferDate           *string         `json:"deferDate,omitempty"`
	PlannedDate         *string         `json:"plannedDate,omitempty"`
	ClearDueDate        *bool           `json:"clearDueDate,omitempty"`
	ClearDeferDate      *bool           `json:"clearDeferDate,omitempty"`
	ClearPlannedDate    *bool           `json:"clearPlannedDate,omitempty"`
	Flagged             *bool           `json:"flagged,omitempty"`
	EstimatedMinutes    *int            `json:"estimatedMinutes,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	AddTags             []string        `json:"addTags,omitempty"`
	RemoveTags          []string        `json:"removeTags,omitempty"`
	ProjectID           *string         `json:"projectId,omitempty"`
	Status              *string         `json:"status,omitempty"`
	Sequential          *bool           `json:"sequential,omitempty"`
	RepetitionRule      *RepetitionRule `json:"repetitionRule,omitempty"`
	ClearRepetitionRule *bool           `json:"clearRepetitionRule,omitempty"`
}

// IsEmpty reports whether c changes nothing.
func (c *Changes) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Name == nil && c.Note == nil &&
		c.DueDate == nil && c.DeferDate == nil && c.PlannedDate == nil &&
		c.ClearDueDate == nil && c.ClearDeferDate == nil && c.ClearPlannedDate == nil &&
		c.Flagged == nil && c.EstimatedMinutes == nil &&
		c.Tags == nil && c.AddTags == nil && c.RemoveTags == nil &&
		c.ProjectID == nil && c.Status == nil && c.Sequential == nil &&
		c.RepetitionRule == nil && c.ClearRepetitionRule == nil
}

// Create adds a task or project.
type Create struct {
	Target Target      `json:"target"`
	Data   *CreateData `json:"data"`
}

// Update changes fields of an existing task or project.
type Update struct {
	Target  Target   `json:"target"`
	ID      string   `json:"id"`
	Changes *Changes `json:"changes"`
}

// Complete marks a task or project done, optionally at a given date.
type Complete struct {
	Target         Target `json:"target"`
	ID             string `json:"id"`
	CompletionDate string `json:"completionDate,omitempty"`
}

// Delete removes a task or project.
type Delete struct {
	Target Target `json:"target"`
	ID     string `json:"id"`
}

// BatchOperation is one step of a Batch. TempID lets later steps refer to an
// item created earlier in the same batch through ParentTempID.
type BatchOperation struct {
	Operation      Operation   `json:"operation"`
	Target         Target      `json:"target,omitempty"`
	TempID         string      `json:"tempId,omitempty"`
	ParentTempID   string      `json:"parentTempId,omitempty"`
	ID             string      `json:"id,omitempty"`
	Data           *CreateData `json:"data,omitempty"`
	Changes        *Changes    `json:"changes,omitempty"`
	CompletionDate string      `json:"completionDate,omitempty"`
}

// Batch runs up to MaxBatchOperations steps.
type Batch struct {
	Target      Target           `json:"target,omitempty"`
	Operations  []BatchOperation `json:"operations"`
	StopOnError *bool            `json:"stopOnError,omitempty"`
}

// BulkDelete removes up to MaxBulkDeleteIDs items.
type BulkDelete struct {
	Target Target   `json:"target"`
	IDs    []string `json:"ids"`
}

func (*Create) Operation() Operation     { return OpCreate }
func (*Update) Operation() Operation     { return OpUpdate }
func (*Complete) Operation() Operation   { return OpComplete }
func (*Delete) Operation() Operation     { return OpDelete }
func (*Batch) Operation() Operation      { return OpBatch }
func (*BulkDelete) Operation() Operation { return OpBulkDelete }

func (*Create) mutation()     {}
func (*Update) mutation()     {}
func (*Complete) mutation()   {}
func (*Delete) mutation()     {}
func (*Batch) mutation()      {}
func (*BulkDelete) mutation() {}
