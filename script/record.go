package script

// TaskRecord is one element of the "tasks" list produced by FullScript.
type TaskRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Note        string   `json:"note"`
	Completed   bool     `json:"completed"`
	Flagged     bool     `json:"flagged"`
	DueDate     *string  `json:"dueDate"`
	DeferDate   *string  `json:"deferDate"`
	PlannedDate *string  `json:"plannedDate"`
	Tags        []string `json:"tags"`
	Project     *string  `json:"project"`
	InInbox     bool     `json:"inInbox"`
}

// Result is the decoded output of a FullScript run.
type Result struct {
	Tasks      []TaskRecord `json:"tasks"`
	Count      int          `json:"count"`
	Collection Collection   `json:"collection"`
}
