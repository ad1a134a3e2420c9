package filter

import (
	"fmt"

	"github.com/ncobase/taskbridge/validation"
	"github.com/ncobase/taskbridge/validation/validator"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive  ProjectStatus = "active"
	ProjectOnHold  ProjectStatus = "onHold"
	ProjectDone    ProjectStatus = "done"
	ProjectDropped ProjectStatus = "dropped"
)

// ProjectFilter selects projects. It has no deprecated aliases, so it is used
// as decoded without a normalization step.
type ProjectFilter struct {
	Status      []ProjectStatus `json:"status,omitempty" mapstructure:"status" validate:"omitempty,dive,oneof=active onHold done dropped"`
	Flagged     *bool           `json:"flagged,omitempty" mapstructure:"flagged"`
	NeedsReview *bool           `json:"needsReview,omitempty" mapstructure:"needsReview"`
	Text        string          `json:"text,omitempty" mapstructure:"text"`
	FolderID    string          `json:"folderId,omitempty" mapstructure:"folderId"`
	FolderName  string          `json:"folderName,omitempty" mapstructure:"folderName"`
	Limit       *int            `json:"limit,omitempty" mapstructure:"limit" validate:"omitempty,min=1"`
	Offset      *int            `json:"offset,omitempty" mapstructure:"offset" validate:"omitempty,min=0"`
}

var projectProperties = newAllowList(
	"status",
	"flagged",
	"needsReview",
	"text",
	"folderId",
	"folderName",
	"limit",
	"offset",
)

// KnownProjectProperties returns the accepted project filter property names.
func KnownProjectProperties() []string { return projectProperties.list() }

// ValidateProjectProperties returns the keys of raw that are not project
// filter properties, sorted.
func ValidateProjectProperties(raw map[string]any) []string {
	return projectProperties.unknown(raw)
}

// DecodeProject converts caller input into a ProjectFilter.
func DecodeProject(raw map[string]any) (ProjectFilter, error) {
	var pf ProjectFilter
	if err := decodeWeak(raw, &pf); err != nil {
		return ProjectFilter{}, fmt.Errorf("decode project filter: %w", err)
	}
	return pf, nil
}

// ValidateProjectFilter reports status values and pagination values outside
// their allowed sets.
func ValidateProjectFilter(pf ProjectFilter) []validation.Error {
	return validator.Struct(pf)
}
