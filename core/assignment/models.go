package assignment

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ChiranjeeviNanda/joineasy-task2/core"
)

// Submission types
const (
	SubmissionIndividual = "Individual"
	SubmissionGroup      = "Group"
)

type Assignment struct {
	ID             string    `json:"id"`
	CourseID       string    `json:"course_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Deadline       time.Time `json:"deadline"`
	SubmissionType string    `json:"submission_type"`
	OneDriveLink   string    `json:"onedrive_link"`
	CreatedAt      time.Time `json:"created_at"` // UTC; assigned once, preserved on edit
}

func (a Assignment) IsGroupWork() bool {
	return a.SubmissionType == SubmissionGroup
}

// AssignmentData contains the information needed to create or update an
// Assignment. An empty ID means create.
type AssignmentData struct {
	ID             string    `json:"id"`
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	Deadline       time.Time `json:"deadline" validate:"required"`
	SubmissionType string    `json:"submission_type" validate:"required,oneof=Individual Group"`
	OneDriveLink   string    `json:"onedrive_link" validate:"omitempty,url"`
}

func (ad *AssignmentData) Validate(validate *validator.Validate) error {
	ad.ID = core.CleanString(ad.ID)
	ad.Title = core.CleanString(ad.Title)
	ad.Description = core.CleanString(ad.Description)
	ad.OneDriveLink = core.CleanString(ad.OneDriveLink)
	return validate.Struct(ad)
}
