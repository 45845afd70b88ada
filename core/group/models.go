package group

import (
	"github.com/go-playground/validator/v10"

	"github.com/ChiranjeeviNanda/joineasy-task2/core"
)

// MaxSize is the membership cap on a group.
const MaxSize = 5

// Actions
const (
	ActionCreate = "create"
	ActionJoin   = "join"
)

type Group struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	LeaderID string `json:"leader_id"`
	// MemberIDs always contains LeaderID; membership is append-only.
	MemberIDs []string `json:"member_ids"`
}

func (g Group) HasMember(id string) bool {
	for _, mid := range g.MemberIDs {
		if mid == id {
			return true
		}
	}
	return false
}

func (g Group) IsFull() bool {
	return len(g.MemberIDs) >= MaxSize
}

// Status describes a student's group standing within a course.
type Status struct {
	InGroup   bool     `json:"in_group"`
	IsLeader  bool     `json:"is_leader"`
	GroupID   string   `json:"group_id,omitempty"`
	MemberIDs []string `json:"member_ids,omitempty"`
}

// CreateOrJoinGroup contains the information needed to create or join a group.
type CreateOrJoinGroup struct {
	Action        string `json:"action" validate:"required,oneof=create join"`
	TargetGroupID string `json:"target_group_id"`
}

func (cj *CreateOrJoinGroup) Validate(validate *validator.Validate) error {
	cj.Action = core.CleanString(cj.Action, true /* lower */)
	cj.TargetGroupID = core.CleanString(cj.TargetGroupID)

	if err := validate.Struct(cj); err != nil {
		return err
	}
	if cj.Action == ActionJoin && cj.TargetGroupID == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "target_group_id", Error: "this field is required"})
	}
	return nil
}
