package group

import (
	"errors"

	"github.com/google/uuid"

	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
)

var (
	// errors
	ErrNotFound       = errors.New("group not found")
	ErrFull           = errors.New("group is full")
	ErrAlreadyGrouped = errors.New("student already belongs to a group in this course")
	ErrAlreadyMember  = errors.New("student is already a member of this group")
	ErrNotStudent     = errors.New("only students may create or join groups")
)

type (
	Repository interface {
		CreateGroup(grp Group) (Group, error)
		GetGroupByID(id string) (Group, error)
		// GetGroupByMember returns the group in `courseID` containing `studentID`.
		GetGroupByMember(courseID, studentID string) (Group, error)
		QueryGroupsByCourse(courseID string) ([]Group, error)
		AddGroupMember(id, studentID string) (Group, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateOrJoin creates a new group led by the acting student, or appends them
// to an existing one. A student holds at most one group per course; membership
// never exceeds MaxSize and is append-only.
func (svc *Service) CreateOrJoin(courseID string, actor user.User, data CreateOrJoinGroup) (Group, error) {
	if !actor.IsStudent() {
		return Group{}, ErrNotStudent
	}

	current, err := svc.repo.GetGroupByMember(courseID, actor.ID)
	switch err {
	case nil:
		if data.Action == ActionJoin && current.ID == data.TargetGroupID {
			return Group{}, ErrAlreadyMember
		}
		return Group{}, ErrAlreadyGrouped
	case ErrNotFound: // proceed
	default:
		return Group{}, err
	}

	if data.Action == ActionCreate {
		grp := Group{
			ID:        uuid.New().String(),
			CourseID:  courseID,
			LeaderID:  actor.ID,
			MemberIDs: []string{actor.ID},
		}
		return svc.repo.CreateGroup(grp)
	}

	grp, err := svc.repo.GetGroupByID(data.TargetGroupID)
	if err != nil {
		return Group{}, err
	}
	if grp.CourseID != courseID {
		return Group{}, ErrNotFound
	}
	if grp.IsFull() {
		return Group{}, ErrFull
	}
	return svc.repo.AddGroupMember(grp.ID, actor.ID)
}

// StatusFor reports the student's group standing in the course; a missing
// group is not an error.
func (svc *Service) StatusFor(courseID, studentID string) (Status, error) {
	grp, err := svc.repo.GetGroupByMember(courseID, studentID)
	if err != nil {
		if err == ErrNotFound {
			return Status{}, nil
		}
		return Status{}, err
	}
	return Status{
		InGroup:   true,
		IsLeader:  grp.LeaderID == studentID,
		GroupID:   grp.ID,
		MemberIDs: grp.MemberIDs,
	}, nil
}

// QueryByCourse lists the course's groups, in creation order.
func (svc *Service) QueryByCourse(courseID string) ([]Group, error) {
	return svc.repo.QueryGroupsByCourse(courseID)
}
