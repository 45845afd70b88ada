package submission

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ChiranjeeviNanda/joineasy-task2/core/assignment"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/group"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
)

var (
	// errors
	ErrNotFound       = errors.New("acknowledgment not found")
	ErrForbidden      = errors.New("only students may acknowledge submissions")
	ErrNotInGroup     = errors.New("not in a group for this assignment")
	ErrNotGroupLeader = errors.New("only the group leader can submit")
	// ErrAlreadyAcknowledged is informational: the submission is already
	// satisfied and no state changed.
	ErrAlreadyAcknowledged = errors.New("this submission was already acknowledged")

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		CreateAcknowledgment(ack Acknowledgment) (Acknowledgment, error)
		GetAcknowledgment(assignmentID, submitterID string) (Acknowledgment, error)
		QueryAcknowledgmentsByAssignment(assignmentID string) ([]Acknowledgment, error)
		DeleteAcknowledgmentsByAssignment(assignmentID string) error
	}

	Service struct {
		repo    Repository
		asgRepo assignment.Repository
		grpRepo group.Repository
	}
)

func NewService(repo Repository, asgRepo assignment.Repository, grpRepo group.Repository) *Service {
	return &Service{
		repo:    repo,
		asgRepo: asgRepo,
		grpRepo: grpRepo,
	}
}

// Acknowledge validates and records a submission acknowledgment for the
// assignment, acting on behalf of `actor`. For Group assignments only the
// group leader may acknowledge, with the group as submitter. A repeated
// acknowledgment returns the stored record with ErrAlreadyAcknowledged.
func (svc *Service) Acknowledge(assignmentID, courseID string, actor user.User) (Acknowledgment, error) {
	if !actor.IsStudent() {
		return Acknowledgment{}, ErrForbidden
	}

	asg, err := svc.asgRepo.GetAssignmentByID(assignmentID)
	if err != nil {
		return Acknowledgment{}, err
	}
	if asg.CourseID != courseID {
		return Acknowledgment{}, assignment.ErrNotFound
	}

	submitterID := actor.ID
	if asg.IsGroupWork() {
		grp, err := svc.grpRepo.GetGroupByMember(courseID, actor.ID)
		if err != nil {
			if err == group.ErrNotFound {
				return Acknowledgment{}, ErrNotInGroup
			}
			return Acknowledgment{}, err
		}
		if grp.LeaderID != actor.ID {
			return Acknowledgment{}, ErrNotGroupLeader
		}
		submitterID = grp.ID
	}

	if ack, err := svc.repo.GetAcknowledgment(assignmentID, submitterID); err == nil {
		return ack, ErrAlreadyAcknowledged
	} else if err != ErrNotFound {
		return Acknowledgment{}, err
	}

	ack := Acknowledgment{
		ID:           uuid.New().String(),
		AssignmentID: assignmentID,
		SubmitterID:  submitterID,
		Acknowledged: true,
		Timestamp:    NowFunc().UTC(),
	}
	return svc.repo.CreateAcknowledgment(ack)
}

// Progress derives the assignment's submission counts from the acknowledgment
// collection and the course roster (Individual) or the course's groups (Group).
func (svc *Service) Progress(asg assignment.Assignment, crs course.Course) (Progress, error) {
	acks, err := svc.repo.QueryAcknowledgmentsByAssignment(asg.ID)
	if err != nil {
		return Progress{}, err
	}

	var total int
	submitters := make(map[string]bool)
	if asg.IsGroupWork() {
		groups, err := svc.grpRepo.QueryGroupsByCourse(crs.ID)
		if err != nil {
			return Progress{}, err
		}
		total = len(groups)
		for _, grp := range groups {
			submitters[grp.ID] = true
		}
	} else {
		total = len(crs.StudentIDs)
		for _, sid := range crs.StudentIDs {
			submitters[sid] = true
		}
	}

	var submitted int
	for _, ack := range acks {
		if submitters[ack.SubmitterID] {
			submitted++
		}
	}

	var pct int
	if total > 0 {
		pct = int(math.Round(100 * float64(submitted) / float64(total)))
	}
	return Progress{
		SubmittedCount:   submitted,
		TotalSubmittable: total,
		Percentage:       pct,
	}, nil
}
