package assignment

import (
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ChiranjeeviNanda/joineasy-task2/core"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
)

var (
	// errors
	ErrNotFound = errors.New("assignment not found")
)

type (
	Repository interface {
		CreateAssignment(a Assignment) (Assignment, error)
		GetAssignmentByID(id string) (Assignment, error)
		// QueryAssignmentsByCourse returns the course's assignments in insertion order.
		QueryAssignmentsByCourse(courseID string) ([]Assignment, error)
		UpdateAssignment(a Assignment) (Assignment, error)
		DeleteAssignmentByID(id string) error
	}

	// AcknowledgmentStore is the slice of the acknowledgment collection the
	// assignment service needs for cascade deletes.
	AcknowledgmentStore interface {
		DeleteAcknowledgmentsByAssignment(assignmentID string) error
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
		acks    AcknowledgmentStore
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, usrRepo user.Repository, acks AcknowledgmentStore, mailSvc core.EmailService) *Service {
	return &Service{
		repo:    repo,
		usrRepo: usrRepo,
		acks:    acks,
		mailSvc: mailSvc,
	}
}

// CreateOrUpdate saves the assignment in `crs`. A new assignment gets a fresh
// ID and CreatedAt; an edit keeps both and replaces everything else.
// Enrolled students are notified by email either way.
func (svc *Service) CreateOrUpdate(crs course.Course, data AssignmentData) (Assignment, error) {
	var asg Assignment
	var err error

	if data.ID == "" {
		asg = Assignment{
			ID:             uuid.New().String(),
			CourseID:       crs.ID,
			Title:          data.Title,
			Description:    data.Description,
			Deadline:       data.Deadline,
			SubmissionType: data.SubmissionType,
			OneDriveLink:   data.OneDriveLink,
			CreatedAt:      time.Now().UTC(),
		}
		if asg, err = svc.repo.CreateAssignment(asg); err != nil {
			return Assignment{}, err
		}
		svc.notifyStudents(crs, asg, fmt.Sprintf("New assignment: %s", asg.Title))
		return asg, nil
	}

	orig, err := svc.repo.GetAssignmentByID(data.ID)
	if err != nil {
		return Assignment{}, err
	}
	if orig.CourseID != crs.ID {
		return Assignment{}, ErrNotFound
	}
	asg = Assignment{
		ID:             orig.ID,
		CourseID:       orig.CourseID,
		Title:          data.Title,
		Description:    data.Description,
		Deadline:       data.Deadline,
		SubmissionType: data.SubmissionType,
		OneDriveLink:   data.OneDriveLink,
		CreatedAt:      orig.CreatedAt,
	}
	if asg, err = svc.repo.UpdateAssignment(asg); err != nil {
		return Assignment{}, err
	}
	svc.notifyStudents(crs, asg, fmt.Sprintf("Assignment updated: %s", asg.Title))
	return asg, nil
}

// Delete removes the assignment and cascade-deletes its acknowledgments.
func (svc *Service) Delete(courseID, assignmentID string) error {
	asg, err := svc.repo.GetAssignmentByID(assignmentID)
	if err != nil {
		return err
	}
	if asg.CourseID != courseID {
		return ErrNotFound
	}
	if err = svc.repo.DeleteAssignmentByID(asg.ID); err != nil {
		return err
	}
	return svc.acks.DeleteAcknowledgmentsByAssignment(asg.ID)
}

// QueryByCourse returns the course's assignments, newest first.
func (svc *Service) QueryByCourse(courseID string) ([]Assignment, error) {
	asgs, err := svc.repo.QueryAssignmentsByCourse(courseID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(asgs, func(i, j int) bool { return asgs[i].CreatedAt.After(asgs[j].CreatedAt) })
	return asgs, nil
}

func (svc *Service) notifyStudents(crs course.Course, asg Assignment, subject string) {
	msgs := make([]*core.EmailMessage, 0, len(crs.StudentIDs))
	for _, sid := range crs.StudentIDs {
		usr, err := svc.usrRepo.GetUserByID(sid)
		if err != nil || usr.Email == "" {
			continue
		}
		msgs = append(msgs, &core.EmailMessage{
			To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
			Subject: subject,
			TextContent: fmt.Sprintf(
				"%s\n\nCourse: %s\nSubmission type: %s\nDeadline: %s\nMaterial: %s\n",
				asg.Description, crs.Name, asg.SubmissionType,
				asg.Deadline.Format(time.RFC1123), asg.OneDriveLink,
			),
		})
	}
	svc.mailSvc.SendMessages(msgs...)
}
