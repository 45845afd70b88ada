package inmemdb

import (
	"time"

	"github.com/ChiranjeeviNanda/joineasy-task2/core/assignment"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/group"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/submission"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
)

// LoadFixtures seeds the canonical sample dataset. There is no other data
// source; the application always starts from this state.
func LoadFixtures(db *DB) error {
	now := time.Now().UTC()
	oneHourAgo := now.Add(-1 * time.Hour)
	twoHoursAgo := now.Add(-2 * time.Hour)

	users := []user.User{
		// Professors
		{
			ID: "p101", Username: "p101", Password: "password",
			Role: user.RoleProfessor, Name: "Prof. Priya Sharma",
			Email: "priya.sharma@campus.test", CourseIDs: []string{"c101", "c102"},
			CreatedAt: twoHoursAgo,
		},
		{
			ID: "p102", Username: "p102", Password: "password",
			Role: user.RoleProfessor, Name: "Prof. Anand Varma",
			Email: "anand.varma@campus.test", CourseIDs: []string{"c103"},
			CreatedAt: twoHoursAgo,
		},

		// Students
		{
			ID: "s201", Username: "s201", Password: "password",
			Role: user.RoleStudent, Name: "Aarav Joshi",
			Email: "aarav.joshi@campus.test", CourseIDs: []string{"c101", "c103"},
			CreatedAt: twoHoursAgo,
		},
		{
			ID: "s202", Username: "s202", Password: "password",
			Role: user.RoleStudent, Name: "Bhavik Patel",
			Email: "bhavik.patel@campus.test", CourseIDs: []string{"c102"},
			CreatedAt: twoHoursAgo,
		},
		{
			ID: "s203", Username: "s203", Password: "password",
			Role: user.RoleStudent, Name: "Chaitra Rao",
			Email: "chaitra.rao@campus.test", CourseIDs: []string{"c102", "c103"},
			CreatedAt: twoHoursAgo,
		},
		{
			ID: "s204", Username: "s204", Password: "password",
			Role: user.RoleStudent, Name: "Divya Menon",
			Email: "divya.menon@campus.test", CourseIDs: []string{"c101", "c103"},
			CreatedAt: twoHoursAgo,
		},
	}

	courses := []course.Course{
		{ID: "c101", Name: "Advanced React Development", ProfessorID: "p101", StudentIDs: []string{"s201", "s202", "s204"}},
		{ID: "c102", Name: "Data Structures & Algorithms", ProfessorID: "p101", StudentIDs: []string{"s203"}},
		{ID: "c103", Name: "UI/UX Design Principles", ProfessorID: "p102", StudentIDs: []string{"s201", "s203", "s204"}},
	}

	assignments := []assignment.Assignment{
		{
			ID: "a301", CourseID: "c101",
			Title:       "Component Architecture Design",
			Description: "Design a scalable component library.",
			Deadline:    now.Add(7 * 24 * time.Hour), SubmissionType: assignment.SubmissionGroup,
			OneDriveLink: "https://onedrive.link/a301", CreatedAt: twoHoursAgo,
		},
		{
			ID: "a302", CourseID: "c101",
			Title:       "Individual Project Setup",
			Description: "Set up your personal development environment.",
			Deadline:    now.Add(3 * 24 * time.Hour), SubmissionType: assignment.SubmissionIndividual,
			OneDriveLink: "https://onedrive.link/a302", CreatedAt: oneHourAgo,
		},
	}

	groups := []group.Group{
		{ID: "g401", CourseID: "c101", LeaderID: "s201", MemberIDs: []string{"s201", "s202"}},
	}

	acks := []submission.Acknowledgment{
		{ID: "k501", AssignmentID: "a302", SubmitterID: "s203", Acknowledged: true, Timestamp: now},
		{ID: "k502", AssignmentID: "a301", SubmitterID: "g401", Acknowledged: true, Timestamp: now},
	}

	usrRepo := NewUserRepository(db)
	for _, usr := range users {
		if _, err := usrRepo.CreateUser(usr); err != nil {
			return err
		}
	}
	crsRepo := NewCourseRepository(db)
	for _, crs := range courses {
		if _, err := crsRepo.CreateCourse(crs); err != nil {
			return err
		}
	}
	asgRepo := NewAssignmentRepository(db)
	for _, asg := range assignments {
		if _, err := asgRepo.CreateAssignment(asg); err != nil {
			return err
		}
	}
	grpRepo := NewGroupRepository(db)
	for _, grp := range groups {
		if _, err := grpRepo.CreateGroup(grp); err != nil {
			return err
		}
	}
	ackRepo := NewAcknowledgmentRepository(db)
	for _, ack := range acks {
		if _, err := ackRepo.CreateAcknowledgment(ack); err != nil {
			return err
		}
	}
	return nil
}
