package course

import (
	"errors"

	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
)

// UnknownProfessorName is the display fallback when a course references
// a professor that cannot be resolved.
const UnknownProfessorName = "Professor Unknown"

var (
	// errors
	ErrNotFound = errors.New("course not found")
)

type (
	Repository interface {
		GetCourseByID(id string) (Course, error)
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
	}
)

func NewService(repo Repository, usrRepo user.Repository) *Service {
	return &Service{repo: repo, usrRepo: usrRepo}
}

func (svc *Service) GetByID(id string) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

// QueryForUser returns the courses the user is associated with,
// in the user's own course order.
func (svc *Service) QueryForUser(usr user.User) ([]Course, error) {
	courses := make([]Course, 0, len(usr.CourseIDs))
	for _, id := range usr.CourseIDs {
		crs, err := svc.repo.GetCourseByID(id)
		if err != nil {
			if err == ErrNotFound {
				continue
			}
			return nil, err
		}
		courses = append(courses, crs)
	}
	return courses, nil
}

// ProfessorName resolves a professor's display name, falling back to
// UnknownProfessorName when the user is missing or not a professor.
func (svc *Service) ProfessorName(professorID string) string {
	usr, err := svc.usrRepo.GetUserByID(professorID)
	if err != nil || !usr.IsProfessor() {
		return UnknownProfessorName
	}
	return usr.Name
}
