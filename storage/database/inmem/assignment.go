package inmemdb

import (
	"github.com/ChiranjeeviNanda/joineasy-task2/core/assignment"
)

type AssignmentRepository struct {
	db *assignmentTable
}

var _ assignment.Repository = (*AssignmentRepository)(nil)

func NewAssignmentRepository(db *DB) *AssignmentRepository {
	return &AssignmentRepository{db: db.assignment}
}

func (repo *AssignmentRepository) CreateAssignment(asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = append(repo.db.table, &asg)
	return asg, nil
}

func (repo *AssignmentRepository) GetAssignmentByID(id string) (assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, asg := range repo.db.table {
		if asg.ID == id {
			return *asg, nil
		}
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *AssignmentRepository) QueryAssignmentsByCourse(courseID string) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	asgs := make([]assignment.Assignment, 0)
	for _, asg := range repo.db.table {
		if asg.CourseID == courseID {
			asgs = append(asgs, *asg)
		}
	}
	return asgs, nil
}

func (repo *AssignmentRepository) UpdateAssignment(asg assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, orig := range repo.db.table {
		if orig.ID == asg.ID {
			repo.db.table[i] = &asg
			return asg, nil
		}
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *AssignmentRepository) DeleteAssignmentByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, asg := range repo.db.table {
		if asg.ID == id {
			repo.db.table = append(repo.db.table[:i], repo.db.table[i+1:]...)
			return nil
		}
	}
	return assignment.ErrNotFound
}
