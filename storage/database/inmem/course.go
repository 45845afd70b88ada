package inmemdb

import (
	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
)

type CourseRepository struct {
	db *courseTable
}

var _ course.Repository = (*CourseRepository)(nil)

func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db.course}
}

// CreateCourse is only reached by fixtures and tests; the catalogue is static
// at runtime.
func (repo *CourseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[crs.ID] = &crs
	return crs, nil
}

func (repo *CourseRepository) GetCourseByID(id string) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.db.table[id]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}
