package inmemdb

import (
	"github.com/ChiranjeeviNanda/joineasy-task2/core/group"
)

type GroupRepository struct {
	db *groupTable
}

var _ group.Repository = (*GroupRepository)(nil)

func NewGroupRepository(db *DB) *GroupRepository {
	return &GroupRepository{db: db.group}
}

func (repo *GroupRepository) CreateGroup(grp group.Group) (group.Group, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table = append(repo.db.table, &grp)
	return grp, nil
}

func (repo *GroupRepository) GetGroupByID(id string) (group.Group, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, grp := range repo.db.table {
		if grp.ID == id {
			return *grp, nil
		}
	}
	return group.Group{}, group.ErrNotFound
}

func (repo *GroupRepository) GetGroupByMember(courseID, studentID string) (group.Group, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, grp := range repo.db.table {
		if grp.CourseID == courseID && grp.HasMember(studentID) {
			return *grp, nil
		}
	}
	return group.Group{}, group.ErrNotFound
}

func (repo *GroupRepository) QueryGroupsByCourse(courseID string) ([]group.Group, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	groups := make([]group.Group, 0)
	for _, grp := range repo.db.table {
		if grp.CourseID == courseID {
			groups = append(groups, *grp)
		}
	}
	return groups, nil
}

func (repo *GroupRepository) AddGroupMember(id, studentID string) (group.Group, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for _, grp := range repo.db.table {
		if grp.ID == id {
			grp.MemberIDs = append(grp.MemberIDs, studentID)
			return *grp, nil
		}
	}
	return group.Group{}, group.ErrNotFound
}
