package inmemdb

import (
	"sync"

	"github.com/ChiranjeeviNanda/joineasy-task2/core/assignment"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/course"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/group"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/submission"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
)

type (
	DB struct {
		user       *userTable
		course     *courseTable
		assignment *assignmentTable
		group      *groupTable
		ack        *ackTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	courseTable struct {
		sync.RWMutex
		table map[string]*course.Course
	}

	// slice-backed tables keep insertion order
	assignmentTable struct {
		sync.RWMutex
		table []*assignment.Assignment
	}

	groupTable struct {
		sync.RWMutex
		table []*group.Group
	}

	ackTable struct {
		sync.RWMutex
		table []*submission.Acknowledgment
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[string]*user.User)},
		course:     &courseTable{table: make(map[string]*course.Course)},
		assignment: &assignmentTable{},
		group:      &groupTable{},
		ack:        &ackTable{},
	}
	return db, nil
}
