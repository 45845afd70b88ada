package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ChiranjeeviNanda/joineasy-task2/core/group"
	"github.com/ChiranjeeviNanda/joineasy-task2/core/user"
	inmemdb "github.com/ChiranjeeviNanda/joineasy-task2/storage/database/inmem"
)

func setup(t *testing.T) (*group.Service, group.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup(): %v", err)
	}
	repo := inmemdb.NewGroupRepository(db)
	svc := group.NewService(repo)
	return svc, repo
}

func student(id string) user.User {
	return user.User{ID: id, Username: id, Role: user.RoleStudent, Name: "Student " + id}
}

func professor(id string) user.User {
	return user.User{ID: id, Username: id, Role: user.RoleProfessor, Name: "Prof " + id}
}

func createGroup(t *testing.T, repo group.Repository, id, courseID, leaderID string, memberIDs ...string) group.Group {
	grp, err := repo.CreateGroup(group.Group{
		ID:        id,
		CourseID:  courseID,
		LeaderID:  leaderID,
		MemberIDs: append([]string{leaderID}, memberIDs...),
	})
	if err != nil {
		t.Fatalf("createGroup(): %v", err)
	}
	return grp
}

func TestService_CreateOrJoin_create(t *testing.T) {
	svc, repo := setup(t)

	grp, err := svc.CreateOrJoin("c101", student("s201"), group.CreateOrJoinGroup{Action: group.ActionCreate})
	if err != nil {
		t.Fatalf("CreateOrJoin(): %v", err)
	}
	assert.NotEmpty(t, grp.ID)
	assert.Equal(t, "c101", grp.CourseID)
	assert.Equal(t, "s201", grp.LeaderID)
	assert.Equal(t, []string{"s201"}, grp.MemberIDs)

	// the same student may hold a group in another course
	if _, err = svc.CreateOrJoin("c102", student("s201"), group.CreateOrJoinGroup{Action: group.ActionCreate}); err != nil {
		t.Errorf("CreateOrJoin() error = %v; want nil", err)
	}

	// but only one per course
	_, err = svc.CreateOrJoin("c101", student("s201"), group.CreateOrJoinGroup{Action: group.ActionCreate})
	if err != group.ErrAlreadyGrouped {
		t.Errorf("CreateOrJoin() error = %v; want %v", err, group.ErrAlreadyGrouped)
	}

	groups, _ := repo.QueryGroupsByCourse("c101")
	assert.Len(t, groups, 1)
}

func TestService_CreateOrJoin_join(t *testing.T) {
	svc, repo := setup(t)
	createGroup(t, repo, "g401", "c101", "s201")
	createGroup(t, repo, "g402", "c101", "s205")
	full := createGroup(t, repo, "g403", "c102", "s301", "s302", "s303", "s304", "s305")
	if !full.IsFull() {
		t.Fatalf("fixture group should be full")
	}

	join := func(targetID string) group.CreateOrJoinGroup {
		return group.CreateOrJoinGroup{Action: group.ActionJoin, TargetGroupID: targetID}
	}

	tests := []struct {
		name     string
		courseID string
		actor    user.User
		data     group.CreateOrJoinGroup
		wantErr  error
	}{
		{name: "ok", courseID: "c101", actor: student("s202"), data: join("g401")},
		{name: "professor", courseID: "c101", actor: professor("p101"), data: join("g401"), wantErr: group.ErrNotStudent},
		{name: "unknown group", courseID: "c101", actor: student("s203"), data: join("lol"), wantErr: group.ErrNotFound},
		{name: "wrong course", courseID: "c101", actor: student("s203"), data: join("g403"), wantErr: group.ErrNotFound},
		{name: "full group", courseID: "c102", actor: student("s306"), data: join("g403"), wantErr: group.ErrFull},
		{name: "already member", courseID: "c101", actor: student("s202"), data: join("g401"), wantErr: group.ErrAlreadyMember},
		{name: "grouped elsewhere", courseID: "c101", actor: student("s202"), data: join("g402"), wantErr: group.ErrAlreadyGrouped},
		{name: "leader joins own group", courseID: "c101", actor: student("s201"), data: join("g401"), wantErr: group.ErrAlreadyMember},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrJoin(tt.courseID, tt.actor, tt.data)
			if err != tt.wantErr {
				t.Errorf("CreateOrJoin() error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}

	// membership is append-only and capped
	grp, _ := repo.GetGroupByID("g401")
	assert.Equal(t, []string{"s201", "s202"}, grp.MemberIDs)
	assert.Equal(t, "s201", grp.LeaderID)

	fullAfter, _ := repo.GetGroupByID("g403")
	assert.Len(t, fullAfter.MemberIDs, group.MaxSize)
}

func TestService_StatusFor(t *testing.T) {
	svc, repo := setup(t)
	createGroup(t, repo, "g401", "c101", "s201", "s202")

	tests := []struct {
		name      string
		courseID  string
		studentID string
		want      group.Status
	}{
		{name: "leader", courseID: "c101", studentID: "s201", want: group.Status{InGroup: true, IsLeader: true, GroupID: "g401", MemberIDs: []string{"s201", "s202"}}},
		{name: "member", courseID: "c101", studentID: "s202", want: group.Status{InGroup: true, GroupID: "g401", MemberIDs: []string{"s201", "s202"}}},
		{name: "no group", courseID: "c101", studentID: "s203", want: group.Status{}},
		{name: "other course", courseID: "c102", studentID: "s201", want: group.Status{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.StatusFor(tt.courseID, tt.studentID)
			if err != nil {
				t.Fatalf("StatusFor(): %v", err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
