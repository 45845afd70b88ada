package user

import "time"

// Roles
const (
	RoleProfessor = "Professor"
	RoleStudent   = "Student"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// Password is compared in plaintext against the seeded dataset;
	// this system has no real credential store.
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CourseIDs []string  `json:"course_ids"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

func (u User) IsProfessor() bool {
	return u.Role == RoleProfessor
}

func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}

func (u User) EnrolledIn(courseID string) bool {
	for _, id := range u.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}
