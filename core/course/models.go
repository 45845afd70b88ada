package course

type Course struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ProfessorID string   `json:"professor_id"`
	StudentIDs  []string `json:"student_ids"`
}

func (c Course) HasStudent(id string) bool {
	for _, sid := range c.StudentIDs {
		if sid == id {
			return true
		}
	}
	return false
}
