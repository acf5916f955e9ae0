package models

// Student is a person grades are recorded under.
// Names are the lookup key but are not unique in storage: two people sharing
// a name resolve to the first record created with it.
type Student struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// GetID returns the student ID
func (s *Student) GetID() int {
	return s.ID
}
