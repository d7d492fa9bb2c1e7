package types

import "fmt"

// Student represents a single managed roster entry.
type Student struct {
	ID    int     `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Email string  `json:"email" yaml:"email"`
	GPA   float64 `json:"gpa" yaml:"gpa"`
}

func (s Student) String() string {
	return fmt.Sprintf("Student{id=%d, name=%q, email=%q, gpa=%.2f}", s.ID, s.Name, s.Email, s.GPA)
}

// Row is one rendered table row: a Student projected to display text.
// GPA is pre-formatted to two decimals so every presentation surface
// shows the same thing.
type Row struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	GPA   string `json:"gpa"`
}

// RowOf projects a Student into its display row.
func RowOf(s Student) Row {
	return Row{
		ID:    s.ID,
		Name:  s.Name,
		Email: s.Email,
		GPA:   fmt.Sprintf("%.2f", s.GPA),
	}
}

// RowsOf projects a slice of Students, preserving order.
func RowsOf(students []Student) []Row {
	rows := make([]Row, 0, len(students))
	for _, s := range students {
		rows = append(rows, RowOf(s))
	}
	return rows
}
