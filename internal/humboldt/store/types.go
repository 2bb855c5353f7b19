package store

import (
	"time"
)

// PersonKind discriminates the person variants held by the registry
type PersonKind string

const (
	// KindStudent marks a person enrolled in courses
	KindStudent PersonKind = "student"

	// KindInstructor marks a person teaching courses
	KindInstructor PersonKind = "instructor"
)

// String returns the string representation of the kind
func (k PersonKind) String() string {
	return string(k)
}

// IsValid returns true for a known person kind
func (k PersonKind) IsValid() bool {
	return k == KindStudent || k == KindInstructor
}

// Person represents a student or instructor record
type Person struct {
	ID    string     `json:"id"`
	Kind  PersonKind `json:"kind"`
	Name  string     `json:"name"`
	Email string     `json:"email,omitempty"`

	// Student fields
	Major string `json:"major,omitempty"`

	// Instructor fields. Teaching is registry-maintained: it changes
	// only through course operations, never through person updates.
	Department string   `json:"department,omitempty"`
	Teaching   []string `json:"teaching,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsStudent returns true if the person is a student
func (p *Person) IsStudent() bool {
	return p.Kind == KindStudent
}

// IsInstructor returns true if the person is an instructor
func (p *Person) IsInstructor() bool {
	return p.Kind == KindInstructor
}

// Course represents a course record
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// InstructorID is a weak reference; empty means unassigned
	InstructorID string `json:"instructor_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enrollment links a student to a course
type Enrollment struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	CourseID  string `json:"course_id"`

	// Grade is free-form and empty until assigned
	Grade string `json:"grade,omitempty"`

	EnrolledAt time.Time `json:"enrolled_at"`
}

// IsGraded returns true once a grade has been assigned
func (e *Enrollment) IsGraded() bool {
	return e.Grade != ""
}

// PersonUpdate holds the fields of a partial person update.
// Nil fields keep their current value.
type PersonUpdate struct {
	Name       *string
	Email      *string
	Major      *string
	Department *string
}

// CourseUpdate holds the fields of a partial course update.
// Nil fields keep their current value; a pointer to the empty string
// for InstructorID clears the assignment.
type CourseUpdate struct {
	Name         *string
	Description  *string
	InstructorID *string
}
