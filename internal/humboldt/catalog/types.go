// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     catalog
// Description: YAML-based campus catalog documents with hot-reload support
// License:     MIT
// ============================================================================

package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Document represents one campus catalog file. Every list is optional, so
// a file may carry a full campus or just a handful of enrollments.
type Document struct {
	Students    []StudentYAML    `yaml:"students,omitempty"`
	Instructors []InstructorYAML `yaml:"instructors,omitempty"`
	Courses     []CourseYAML     `yaml:"courses,omitempty"`
	Enrollments []EnrollmentYAML `yaml:"enrollments,omitempty"`

	// Internal tracking (not from YAML)
	SourceFile string    `yaml:"-"`
	LoadedAt   time.Time `yaml:"-"`
}

// StudentYAML is a student record in a catalog document
type StudentYAML struct {
	ID    string `yaml:"id,omitempty"` // optional; generated when empty
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
	Major string `yaml:"major,omitempty"`
}

// InstructorYAML is an instructor record in a catalog document
type InstructorYAML struct {
	ID         string `yaml:"id,omitempty"` // optional; generated when empty
	Name       string `yaml:"name"`
	Email      string `yaml:"email,omitempty"`
	Department string `yaml:"department,omitempty"`
}

// CourseYAML is a course record in a catalog document
type CourseYAML struct {
	ID          string `yaml:"id,omitempty"` // optional; generated when empty
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Instructor  string `yaml:"instructor,omitempty"` // instructor id
}

// EnrollmentYAML links a student to a course in a catalog document
type EnrollmentYAML struct {
	Student string `yaml:"student"` // student id
	Course  string `yaml:"course"`  // course id
	Grade   string `yaml:"grade,omitempty"`
}

// Defaults normalizes the document in place: surrounding whitespace is
// stripped from every field so hand-edited files load cleanly.
func (d *Document) Defaults() {
	for i := range d.Students {
		s := &d.Students[i]
		s.ID = strings.TrimSpace(s.ID)
		s.Name = strings.TrimSpace(s.Name)
		s.Email = strings.TrimSpace(s.Email)
		s.Major = strings.TrimSpace(s.Major)
	}
	for i := range d.Instructors {
		in := &d.Instructors[i]
		in.ID = strings.TrimSpace(in.ID)
		in.Name = strings.TrimSpace(in.Name)
		in.Email = strings.TrimSpace(in.Email)
		in.Department = strings.TrimSpace(in.Department)
	}
	for i := range d.Courses {
		c := &d.Courses[i]
		c.ID = strings.TrimSpace(c.ID)
		c.Name = strings.TrimSpace(c.Name)
		c.Description = strings.TrimSpace(c.Description)
		c.Instructor = strings.TrimSpace(c.Instructor)
	}
	for i := range d.Enrollments {
		e := &d.Enrollments[i]
		e.Student = strings.TrimSpace(e.Student)
		e.Course = strings.TrimSpace(e.Course)
		e.Grade = strings.TrimSpace(e.Grade)
	}
}

// Validate checks if the document is valid
func (d *Document) Validate() error {
	for i, s := range d.Students {
		if s.Name == "" {
			return fmt.Errorf("students[%d]: %w", i, ErrMissingName)
		}
	}
	for i, in := range d.Instructors {
		if in.Name == "" {
			return fmt.Errorf("instructors[%d]: %w", i, ErrMissingName)
		}
	}
	for i, c := range d.Courses {
		if c.Name == "" {
			return fmt.Errorf("courses[%d]: %w", i, ErrMissingName)
		}
	}
	for i, e := range d.Enrollments {
		if e.Student == "" {
			return fmt.Errorf("enrollments[%d]: %w", i, ErrMissingStudentRef)
		}
		if e.Course == "" {
			return fmt.Errorf("enrollments[%d]: %w", i, ErrMissingCourseRef)
		}
	}
	return nil
}

// IsEmpty reports whether the document carries no records at all
func (d *Document) IsEmpty() bool {
	return len(d.Students) == 0 && len(d.Instructors) == 0 &&
		len(d.Courses) == 0 && len(d.Enrollments) == 0
}

// RecordCount returns the total number of records in the document
func (d *Document) RecordCount() int {
	return len(d.Students) + len(d.Instructors) + len(d.Courses) + len(d.Enrollments)
}
