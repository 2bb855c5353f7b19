// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     catalog
// Description: Seeding the registry from catalog documents and exporting back
// License:     MIT
// ============================================================================

package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/msto63/mCW/internal/humboldt/service"
	mcwerror "github.com/msto63/mCW/pkg/core/error"
	"gopkg.in/yaml.v3"
)

// ApplyResult summarizes one Apply pass over the loaded documents
type ApplyResult struct {
	Students    int
	Instructors int
	Courses     int
	Enrollments int
	Skipped     int
}

// Apply seeds the service from all loaded documents. Records that already
// exist are skipped, so reapplying after a hot-reload is safe. Grades are
// reassigned even for existing enrollments, which lets a catalog edit
// update a grade in place.
//
// Instructors are applied before courses and people before enrollments,
// across all documents, so references resolve regardless of which file
// holds them.
func (l *Loader) Apply(ctx context.Context, svc *service.Service) (*ApplyResult, error) {
	docs := l.GetAll()
	result := &ApplyResult{}

	for _, doc := range docs {
		for _, in := range doc.Instructors {
			_, err := svc.CreateInstructor(ctx, &service.CreateInstructorRequest{
				ID:         in.ID,
				Name:       in.Name,
				Email:      in.Email,
				Department: in.Department,
			})
			if err != nil {
				l.skip(err, "instructor", in.ID, doc.SourceFile, result)
				continue
			}
			result.Instructors++
		}
	}

	for _, doc := range docs {
		for _, c := range doc.Courses {
			_, err := svc.CreateCourse(ctx, &service.CreateCourseRequest{
				ID:           c.ID,
				Name:         c.Name,
				Description:  c.Description,
				InstructorID: c.Instructor,
			})
			if err != nil {
				l.skip(err, "course", c.ID, doc.SourceFile, result)
				continue
			}
			result.Courses++
		}
	}

	for _, doc := range docs {
		for _, s := range doc.Students {
			_, err := svc.CreateStudent(ctx, &service.CreateStudentRequest{
				ID:    s.ID,
				Name:  s.Name,
				Email: s.Email,
				Major: s.Major,
			})
			if err != nil {
				l.skip(err, "student", s.ID, doc.SourceFile, result)
				continue
			}
			result.Students++
		}
	}

	for _, doc := range docs {
		for _, e := range doc.Enrollments {
			_, err := svc.Enroll(ctx, e.Student, e.Course)
			if err != nil {
				if !mcwerror.HasCode(err, mcwerror.CodeDuplicateEnrollment) {
					l.skip(err, "enrollment", e.Student+"/"+e.Course, doc.SourceFile, result)
					continue
				}
				// Existing enrollment: fall through so the grade still applies
				result.Skipped++
			} else {
				result.Enrollments++
			}

			if e.Grade != "" {
				if _, err := svc.AssignGrade(ctx, e.Student, e.Course, e.Grade); err != nil {
					l.logger.Warn("Failed to assign catalog grade",
						"student", e.Student, "course", e.Course, "error", err)
				}
			}
		}
	}

	l.logger.Info("Catalog applied",
		"students", result.Students,
		"instructors", result.Instructors,
		"courses", result.Courses,
		"enrollments", result.Enrollments,
		"skipped", result.Skipped,
	)
	return result, nil
}

// skip records one skipped catalog entry, quietly for collisions and
// loudly for everything else
func (l *Loader) skip(err error, kind, id, file string, result *ApplyResult) {
	result.Skipped++
	if mcwerror.HasCode(err, mcwerror.CodeDuplicateID) {
		l.logger.Debug("Catalog record already present, skipping",
			"kind", kind, "id", id, "file", file)
		return
	}
	l.logger.Warn("Failed to apply catalog record",
		"kind", kind, "id", id, "file", file, "error", err)
}

// Snapshot builds a single catalog document from the current registry
// state. Enrollments keep their insertion order.
func Snapshot(ctx context.Context, svc *service.Service) (*Document, error) {
	doc := &Document{}

	instructors, err := svc.ListInstructors(ctx)
	if err != nil {
		return nil, err
	}
	for _, in := range instructors {
		doc.Instructors = append(doc.Instructors, InstructorYAML{
			ID:         in.ID,
			Name:       in.Name,
			Email:      in.Email,
			Department: in.Department,
		})
	}

	students, err := svc.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range students {
		doc.Students = append(doc.Students, StudentYAML{
			ID:    s.ID,
			Name:  s.Name,
			Email: s.Email,
			Major: s.Major,
		})
	}

	courses, err := svc.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		doc.Courses = append(doc.Courses, CourseYAML{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Instructor:  c.InstructorID,
		})
	}

	enrollments, err := svc.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range enrollments {
		doc.Enrollments = append(doc.Enrollments, EnrollmentYAML{
			Student: e.StudentID,
			Course:  e.CourseID,
			Grade:   e.Grade,
		})
	}

	return doc, nil
}

// Export writes a snapshot of the registry to a single YAML file
func Export(ctx context.Context, svc *service.Service, path string) error {
	doc, err := Snapshot(ctx, svc)
	if err != nil {
		return mcwerror.Wrap(err, "failed to snapshot registry").
			WithCode(mcwerror.CodeExportError).
			WithOperation("catalog.Export")
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}
