// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     catalog
// Description: Tests for catalog loading, applying, and exporting
// License:     MIT
// ============================================================================

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/mCW/internal/humboldt/service"
)

func writeCatalogFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}
	return path
}

const campusYAML = `instructors:
  - id: i-1
    name: Prof. Keller
    department: Computer Science
courses:
  - id: c-1
    name: Databases
    description: Relational modelling and SQL
    instructor: i-1
students:
  - id: s-1
    name: Alice Siebert
    email: alice@campus.example
    major: Mathematics
  - id: s-2
    name: Bruno Weiss
enrollments:
  - student: s-1
    course: c-1
    grade: "1.3"
  - student: s-2
    course: c-1
`

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "campus.yaml", campusYAML)
	writeCatalogFile(t, dir, "extra.yml", "students:\n  - name: Carla Fuchs\n")
	writeCatalogFile(t, dir, "notes.txt", "not a catalog")
	writeCatalogFile(t, dir, "broken.yaml", "students: [unclosed")

	l := NewLoader(dir)
	if err := l.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// The broken file and the non-YAML file are skipped
	docs := l.GetAll()
	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}

	doc, ok := l.Get(filepath.Join(dir, "campus.yaml"))
	if !ok {
		t.Fatal("Expected campus.yaml to be loaded")
	}
	if doc.RecordCount() != 6 {
		t.Errorf("Expected 6 records, got %d", doc.RecordCount())
	}
	if doc.SourceFile == "" || doc.LoadedAt.IsZero() {
		t.Error("Expected source tracking to be set")
	}
}

func TestLoadAll_EmptyDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")

	l := NewLoader(dir)
	if err := l.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// The directory is created on demand
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected catalog directory to exist: %v", err)
	}
	if len(l.GetAll()) != 0 {
		t.Error("Expected no documents")
	}
}

func TestLoadAll_InvalidDocument(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "nameless.yaml", "students:\n  - id: s-1\n")

	l := NewLoader(dir)
	if err := l.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// Documents failing validation are skipped, not fatal
	if len(l.GetAll()) != 0 {
		t.Error("Expected invalid document to be skipped")
	}
}

func TestLoader_Apply(t *testing.T) {
	dir := t.TempDir()
	writeCatalogFile(t, dir, "campus.yaml", campusYAML)

	l := NewLoader(dir)
	if err := l.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	svc := service.NewService(service.DefaultConfig())
	ctx := context.Background()

	result, err := l.Apply(ctx, svc)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if result.Students != 2 || result.Instructors != 1 || result.Courses != 1 || result.Enrollments != 2 {
		t.Errorf("Unexpected apply result: %+v", result)
	}

	// Course references resolved across record types
	course, err := svc.GetCourse(ctx, "c-1")
	if err != nil {
		t.Fatalf("GetCourse failed: %v", err)
	}
	if course.InstructorID != "i-1" {
		t.Errorf("Expected instructor i-1, got %q", course.InstructorID)
	}

	// Grade from the catalog is applied
	e, err := svc.GetEnrollment(ctx, "s-1", "c-1")
	if err != nil {
		t.Fatalf("GetEnrollment failed: %v", err)
	}
	if e.Grade != "1.3" {
		t.Errorf("Expected grade 1.3, got %q", e.Grade)
	}
}

func TestLoader_Apply_Reapplication(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalogFile(t, dir, "campus.yaml", campusYAML)

	l := NewLoader(dir)
	if err := l.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	svc := service.NewService(service.DefaultConfig())
	ctx := context.Background()

	if _, err := l.Apply(ctx, svc); err != nil {
		t.Fatalf("First apply failed: %v", err)
	}

	// Reapplying the same catalog only skips
	result, err := l.Apply(ctx, svc)
	if err != nil {
		t.Fatalf("Second apply failed: %v", err)
	}
	if result.Students != 0 || result.Instructors != 0 || result.Courses != 0 || result.Enrollments != 0 {
		t.Errorf("Expected nothing new on reapply, got %+v", result)
	}
	if result.Skipped == 0 {
		t.Error("Expected skipped records on reapply")
	}

	// A grade edit in the file takes effect on reapply
	regraded := strings.Replace(campusYAML, `grade: "1.3"`, `grade: "1.0"`, 1)
	if err := os.WriteFile(path, []byte(regraded), 0644); err != nil {
		t.Fatalf("Failed to rewrite catalog file: %v", err)
	}
	if err := l.LoadAll(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if _, err := l.Apply(ctx, svc); err != nil {
		t.Fatalf("Apply after edit failed: %v", err)
	}

	e, err := svc.GetEnrollment(ctx, "s-1", "c-1")
	if err != nil {
		t.Fatalf("GetEnrollment failed: %v", err)
	}
	if e.Grade != "1.0" {
		t.Errorf("Expected regraded enrollment 1.0, got %q", e.Grade)
	}

	students, _ := svc.ListStudents(ctx)
	if len(students) != 2 {
		t.Errorf("Expected 2 students after reapply, got %d", len(students))
	}
}

func TestSnapshotAndExport(t *testing.T) {
	svc := service.NewService(service.DefaultConfig())
	ctx := context.Background()

	if _, err := svc.CreateInstructor(ctx, &service.CreateInstructorRequest{ID: "i-1", Name: "Prof. Keller", Department: "CS"}); err != nil {
		t.Fatalf("CreateInstructor failed: %v", err)
	}
	if _, err := svc.CreateStudent(ctx, &service.CreateStudentRequest{ID: "s-1", Name: "Alice Siebert", Major: "Mathematics"}); err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}
	if _, err := svc.CreateCourse(ctx, &service.CreateCourseRequest{ID: "c-1", Name: "Databases", InstructorID: "i-1"}); err != nil {
		t.Fatalf("CreateCourse failed: %v", err)
	}
	if _, err := svc.Enroll(ctx, "s-1", "c-1"); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if _, err := svc.AssignGrade(ctx, "s-1", "c-1", "A"); err != nil {
		t.Fatalf("AssignGrade failed: %v", err)
	}

	doc, err := Snapshot(ctx, svc)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(doc.Students) != 1 || len(doc.Instructors) != 1 || len(doc.Courses) != 1 || len(doc.Enrollments) != 1 {
		t.Fatalf("Unexpected snapshot: %+v", doc)
	}
	if doc.Courses[0].Instructor != "i-1" {
		t.Errorf("Expected course instructor i-1, got %q", doc.Courses[0].Instructor)
	}
	if doc.Enrollments[0].Grade != "A" {
		t.Errorf("Expected grade A, got %q", doc.Enrollments[0].Grade)
	}

	// Export and load back through a fresh loader
	dir := t.TempDir()
	path := filepath.Join(dir, "export.yaml")
	if err := Export(ctx, svc, path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Exported file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty export")
	}

	l := NewLoader(dir)
	if err := l.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	loaded, ok := l.Get(path)
	if !ok {
		t.Fatal("Expected exported document to load")
	}
	if loaded.RecordCount() != 4 {
		t.Errorf("Expected 4 records after round trip, got %d", loaded.RecordCount())
	}

	// An exported catalog seeds an empty registry back to the same state
	restored := service.NewService(service.DefaultConfig())
	if _, err := l.Apply(ctx, restored); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	e, err := restored.GetEnrollment(ctx, "s-1", "c-1")
	if err != nil {
		t.Fatalf("GetEnrollment failed: %v", err)
	}
	if e.Grade != "A" {
		t.Errorf("Expected restored grade A, got %q", e.Grade)
	}
}
