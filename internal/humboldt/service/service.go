package service

import (
	"context"
	"strings"

	"github.com/msto63/mCW/internal/humboldt/store"
	mcwerror "github.com/msto63/mCW/pkg/core/error"
	"github.com/msto63/mCW/pkg/core/logging"
	"github.com/msto63/mCW/pkg/core/stringx"
)

// Person is a registry person record
type Person = store.Person

// Course is a registry course record
type Course = store.Course

// Enrollment links a student to a course
type Enrollment = store.Enrollment

// CreateStudentRequest carries the fields for a new student
type CreateStudentRequest struct {
	ID    string // optional; generated when empty
	Name  string
	Email string
	Major string
}

// CreateInstructorRequest carries the fields for a new instructor
type CreateInstructorRequest struct {
	ID         string // optional; generated when empty
	Name       string
	Email      string
	Department string
}

// UpdateStudentRequest carries a partial student update; nil fields keep
// their current value
type UpdateStudentRequest struct {
	Name  *string
	Email *string
	Major *string
}

// UpdateInstructorRequest carries a partial instructor update; nil fields
// keep their current value
type UpdateInstructorRequest struct {
	Name       *string
	Email      *string
	Department *string
}

// CreateCourseRequest carries the fields for a new course
type CreateCourseRequest struct {
	ID           string // optional; generated when empty
	Name         string
	Description  string
	InstructorID string // optional; must name an existing instructor
}

// UpdateCourseRequest carries a partial course update; nil fields keep
// their current value. A pointer to the empty string clears the
// instructor assignment.
type UpdateCourseRequest struct {
	Name         *string
	Description  *string
	InstructorID *string
}

// Config holds service configuration
type Config struct {
	// Registry overrides the default in-memory registry. Leave nil to
	// let the service own a fresh one.
	Registry store.Registry
}

// DefaultConfig returns default service configuration
func DefaultConfig() Config {
	return Config{}
}

// Service is the Humboldt registrar: the orchestration layer every
// frontend (CLI, TUI, catalog loader, roster importer) talks to.
type Service struct {
	registry store.Registry
	logger   *logging.Logger
}

// NewService creates a new Humboldt service
func NewService(cfg Config) *Service {
	registry := cfg.Registry
	if registry == nil {
		registry = store.NewMemoryRegistry()
	}

	return &Service{
		registry: registry,
		logger:   logging.New("humboldt"),
	}
}

// CreateStudent registers a new student
func (s *Service) CreateStudent(ctx context.Context, req *CreateStudentRequest) (*Person, error) {
	if err := stringx.ValidateNotBlank("name", req.Name); err != nil {
		return nil, err
	}

	p := &store.Person{
		ID:    strings.TrimSpace(req.ID),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Major: strings.TrimSpace(req.Major),
	}

	if err := s.registry.AddStudent(ctx, p); err != nil {
		return nil, mcwerror.Wrap(err, "failed to register student").
			WithOperation("service.CreateStudent")
	}

	s.logger.Info("Student registered", "student_id", p.ID, "name", p.Name)
	return p, nil
}

// CreateInstructor registers a new instructor
func (s *Service) CreateInstructor(ctx context.Context, req *CreateInstructorRequest) (*Person, error) {
	if err := stringx.ValidateNotBlank("name", req.Name); err != nil {
		return nil, err
	}

	p := &store.Person{
		ID:         strings.TrimSpace(req.ID),
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.TrimSpace(req.Email),
		Department: strings.TrimSpace(req.Department),
	}

	if err := s.registry.AddInstructor(ctx, p); err != nil {
		return nil, mcwerror.Wrap(err, "failed to register instructor").
			WithOperation("service.CreateInstructor")
	}

	s.logger.Info("Instructor registered", "instructor_id", p.ID, "name", p.Name)
	return p, nil
}

// GetStudent returns the student with the given id
func (s *Service) GetStudent(ctx context.Context, id string) (*Person, error) {
	return s.registry.FindStudent(ctx, id)
}

// GetInstructor returns the instructor with the given id
func (s *Service) GetInstructor(ctx context.Context, id string) (*Person, error) {
	return s.registry.FindInstructor(ctx, id)
}

// GetPerson returns the person with the given id regardless of kind
func (s *Service) GetPerson(ctx context.Context, id string) (*Person, error) {
	return s.registry.GetPerson(ctx, id)
}

// UpdateStudent applies a partial update to a student
func (s *Service) UpdateStudent(ctx context.Context, id string, req *UpdateStudentRequest) (*Person, error) {
	p, err := s.registry.UpdateStudent(ctx, id, store.PersonUpdate{
		Name:  req.Name,
		Email: req.Email,
		Major: req.Major,
	})
	if err != nil {
		return nil, mcwerror.Wrap(err, "failed to update student").
			WithOperation("service.UpdateStudent")
	}

	s.logger.Info("Student updated", "student_id", id)
	return p, nil
}

// UpdateInstructor applies a partial update to an instructor
func (s *Service) UpdateInstructor(ctx context.Context, id string, req *UpdateInstructorRequest) (*Person, error) {
	p, err := s.registry.UpdateInstructor(ctx, id, store.PersonUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return nil, mcwerror.Wrap(err, "failed to update instructor").
			WithOperation("service.UpdateInstructor")
	}

	s.logger.Info("Instructor updated", "instructor_id", id)
	return p, nil
}

// RemovePerson removes a person of either kind. Removing a student drops
// their enrollments; removing an instructor unassigns their courses.
func (s *Service) RemovePerson(ctx context.Context, id string) error {
	if err := s.registry.RemovePerson(ctx, id); err != nil {
		return mcwerror.Wrap(err, "failed to remove person").
			WithOperation("service.RemovePerson")
	}

	s.logger.Info("Person removed", "person_id", id)
	return nil
}

// ListStudents returns all students ordered by name
func (s *Service) ListStudents(ctx context.Context) ([]*Person, error) {
	return s.registry.ListStudents(ctx)
}

// ListInstructors returns all instructors ordered by name
func (s *Service) ListInstructors(ctx context.Context) ([]*Person, error) {
	return s.registry.ListInstructors(ctx)
}

// ListPeople returns all people of both kinds ordered by name
func (s *Service) ListPeople(ctx context.Context) ([]*Person, error) {
	return s.registry.ListPeople(ctx)
}

// CreateCourse adds a new course to the catalog
func (s *Service) CreateCourse(ctx context.Context, req *CreateCourseRequest) (*Course, error) {
	if err := stringx.ValidateNotBlank("name", req.Name); err != nil {
		return nil, err
	}

	c := &store.Course{
		ID:           strings.TrimSpace(req.ID),
		Name:         strings.TrimSpace(req.Name),
		Description:  strings.TrimSpace(req.Description),
		InstructorID: strings.TrimSpace(req.InstructorID),
	}

	if err := s.registry.AddCourse(ctx, c); err != nil {
		return nil, mcwerror.Wrap(err, "failed to create course").
			WithOperation("service.CreateCourse")
	}

	s.logger.Info("Course created", "course_id", c.ID, "name", c.Name)
	return c, nil
}

// GetCourse returns the course with the given id
func (s *Service) GetCourse(ctx context.Context, id string) (*Course, error) {
	return s.registry.GetCourse(ctx, id)
}

// UpdateCourse applies a partial update to a course
func (s *Service) UpdateCourse(ctx context.Context, id string, req *UpdateCourseRequest) (*Course, error) {
	c, err := s.registry.UpdateCourse(ctx, id, store.CourseUpdate{
		Name:         req.Name,
		Description:  req.Description,
		InstructorID: req.InstructorID,
	})
	if err != nil {
		return nil, mcwerror.Wrap(err, "failed to update course").
			WithOperation("service.UpdateCourse")
	}

	s.logger.Info("Course updated", "course_id", id)
	return c, nil
}

// RemoveCourse removes a course and all enrollments referencing it
func (s *Service) RemoveCourse(ctx context.Context, id string) error {
	if err := s.registry.RemoveCourse(ctx, id); err != nil {
		return mcwerror.Wrap(err, "failed to remove course").
			WithOperation("service.RemoveCourse")
	}

	s.logger.Info("Course removed", "course_id", id)
	return nil
}

// ListCourses returns all courses ordered by name
func (s *Service) ListCourses(ctx context.Context) ([]*Course, error) {
	return s.registry.ListCourses(ctx)
}

// Enroll enrolls a student in a course
func (s *Service) Enroll(ctx context.Context, studentID, courseID string) (*Enrollment, error) {
	if err := stringx.ValidateNotBlank("student id", studentID); err != nil {
		return nil, err
	}
	if err := stringx.ValidateNotBlank("course id", courseID); err != nil {
		return nil, err
	}

	e, err := s.registry.Enroll(ctx, studentID, courseID)
	if err != nil {
		return nil, mcwerror.Wrap(err, "enrollment failed").
			WithOperation("service.Enroll")
	}

	s.logger.Info("Student enrolled", "student_id", studentID, "course_id", courseID)
	return e, nil
}

// Unenroll removes a student's enrollment in a course
func (s *Service) Unenroll(ctx context.Context, studentID, courseID string) error {
	if err := s.registry.Unenroll(ctx, studentID, courseID); err != nil {
		return mcwerror.Wrap(err, "unenrollment failed").
			WithOperation("service.Unenroll")
	}

	s.logger.Info("Student unenrolled", "student_id", studentID, "course_id", courseID)
	return nil
}

// AssignGrade records a grade on an existing enrollment, overwriting any
// prior value
func (s *Service) AssignGrade(ctx context.Context, studentID, courseID, grade string) (*Enrollment, error) {
	e, err := s.registry.AssignGrade(ctx, studentID, courseID, grade)
	if err != nil {
		return nil, mcwerror.Wrap(err, "failed to assign grade").
			WithOperation("service.AssignGrade")
	}

	s.logger.Info("Grade assigned", "student_id", studentID, "course_id", courseID, "grade", grade)
	return e, nil
}

// GetEnrollment returns the enrollment linking a student and a course
func (s *Service) GetEnrollment(ctx context.Context, studentID, courseID string) (*Enrollment, error) {
	return s.registry.GetEnrollment(ctx, studentID, courseID)
}

// ListEnrollments returns all enrollments in insertion order
func (s *Service) ListEnrollments(ctx context.Context) ([]*Enrollment, error) {
	return s.registry.ListEnrollments(ctx)
}

// StudentsInCourse returns the course roster in enrollment order
func (s *Service) StudentsInCourse(ctx context.Context, courseID string) ([]*Person, error) {
	return s.registry.StudentsInCourse(ctx, courseID)
}

// CoursesForStudent returns a student's schedule in enrollment order
func (s *Service) CoursesForStudent(ctx context.Context, studentID string) ([]*Course, error) {
	return s.registry.CoursesForStudent(ctx, studentID)
}

// Statistics returns registry counters
func (s *Service) Statistics(ctx context.Context) (map[string]interface{}, error) {
	return s.registry.Statistics(ctx)
}

// Close closes the service and releases resources
func (s *Service) Close() error {
	return s.registry.Close()
}
