package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	mcwerror "github.com/msto63/mCW/pkg/core/error"
)

// Registry defines the interface for the campus record store
type Registry interface {
	// Person operations
	AddStudent(ctx context.Context, p *Person) error
	AddInstructor(ctx context.Context, p *Person) error
	GetPerson(ctx context.Context, id string) (*Person, error)
	FindStudent(ctx context.Context, id string) (*Person, error)
	FindInstructor(ctx context.Context, id string) (*Person, error)
	UpdateStudent(ctx context.Context, id string, upd PersonUpdate) (*Person, error)
	UpdateInstructor(ctx context.Context, id string, upd PersonUpdate) (*Person, error)
	RemovePerson(ctx context.Context, id string) error
	ListStudents(ctx context.Context) ([]*Person, error)
	ListInstructors(ctx context.Context) ([]*Person, error)
	ListPeople(ctx context.Context) ([]*Person, error)

	// Course operations
	AddCourse(ctx context.Context, c *Course) error
	GetCourse(ctx context.Context, id string) (*Course, error)
	UpdateCourse(ctx context.Context, id string, upd CourseUpdate) (*Course, error)
	RemoveCourse(ctx context.Context, id string) error
	ListCourses(ctx context.Context) ([]*Course, error)

	// Enrollment operations
	Enroll(ctx context.Context, studentID, courseID string) (*Enrollment, error)
	Unenroll(ctx context.Context, studentID, courseID string) error
	AssignGrade(ctx context.Context, studentID, courseID, grade string) (*Enrollment, error)
	GetEnrollment(ctx context.Context, studentID, courseID string) (*Enrollment, error)
	ListEnrollments(ctx context.Context) ([]*Enrollment, error)
	StudentsInCourse(ctx context.Context, courseID string) ([]*Person, error)
	CoursesForStudent(ctx context.Context, studentID string) ([]*Course, error)

	// Utility
	Close() error
	Statistics(ctx context.Context) (map[string]interface{}, error)
}

// MemoryRegistry implements Registry with in-memory maps.
// People and courses live in separate id namespaces. Enrollments are
// kept as an append-ordered slice so insertion order survives removals.
type MemoryRegistry struct {
	mu          sync.RWMutex
	people      map[string]*Person
	courses     map[string]*Course
	enrollments []*Enrollment
}

// NewMemoryRegistry creates a new in-memory registry
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		people:  make(map[string]*Person),
		courses: make(map[string]*Course),
	}
}

// AddStudent adds a student record
func (s *MemoryRegistry) AddStudent(ctx context.Context, p *Person) error {
	return s.addPerson(p, KindStudent)
}

// AddInstructor adds an instructor record
func (s *MemoryRegistry) AddInstructor(ctx context.Context, p *Person) error {
	return s.addPerson(p, KindInstructor)
}

func (s *MemoryRegistry) addPerson(p *Person, kind PersonKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p == nil {
		return mcwerror.New("person is required").
			WithCode(mcwerror.CodeInvalidInput)
	}
	if p.Kind != "" && p.Kind != kind {
		return mcwerror.New(fmt.Sprintf("person kind mismatch: %s", p.Kind)).
			WithCode(mcwerror.CodeInvalidInput)
	}
	if p.Name == "" {
		return mcwerror.New("name is required").
			WithCode(mcwerror.CodeRequiredField)
	}
	if kind == KindStudent && (p.Department != "" || len(p.Teaching) > 0) {
		return mcwerror.New("instructor fields not allowed on a student").
			WithCode(mcwerror.CodeInvalidInput)
	}
	if kind == KindInstructor && p.Major != "" {
		return mcwerror.New("student fields not allowed on an instructor").
			WithCode(mcwerror.CodeInvalidInput)
	}
	if kind == KindInstructor && len(p.Teaching) > 0 {
		return mcwerror.New("teaching list is registry-maintained").
			WithCode(mcwerror.CodeInvalidInput)
	}
	if p.ID != "" {
		if _, exists := s.people[p.ID]; exists {
			return mcwerror.New(fmt.Sprintf("person already exists: %s", p.ID)).
				WithCode(mcwerror.CodeDuplicateID)
		}
	} else {
		p.ID = uuid.New().String()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	p.Kind = kind

	s.people[p.ID] = p
	return nil
}

// GetPerson retrieves a person of any kind by id
func (s *MemoryRegistry) GetPerson(ctx context.Context, id string) (*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.people[id]
	if !ok {
		return nil, mcwerror.New(fmt.Sprintf("person not found: %s", id)).
			WithCode(mcwerror.CodeNotFound)
	}
	return p, nil
}

// FindStudent retrieves a student by id. An id naming an instructor
// is reported as not found.
func (s *MemoryRegistry) FindStudent(ctx context.Context, id string) (*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findStudent(id)
}

// FindInstructor retrieves an instructor by id. An id naming a student
// is reported as not found.
func (s *MemoryRegistry) FindInstructor(ctx context.Context, id string) (*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findInstructor(id)
}

func (s *MemoryRegistry) findStudent(id string) (*Person, error) {
	p, ok := s.people[id]
	if !ok || !p.IsStudent() {
		return nil, mcwerror.New(fmt.Sprintf("student not found: %s", id)).
			WithCode(mcwerror.CodeNotFound)
	}
	return p, nil
}

func (s *MemoryRegistry) findInstructor(id string) (*Person, error) {
	p, ok := s.people[id]
	if !ok || !p.IsInstructor() {
		return nil, mcwerror.New(fmt.Sprintf("instructor not found: %s", id)).
			WithCode(mcwerror.CodeNotFound)
	}
	return p, nil
}

// UpdateStudent applies a partial update to a student record
func (s *MemoryRegistry) UpdateStudent(ctx context.Context, id string, upd PersonUpdate) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.findStudent(id)
	if err != nil {
		return nil, err
	}
	if upd.Department != nil {
		return nil, mcwerror.New("department not allowed on a student").
			WithCode(mcwerror.CodeInvalidInput)
	}
	return s.applyPersonUpdate(p, upd)
}

// UpdateInstructor applies a partial update to an instructor record
func (s *MemoryRegistry) UpdateInstructor(ctx context.Context, id string, upd PersonUpdate) (*Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.findInstructor(id)
	if err != nil {
		return nil, err
	}
	if upd.Major != nil {
		return nil, mcwerror.New("major not allowed on an instructor").
			WithCode(mcwerror.CodeInvalidInput)
	}
	return s.applyPersonUpdate(p, upd)
}

// applyPersonUpdate merges the update into the record. All validation
// happens before the first write so a rejected update leaves the
// record untouched.
func (s *MemoryRegistry) applyPersonUpdate(p *Person, upd PersonUpdate) (*Person, error) {
	if upd.Name != nil && *upd.Name == "" {
		return nil, mcwerror.New("name is required").
			WithCode(mcwerror.CodeRequiredField)
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.Major != nil {
		p.Major = *upd.Major
	}
	if upd.Department != nil {
		p.Department = *upd.Department
	}
	p.UpdatedAt = time.Now()
	return p, nil
}

// RemovePerson removes a person record. Removing a student also
// removes that student's enrollments; removing an instructor clears
// the assignment on every course pointing at it.
func (s *MemoryRegistry) RemovePerson(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.people[id]
	if !ok {
		return mcwerror.New(fmt.Sprintf("person not found: %s", id)).
			WithCode(mcwerror.CodeNotFound)
	}

	if p.IsStudent() {
		s.removeEnrollmentsWhere(func(e *Enrollment) bool {
			return e.StudentID == id
		})
	}

	if p.IsInstructor() {
		now := time.Now()
		for _, c := range s.courses {
			if c.InstructorID == id {
				c.InstructorID = ""
				c.UpdatedAt = now
			}
		}
	}

	delete(s.people, id)
	return nil
}

// ListStudents returns all students ordered by name
func (s *MemoryRegistry) ListStudents(ctx context.Context) ([]*Person, error) {
	return s.listPeople(func(p *Person) bool { return p.IsStudent() })
}

// ListInstructors returns all instructors ordered by name
func (s *MemoryRegistry) ListInstructors(ctx context.Context) ([]*Person, error) {
	return s.listPeople(func(p *Person) bool { return p.IsInstructor() })
}

// ListPeople returns all person records ordered by name
func (s *MemoryRegistry) ListPeople(ctx context.Context) ([]*Person, error) {
	return s.listPeople(func(p *Person) bool { return true })
}

func (s *MemoryRegistry) listPeople(match func(*Person) bool) ([]*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*Person{}
	for _, p := range s.people {
		if match(p) {
			result = append(result, p)
		}
	}
	sortPeopleByName(result)
	return result, nil
}

// AddCourse adds a course record. An instructor assignment supplied at
// creation is validated and registered on the instructor's teaching
// list.
func (s *MemoryRegistry) AddCourse(ctx context.Context, c *Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c == nil {
		return mcwerror.New("course is required").
			WithCode(mcwerror.CodeInvalidInput)
	}
	if c.Name == "" {
		return mcwerror.New("name is required").
			WithCode(mcwerror.CodeRequiredField)
	}
	if c.InstructorID != "" {
		if _, err := s.findInstructor(c.InstructorID); err != nil {
			return err
		}
	}
	if c.ID != "" {
		if _, exists := s.courses[c.ID]; exists {
			return mcwerror.New(fmt.Sprintf("course already exists: %s", c.ID)).
				WithCode(mcwerror.CodeDuplicateID)
		}
	} else {
		c.ID = uuid.New().String()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	s.courses[c.ID] = c
	if c.InstructorID != "" {
		s.addTeaching(c.InstructorID, c.ID)
	}
	return nil
}

// GetCourse retrieves a course by id
func (s *MemoryRegistry) GetCourse(ctx context.Context, id string) (*Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getCourse(id)
}

func (s *MemoryRegistry) getCourse(id string) (*Course, error) {
	c, ok := s.courses[id]
	if !ok {
		return nil, mcwerror.New(fmt.Sprintf("course not found: %s", id)).
			WithCode(mcwerror.CodeNotFound)
	}
	return c, nil
}

// UpdateCourse applies a partial update to a course record. Assigning
// an instructor validates the target; a reassignment moves the course
// between the old and new instructors' teaching lists.
func (s *MemoryRegistry) UpdateCourse(ctx context.Context, id string, upd CourseUpdate) (*Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.getCourse(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil && *upd.Name == "" {
		return nil, mcwerror.New("name is required").
			WithCode(mcwerror.CodeRequiredField)
	}
	if upd.InstructorID != nil && *upd.InstructorID != "" {
		if _, err := s.findInstructor(*upd.InstructorID); err != nil {
			return nil, err
		}
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.InstructorID != nil && *upd.InstructorID != c.InstructorID {
		if c.InstructorID != "" {
			s.removeTeaching(c.InstructorID, c.ID)
		}
		c.InstructorID = *upd.InstructorID
		if c.InstructorID != "" {
			s.addTeaching(c.InstructorID, c.ID)
		}
	}
	c.UpdatedAt = time.Now()
	return c, nil
}

// RemoveCourse removes a course record, its enrollments and its entry
// on the assigned instructor's teaching list
func (s *MemoryRegistry) RemoveCourse(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return mcwerror.New(fmt.Sprintf("course not found: %s", id)).
			WithCode(mcwerror.CodeNotFound)
	}

	s.removeEnrollmentsWhere(func(e *Enrollment) bool {
		return e.CourseID == id
	})
	if c.InstructorID != "" {
		s.removeTeaching(c.InstructorID, id)
	}

	delete(s.courses, id)
	return nil
}

// ListCourses returns all courses ordered by name
func (s *MemoryRegistry) ListCourses(ctx context.Context) ([]*Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*Course{}
	for _, c := range s.courses {
		result = append(result, c)
	}
	sortCoursesByName(result)
	return result, nil
}

// Enroll creates an enrollment linking a student to a course
func (s *MemoryRegistry) Enroll(ctx context.Context, studentID, courseID string) (*Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.findStudent(studentID); err != nil {
		return nil, err
	}
	if _, err := s.getCourse(courseID); err != nil {
		return nil, err
	}
	if _, e := s.findEnrollment(studentID, courseID); e != nil {
		return nil, mcwerror.New(fmt.Sprintf("student %s already enrolled in course %s", studentID, courseID)).
			WithCode(mcwerror.CodeDuplicateEnrollment)
	}

	enrollment := &Enrollment{
		ID:         uuid.New().String(),
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	s.enrollments = append(s.enrollments, enrollment)
	return enrollment, nil
}

// Unenroll removes the enrollment linking a student to a course.
// The relative order of the remaining enrollments is preserved.
func (s *MemoryRegistry) Unenroll(ctx context.Context, studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, e := s.findEnrollment(studentID, courseID)
	if e == nil {
		return s.enrollmentNotFound(studentID, courseID)
	}
	s.enrollments = append(s.enrollments[:i], s.enrollments[i+1:]...)
	return nil
}

// AssignGrade records a grade on an existing enrollment, overwriting
// any prior value
func (s *MemoryRegistry) AssignGrade(ctx context.Context, studentID, courseID, grade string) (*Enrollment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, e := s.findEnrollment(studentID, courseID)
	if e == nil {
		return nil, s.enrollmentNotFound(studentID, courseID)
	}
	e.Grade = grade
	return e, nil
}

// GetEnrollment retrieves the enrollment for a (student, course) pair
func (s *MemoryRegistry) GetEnrollment(ctx context.Context, studentID, courseID string) (*Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, e := s.findEnrollment(studentID, courseID)
	if e == nil {
		return nil, s.enrollmentNotFound(studentID, courseID)
	}
	return e, nil
}

// ListEnrollments returns all enrollments in insertion order
func (s *MemoryRegistry) ListEnrollments(ctx context.Context) ([]*Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Enrollment, len(s.enrollments))
	copy(result, s.enrollments)
	return result, nil
}

// StudentsInCourse returns the students enrolled in a course in
// enrollment insertion order
func (s *MemoryRegistry) StudentsInCourse(ctx context.Context, courseID string) ([]*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.getCourse(courseID); err != nil {
		return nil, err
	}

	students := []*Person{}
	for _, e := range s.enrollments {
		if e.CourseID == courseID {
			students = append(students, s.people[e.StudentID])
		}
	}
	return students, nil
}

// CoursesForStudent returns the courses a student is enrolled in, in
// enrollment insertion order
func (s *MemoryRegistry) CoursesForStudent(ctx context.Context, studentID string) ([]*Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findStudent(studentID); err != nil {
		return nil, err
	}

	courses := []*Course{}
	for _, e := range s.enrollments {
		if e.StudentID == studentID {
			courses = append(courses, s.courses[e.CourseID])
		}
	}
	return courses, nil
}

// Close is a no-op for the memory registry
func (s *MemoryRegistry) Close() error {
	return nil
}

// Statistics returns registry statistics
func (s *MemoryRegistry) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var students, instructors int
	for _, p := range s.people {
		if p.IsStudent() {
			students++
		} else {
			instructors++
		}
	}

	var graded int
	for _, e := range s.enrollments {
		if e.IsGraded() {
			graded++
		}
	}

	return map[string]interface{}{
		"total_students":     students,
		"total_instructors":  instructors,
		"total_courses":      len(s.courses),
		"total_enrollments":  len(s.enrollments),
		"graded_enrollments": graded,
	}, nil
}

// findEnrollment returns the index and record for a (student, course)
// pair, or (-1, nil) when no match exists. Callers hold the lock.
func (s *MemoryRegistry) findEnrollment(studentID, courseID string) (int, *Enrollment) {
	for i, e := range s.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return i, e
		}
	}
	return -1, nil
}

func (s *MemoryRegistry) enrollmentNotFound(studentID, courseID string) error {
	return mcwerror.New(fmt.Sprintf("enrollment not found: student %s in course %s", studentID, courseID)).
		WithCode(mcwerror.CodeNotFound)
}

// removeEnrollmentsWhere drops every enrollment matching the predicate
// while preserving the order of the rest. Callers hold the lock.
func (s *MemoryRegistry) removeEnrollmentsWhere(match func(*Enrollment) bool) {
	kept := s.enrollments[:0]
	for _, e := range s.enrollments {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	s.enrollments = kept
}

// addTeaching registers a course on an instructor's teaching list.
// Callers hold the lock and have validated the instructor.
func (s *MemoryRegistry) addTeaching(instructorID, courseID string) {
	p := s.people[instructorID]
	for _, id := range p.Teaching {
		if id == courseID {
			return
		}
	}
	p.Teaching = append(p.Teaching, courseID)
	p.UpdatedAt = time.Now()
}

// removeTeaching drops a course from an instructor's teaching list.
// Callers hold the lock.
func (s *MemoryRegistry) removeTeaching(instructorID, courseID string) {
	p, ok := s.people[instructorID]
	if !ok {
		return
	}
	for i, id := range p.Teaching {
		if id == courseID {
			p.Teaching = append(p.Teaching[:i], p.Teaching[i+1:]...)
			p.UpdatedAt = time.Now()
			return
		}
	}
}

// sortPeopleByName orders records by name, then id (simple bubble
// sort for small lists)
func sortPeopleByName(people []*Person) {
	for i := 0; i < len(people)-1; i++ {
		for j := i + 1; j < len(people); j++ {
			if people[j].Name < people[i].Name ||
				(people[j].Name == people[i].Name && people[j].ID < people[i].ID) {
				people[i], people[j] = people[j], people[i]
			}
		}
	}
}

// sortCoursesByName orders records by name, then id (simple bubble
// sort for small lists)
func sortCoursesByName(courses []*Course) {
	for i := 0; i < len(courses)-1; i++ {
		for j := i + 1; j < len(courses); j++ {
			if courses[j].Name < courses[i].Name ||
				(courses[j].Name == courses[i].Name && courses[j].ID < courses[i].ID) {
				courses[i], courses[j] = courses[j], courses[i]
			}
		}
	}
}
