package store

import "testing"

func TestPersonKind_IsValid(t *testing.T) {
	tests := []struct {
		kind  PersonKind
		valid bool
	}{
		{KindStudent, true},
		{KindInstructor, true},
		{PersonKind("admin"), false},
		{PersonKind(""), false},
	}

	for _, tt := range tests {
		if got := tt.kind.IsValid(); got != tt.valid {
			t.Errorf("IsValid(%q) = %v, want %v", tt.kind, got, tt.valid)
		}
	}
}

func TestPerson_KindChecks(t *testing.T) {
	student := &Person{Kind: KindStudent}
	if !student.IsStudent() || student.IsInstructor() {
		t.Error("Student kind checks failed")
	}

	instructor := &Person{Kind: KindInstructor}
	if !instructor.IsInstructor() || instructor.IsStudent() {
		t.Error("Instructor kind checks failed")
	}
}

func TestEnrollment_IsGraded(t *testing.T) {
	e := &Enrollment{}
	if e.IsGraded() {
		t.Error("Ungraded enrollment reported as graded")
	}

	e.Grade = "B+"
	if !e.IsGraded() {
		t.Error("Graded enrollment reported as ungraded")
	}
}
