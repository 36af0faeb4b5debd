package database

import (
	"errors"
	"testing"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func TestStudentVisibilityFilter(t *testing.T) {
	db := openTestDB(t)

	ids := make([]int64, 0, 3)
	for _, name := range []string{"Ilunga", "Kabongo", "Mbuyi"} {
		id, err := CreateStudent(db, &models.Student{FirstName: "Jean", LastName: name})
		if err != nil {
			t.Fatalf("CreateStudent error: %v", err)
		}
		ids = append(ids, id)
	}

	if ok, err := DeleteStudent(db, ids[1]); err != nil || !ok {
		t.Fatalf("DeleteStudent = (%v, %v), want (true, nil)", ok, err)
	}

	active, err := GetAllStudents(db, VisibilityActive)
	if err != nil {
		t.Fatalf("GetAllStudents(active) error: %v", err)
	}
	deleted, err := GetAllStudents(db, VisibilityDeleted)
	if err != nil {
		t.Fatalf("GetAllStudents(deleted) error: %v", err)
	}
	all, err := GetAllStudents(db, VisibilityAll)
	if err != nil {
		t.Fatalf("GetAllStudents(all) error: %v", err)
	}

	if len(active) != 2 || len(deleted) != 1 || len(all) != 3 {
		t.Fatalf("got %d active, %d deleted, %d all; want 2, 1, 3", len(active), len(deleted), len(all))
	}
	if deleted[0].ID != ids[1] {
		t.Fatalf("deleted list contains student %d, want %d", deleted[0].ID, ids[1])
	}
	for _, student := range active {
		if student.ID == ids[1] {
			t.Fatal("active list contains the deleted student")
		}
	}

	// all = active ∪ deleted, and the two sets are disjoint.
	seen := map[int64]Visibility{}
	for _, student := range active {
		seen[student.ID] = VisibilityActive
	}
	for _, student := range deleted {
		if _, dup := seen[student.ID]; dup {
			t.Fatalf("student %d appears in both active and deleted lists", student.ID)
		}
		seen[student.ID] = VisibilityDeleted
	}
	if len(seen) != len(all) {
		t.Fatalf("active ∪ deleted has %d students, all has %d", len(seen), len(all))
	}
}

func TestSoftDeleteIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	id, err := CreateStudent(db, &models.Student{FirstName: "Grâce", LastName: "Kasongo"})
	if err != nil {
		t.Fatalf("CreateStudent error: %v", err)
	}

	for i := 0; i < 2; i++ {
		ok, err := DeleteStudent(db, id)
		if err != nil || !ok {
			t.Fatalf("DeleteStudent call %d = (%v, %v), want (true, nil)", i+1, ok, err)
		}
	}

	student, err := GetStudentByID(db, id, VisibilityDeleted)
	if err != nil {
		t.Fatalf("GetStudentByID error: %v", err)
	}
	if student == nil || !student.IsDeleted {
		t.Fatal("student should be soft-deleted after repeated deletes")
	}
}

func TestGetAndUpdateMissingStudent(t *testing.T) {
	db := openTestDB(t)

	student, err := GetStudentByID(db, 999, VisibilityAll)
	if err != nil {
		t.Fatalf("GetStudentByID error: %v", err)
	}
	if student != nil {
		t.Fatalf("GetStudentByID(999) = %+v, want nil", student)
	}

	ok, err := UpdateStudent(db, &models.Student{ID: 999, FirstName: "X", LastName: "Y"})
	if err != nil {
		t.Fatalf("UpdateStudent error: %v", err)
	}
	if ok {
		t.Fatal("UpdateStudent on a missing row reported success")
	}
}

func TestSearchStudents(t *testing.T) {
	db := openTestDB(t)

	if _, err := CreateStudent(db, &models.Student{FirstName: "Marie", LastName: "Dupont"}); err != nil {
		t.Fatalf("CreateStudent error: %v", err)
	}
	if _, err := CreateStudent(db, &models.Student{FirstName: "Marc", LastName: "Kalonji"}); err != nil {
		t.Fatalf("CreateStudent error: %v", err)
	}
	if _, err := CreateStudent(db, &models.Student{FirstName: "Esther", LastName: "Mutombo"}); err != nil {
		t.Fatalf("CreateStudent error: %v", err)
	}
	hiddenID, err := CreateStudent(db, &models.Student{FirstName: "Marcel", LastName: "Banza"})
	if err != nil {
		t.Fatalf("CreateStudent error: %v", err)
	}
	if _, err := DeleteStudent(db, hiddenID); err != nil {
		t.Fatalf("DeleteStudent error: %v", err)
	}

	results, err := SearchStudents(db, "mar", VisibilityActive)
	if err != nil {
		t.Fatalf("SearchStudents error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("SearchStudents(\"mar\") returned %d students, want 2", len(results))
	}
	for _, student := range results {
		if student.ID == hiddenID {
			t.Fatal("search returned a soft-deleted student")
		}
		if student.FirstName != "Marie" && student.FirstName != "Marc" {
			t.Fatalf("unexpected match: %s %s", student.FirstName, student.LastName)
		}
	}
}

func TestImportStudents(t *testing.T) {
	db := openTestDB(t)

	classroomID, err := CreateClassroom(db, &models.Classroom{Name: "3ème Primaire", Level: "Primaire"})
	if err != nil {
		t.Fatalf("CreateClassroom error: %v", err)
	}

	batch := []*models.Student{
		{FirstName: "Didier", LastName: "Lukusa"},
		{FirstName: "", LastName: "Sans-Nom"}, // skipped, no first name
		{FirstName: "Chantal", LastName: "Ngalula"},
	}

	// No active school year yet: validation failure before any write.
	if _, err := ImportStudents(db, batch, classroomID); !errors.Is(err, ErrNoActiveSchoolYear) {
		t.Fatalf("ImportStudents without active year error = %v, want ErrNoActiveSchoolYear", err)
	}

	yearID, err := CreateSchoolYear(db, &models.SchoolYear{
		Name: "2024-2025", StartDate: "2024-09-01", EndDate: "2025-06-30", IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateSchoolYear error: %v", err)
	}

	imported, err := ImportStudents(db, batch, classroomID)
	if err != nil {
		t.Fatalf("ImportStudents error: %v", err)
	}
	if imported != 2 {
		t.Fatalf("imported %d students, want 2", imported)
	}

	roster, err := GetEnrollmentsByClassroom(db, classroomID, yearID, VisibilityActive)
	if err != nil {
		t.Fatalf("GetEnrollmentsByClassroom error: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("classroom roster has %d enrollments, want 2", len(roster))
	}
}
