package database

import (
	"testing"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func TestClassroomSoftDeleteVisibility(t *testing.T) {
	db := openTestDB(t)

	keptID, err := CreateClassroom(db, &models.Classroom{Name: "5ème Primaire", Level: "Primaire"})
	if err != nil {
		t.Fatalf("CreateClassroom error: %v", err)
	}
	goneID, err := CreateClassroom(db, &models.Classroom{Name: "6ème Primaire", Level: "Primaire"})
	if err != nil {
		t.Fatalf("CreateClassroom error: %v", err)
	}

	if ok, err := DeleteClassroom(db, goneID); err != nil || !ok {
		t.Fatalf("DeleteClassroom = (%v, %v), want (true, nil)", ok, err)
	}

	active, err := GetAllClassrooms(db, VisibilityActive)
	if err != nil {
		t.Fatalf("GetAllClassrooms(active) error: %v", err)
	}
	if len(active) != 1 || active[0].ID != keptID {
		t.Fatalf("active classrooms = %d rows, want only classroom %d", len(active), keptID)
	}

	all, err := GetAllClassrooms(db, VisibilityAll)
	if err != nil {
		t.Fatalf("GetAllClassrooms(all) error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all classrooms = %d rows, want 2", len(all))
	}
	found := false
	for _, classroom := range all {
		if classroom.ID == goneID {
			found = true
		}
	}
	if !found {
		t.Fatal("deleted classroom missing from the all view")
	}
}
