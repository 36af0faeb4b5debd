// Package seed builds a self-consistent synthetic dataset for development
// and testing, and loads it into a store. Generation is deterministic: the
// same seed always produces the same dataset.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

// Dataset holds one generated snapshot of every table, with identifiers
// pre-assigned so foreign keys are consistent before anything touches the
// store.
type Dataset struct {
	Roles         []*models.Role
	Users         []*models.User
	SchoolYears   []*models.SchoolYear
	Classrooms    []*models.Classroom
	Students      []*models.Student
	PaymentTypes  []*models.PaymentType
	Enrollments   []*models.Enrollment
	Payments      []*models.Payment
	Expenses      []*models.Expense
	Staff         []*models.Staff
	StaffPayments []*models.StaffPayment
	LedgerEntries []*models.CashLedgerEntry
}

// devPasswordHash is the bcrypt hash shared by every generated account.
// A fixed hash keeps generation reproducible; bcrypt salting would not be.
const devPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

var firstNames = []string{
	"Marie", "Marc", "Jean", "Grâce", "Patrick", "Esther", "Didier", "Chantal",
	"Emmanuel", "Sarah", "Joseph", "Nadine", "Christian", "Rachel", "Serge",
	"Béatrice", "Olivier", "Clarisse", "Papy", "Divine",
}

var lastNames = []string{
	"Dupont", "Kalonji", "Mukendi", "Tshibanda", "Ilunga", "Kabongo", "Mbuyi",
	"Ngalula", "Kasongo", "Mutombo", "Tshimanga", "Lukusa", "Banza", "Kazadi",
	"Mwamba", "Nkulu",
}

var classroomLevels = []struct {
	name  string
	level string
}{
	{"1ère Primaire", "Primaire"},
	{"2ème Primaire", "Primaire"},
	{"3ème Primaire", "Primaire"},
	{"4ème Primaire", "Primaire"},
	{"5ème Primaire", "Primaire"},
	{"6ème Primaire", "Primaire"},
	{"7ème Secondaire", "Secondaire"},
	{"8ème Secondaire", "Secondaire"},
}

var expenseDescriptions = []string{
	"Achat de fournitures scolaires",
	"Facture d'électricité",
	"Facture d'eau",
	"Réparation des bancs",
	"Achat de craies",
	"Entretien du bâtiment",
	"Carburant du générateur",
	"Achat de manuels",
}

var staffPositions = []string{"Enseignant", "Enseignant", "Directeur", "Comptable", "Secrétaire", "Gardien"}

// Generate builds the dataset for the given seed. Entities are produced in
// foreign-key dependency order; the most recent school year is the active
// one, and every enrollment, payment, expense and staff payment references
// it and an existing user.
func Generate(seed int64) *Dataset {
	rng := rand.New(rand.NewSource(seed))
	ds := &Dataset{}

	ds.Roles = []*models.Role{
		{ID: 1, Name: "Admin", Description: "Accès complet"},
		{ID: 2, Name: "Caissier", Description: "Paiements et caisse"},
		{ID: 3, Name: "Secrétaire", Description: "Inscriptions et dossiers"},
	}

	ds.Users = []*models.User{
		{ID: 1, Username: "admin", Password: devPasswordHash, FullName: "Victoire Kabeya", RoleID: 1},
		{ID: 2, Username: "caissier", Password: devPasswordHash, FullName: "Solange Mbala", RoleID: 2},
		{ID: 3, Username: "secretaire", Password: devPasswordHash, FullName: "Fiston Ngoy", RoleID: 3},
	}

	startYear := 2022 + rng.Intn(2)
	for i := 0; i < 3; i++ {
		year := startYear + i
		ds.SchoolYears = append(ds.SchoolYears, &models.SchoolYear{
			ID:        int64(i + 1),
			Name:      fmt.Sprintf("%d-%d", year, year+1),
			StartDate: fmt.Sprintf("%d-09-01", year),
			EndDate:   fmt.Sprintf("%d-06-30", year+1),
			IsActive:  i == 2, // the most recent year is the active one
		})
	}
	activeYear := ds.SchoolYears[len(ds.SchoolYears)-1]

	for i, c := range classroomLevels {
		ds.Classrooms = append(ds.Classrooms, &models.Classroom{
			ID:    int64(i + 1),
			Name:  c.name,
			Level: c.level,
		})
	}

	studentCount := 30 + rng.Intn(21)
	for i := 0; i < studentCount; i++ {
		ds.Students = append(ds.Students, &models.Student{
			ID:            int64(i + 1),
			FirstName:     firstNames[rng.Intn(len(firstNames))],
			LastName:      lastNames[rng.Intn(len(lastNames))],
			Surname:       firstNames[rng.Intn(len(firstNames))],
			Gender:        []string{"M", "F"}[rng.Intn(2)],
			DateOfBirth:   randomDate(rng, 2008, 2016),
			Address:       fmt.Sprintf("Avenue %s n°%d", lastNames[rng.Intn(len(lastNames))], 1+rng.Intn(120)),
			ParentContact: fmt.Sprintf("+24381%07d", rng.Intn(10000000)),
		})
	}

	ds.PaymentTypes = []*models.PaymentType{
		{ID: 1, Name: "Frais de scolarité", Description: "Minerval mensuel", AmountDefined: decimal.NewFromInt(50)},
		{ID: 2, Name: "Frais d'inscription", Description: "Payable une fois", AmountDefined: decimal.NewFromInt(30)},
		{ID: 3, Name: "Uniforme", Description: "Tenue scolaire", AmountDefined: decimal.NewFromInt(20)},
		{ID: 4, Name: "Frais d'examen", Description: "Sessions de fin de semestre", AmountDefined: decimal.NewFromInt(15)},
	}

	// Every enrollment targets the active school year.
	for i, student := range ds.Students {
		ds.Enrollments = append(ds.Enrollments, &models.Enrollment{
			ID:           int64(i + 1),
			StudentID:    student.ID,
			ClassroomID:  ds.Classrooms[rng.Intn(len(ds.Classrooms))].ID,
			SchoolYearID: activeYear.ID,
			Status:       "Inscrit",
		})
	}

	var paymentID int64
	for _, student := range ds.Students {
		for n := rng.Intn(3) + 1; n > 0; n-- {
			paymentID++
			paymentType := ds.PaymentTypes[rng.Intn(len(ds.PaymentTypes))]
			reference := ""
			if id, err := uuid.NewRandomFromReader(rng); err == nil {
				reference = id.String()
			}
			ds.Payments = append(ds.Payments, &models.Payment{
				ID:            paymentID,
				StudentID:     student.ID,
				SchoolYearID:  activeYear.ID,
				PaymentTypeID: paymentType.ID,
				Amount:        paymentType.AmountDefined.Add(decimal.NewFromInt(int64(rng.Intn(3) * 5))),
				PaymentDate:   schoolYearDate(rng, startYear+2),
				Reference:     reference,
				UserID:        ds.Users[rng.Intn(len(ds.Users))].ID,
			})
		}
	}

	expenseCount := 8 + rng.Intn(5)
	for i := 0; i < expenseCount; i++ {
		ds.Expenses = append(ds.Expenses, &models.Expense{
			ID:           int64(i + 1),
			SchoolYearID: activeYear.ID,
			ExpenseDate:  schoolYearDate(rng, startYear+2),
			Description:  expenseDescriptions[rng.Intn(len(expenseDescriptions))],
			Amount:       decimal.NewFromInt(int64(10 + rng.Intn(40)*5)),
			UserID:       ds.Users[rng.Intn(len(ds.Users))].ID,
		})
	}

	for i, position := range staffPositions {
		ds.Staff = append(ds.Staff, &models.Staff{
			ID:         int64(i + 1),
			FirstName:  firstNames[rng.Intn(len(firstNames))],
			LastName:   lastNames[rng.Intn(len(lastNames))],
			Position:   position,
			HireDate:   randomDate(rng, 2015, 2022),
			SalaryBase: decimal.NewFromInt(int64(100 + rng.Intn(10)*20)),
		})
	}

	var staffPaymentID int64
	for _, member := range ds.Staff {
		for n := rng.Intn(2) + 1; n > 0; n-- {
			staffPaymentID++
			ds.StaffPayments = append(ds.StaffPayments, &models.StaffPayment{
				ID:           staffPaymentID,
				StaffID:      member.ID,
				SchoolYearID: activeYear.ID,
				Amount:       member.SalaryBase,
				PaymentDate:  schoolYearDate(rng, startYear+2),
				UserID:       ds.Users[rng.Intn(len(ds.Users))].ID,
			})
		}
	}

	ds.LedgerEntries = mirrorLedger(ds)
	return ds
}

// mirrorLedger derives the full ledger from the money-moving rows: every
// payment becomes an Entrée, every expense and staff payment a Sortie. The
// generator mirrors directly rather than going through the ledger engine, so
// the loaded dataset satisfies the mirroring invariant from the start.
func mirrorLedger(ds *Dataset) []*models.CashLedgerEntry {
	studentsByID := map[int64]*models.Student{}
	for _, s := range ds.Students {
		studentsByID[s.ID] = s
	}
	staffByID := map[int64]*models.Staff{}
	for _, s := range ds.Staff {
		staffByID[s.ID] = s
	}

	entries := []*models.CashLedgerEntry{}
	var id int64
	for _, payment := range ds.Payments {
		id++
		student := studentsByID[payment.StudentID]
		entries = append(entries, &models.CashLedgerEntry{
			ID:           id,
			SchoolYearID: payment.SchoolYearID,
			Date:         payment.PaymentDate,
			Type:         models.EntryTypeIn,
			Description:  fmt.Sprintf("Payment: %s %s", student.FirstName, student.LastName),
			Amount:       payment.Amount,
			UserID:       payment.UserID,
		})
	}
	for _, expense := range ds.Expenses {
		id++
		entries = append(entries, &models.CashLedgerEntry{
			ID:           id,
			SchoolYearID: expense.SchoolYearID,
			Date:         expense.ExpenseDate,
			Type:         models.EntryTypeOut,
			Description:  "Expense: " + expense.Description,
			Amount:       expense.Amount,
			UserID:       expense.UserID,
		})
	}
	for _, payment := range ds.StaffPayments {
		id++
		member := staffByID[payment.StaffID]
		entries = append(entries, &models.CashLedgerEntry{
			ID:           id,
			SchoolYearID: payment.SchoolYearID,
			Date:         payment.PaymentDate,
			Type:         models.EntryTypeOut,
			Description:  fmt.Sprintf("Staff payment: %s %s", member.FirstName, member.LastName),
			Amount:       payment.Amount,
			UserID:       payment.UserID,
		})
	}
	return entries
}

// randomDate picks a date between January of fromYear and December of
// toYear, day capped at 28 to stay valid in every month.
func randomDate(rng *rand.Rand, fromYear, toYear int) string {
	year := fromYear + rng.Intn(toYear-fromYear+1)
	return fmt.Sprintf("%d-%02d-%02d", year, 1+rng.Intn(12), 1+rng.Intn(28))
}

// schoolYearDate picks a date inside the school year starting in September
// of startYear.
func schoolYearDate(rng *rand.Rand, startYear int) string {
	month := []int{9, 10, 11, 12, 1, 2, 3, 4, 5, 6}[rng.Intn(10)]
	year := startYear
	if month < 9 {
		year++
	}
	return fmt.Sprintf("%d-%02d-%02d", year, month, 1+rng.Intn(28))
}
