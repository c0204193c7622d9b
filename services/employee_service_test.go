package services

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"task-tracker/tasktracker/database"
	"task-tracker/tasktracker/models"
	"task-tracker/tasktracker/testutils"
)

func createTestEmployee(t *testing.T, db *database.Database, name, email string) models.Employee {
	t.Helper()

	employee, err := (&EmployeeService{}).CreateEmployee(db, CreateEmployeeInput{
		Name:       name,
		Email:      email,
		Department: "Engineering",
		Position:   "Developer",
	})
	assert.NoError(t, err)
	return employee
}

func TestCreateEmployee_GeneratesUniqueIDs(t *testing.T) {
	db := testutils.SetupTestDB(t)

	first := createTestEmployee(t, db, "Alice", "alice@example.com")
	second := createTestEmployee(t, db, "Bob", "bob@example.com")

	assert.NotZero(t, first.ID)
	assert.NotZero(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	db := testutils.SetupTestDB(t)
	employeeService := &EmployeeService{}

	first := createTestEmployee(t, db, "Alice", "alice@example.com")

	_, err := employeeService.CreateEmployee(db, CreateEmployeeInput{
		Name:       "Another Alice",
		Email:      "alice@example.com",
		Department: "Design",
		Position:   "Designer",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// The first row stays intact.
	stored, err := employeeService.GetEmployeeById(db, first.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", stored.Name)

	var count int64
	assert.NoError(t, db.DB.Model(&models.Employee{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateEmployee_AggregatesAllViolations(t *testing.T) {
	db := testutils.SetupTestDB(t)

	_, err := (&EmployeeService{}).CreateEmployee(db, CreateEmployeeInput{})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Messages, 4)
	assert.Contains(t, validationErr.Messages, "name is required")
	assert.Contains(t, validationErr.Messages, "email is required")
	assert.Contains(t, validationErr.Messages, "department is required")
	assert.Contains(t, validationErr.Messages, "position is required")
}

func TestCreateEmployee_UniqueViolationFromDriver(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employees"`).
		WithArgs("Jane Doe", "jane@example.com", "Engineering", "Developer", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_employees_email"})
	mock.ExpectRollback()

	_, err := (&EmployeeService{}).CreateEmployee(db, CreateEmployeeInput{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Department: "Engineering",
		Position:   "Developer",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllEmployees_OrderedByName(t *testing.T) {
	db := testutils.SetupTestDB(t)

	createTestEmployee(t, db, "Charlie", "charlie@example.com")
	createTestEmployee(t, db, "Alice", "alice@example.com")
	createTestEmployee(t, db, "Bob", "bob@example.com")

	employees, err := (&EmployeeService{}).GetAllEmployees(db)
	assert.NoError(t, err)
	assert.Len(t, employees, 3)
	assert.Equal(t, "Alice", employees[0].Name)
	assert.Equal(t, "Bob", employees[1].Name)
	assert.Equal(t, "Charlie", employees[2].Name)
}

func TestGetEmployeeById_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)

	_, err := (&EmployeeService{}).GetEmployeeById(db, 42)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestGetEmployeeWithTasks_TasksNewestFirst(t *testing.T) {
	db := testutils.SetupTestDB(t)
	employee := createTestEmployee(t, db, "Alice", "alice@example.com")

	older := models.Task{Title: "Older", EmployeeID: employee.ID, Status: models.TaskStatusPending, Priority: models.TaskPriorityMedium}
	older.CreatedAt = time.Now().Add(-time.Hour)
	assert.NoError(t, db.DB.Create(&older).Error)

	newer := models.Task{Title: "Newer", EmployeeID: employee.ID, Status: models.TaskStatusPending, Priority: models.TaskPriorityMedium}
	assert.NoError(t, db.DB.Create(&newer).Error)

	loaded, err := (&EmployeeService{}).GetEmployeeWithTasks(db, employee.ID)
	assert.NoError(t, err)
	assert.Len(t, loaded.Tasks, 2)
	assert.Equal(t, "Newer", loaded.Tasks[0].Title)
	assert.Equal(t, "Older", loaded.Tasks[1].Title)
}

func TestGetEmployeeWithTasks_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)

	_, err := (&EmployeeService{}).GetEmployeeWithTasks(db, 42)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestUpdateEmployee_OnlySuppliedFieldsChange(t *testing.T) {
	db := testutils.SetupTestDB(t)
	employee := createTestEmployee(t, db, "Alice", "alice@example.com")

	newPosition := "Staff Engineer"
	updated, err := (&EmployeeService{}).UpdateEmployee(db, employee.ID, UpdateEmployeeInput{
		Position: &newPosition,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Position)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, "Engineering", updated.Department)
}

func TestUpdateEmployee_EmptyPatchReturnsUnchanged(t *testing.T) {
	db := testutils.SetupTestDB(t)
	employee := createTestEmployee(t, db, "Alice", "alice@example.com")

	updated, err := (&EmployeeService{}).UpdateEmployee(db, employee.ID, UpdateEmployeeInput{})
	assert.NoError(t, err)
	assert.Equal(t, employee.ID, updated.ID)
	assert.Equal(t, employee.Name, updated.Name)
	assert.Equal(t, employee.Email, updated.Email)
}

func TestUpdateEmployee_DuplicateEmail(t *testing.T) {
	db := testutils.SetupTestDB(t)
	createTestEmployee(t, db, "Alice", "alice@example.com")
	bob := createTestEmployee(t, db, "Bob", "bob@example.com")

	takenEmail := "alice@example.com"
	_, err := (&EmployeeService{}).UpdateEmployee(db, bob.ID, UpdateEmployeeInput{
		Email: &takenEmail,
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)

	name := "Nobody"
	_, err := (&EmployeeService{}).UpdateEmployee(db, 42, UpdateEmployeeInput{Name: &name})
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDeleteEmployee_CascadesTasks(t *testing.T) {
	db := testutils.SetupTestDB(t)
	taskService := &TaskService{}
	employee := createTestEmployee(t, db, "Alice", "alice@example.com")
	other := createTestEmployee(t, db, "Bob", "bob@example.com")

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := taskService.CreateTask(db, CreateTaskInput{Title: title, EmployeeID: employee.ID})
		assert.NoError(t, err)
	}
	kept, err := taskService.CreateTask(db, CreateTaskInput{Title: "Kept", EmployeeID: other.ID})
	assert.NoError(t, err)

	assert.NoError(t, (&EmployeeService{}).DeleteEmployee(db, employee.ID))

	tasks, err := taskService.GetTasks(db, TaskFilter{})
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, kept.ID, tasks[0].ID)

	employees, err := (&EmployeeService{}).GetAllEmployees(db)
	assert.NoError(t, err)
	assert.Len(t, employees, 1)
	assert.Equal(t, other.ID, employees[0].ID)
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	db := testutils.SetupTestDB(t)

	err := (&EmployeeService{}).DeleteEmployee(db, 42)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
