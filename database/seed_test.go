package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-tracker/tasktracker/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, RunMigrations(db))
	return db
}

func TestSeed_PopulatesEmptyStore(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, Seed(db))

	var employeeCount, taskCount int64
	assert.NoError(t, db.Model(&models.Employee{}).Count(&employeeCount).Error)
	assert.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	assert.NotZero(t, employeeCount)
	assert.NotZero(t, taskCount)

	// Every seeded task references a seeded employee.
	var orphanCount int64
	assert.NoError(t, db.Model(&models.Task{}).
		Where("employee_id NOT IN (?)", db.Model(&models.Employee{}).Select("id")).
		Count(&orphanCount).Error)
	assert.Zero(t, orphanCount)
}

func TestSeed_SkippedOnceEmployeesExist(t *testing.T) {
	db := openTestDB(t)

	employee := models.Employee{
		Name:       "Existing",
		Email:      "existing@example.com",
		Department: "Ops",
		Position:   "Engineer",
	}
	assert.NoError(t, db.Create(&employee).Error)

	assert.NoError(t, Seed(db))

	var employeeCount, taskCount int64
	assert.NoError(t, db.Model(&models.Employee{}).Count(&employeeCount).Error)
	assert.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	assert.Equal(t, int64(1), employeeCount)
	assert.Zero(t, taskCount)
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, Seed(db))

	var before int64
	assert.NoError(t, db.Model(&models.Employee{}).Count(&before).Error)

	assert.NoError(t, Seed(db))

	var after int64
	assert.NoError(t, db.Model(&models.Employee{}).Count(&after).Error)
	assert.Equal(t, before, after)
}
