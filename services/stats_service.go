package services

import (
	"math"

	"task-tracker/tasktracker/database"
	"task-tracker/tasktracker/models"
)

type StatsServiceInterface interface {
	GetDashboardStats(db *database.Database) (DashboardStats, error)
}

type StatsService struct{}

func (s *StatsService) GetDashboardStats(db *database.Database) (DashboardStats, error) {
	stats := DashboardStats{
		TasksPerEmployee: []EmployeeTaskCount{},
	}

	if err := db.DB.Model(&models.Task{}).Count(&stats.TotalTasks).Error; err != nil {
		return DashboardStats{}, err
	}

	var statusRows []struct {
		Status models.TaskStatus
		Count  int64
	}
	err := db.DB.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return DashboardStats{}, err
	}

	for _, row := range statusRows {
		switch row.Status {
		case models.TaskStatusPending:
			stats.StatusCounts.Pending = row.Count
		case models.TaskStatusInProgress:
			stats.StatusCounts.InProgress = row.Count
		case models.TaskStatusCompleted:
			stats.StatusCounts.Completed = row.Count
		}
	}
	stats.CompletedTasks = stats.StatusCounts.Completed

	if stats.TotalTasks > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100))
	}

	err = db.DB.Table("employees").
		Select("employees.id AS employee_id, employees.name AS name, COUNT(tasks.id) AS task_count").
		Joins("LEFT JOIN tasks ON tasks.employee_id = employees.id").
		Group("employees.id, employees.name").
		Order("task_count DESC").
		Scan(&stats.TasksPerEmployee).Error
	if err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}

var StatsServiceInstance StatsServiceInterface = &StatsService{}
