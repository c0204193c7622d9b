package routes

import (
	"errors"
	"net/http"
	"strconv"

	"task-tracker/tasktracker/database"
	"task-tracker/tasktracker/models"
	"task-tracker/tasktracker/services"

	"github.com/gin-gonic/gin"
)

func RegisterTaskRoutes(router *gin.Engine, db *database.Database, taskService services.TaskServiceInterface) {
	group := router.Group("/tasks")
	{
		group.GET("", func(c *gin.Context) { GetTasks(c, db, taskService) })
		group.POST("", func(c *gin.Context) { CreateTask(c, db, taskService) })
		group.GET("/:id", func(c *gin.Context) { GetTaskById(c, db, taskService) })
		group.PUT("/:id", func(c *gin.Context) { UpdateTask(c, db, taskService) })
		group.DELETE("/:id", func(c *gin.Context) { DeleteTask(c, db, taskService) })
	}
}

func GetTasks(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var filter services.TaskFilter

	if status := c.Query("status"); status != "" {
		s := models.TaskStatus(status)
		filter.Status = &s
	}
	if employeeID := c.Query("employee_id"); employeeID != "" {
		id, err := strconv.ParseUint(employeeID, 10, 32)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee_id"})
			return
		}
		uid := uint(id)
		filter.EmployeeID = &uid
	}

	tasks, err := taskService.GetTasks(db, filter)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func GetTaskById(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := taskService.GetTaskById(db, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func CreateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	var input services.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := taskService.CreateTask(db, input)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.Is(err, services.ErrEmployeeReference):
			// A caller input defect, not a missing task: still a 400.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, task)
}

func UpdateTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.UpdateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	task, err := taskService.UpdateTask(db, id, input)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.Is(err, services.ErrEmployeeReference):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, task)
}

func DeleteTask(c *gin.Context, db *database.Database, taskService services.TaskServiceInterface) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := taskService.DeleteTask(db, id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
