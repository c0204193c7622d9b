package routes

import (
	"errors"
	"net/http"

	"task-tracker/tasktracker/database"
	"task-tracker/tasktracker/services"

	"github.com/gin-gonic/gin"
)

func RegisterEmployeeRoutes(router *gin.Engine, db *database.Database, employeeService services.EmployeeServiceInterface) {
	group := router.Group("/employees")
	{
		group.GET("", func(c *gin.Context) { GetEmployees(c, db, employeeService) })
		group.POST("", func(c *gin.Context) { CreateEmployee(c, db, employeeService) })
		group.GET("/:id", func(c *gin.Context) { GetEmployeeById(c, db, employeeService) })
		group.PUT("/:id", func(c *gin.Context) { UpdateEmployee(c, db, employeeService) })
		group.DELETE("/:id", func(c *gin.Context) { DeleteEmployee(c, db, employeeService) })
	}
}

func GetEmployees(c *gin.Context, db *database.Database, employeeService services.EmployeeServiceInterface) {
	employees, err := employeeService.GetAllEmployees(db)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func GetEmployeeById(c *gin.Context, db *database.Database, employeeService services.EmployeeServiceInterface) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	employee, err := employeeService.GetEmployeeWithTasks(db, id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func CreateEmployee(c *gin.Context, db *database.Database, employeeService services.EmployeeServiceInterface) {
	var input services.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	employee, err := employeeService.CreateEmployee(db, input)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.Is(err, services.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func UpdateEmployee(c *gin.Context, db *database.Database, employeeService services.EmployeeServiceInterface) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	employee, err := employeeService.UpdateEmployee(db, id, input)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
		case errors.Is(err, services.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEmployeeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, employee)
}

func DeleteEmployee(c *gin.Context, db *database.Database, employeeService services.EmployeeServiceInterface) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := employeeService.DeleteEmployee(db, id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee and associated tasks deleted successfully"})
}
