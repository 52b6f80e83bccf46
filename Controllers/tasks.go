package Controllers

import (
	"strconv"

	"Eventy/Models"
	"Eventy/Workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TaskController handles the planning dashboard and task endpoints
type TaskController struct {
	DB *gorm.DB
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

// Planning lists the requests routed to the caller's sub-team
func (tc *TaskController) Planning(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}
	if !role.IsSubteamManager() {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only sub-team managers plan requests",
		})
	}

	var reqs []Models.Request
	result := tc.DB.Where("tasks_for = ?", string(role.SubteamOf())).Order("id desc").Find(&reqs)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve requests"})
	}
	return ctx.JSON(reqs)
}

// AddTask plans a task against a request routed to the caller's sub-team
func (tc *TaskController) AddTask(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req Models.Request
	if result := tc.DB.First(&req, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}

	var input Workflow.TaskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task, err := Workflow.NewTask(req, role, input)
	if err != nil {
		return workflowError(ctx, err)
	}

	if result := tc.DB.Create(&task); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// ListTasks returns the tasks of the caller's sub-team, newest request first
func (tc *TaskController) ListTasks(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	subteam, err := Workflow.TaskSubteamFor(role)
	if err != nil {
		return workflowError(ctx, err)
	}

	var tasks []Models.Task
	result := tc.DB.Where("subteam = ?", string(subteam)).Order("request_id desc").Find(&tasks)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}
	return ctx.JSON(tasks)
}
