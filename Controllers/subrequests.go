package Controllers

import (
	"strconv"

	"Eventy/Models"
	"Eventy/Workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResourceController handles the hiring request review loop
type ResourceController struct {
	DB *gorm.DB
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db}
}

type reviewResourceBody struct {
	Workflow.ResourceInput
	SendBack bool `json:"send_back"`
	Version  *int `json:"version"`
}

// CreateResource raises a hiring request; it is assigned to hr for review
func (rc *ResourceController) CreateResource(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	var input Workflow.ResourceInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := Workflow.NewResource(role, input)
	if err != nil {
		return workflowError(ctx, err)
	}

	if err := Models.SaveResource(rc.DB, &res); err != nil {
		return workflowError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

// ListResources returns the hiring requests waiting on the caller's role
func (rc *ResourceController) ListResources(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	var resources []Models.Resource
	result := rc.DB.Where("assigned_to = ?", string(role)).Order("id desc").Find(&resources)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve resource requests"})
	}
	return ctx.JSON(resources)
}

// UpdateResource applies one review hop to a hiring request
func (rc *ResourceController) UpdateResource(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid resource ID"})
	}

	var res Models.Resource
	if result := rc.DB.First(&res, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource request not found"})
	}

	var body reviewResourceBody
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := Workflow.ReviewResource(res, role, body.SendBack, body.ResourceInput)
	if err != nil {
		return workflowError(ctx, err)
	}
	if body.Version != nil {
		updated.Version = *body.Version
	}

	if err := Models.SaveResource(rc.DB, &updated); err != nil {
		return workflowError(ctx, err)
	}
	return ctx.JSON(updated)
}

// BudgetController handles the budget request review loop
type BudgetController struct {
	DB *gorm.DB
}

func NewBudgetController(db *gorm.DB) *BudgetController {
	return &BudgetController{DB: db}
}

type reviewBudgetBody struct {
	Workflow.BudgetInput
	SendBack bool `json:"send_back"`
	Version  *int `json:"version"`
}

// CreateBudget raises a budget request; it is assigned to fm for review
func (bc *BudgetController) CreateBudget(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	var input Workflow.BudgetInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	budget, err := Workflow.NewBudget(role, input)
	if err != nil {
		return workflowError(ctx, err)
	}

	if err := Models.SaveBudget(bc.DB, &budget); err != nil {
		return workflowError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(budget)
}

// ListBudgets returns the budget requests waiting on the caller's role
func (bc *BudgetController) ListBudgets(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	var budgets []Models.Budget
	result := bc.DB.Where("assigned_to = ?", string(role)).Order("id desc").Find(&budgets)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve budget requests"})
	}
	return ctx.JSON(budgets)
}

// UpdateBudget applies one review hop to a budget request
func (bc *BudgetController) UpdateBudget(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid budget ID"})
	}

	var budget Models.Budget
	if result := bc.DB.First(&budget, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Budget request not found"})
	}

	var body reviewBudgetBody
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updated, err := Workflow.ReviewBudget(budget, role, body.SendBack, body.BudgetInput)
	if err != nil {
		return workflowError(ctx, err)
	}
	if body.Version != nil {
		updated.Version = *body.Version
	}

	if err := Models.SaveBudget(bc.DB, &updated); err != nil {
		return workflowError(ctx, err)
	}
	return ctx.JSON(updated)
}
