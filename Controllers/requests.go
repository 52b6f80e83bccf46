package Controllers

import (
	"strconv"

	"Eventy/Models"
	"Eventy/Workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestController handles the client request approval endpoints
type RequestController struct {
	DB *gorm.DB
}

func NewRequestController(db *gorm.DB) *RequestController {
	return &RequestController{DB: db}
}

type updateRequestBody struct {
	Workflow.RequestInput
	Action string `json:"action"`
	// Version is the version the client read; a stale value makes the save
	// fail with 409 instead of overwriting someone else's hop. Omitted means
	// last-writer-wins against the stored version.
	Version *int `json:"version"`
}

// CreateRequest opens a new client request. Only cso and scso reach this
// handler; the engine enforces the same rule again.
func (rc *RequestController) CreateRequest(ctx *fiber.Ctx) error {
	user, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	var input Workflow.RequestInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	req, err := Workflow.NewRequest(role, user.Username, input)
	if err != nil {
		return workflowError(ctx, err)
	}
	req.UserID = user.ID

	if err := Models.SaveRequest(rc.DB, &req); err != nil {
		return workflowError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(req)
}

// UpdateRequest commits one approval hop: reject, branch to a sub-team, or
// edit-and-forward along the default chain.
func (rc *RequestController) UpdateRequest(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req Models.Request
	if result := rc.DB.First(&req, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}

	var body updateRequestBody
	if err := ctx.BodyParser(&body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	action, err := Workflow.ParseAction(body.Action)
	if err != nil {
		return workflowError(ctx, err)
	}

	updated, err := Workflow.Advance(req, role, action, body.RequestInput)
	if err != nil {
		return workflowError(ctx, err)
	}
	if body.Version != nil {
		updated.Version = *body.Version
	}

	if err := Models.SaveRequest(rc.DB, &updated); err != nil {
		return workflowError(ctx, err)
	}
	return ctx.JSON(updated)
}

// GetRequest retrieves a single request by ID. Visibility follows the same
// role scoping as the list endpoints.
func (rc *RequestController) GetRequest(ctx *fiber.Ctx) error {
	user, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request ID"})
	}

	var req Models.Request
	if result := rc.DB.Preload("Tasks").First(&req, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Request not found"})
	}
	if !Workflow.CanViewRequest(req, role, user.Username) {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You do not have permission to view this request",
		})
	}
	return ctx.JSON(req)
}

// ListAssigned returns the requests waiting on the caller's role, newest first
func (rc *RequestController) ListAssigned(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	var reqs []Models.Request
	if result := rc.DB.Where("assigned_to = ?", string(role)).Order("id desc").Find(&reqs); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve requests"})
	}
	return ctx.JSON(reqs)
}

// ListCreated returns the requests the caller originated, newest first
func (rc *RequestController) ListCreated(ctx *fiber.Ctx) error {
	user, _, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}

	var reqs []Models.Request
	if result := rc.DB.Where("created_by = ?", user.Username).Order("id desc").Find(&reqs); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve requests"})
	}
	return ctx.JSON(reqs)
}

// PendingUpdates lists the requests the caller must act on. Plain officers
// only create requests, they never hold an assignment.
func (rc *RequestController) PendingUpdates(ctx *fiber.Ctx) error {
	_, role, err := actingRole(ctx)
	if err != nil {
		return workflowError(ctx, err)
	}
	if role == Workflow.RoleCSO {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "No pending updates for this role",
		})
	}

	var reqs []Models.Request
	if result := rc.DB.Where("assigned_to = ?", string(role)).Order("id desc").Find(&reqs); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve requests"})
	}
	return ctx.JSON(reqs)
}
