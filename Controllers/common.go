package Controllers

import (
	"errors"

	"Eventy/Models"
	"Eventy/Workflow"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// actingRole pulls the authenticated user out of the context and parses its
// role. The role column is validated at registration, so a parse failure here
// means a stale or hand-edited row.
func actingRole(ctx *fiber.Ctx) (Models.User, Workflow.Role, error) {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return Models.User{}, "", fiber.NewError(fiber.StatusUnauthorized, "Not Logged In.")
	}
	role, err := Workflow.ParseRole(user.Role)
	if err != nil {
		return Models.User{}, "", err
	}
	return user, role, nil
}

// workflowError maps engine and store errors onto HTTP responses.
func workflowError(ctx *fiber.Ctx, err error) error {
	var verr *Workflow.ValidationError
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.Is(err, Workflow.ErrForbidden):
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, Workflow.ErrInvalidRole):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, Models.ErrConflict):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	case errors.As(err, &ferr):
		return ctx.Status(ferr.Code).JSON(fiber.Map{"error": ferr.Message})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
