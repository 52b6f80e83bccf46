package Workflow

import (
	"fmt"

	"Eventy/Models"
)

// Resource and budget requests run a two-party review loop: a sub-team
// manager raises one, a fixed reviewer (hr for resources, fm for budgets)
// edits it and either keeps it or sends it back, and the creator may bounce
// it to the reviewer again. The loop has no automatic termination; every hop
// is an explicit operator decision.

// ResourceInput holds the editable fields of a hiring request.
type ResourceInput struct {
	JobTitle       string `json:"job_title" validate:"required"`
	JobProfile     string `json:"job_profile" validate:"required"`
	ExperienceReqd int    `json:"experience_reqd" validate:"gte=0"`
	SalaryMin      int    `json:"salary_min" validate:"required,gt=0"`
	SalaryMax      int    `json:"salary_max" validate:"required,gtefield=SalaryMin"`
}

// BudgetInput holds the editable fields of a budget request.
type BudgetInput struct {
	BudgetFor     string `json:"budget_for" validate:"required"`
	BudgetQuote   int    `json:"budget_quote" validate:"required,gt=0"`
	BudgetDetails string `json:"budget_details" validate:"required"`
}

// NewResource raises a hiring request; it lands with hr for review.
func NewResource(actor Role, in ResourceInput) (Models.Resource, error) {
	if err := checkSubRequestCreator(actor); err != nil {
		return Models.Resource{}, err
	}
	if err := Validate(in); err != nil {
		return Models.Resource{}, err
	}
	res := Models.Resource{
		CreatedBy:  string(actor),
		AssignedTo: string(RoleHR),
	}
	applyResourceInput(&res, in)
	return res, nil
}

// NewBudget raises a budget request; it lands with the financial manager.
func NewBudget(actor Role, in BudgetInput) (Models.Budget, error) {
	if err := checkSubRequestCreator(actor); err != nil {
		return Models.Budget{}, err
	}
	if err := Validate(in); err != nil {
		return Models.Budget{}, err
	}
	budget := Models.Budget{
		CreatedBy:  string(actor),
		AssignedTo: string(RoleFM),
	}
	applyBudgetInput(&budget, in)
	return budget, nil
}

// ReviewResource applies one review hop to a hiring request. The reviewer
// (hr) chooses via sendBack whether to return it to its creator or keep it;
// the creator's own edits always hand it back to hr.
func ReviewResource(res Models.Resource, actor Role, sendBack bool, in ResourceInput) (Models.Resource, error) {
	next, err := routeReview(res.AssignedTo, res.CreatedBy, actor, RoleHR, sendBack)
	if err != nil {
		return Models.Resource{}, err
	}
	if err := Validate(in); err != nil {
		return Models.Resource{}, err
	}
	applyResourceInput(&res, in)
	res.AssignedTo = next
	return res, nil
}

// ReviewBudget applies one review hop to a budget request; the reviewer is fm.
func ReviewBudget(budget Models.Budget, actor Role, sendBack bool, in BudgetInput) (Models.Budget, error) {
	next, err := routeReview(budget.AssignedTo, budget.CreatedBy, actor, RoleFM, sendBack)
	if err != nil {
		return Models.Budget{}, err
	}
	if err := Validate(in); err != nil {
		return Models.Budget{}, err
	}
	applyBudgetInput(&budget, in)
	budget.AssignedTo = next
	return budget, nil
}

func checkSubRequestCreator(actor Role) error {
	if !actor.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, actor)
	}
	if !actor.IsSubteamManager() {
		return fmt.Errorf("%w: %s cannot raise this request", ErrForbidden, actor)
	}
	return nil
}

func routeReview(assignedTo, createdBy string, actor, reviewer Role, sendBack bool) (string, error) {
	if !actor.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, actor)
	}
	if string(actor) != assignedTo {
		return "", fmt.Errorf("%w: request is assigned to %q", ErrForbidden, assignedTo)
	}
	if actor == reviewer {
		if sendBack {
			return createdBy, nil
		}
		return string(reviewer), nil
	}
	return string(reviewer), nil
}

func applyResourceInput(res *Models.Resource, in ResourceInput) {
	res.JobTitle = in.JobTitle
	res.JobProfile = in.JobProfile
	res.ExperienceReqd = in.ExperienceReqd
	res.SalaryMin = in.SalaryMin
	res.SalaryMax = in.SalaryMax
}

func applyBudgetInput(budget *Models.Budget, in BudgetInput) {
	budget.BudgetFor = in.BudgetFor
	budget.BudgetQuote = in.BudgetQuote
	budget.BudgetDetails = in.BudgetDetails
}
