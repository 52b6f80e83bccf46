package Models

import (
	"gorm.io/gorm"
)

// Resource is a hiring request raised by a sub-team manager and reviewed by hr.
type Resource struct {
	gorm.Model
	JobTitle       string `json:"job_title" gorm:"not null"`
	JobProfile     string `json:"job_profile" gorm:"not null"`
	ExperienceReqd int    `json:"experience_reqd"`
	SalaryMin      int    `json:"salary_min"`
	SalaryMax      int    `json:"salary_max"`
	CreatedBy      string `json:"created_by" gorm:"index"`
	AssignedTo     string `json:"assigned_to" gorm:"index"`
	Version        int    `json:"version"`
}

// Budget is a budget request raised by a sub-team manager and reviewed by fm.
type Budget struct {
	gorm.Model
	BudgetFor     string `json:"budget_for" gorm:"not null"`
	BudgetQuote   int    `json:"budget_quote" gorm:"not null"`
	BudgetDetails string `json:"budget_details" gorm:"not null"`
	CreatedBy     string `json:"created_by" gorm:"index"`
	AssignedTo    string `json:"assigned_to" gorm:"index"`
	Version       int    `json:"version"`
}

var resourceColumns = []string{
	"job_title", "job_profile", "experience_reqd", "salary_min", "salary_max",
	"assigned_to", "version", "updated_at",
}

var budgetColumns = []string{
	"budget_for", "budget_quote", "budget_details",
	"assigned_to", "version", "updated_at",
}

// SaveResource persists a reviewed resource request with the same
// version-checked update as SaveRequest; the review loop has the identical
// two-writer race.
func SaveResource(db *gorm.DB, res *Resource) error {
	if res.ID == 0 {
		return db.Create(res).Error
	}
	readVersion := res.Version
	res.Version = readVersion + 1
	result := db.Model(&Resource{}).
		Where("id = ? AND version = ?", res.ID, readVersion).
		Select(resourceColumns).
		Updates(res)
	if result.Error != nil {
		res.Version = readVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		res.Version = readVersion
		return ErrConflict
	}
	return nil
}

// SaveBudget persists a reviewed budget request with a version check.
func SaveBudget(db *gorm.DB, budget *Budget) error {
	if budget.ID == 0 {
		return db.Create(budget).Error
	}
	readVersion := budget.Version
	budget.Version = readVersion + 1
	result := db.Model(&Budget{}).
		Where("id = ? AND version = ?", budget.ID, readVersion).
		Select(budgetColumns).
		Updates(budget)
	if result.Error != nil {
		budget.Version = readVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		budget.Version = readVersion
		return ErrConflict
	}
	return nil
}
