package repository

import (
	"fmt"

	"github.com/matsci-ai/matsci/app/models"
)

// Seed loads the static reference data (subscription plans and Ethiopian
// materials) into empty collections. Safe to call on every startup.
func Seed(repos *Repositories) error {
	planCount, err := repos.Plan.Count()
	if err != nil {
		return fmt.Errorf("failed to count plans: %w", err)
	}
	if planCount == 0 {
		for _, plan := range models.SeedSubscriptionPlans() {
			p := plan
			if err := repos.Plan.Create(&p); err != nil {
				return fmt.Errorf("failed to seed plan %s: %w", plan.Name, err)
			}
		}
	}

	materialCount, err := repos.Material.Count()
	if err != nil {
		return fmt.Errorf("failed to count materials: %w", err)
	}
	if materialCount == 0 {
		for _, material := range models.SeedEthiopianMaterials() {
			m := material
			if err := repos.Material.Create(&m); err != nil {
				return fmt.Errorf("failed to seed material %s: %w", material.Name, err)
			}
		}
	}

	return nil
}
