package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/app/models"
	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/internal/pkg/schema"
)

// HandleListMaterials is GET /api/ethiopian-materials.
func HandleListMaterials(c *fiber.Ctx) error {
	materials, err := repository.GetGlobalFactory().GetMaterialRepository().GetAll()
	if err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to list materials", err))
	}
	return respond(c, fiber.Map{"materials": materials})
}

// HandleGetMaterial is GET /api/ethiopian-materials/:id.
func HandleGetMaterial(c *fiber.Ctx) error {
	material, err := repository.GetGlobalFactory().GetMaterialRepository().GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, apperror.NotFound("ethiopian material"))
		}
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to load material", err))
	}
	return respond(c, fiber.Map{"material": material})
}

// HandleCreateMaterial is POST /api/ethiopian-materials. Requires an
// authenticated caller.
func HandleCreateMaterial(c *fiber.Ctx) error {
	var material models.EthiopianMaterial
	if err := c.BodyParser(&material); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid request body"))
	}
	material.ID = ""

	if verr := schema.Validate(&material); verr != nil {
		return respondError(c, verr)
	}

	if err := repository.GetGlobalFactory().GetMaterialRepository().Create(&material); err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to create material", err))
	}
	return respond(c, fiber.Map{"material": material})
}
