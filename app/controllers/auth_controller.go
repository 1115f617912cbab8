package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/matsci-ai/matsci/app/models"
	"github.com/matsci-ai/matsci/app/repository"
	"github.com/matsci-ai/matsci/internal/pkg/apperror"
	"github.com/matsci-ai/matsci/internal/pkg/schema"
	"github.com/matsci-ai/matsci/internal/pkg/token"
	"github.com/matsci-ai/matsci/internal/pkg/usercontext"
	"github.com/matsci-ai/matsci/pkg/logger"
)

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=150"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister is POST /api/auth/register.
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid request body"))
	}
	if verr := schema.Validate(&req); verr != nil {
		return respondError(c, verr)
	}

	users := repository.GetGlobalFactory().GetUserRepository()

	if _, err := users.GetByUsername(req.Username); err == nil {
		return respondError(c, apperror.New(apperror.KindConflict, "username already exists"))
	} else if !errors.Is(err, repository.ErrNotFound) {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to check username", err))
	}
	if _, err := users.GetByEmail(req.Email); err == nil {
		return respondError(c, apperror.New(apperror.KindConflict, "email already exists"))
	} else if !errors.Is(err, repository.ErrNotFound) {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to check email", err))
	}

	user, err := models.CreateUser(req.Username, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to create user", err))
	}
	if err := users.Create(user); err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to store user", err))
	}

	session, err := token.Issue(user.ID)
	if err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to create session", err))
	}

	logger.Get().Infow("user registered", "userId", user.ID, "username", user.Username)
	return respond(c, fiber.Map{"user": user, "token": session})
}

// HandleLogin is POST /api/auth/login. Authentication failures are
// deliberately indistinguishable between unknown email and wrong
// password.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperror.New(apperror.KindValidation, "invalid request body"))
	}
	if verr := schema.Validate(&req); verr != nil {
		return respondError(c, verr)
	}

	users := repository.GetGlobalFactory().GetUserRepository()

	user, err := users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, apperror.New(apperror.KindAuth, "invalid email or password"))
		}
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to load user", err))
	}
	if !user.CheckPassword(req.Password) {
		return respondError(c, apperror.New(apperror.KindAuth, "invalid email or password"))
	}

	now := time.Now()
	user.LastLogin = &now
	if err := users.Update(user); err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to stamp login", err))
	}

	session, err := token.Issue(user.ID)
	if err != nil {
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to create session", err))
	}

	return respond(c, fiber.Map{"user": user, "token": session})
}

// HandleMe is GET /api/auth/me.
func HandleMe(c *fiber.Ctx) error {
	ctx := usercontext.GetUserContext(c)

	user, err := repository.GetGlobalFactory().GetUserRepository().GetByID(ctx.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respondError(c, apperror.NotFound("user"))
		}
		return respondError(c, apperror.Wrap(apperror.KindInternal, "failed to load user", err))
	}
	return respond(c, fiber.Map{"user": user})
}
