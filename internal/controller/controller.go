package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	appcontext "github.com/papermapper/papermapper/internal/app_context"
	"github.com/papermapper/papermapper/internal/auth"
	"github.com/papermapper/papermapper/internal/model"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index          *IndexController
	Auth           *AuthController
	User           *UserController
	Project        *ProjectController
	Citation       *CitationController
	SourceMaterial *SourceMaterialController
	Question       *QuestionController
	Insight        *InsightController
	Thought        *ThoughtController
	Claim          *ClaimController
	Card           *CardController
	CardLink       *CardLinkController
	Outline        *OutlineController
	File           *FileController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:          &IndexController{baseController: bc},
		Auth:           &AuthController{baseController: bc},
		User:           &UserController{baseController: bc},
		Project:        &ProjectController{baseController: bc},
		Citation:       &CitationController{baseController: bc},
		SourceMaterial: &SourceMaterialController{baseController: bc},
		Question:       &QuestionController{baseController: bc},
		Insight:        &InsightController{baseController: bc},
		Thought:        &ThoughtController{baseController: bc},
		Claim:          &ClaimController{baseController: bc},
		Card:           &CardController{baseController: bc},
		CardLink:       &CardLinkController{baseController: bc},
		Outline:        &OutlineController{baseController: bc},
		File:           &FileController{baseController: bc},
	}
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}

	return uint(v), nil
}

// parseListRange reads the skip/limit query params the list endpoints use.
func parseListRange(ctx *gin.Context) (int, int) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	return skip, limit
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}

// requireOwnedProject resolves the project and verifies the session user
// owns it.
func (b *baseController) requireOwnedProject(ctx *gin.Context, projectID uint) (*auth.JWTPayload, *model.Project, error) {
	user, err := b.getAuthUser(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get auth user: %w", err)
	}

	project, err := b.app.Repository.Project.GetByIDForUser(ctx, nil, projectID, user.ID)
	if err != nil {
		return user, nil, fmt.Errorf("project not found or not owned: %w", err)
	}

	return user, project, nil
}
