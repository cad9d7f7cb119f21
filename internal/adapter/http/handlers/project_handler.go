package handlers

import (
	"errors"
	"log"
	"net/http"

	request "inhouse/internal/adapter/http/dto/request"
	response "inhouse/internal/adapter/http/dto/response"
	"inhouse/internal/usecase"
	"inhouse/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)
	errInvalidStepPayload    = pkg.NewDomainErrorSimple("INVALID_STEP_INPUT", "Invalid project step payload", http.StatusBadRequest)
)

// ProjectHandler serves projects and their steps.

type ProjectHandler struct {
	projects usecase.IProjectUseCase
	steps    usecase.IProjectStepUseCase
}

func NewProjectHandler(projects usecase.IProjectUseCase, steps usecase.IProjectStepUseCase) *ProjectHandler {
	return &ProjectHandler{projects: projects, steps: steps}
}

// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.CreateProjectRequest true "Payload"
// @Success 201 {object} response.ProjectResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidProjectPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidStatus)
		return
	}

	p, err := h.projects.Create(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		log.Printf("[project][handler] create failed key=%s err=%v", payload.Key, err)
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} response.ProjectResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.projects.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} response.ProjectResponse
// @Failure 500 {object} pkg.HTTPError
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		log.Printf("[project][handler] list failed err=%v", err)
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(items))
}

// @Summary Change the project status
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.StatusRequest true "Payload"
// @Success 200 {object} response.ProjectResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /projects/{id}/status [patch]
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidStatus)
		return
	}
	status, err := payload.ProjectStatus()
	if err != nil {
		respondError(c, errInvalidStatus)
		return
	}

	p, err := h.projects.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), status)
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// Copy duplicates a project. The body is optional.
//
// @Summary Copy a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.CopyProjectRequest true "Payload"
// @Success 201 {object} response.ProjectResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /projects/{id}/copy [post]
func (h *ProjectHandler) Copy(c *gin.Context) {
	var payload request.CopyProjectRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidProjectPayload)
			return
		}
	}

	p, err := h.projects.Copy(c.Request.Context(), actorFrom(c), c.Param("id"), payload.ToInput())
	if err != nil {
		log.Printf("[project][handler] copy failed project_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// @Summary Create a project step
// @Tags steps
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.CreateStepRequest true "Payload"
// @Success 201 {object} response.StepResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /projects/{id}/steps [post]
func (h *ProjectHandler) CreateStep(c *gin.Context) {
	var payload request.CreateStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidStepPayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, errInvalidStatus)
		return
	}

	s, err := h.steps.Create(c.Request.Context(), actorFrom(c), c.Param("id"), in)
	if err != nil {
		log.Printf("[step][handler] create failed project_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromStep(s))
}

// @Summary Add template steps to a project
// @Tags steps
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.DefaultStepsRequest true "Payload"
// @Success 201 {array} response.StepResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /projects/{id}/default-steps [post]
func (h *ProjectHandler) AddDefaultSteps(c *gin.Context) {
	var payload request.DefaultStepsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidStepPayload)
		return
	}

	created, err := h.steps.AddDefaultSteps(c.Request.Context(), actorFrom(c), c.Param("id"), payload.Names)
	if err != nil {
		log.Printf("[step][handler] default steps failed project_id=%s err=%v", c.Param("id"), err)
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSteps(created))
}

// @Summary List the steps of a project
// @Tags steps
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {array} response.StepResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /projects/{id}/steps [get]
func (h *ProjectHandler) ListSteps(c *gin.Context) {
	items, err := h.steps.ListByProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSteps(items))
}

// @Summary Open or close a project step
// @Tags steps
// @Accept json
// @Produce json
// @Param id path string true "Step id"
// @Param X-User-ID header string false "Request user id"
// @Param payload body request.StatusRequest true "Payload"
// @Success 200 {object} response.StepResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /steps/{id}/status [patch]
func (h *ProjectHandler) UpdateStepStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidStatus)
		return
	}
	status, err := payload.StepStatus()
	if err != nil {
		respondError(c, errInvalidStatus)
		return
	}

	s, err := h.steps.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), status)
	if err != nil {
		respondError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStep(s))
}

func mapProjectError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrMasterProjectNotFound):
		return pkg.NewDomainErrorSimple("MASTER_PROJECT_NOT_FOUND", "Master project not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectKeyTaken):
		return pkg.NewDomainErrorSimple("PROJECT_KEY_TAKEN", "Project key already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectNameTaken):
		return pkg.NewDomainErrorSimple("PROJECT_NAME_TAKEN", "Project name already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrStepNameTaken):
		return pkg.NewDomainErrorSimple("STEP_NAME_TAKEN", "Project step name already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidProjectName),
		errors.Is(err, usecase.ErrInvalidProjectKey):
		return errInvalidProjectPayload
	case errors.Is(err, usecase.ErrInvalidStepName),
		errors.Is(err, usecase.ErrInvalidStepID):
		return errInvalidStepPayload
	case errors.Is(err, usecase.ErrInvalidProjectStatus),
		errors.Is(err, usecase.ErrInvalidStepStatus):
		return errInvalidStatus
	default:
		return internalError(err)
	}
}
