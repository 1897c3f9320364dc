package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
)

type projectRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Company     string `json:"company" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Status      string `json:"status" validate:"required"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type projectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func newProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Company:     p.Company,
		Description: p.Description,
		Status:      p.Status,
	}
}

// ProjectHandler handles the project endpoints.
type ProjectHandler struct {
	projects ports.ProjectService
}

func NewProjectHandler(projects ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// Create handles POST /projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.Create(c.Request().Context(), toProjectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newProjectResponse(project))
}

// Update handles PUT /projects/:title.
//
// @Summary      Update a project by title
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string          true  "Current title of the project"
// @Param        body   body      projectRequest  true  "Updated project details"
// @Success      200    {object}  projectResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      409    {object}  map[string]string
// @Router       /projects/{title} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.Update(c.Request().Context(), c.Param("title"), toProjectInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newProjectResponse(project))
}

// UpdateStatus handles PATCH /projects/:title/status.
//
// @Summary      Update a project's status
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string         true  "Title of the project"
// @Param        body   body      statusRequest  true  "New status"
// @Success      200    {object}  projectResponse
// @Failure      400    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /projects/{title}/status [patch]
func (h *ProjectHandler) UpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.projects.UpdateStatus(c.Request().Context(), c.Param("title"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newProjectResponse(project))
}

// List handles GET /projects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  projectResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, newProjectResponse(&projects[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /projects/:title.
//
// @Summary      Retrieve a project by title
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        title  path      string  true  "Title of the project"
// @Success      200    {object}  projectResponse
// @Failure      404    {object}  map[string]string
// @Router       /projects/{title} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projects.GetByTitle(c.Request().Context(), c.Param("title"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newProjectResponse(project))
}

// Delete handles DELETE /projects/:title.
//
// @Summary      Delete a project by title
// @Tags         projects
// @Security     BearerAuth
// @Param        title  path  string  true  "Title of the project"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /projects/{title} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projects.DeleteByTitle(c.Request().Context(), c.Param("title")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toProjectInput(r projectRequest) ports.ProjectInput {
	return ports.ProjectInput{
		Title:       r.Title,
		Company:     r.Company,
		Description: r.Description,
		Status:      r.Status,
	}
}
