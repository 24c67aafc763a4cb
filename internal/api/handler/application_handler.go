package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/core/ports"
)

// ApplicationHandler handles job application endpoints.
type ApplicationHandler struct {
	applicationService ports.ApplicationService
}

func NewApplicationHandler(applicationService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Create files an application to a job on behalf of the caller.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createApplicationRequest  true  "Application details"
// @Success      201   {object}  applicationEnvelope
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.applicationService.Create(c.Request().Context(), actor, ports.CreateApplicationInput{
		JobID:       req.JobID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, applicationEnvelope{Application: app})
}

// Delete removes an application the caller filed.
//
// @Summary      Delete an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.applicationService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Application deleted"})
}

// ListForEmployer returns the applications filed against the caller's jobs.
//
// @Summary      List applications to the caller's jobs
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  applicationsEnvelope
// @Failure      403  {object}  errorResponse
// @Router       /employer/applications [get]
func (h *ApplicationHandler) ListForEmployer(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	apps, err := h.applicationService.ListForEmployer(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applicationsEnvelope{Applications: apps})
}
