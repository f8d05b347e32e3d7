package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

type StressTestHandler struct {
	shell *Shell
	tests ports.StressTestService
}

func NewStressTestHandler(shell *Shell, tests ports.StressTestService) *StressTestHandler {
	return &StressTestHandler{shell: shell, tests: tests}
}

type stressTestPage struct {
	Configuration domain.StressTestMetrics  `json:"configuration"`
	LastResults   *domain.StressTestMetrics `json:"lastResults"`
	Run           *domain.StressTestRun     `json:"run"`
}

// Page renders the configuration overview, last results and current run.
//
// @Summary      Stress test
// @Tags         stress-test
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Router       /stress-test [get]
func (h *StressTestHandler) Page(c echo.Context) error {
	id := identity(c)
	if !id.Authenticated() {
		return h.shell.RenderAuthRequired(c, "Please log in to access the stress testing system.")
	}
	ctx := c.Request().Context()

	cfg, err := h.tests.Defaults(ctx, id)
	if err != nil {
		return err
	}
	last, err := h.tests.LastResults(ctx, id)
	if err != nil {
		return err
	}
	run, err := h.tests.Current(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return h.shell.Render(c, http.StatusOK, stressTestPage{Configuration: cfg, LastResults: last, Run: run})
}

// Start schedules a run.
//
// @Summary      Start stress test
// @Tags         stress-test
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  domain.StressTestRun
// @Failure      409  {object}  map[string]string
// @Router       /stress-test/run [post]
func (h *StressTestHandler) Start(c echo.Context) error {
	run, err := h.tests.Start(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, run)
}

// Current polls the latest run.
//
// @Summary      Current stress test run
// @Tags         stress-test
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.StressTestRun
// @Failure      404  {object}  map[string]string
// @Router       /stress-test/run [get]
func (h *StressTestHandler) Current(c echo.Context) error {
	run, err := h.tests.Current(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, run)
}

// Cancel stops the running test.
//
// @Summary      Cancel stress test
// @Tags         stress-test
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.StressTestRun
// @Failure      404  {object}  map[string]string
// @Router       /stress-test/run [delete]
func (h *StressTestHandler) Cancel(c echo.Context) error {
	run, err := h.tests.Cancel(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, run)
}

// Report downloads the report of the latest run.
//
// @Summary      Stress test report
// @Tags         stress-test
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.StressTestReport
// @Failure      404  {object}  map[string]string
// @Router       /stress-test/report [get]
func (h *StressTestHandler) Report(c echo.Context) error {
	report, err := h.tests.Report(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+report.Filename()+`"`)
	return c.JSONPretty(http.StatusOK, report, "  ")
}

// History lists the backend's stored results.
//
// @Summary      Stress test history
// @Tags         stress-test
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.StressTestMetrics
// @Router       /stress-test/history [get]
func (h *StressTestHandler) History(c echo.Context) error {
	history, err := h.tests.History(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, history)
}
