package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

type WizardHandler struct {
	shell   *Shell
	wizards ports.WizardService
	catalog ports.CatalogService
}

func NewWizardHandler(shell *Shell, wizards ports.WizardService, catalog ports.CatalogService) *WizardHandler {
	return &WizardHandler{shell: shell, wizards: wizards, catalog: catalog}
}

type fieldsRequest struct {
	Fields map[string]string `json:"fields" validate:"required"`
}

type generateRequest struct {
	SessionID string `json:"sessionId" validate:"required,notblank"`
}

type redirectPage struct {
	Redirect string `json:"redirect"`
}

// blogPage adds the caller's generated history to the wizard.
type blogPage struct {
	Wizard           *ports.WizardView         `json:"wizard"`
	StripeConfigured bool                      `json:"stripeConfigured"`
	History          []domain.GeneratedContent `json:"history"`
}

// AppWizard renders the app-creation wizard.
//
// @Summary      App wizard
// @Tags         app-wizard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Router       /app-wizard [get]
func (h *WizardHandler) AppWizard(c echo.Context) error {
	id := identity(c)
	if !id.Authenticated() {
		return h.shell.RenderAuthRequired(c, "Please log in to create new applications.")
	}
	v, err := h.wizards.Get(c.Request().Context(), id, domain.WizardApp)
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, v)
}

// UpdateApp merges field values into the app wizard.
//
// @Summary      Update app wizard fields
// @Tags         app-wizard
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      fieldsRequest  true  "Field values"
// @Success      200   {object}  PageResponse
// @Failure      422   {object}  map[string]string
// @Router       /app-wizard/fields [put]
func (h *WizardHandler) UpdateApp(c echo.Context) error {
	var req fieldsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	v, err := h.wizards.Update(c.Request().Context(), identity(c), domain.WizardApp, req.Fields)
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, v)
}

// NextApp advances the app wizard.
//
// @Summary      Next app wizard step
// @Tags         app-wizard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Router       /app-wizard/next [post]
func (h *WizardHandler) NextApp(c echo.Context) error {
	v, err := h.wizards.Next(c.Request().Context(), identity(c), domain.WizardApp)
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, v)
}

// BackApp moves the app wizard one step back.
//
// @Summary      Previous app wizard step
// @Tags         app-wizard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Router       /app-wizard/back [post]
func (h *WizardHandler) BackApp(c echo.Context) error {
	v, err := h.wizards.Back(c.Request().Context(), identity(c), domain.WizardApp)
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, v)
}

// SubmitApp finishes the app wizard.
//
// @Summary      Submit app wizard
// @Tags         app-wizard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Failure      409  {object}  map[string]string
// @Router       /app-wizard/submit [post]
func (h *WizardHandler) SubmitApp(c echo.Context) error {
	to, err := h.wizards.SubmitApp(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, redirectPage{Redirect: to}, success("App created successfully!"))
}

// BlogGenerator renders the blog generator.
//
// @Summary      Blog generator
// @Tags         blog-generator
// @Produce      json
// @Success      200  {object}  PageResponse
// @Router       /blog-generator [get]
func (h *WizardHandler) BlogGenerator(c echo.Context) error {
	id := identity(c)
	if !id.Authenticated() {
		return h.shell.RenderAuthRequired(c, "Please login to continue with content generation.")
	}
	ctx := c.Request().Context()
	v, err := h.wizards.Get(ctx, id, domain.WizardBlog)
	if err != nil {
		return err
	}
	return h.renderBlog(c, v)
}

func (h *WizardHandler) renderBlog(c echo.Context, v *ports.WizardView, notes ...Notification) error {
	ctx := c.Request().Context()
	id := identity(c)
	page := blogPage{Wizard: v, History: []domain.GeneratedContent{}}
	if ok, err := h.catalog.StripeConfigured(ctx, id); err == nil {
		page.StripeConfigured = ok
	}
	if history, err := h.catalog.GeneratedContent(ctx, id); err == nil {
		page.History = history
	}
	return h.shell.Render(c, http.StatusOK, page, notes...)
}

// SubmitBlogInput validates the input step and moves to payment.
//
// @Summary      Blog generator input
// @Tags         blog-generator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      fieldsRequest  true  "topic, tone, targetAudience"
// @Success      200   {object}  PageResponse
// @Failure      422   {object}  map[string]string
// @Router       /blog-generator/input [post]
func (h *WizardHandler) SubmitBlogInput(c echo.Context) error {
	var req fieldsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	v, err := h.wizards.SubmitBlogInput(c.Request().Context(), identity(c), req.Fields)
	if err != nil {
		return err
	}
	return h.renderBlog(c, v)
}

// CheckoutBlog opens the payment session and redirects to it.
//
// @Summary      Blog generator checkout
// @Tags         blog-generator
// @Security     BearerAuth
// @Success      303
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /blog-generator/checkout [post]
func (h *WizardHandler) CheckoutBlog(c echo.Context) error {
	session, err := h.wizards.CheckoutBlog(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, session.URL)
}

// GenerateBlog verifies the payment and produces the article.
//
// @Summary      Generate blog content
// @Tags         blog-generator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateRequest  true  "Checkout session id"
// @Success      200   {object}  PageResponse
// @Failure      402   {object}  map[string]string
// @Router       /blog-generator/generate [post]
func (h *WizardHandler) GenerateBlog(c echo.Context) error {
	var req generateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	v, err := h.wizards.GenerateBlog(c.Request().Context(), identity(c), req.SessionID)
	if err != nil {
		return err
	}
	return h.renderBlog(c, v, success("Content generated successfully!"))
}

// BackBlog returns from payment to input.
//
// @Summary      Previous blog generator step
// @Tags         blog-generator
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Router       /blog-generator/back [post]
func (h *WizardHandler) BackBlog(c echo.Context) error {
	v, err := h.wizards.Back(c.Request().Context(), identity(c), domain.WizardBlog)
	if err != nil {
		return err
	}
	return h.renderBlog(c, v)
}

// ResetBlog starts the blog generator over.
//
// @Summary      Reset blog generator
// @Tags         blog-generator
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Router       /blog-generator/reset [post]
func (h *WizardHandler) ResetBlog(c echo.Context) error {
	v, err := h.wizards.Reset(c.Request().Context(), identity(c), domain.WizardBlog)
	if err != nil {
		return err
	}
	return h.renderBlog(c, v)
}
