package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peterbuiltwl/portal/internal/core/domain"
	"github.com/peterbuiltwl/portal/internal/core/ports"
)

type PageHandler struct {
	shell      *Shell
	catalog    ports.CatalogService
	dashboards ports.DashboardService
	checkout   ports.CheckoutService
}

func NewPageHandler(shell *Shell, catalog ports.CatalogService, dashboards ports.DashboardService, checkout ports.CheckoutService) *PageHandler {
	return &PageHandler{shell: shell, catalog: catalog, dashboards: dashboards, checkout: checkout}
}

type feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type featuredApp struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Route       string `json:"route"`
}

type callToAction struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type homePage struct {
	Headline     string        `json:"headline"`
	Summary      string        `json:"summary"`
	Features     []feature     `json:"features"`
	FeaturedApps []featuredApp `json:"featuredApps"`
	Primary      callToAction  `json:"primaryAction"`
	Secondary    callToAction  `json:"secondaryAction"`
}

var homeFeatures = []feature{
	{Title: "AI-Powered", Description: "Cutting-edge AI technology for content generation"},
	{Title: "Lightning Fast", Description: "Generate professional content in seconds"},
	{Title: "Secure & Private", Description: "Your data is encrypted and protected"},
	{Title: "Easy to Use", Description: "Simple workflow from input to output"},
}

var homeFeaturedApps = []featuredApp{
	{Name: "Blog Generator", Description: "Create engaging blog posts and newsletters", Icon: "/assets/generated/blog-newsletter-icon.dim_128x128.png", Route: "/blog-generator"},
	{Name: "Resume Optimizer", Description: "Optimize resumes for job applications", Icon: "/assets/generated/resume-optimizer-icon.dim_128x128.png", Route: "/apps"},
	{Name: "Ad Copy Generator", Description: "Create compelling advertising copy", Icon: "/assets/generated/ad-copy-icon.dim_128x128.png", Route: "/apps"},
}

// Home renders the landing page.
//
// @Summary      Home page
// @Tags         pages
// @Produce      json
// @Success      200  {object}  PageResponse
// @Router       / [get]
func (h *PageHandler) Home(c echo.Context) error {
	primary := callToAction{Label: "Explore Apps", Path: "/apps"}
	if identity(c).Authenticated() {
		primary = callToAction{Label: "Go to Dashboard", Path: "/dashboard"}
	}
	return h.shell.Render(c, http.StatusOK, homePage{
		Headline:     "Unified Portfolio Control Center",
		Summary:      "A comprehensive portfolio management system consolidating all AI applications under one unified control center.",
		Features:     homeFeatures,
		FeaturedApps: homeFeaturedApps,
		Primary:      primary,
		Secondary:    callToAction{Label: "Learn More", Path: "/about"},
	})
}

type aboutPage struct {
	Founder *domain.FounderProfile `json:"founder"`
}

// About renders the founder profile.
//
// @Summary      About page
// @Tags         pages
// @Produce      json
// @Success      200  {object}  PageResponse
// @Failure      503  {object}  map[string]string
// @Router       /about [get]
func (h *PageHandler) About(c echo.Context) error {
	f, err := h.catalog.Founder(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, aboutPage{Founder: f})
}

type appsPage struct {
	Apps        []ports.CatalogApp `json:"apps"`
	CreateRoute string             `json:"createRoute"`
}

// Apps renders the application catalog.
//
// @Summary      Application catalog
// @Tags         pages
// @Produce      json
// @Success      200  {object}  PageResponse
// @Failure      503  {object}  map[string]string
// @Router       /apps [get]
func (h *PageHandler) Apps(c echo.Context) error {
	apps, err := h.catalog.Apps(c.Request().Context(), identity(c))
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, appsPage{Apps: apps, CreateRoute: "/app-wizard"})
}

// Dashboard renders the caller's KPIs.
//
// @Summary      Dashboard
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Router       /dashboard [get]
func (h *PageHandler) Dashboard(c echo.Context) error {
	id := identity(c)
	if !id.Authenticated() {
		return h.shell.RenderAuthRequired(c, "Please log in to access the dashboard.")
	}
	v, err := h.dashboards.Dashboard(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, v)
}

// Payments renders the caller's billing overview.
//
// @Summary      Payments
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PageResponse
// @Router       /payments [get]
func (h *PageHandler) Payments(c echo.Context) error {
	id := identity(c)
	if !id.Authenticated() {
		return h.shell.RenderAuthRequired(c, "Please log in to view your payment history.")
	}
	v, err := h.dashboards.Payments(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, v)
}

// Donations renders the donation page.
//
// @Summary      Donations
// @Tags         pages
// @Produce      json
// @Success      200  {object}  PageResponse
// @Router       /donations [get]
func (h *PageHandler) Donations(c echo.Context) error {
	return h.shell.Render(c, http.StatusOK, h.dashboards.Donations(c.Request().Context()))
}

type donateRequest struct {
	Amount    float64 `json:"amount"`
	Anonymous bool    `json:"anonymous"`
}

// Donate records a donation.
//
// @Summary      Donate
// @Tags         pages
// @Accept       json
// @Produce      json
// @Param        body  body      donateRequest  true  "Donation"
// @Success      200   {object}  PageResponse
// @Failure      422   {object}  map[string]string
// @Router       /donations [post]
func (h *PageHandler) Donate(c echo.Context) error {
	var req donateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	msg, err := h.dashboards.Donate(ctx, identity(c), req.Amount, req.Anonymous)
	if err != nil {
		return err
	}
	return h.shell.Render(c, http.StatusOK, h.dashboards.Donations(ctx), success(msg))
}

type paymentResultPage struct {
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Details     []string                  `json:"details"`
	Primary     callToAction              `json:"primaryAction"`
	Secondary   callToAction              `json:"secondaryAction"`
	Session     *domain.SessionStatusView `json:"session,omitempty"`
}

// PaymentSuccess renders the checkout success page.
//
// @Summary      Payment success
// @Tags         pages
// @Produce      json
// @Param        session_id  query     string  false  "Checkout session id"
// @Success      200         {object}  PageResponse
// @Router       /payment-success [get]
func (h *PageHandler) PaymentSuccess(c echo.Context) error {
	return h.paymentResult(c, paymentResultPage{
		Title:       "Payment Successful!",
		Description: "Your subscription has been activated successfully",
		Details: []string{
			"You now have unlimited access to the Blog/Newsletter Generator",
			"Start generating high-quality content immediately",
			"Your subscription will renew automatically each month",
		},
		Primary:   callToAction{Label: "Start Generating Content", Path: "/blog-generator"},
		Secondary: callToAction{Label: "Back to Home", Path: "/"},
	})
}

// PaymentFailure renders the checkout cancellation page.
//
// @Summary      Payment failure
// @Tags         pages
// @Produce      json
// @Param        session_id  query     string  false  "Checkout session id"
// @Success      200         {object}  PageResponse
// @Router       /payment-failure [get]
func (h *PageHandler) PaymentFailure(c echo.Context) error {
	return h.paymentResult(c, paymentResultPage{
		Title:       "Payment Cancelled",
		Description: "Your payment was not completed",
		Details: []string{
			"Payment window was closed before completion",
			"Card details were incorrect or expired",
			"Insufficient funds or payment declined by bank",
		},
		Primary:   callToAction{Label: "Try Again", Path: "/blog-generator"},
		Secondary: callToAction{Label: "Back to Home", Path: "/"},
	})
}

// paymentResult attaches the session status when the provider passed one
// back. A failed lookup only adds a notification.
func (h *PageHandler) paymentResult(c echo.Context, page paymentResultPage) error {
	sessionID := c.QueryParam("session_id")
	id := identity(c)
	if sessionID == "" || !id.Authenticated() {
		return h.shell.Render(c, http.StatusOK, page)
	}
	st, err := h.checkout.SessionStatus(c.Request().Context(), id, sessionID)
	if err != nil {
		return h.shell.Render(c, http.StatusOK, page, failure("Could not verify the payment session"))
	}
	v := domain.ViewSessionStatus(st)
	page.Session = &v
	return h.shell.Render(c, http.StatusOK, page)
}
