package handler

import (
	"net/http"

	"costr/internal/model"
	"costr/internal/service"
	"costr/pkg/response"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// RegisterRoutes mounts the settings routes. None of them require setup.
func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/settings", h.GetSettings)
		api.PATCH("/settings", h.UpdateSettings)
		api.POST("/setup", h.CompleteSetup)
		api.GET("/theme", h.GetTheme)
		api.GET("/currencies", h.GetCurrencies)
		api.POST("/user-slots", h.AddUserSlot)
		api.PUT("/user-slots/:id", h.UpdateUserSlot)
		api.DELETE("/user-slots/:id", h.DeleteUserSlot)
	}
}

// GetSettings returns the application settings
// @Summary      Get settings
// @Description  Returns the application settings singleton, including user slots
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.Response{data=model.AppSettings}
// @Router       /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.settingsService.Settings()))
}

// CompleteSetup performs first-run setup
// @Summary      Complete setup
// @Description  Creates the company, the primary admin slot and the theme. Can only run once.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SetupRequest  true  "Setup Payload"
// @Success      201      {object}  response.Response{data=model.AppSettings}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response "Setup already completed"
// @Failure      422      {object}  response.Response
// @Router       /api/setup [post]
func (h *SettingsHandler) CompleteSetup(c *gin.Context) {
	var req service.SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	settings, err := h.settingsService.CompleteSetup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, settings))
}

// UpdateSettings applies a partial settings patch
// @Summary      Update settings
// @Description  Applies the supplied fields only. Colour changes re-derive and broadcast the theme.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SettingsPatch  true  "Settings Patch"
// @Success      200      {object}  response.Response{data=model.AppSettings}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      428      {object}  response.Response "Setup not completed"
// @Router       /api/settings [patch]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var patch service.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBindError(c, err)
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, settings))
}

// GetTheme returns the active colour theme
// @Summary      Get theme
// @Description  Returns the six theme colours and their CSS variable names
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.Response{data=object}
// @Router       /api/theme [get]
func (h *SettingsHandler) GetTheme(c *gin.Context) {
	t := h.settingsService.Theme()
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"colors":    t,
		"variables": t.CSSVariables(),
	}))
}

// GetCurrencies lists the currencies offered during setup
// @Summary      List currencies
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /api/currencies [get]
func (h *SettingsHandler) GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, model.SupportedCurrencies))
}

// AddUserSlot adds a user slot
// @Summary      Add user slot
// @Tags         user-slots
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UserSlotRequest  true  "User Slot Payload"
// @Success      201      {object}  response.Response{data=object}
// @Failure      409      {object}  response.Response "Slot capacity reached"
// @Failure      428      {object}  response.Response
// @Router       /api/user-slots [post]
func (h *SettingsHandler) AddUserSlot(c *gin.Context) {
	var req service.UserSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.settingsService.AddUserSlot(c.Request.Context(), req.Name, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"id": id}))
}

// UpdateUserSlot renames a user slot or changes its role
// @Summary      Update user slot
// @Tags         user-slots
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Slot ID"
// @Param        payload  body      service.UserSlotRequest  true  "User Slot Payload"
// @Success      200      {object}  response.Response
// @Failure      428      {object}  response.Response
// @Router       /api/user-slots/{id} [put]
func (h *SettingsHandler) UpdateUserSlot(c *gin.Context) {
	var req service.UserSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.settingsService.UpdateUserSlot(c.Request.Context(), c.Param("id"), req.Name, req.Role); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "User slot updated successfully"))
}

// DeleteUserSlot removes a user slot
// @Summary      Delete user slot
// @Description  The primary admin slot and the last remaining slot cannot be deleted
// @Tags         user-slots
// @Produce      json
// @Param        id   path      string  true  "Slot ID"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      428  {object}  response.Response
// @Router       /api/user-slots/{id} [delete]
func (h *SettingsHandler) DeleteUserSlot(c *gin.Context) {
	if err := h.settingsService.DeleteUserSlot(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "User slot deleted successfully"))
}
