package api

import (
	"net/http"

	dom "github.com/csuiter/screen-time-rewards/internal/domain/policy"

	"github.com/gin-gonic/gin"
)

// GetPolicy godoc
//
//	@Summary		Get a policy
//	@Description	Fetch the firewall daemon's view of a policy
//	@Tags			policies
//	@Produce		json
//	@Param			policyId	path		string	true	"Numeric policy ID"
//	@Success		200			{object}	map[string]any
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/policy/{policyId} [get]
//	@Security		BearerAuth
func (h *Handler) GetPolicy(c *gin.Context) {
	policyID := c.Param("policyId")
	if !dom.ValidID(policyID) {
		h.NotFound(c)
		return
	}

	result, err := h.service.GetPolicy(c.Request.Context(), policyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// EnablePolicy godoc
//
//	@Summary		Enable a policy
//	@Description	Enable a policy, blocking the internet access it governs
//	@Tags			policies
//	@Produce		json
//	@Param			policyId	path		string	true	"Numeric policy ID"
//	@Success		200			{object}	policy.ToggleResult
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/policy/{policyId}/enable [post]
//	@Security		BearerAuth
func (h *Handler) EnablePolicy(c *gin.Context) {
	h.togglePolicy(c, dom.ActionEnabled)
}

// DisablePolicy godoc
//
//	@Summary		Disable a policy
//	@Description	Disable a policy, allowing the internet access it governs
//	@Tags			policies
//	@Produce		json
//	@Param			policyId	path		string	true	"Numeric policy ID"
//	@Success		200			{object}	policy.ToggleResult
//	@Failure		404			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/policy/{policyId}/disable [post]
//	@Security		BearerAuth
func (h *Handler) DisablePolicy(c *gin.Context) {
	h.togglePolicy(c, dom.ActionDisabled)
}

func (h *Handler) togglePolicy(c *gin.Context, action dom.Action) {
	policyID := c.Param("policyId")
	if !dom.ValidID(policyID) {
		h.NotFound(c)
		return
	}

	result, err := h.service.TogglePolicy(c.Request.Context(), policyID, action)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListPolicies godoc
//
//	@Summary		List policies
//	@Description	List the policy metadata hash from the local store
//	@Tags			policies
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/policies [get]
//	@Security		BearerAuth
func (h *Handler) ListPolicies(c *gin.Context) {
	listing, err := h.service.ListPolicies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"raw": listing})
}
