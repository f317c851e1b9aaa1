package campaigns

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartzap/server/api/rest/pagination"
	"github.com/smartzap/server/internal/errors"
	"github.com/smartzap/server/internal/metalimits"
	"github.com/smartzap/server/smartzap/campaigns"
	"github.com/smartzap/server/smartzap/contacts"
)

// resolves the recipient count for a validation request. contact IDs
// are counted against the contacts table (opted-out contacts excluded)
// so the number matches what a real dispatch would send.
func resolveContactCount(c *gin.Context, contactRepo *contacts.Repository, req ValidateRequest) (int, bool) {
	if len(req.ContactIDs) > 0 {
		for _, id := range req.ContactIDs {
			if !errors.IsValidUUID(id) {
				errors.BadRequest(c, "invalid contact ID: "+id, nil)
				return 0, false
			}
		}

		count, err := contactRepo.CountByIDs(c.Request.Context(), req.ContactIDs)
		if err != nil {
			errors.InternalError(c, "failed to count contacts", err)
			return 0, false
		}

		return count, true
	}

	if req.ContactCount < 0 {
		errors.BadRequest(c, "contact_count must not be negative", nil)
		return 0, false
	}

	return req.ContactCount, true
}

// ValidateCampaignHandler checks a prospective campaign against the
// account's current limits without creating anything
func ValidateCampaignHandler(limitsService *metalimits.Service, contactRepo *contacts.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		count, ok := resolveContactCount(c, contactRepo, req)
		if !ok {
			return
		}

		result := limitsService.ValidateCampaign(c.Request.Context(), count)
		c.JSON(http.StatusOK, result)
	}
}

// CreateCampaignHandler validates the audience and creates the
// campaign: queued when it fits today's limit, blocked (with the
// validation result) when it does not
func CreateCampaignHandler(campaignRepo *campaigns.Repository, contactRepo *contacts.Repository, limitsService *metalimits.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req campaigns.CreateCampaignRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if req.Name == "" || req.TemplateName == "" {
			errors.BadRequest(c, "name and template_name are required", nil)
			return
		}

		if len(req.ContactIDs) == 0 {
			errors.BadRequest(c, "contact_ids must not be empty", nil)
			return
		}

		count, ok := resolveContactCount(c, contactRepo, ValidateRequest{ContactIDs: req.ContactIDs})
		if !ok {
			return
		}

		result := limitsService.ValidateCampaign(c.Request.Context(), count)

		status := campaigns.StatusQueued
		if !result.CanSend {
			status = campaigns.StatusBlocked
		}

		campaign, err := campaignRepo.Create(c.Request.Context(), &req, status)
		if err != nil {
			errors.InternalError(c, "failed to create campaign", err)
			return
		}

		if !result.CanSend {
			reason := result.BlockedReason
			if err := campaignRepo.UpdateStatus(c.Request.Context(), campaign.ID, campaigns.StatusBlocked, &reason); err != nil {
				errors.InternalError(c, "failed to record blocked reason", err)
				return
			}
			campaign.BlockedReason = &reason
		}

		c.JSON(http.StatusCreated, gin.H{
			"campaign":   campaign,
			"validation": result,
		})
	}
}

// ListCampaignsHandler lists campaigns, newest first
func ListCampaignsHandler(campaignRepo *campaigns.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := pagination.FromQuery(c, 20, 100)

		list, err := campaignRepo.List(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			errors.InternalError(c, "failed to list campaigns", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"campaigns": list})
	}
}

// GetCampaignHandler gets a single campaign by ID
func GetCampaignHandler(campaignRepo *campaigns.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := errors.ValidatePathUUID(c, "id")
		if !ok {
			return
		}

		campaign, err := campaignRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			errors.NotFound(c, "campaign")
			return
		}

		c.JSON(http.StatusOK, campaign)
	}
}
