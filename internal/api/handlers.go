package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/selivandex/worldmap-intel/internal/analysis"
	"github.com/selivandex/worldmap-intel/internal/countries"
	"github.com/selivandex/worldmap-intel/internal/intelligence"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// IntelligenceService builds country intelligence
type IntelligenceService interface {
	GetIntelligence(ctx context.Context, code string) (*models.IntelligenceResponse, error)
}

// UsageReporter exposes premium analysis budget usage
type UsageReporter interface {
	Usage() analysis.UsageStats
}

type handlers struct {
	intel     IntelligenceService
	directory countries.Directory
	usage     UsageReporter
}

// GET /api/v1/intelligence/:code
func (h *handlers) getIntelligence(c *gin.Context) {
	resp, err := h.intel.GetIntelligence(c.Request.Context(), c.Param("code"))
	if err != nil {
		var nf *intelligence.NotFoundError
		switch {
		case errors.As(err, &nf):
			suggestions := nf.Suggestions
			if suggestions == nil {
				suggestions = []intelligence.Suggestion{}
			}
			c.JSON(http.StatusNotFound, gin.H{
				"error":       nf.Error(),
				"suggestions": suggestions,
			})
		case errors.Is(err, context.DeadlineExceeded):
			_ = c.Error(err)
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
		case errors.Is(err, context.Canceled):
			// client went away; nothing useful to send
			c.Status(499)
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build country intelligence"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/v1/countries
func (h *handlers) listCountries(c *gin.Context) {
	all := h.directory.All()
	c.JSON(http.StatusOK, gin.H{
		"countries": toInfos(all),
		"total":     len(all),
	})
}

// GET /api/v1/countries/search?q=
func (h *handlers) searchCountries(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	matches := h.directory.Search(q)
	c.JSON(http.StatusOK, gin.H{
		"query":   q,
		"results": toInfos(matches),
		"total":   len(matches),
	})
}

// GET /api/v1/ai/usage
func (h *handlers) aiUsage(c *gin.Context) {
	c.JSON(http.StatusOK, h.usage.Usage())
}

func toInfos(subjects []models.CountrySubject) []models.CountryInfo {
	out := make([]models.CountryInfo, len(subjects))
	for i, s := range subjects {
		out[i] = s.Info()
	}
	return out
}
