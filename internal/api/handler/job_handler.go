package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/dto"
	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/anirudhxmishra/swipe-hire-app/internal/webhook"
	"github.com/gin-gonic/gin"
)

// ListJobs handles GET /api/jobs
// Returns every stored job as a JSON array. Publicly readable.
func (h *JobHandler) ListJobs(c *gin.Context) {
	h.logger.Info("ListJobs called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	jobs, err := h.jobs.ListJobs(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list jobs",
		})
		return
	}

	response := make([]dto.JobDTO, len(jobs))
	for i, job := range jobs {
		response[i] = toJobDTO(job)
	}

	c.JSON(http.StatusOK, response)
}

// FetchExternal handles GET /api/jobs/fetch-external
// Pulls job records from the external webhook and syncs them into the store.
func (h *JobHandler) FetchExternal(c *gin.Context) {
	h.logger.Info("FetchExternal called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
	)

	records, err := h.fetcher.FetchJobs(c.Request.Context())
	if err != nil {
		if errors.Is(err, webhook.ErrEmptySource) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No jobs received from external source",
			})
			return
		}

		h.logger.Error("Failed to fetch external jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch jobs from external source",
		})
		return
	}

	synced, err := h.syncer.Sync(c.Request.Context(), records)
	if err != nil {
		h.logger.Error("Failed to sync jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to sync jobs",
		})
		return
	}

	total, err := h.jobs.CountJobs(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to count jobs", slog.String("error", err.Error()))
	} else {
		h.logger.Info("Sync finished",
			slog.Int("synced", synced),
			slog.Int("total", total),
		)
	}

	c.JSON(http.StatusOK, dto.SyncResponse{
		Message: fmt.Sprintf("Jobs synced: %d", synced),
		Synced:  synced,
	})
}

func toJobDTO(job model.Job) dto.JobDTO {
	return dto.JobDTO{
		ID:              job.ID,
		Title:           job.Title,
		Company:         job.Company,
		CompanyLogo:     job.CompanyLogo,
		Rating:          job.Rating,
		Location:        job.Location,
		JobType:         job.JobType,
		SalaryAmount:    job.SalaryAmount,
		SalaryCurrency:  job.SalaryCurrency,
		SalaryUnit:      job.SalaryUnit,
		PostedAgo:       job.PostedAgo,
		Benefits:        job.Benefits,
		Qualifications:  job.Qualifications,
		FullDescription: job.FullDescription,
		ApplyURL:        job.ApplyURL,
		CreatedAt:       job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       job.UpdatedAt.Format(time.RFC3339),
	}
}
