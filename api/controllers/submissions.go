package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/api/models"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/api/transport"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/review"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
)

// SubmissionsController serves the reviewer dashboard: the merged entry list
// plus the narrow status/rating updates. Everything here sits behind the
// admin token.
type SubmissionsController struct {
	applications storage.ApplicationStorage
	nominations  storage.NominationStorage
}

func NewSubmissionsController(applications storage.ApplicationStorage, nominations storage.NominationStorage) *SubmissionsController {
	return &SubmissionsController{
		applications: applications,
		nominations:  nominations,
	}
}

func (c *SubmissionsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/submissions", transport.AdminAuthMiddleware())

	group.GET("", c.list)
	group.GET("/:id", c.get)
	group.PATCH("/:id/status", c.updateStatus)
	group.PATCH("/:id/rating", c.updateRating)
}

// @Security AdminToken
// list godoc
// @Summary List all submissions as merged entries
// @Tags submissions
// @Produce json
// @Success 200 {array} review.Entry
// @Failure 500 {object} models.ErrorResponse
// @Router /api/submissions [get]
func (c *SubmissionsController) list(g *gin.Context) {
	apps, err := c.applications.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SUBMISSIONS: failed to load applications: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load submissions"})
		return
	}

	noms, err := c.nominations.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("SUBMISSIONS: failed to load nominations: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load submissions"})
		return
	}

	entries, err := review.MergeEntries(apps, noms)
	if err != nil {
		// Duplicate ids across the tables; a data bug, not a user error.
		logging.Log.Errorf("SUBMISSIONS: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "inconsistent submission data"})
		return
	}

	g.JSON(http.StatusOK, entries)
}

// @Security AdminToken
// get godoc
// @Summary Get the full record behind one entry
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} models.SubmissionDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/submissions/{id} [get]
func (c *SubmissionsController) get(g *gin.Context) {
	id := g.Param("id")

	app, err := c.applications.Get(g.Request.Context(), id)
	if err == nil {
		g.JSON(http.StatusOK, &models.SubmissionDetailResponse{Type: string(review.TypeApplication), Application: app})
		return
	}
	if !errors.Is(err, storage.ErrSubmissionNotFound) {
		logging.Log.Errorf("SUBMISSIONS: failed to get application %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load submission"})
		return
	}

	nom, err := c.nominations.Get(g.Request.Context(), id)
	if err == nil {
		g.JSON(http.StatusOK, &models.SubmissionDetailResponse{Type: string(review.TypeNomination), Nomination: nom})
		return
	}
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "submission not found"})
		return
	}
	logging.Log.Errorf("SUBMISSIONS: failed to get nomination %s: %v", id, err)
	g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load submission"})
}

// @Security AdminToken
// updateStatus godoc
// @Summary Update the triage status of a submission
// @Description Any non-empty status value is stored as-is; unknown values round-trip unchanged
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param status body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/submissions/{id}/status [patch]
func (c *SubmissionsController) updateStatus(g *gin.Context) {
	id := g.Param("id")

	var req models.UpdateStatusRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Status == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "status is required"})
		return
	}

	err := c.applications.UpdateStatus(g.Request.Context(), id, req.Status)
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		err = c.nominations.UpdateStatus(g.Request.Context(), id, req.Status)
	}
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "submission not found"})
		return
	}
	if err != nil {
		logging.Log.Errorf("SUBMISSIONS: failed to update status for %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not update status"})
		return
	}

	logging.Log.Infof("SUBMISSIONS: status of %s set to %s", id, req.Status)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "status updated"})
}

// @Security AdminToken
// updateRating godoc
// @Summary Update the star rating of a submission
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param rating body models.UpdateRatingRequest true "New rating (0-5)"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/submissions/{id}/rating [patch]
func (c *SubmissionsController) updateRating(g *gin.Context) {
	id := g.Param("id")

	var req models.UpdateRatingRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Rating == nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "rating is required"})
		return
	}
	if *req.Rating < 0 || *req.Rating > 5 {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "rating must be between 0 and 5"})
		return
	}

	err := c.applications.UpdateRating(g.Request.Context(), id, *req.Rating)
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		err = c.nominations.UpdateRating(g.Request.Context(), id, *req.Rating)
	}
	if errors.Is(err, storage.ErrSubmissionNotFound) {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "submission not found"})
		return
	}
	if err != nil {
		logging.Log.Errorf("SUBMISSIONS: failed to update rating for %s: %v", id, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not update rating"})
		return
	}

	logging.Log.Infof("SUBMISSIONS: rating of %s set to %d", id, *req.Rating)
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "rating updated"})
}
