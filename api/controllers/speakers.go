package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/api/models"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/email"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/storage"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/validation"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Notifier is what the speaker endpoints need from the email gateway.
type Notifier interface {
	SendSpeakerApplicationEmail(app *storage.SpeakerApplication) email.Result
	SendSpeakerNominationEmail(nom *storage.SpeakerNomination) email.Result
}

type SpeakersController struct {
	applications storage.ApplicationStorage
	nominations  storage.NominationStorage
	notifier     Notifier
}

func NewSpeakersController(applications storage.ApplicationStorage, nominations storage.NominationStorage, notifier Notifier) *SpeakersController {
	return &SpeakersController{
		applications: applications,
		nominations:  nominations,
		notifier:     notifier,
	}
}

func (c *SpeakersController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/speakers")

	group.POST("/applications", c.createApplication)
	group.POST("/nominations", c.createNomination)
}

// createApplication godoc
// @Summary Submit a speaker application
// @Description Validates and stores a speaker application, then notifies the organizer
// @Tags speakers
// @Accept json
// @Produce json
// @Param application body models.SpeakerApplicationRequest true "Speaker application"
// @Success 201 {object} storage.SpeakerApplication
// @Failure 400 {object} models.ValidationErrorResponse "Invalid field values"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Failure 502 {object} models.ErrorResponse "Notification failure"
// @Router /api/speakers/applications [post]
func (c *SpeakersController) createApplication(g *gin.Context) {
	var req models.SpeakerApplicationRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if errs := validation.ValidateApplication(&req); !errs.Valid() {
		g.JSON(http.StatusBadRequest, &models.ValidationErrorResponse{Errors: errs})
		return
	}

	app := models.TransformApplicationRequestToStorage(&req, newSubmissionID(), time.Now().UTC())

	// The database write is the source of truth and happens before the
	// notification, so a partial failure is always attributable.
	if err := c.applications.Create(g.Request.Context(), app); err != nil {
		logging.Log.Errorf("SPEAKERS: failed to store application: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save application"})
		return
	}

	if res := c.notifier.SendSpeakerApplicationEmail(app); !res.Success {
		// The record is kept; log the id so the organizer can reconcile.
		logging.Log.Errorf("SPEAKERS: application %s stored but notification failed: %v", app.ID, res.Err)
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "application saved but organizer notification failed"})
		return
	}

	logging.Log.Infof("SPEAKERS: stored application %s from %s", app.ID, app.FullName)
	g.JSON(http.StatusCreated, app)
}

// createNomination godoc
// @Summary Submit a speaker nomination
// @Description Validates and stores a speaker nomination, then notifies the organizer
// @Tags speakers
// @Accept json
// @Produce json
// @Param nomination body models.SpeakerNominationRequest true "Speaker nomination"
// @Success 201 {object} storage.SpeakerNomination
// @Failure 400 {object} models.ValidationErrorResponse "Invalid field values"
// @Failure 500 {object} models.ErrorResponse "Storage failure"
// @Failure 502 {object} models.ErrorResponse "Notification failure"
// @Router /api/speakers/nominations [post]
func (c *SpeakersController) createNomination(g *gin.Context) {
	var req models.SpeakerNominationRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	if errs := validation.ValidateNomination(&req); !errs.Valid() {
		g.JSON(http.StatusBadRequest, &models.ValidationErrorResponse{Errors: errs})
		return
	}

	nom := models.TransformNominationRequestToStorage(&req, newSubmissionID(), time.Now().UTC())

	if err := c.nominations.Create(g.Request.Context(), nom); err != nil {
		logging.Log.Errorf("SPEAKERS: failed to store nomination: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save nomination"})
		return
	}

	if res := c.notifier.SendSpeakerNominationEmail(nom); !res.Success {
		logging.Log.Errorf("SPEAKERS: nomination %s stored but notification failed: %v", nom.ID, res.Err)
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "nomination saved but organizer notification failed"})
		return
	}

	logging.Log.Infof("SPEAKERS: stored nomination %s from %s", nom.ID, nom.FullName)
	g.JSON(http.StatusCreated, nom)
}

// newSubmissionID generates ids unique across both submission tables.
func newSubmissionID() string {
	id, err := gonanoid.Generate(idAlphabet, 12)
	if err != nil {
		logging.Log.Errorf("SPEAKERS: failed to generate id: %v", err)
		return "ERROR"
	}
	return id
}
