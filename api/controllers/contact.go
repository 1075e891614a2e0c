package controllers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-Samir101/tedxbeixinqiao/api/models"
	"github.com/Ahmed-Samir101/tedxbeixinqiao/logging"
)

var contactEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactNotifier relays contact-form messages. Returns an error only on
// provider failure; a missing provider logs and succeeds.
type ContactNotifier interface {
	SendContactEmail(name, fromEmail, message string) error
}

type ContactController struct {
	notifier ContactNotifier
}

func NewContactController(notifier ContactNotifier) *ContactController {
	return &ContactController{notifier: notifier}
}

func (c *ContactController) RegisterRoutes(engine *gin.Engine) {
	engine.POST("/api/contact", c.relay)
}

// relay godoc
// @Summary Relay a contact-form message to the site inbox
// @Tags contact
// @Accept json
// @Produce json
// @Param message body models.ContactRequest true "Contact message"
// @Success 200 {object} models.ContactResponse
// @Failure 400 {object} models.ContactResponse "Missing or invalid fields"
// @Failure 500 {object} models.ContactResponse "Mail provider failure"
// @Router /api/contact [post]
func (c *ContactController) relay(g *gin.Context) {
	var req models.ContactRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ContactResponse{OK: false, Error: "Missing required fields"})
		return
	}

	name := strings.TrimSpace(req.Name)
	fromEmail := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || fromEmail == "" || message == "" {
		g.JSON(http.StatusBadRequest, &models.ContactResponse{OK: false, Error: "Missing required fields"})
		return
	}
	if !contactEmailPattern.MatchString(fromEmail) {
		g.JSON(http.StatusBadRequest, &models.ContactResponse{OK: false, Error: "Invalid email"})
		return
	}

	if err := c.notifier.SendContactEmail(name, fromEmail, message); err != nil {
		logging.Log.Errorf("CONTACT: failed to relay message from %s: %v", fromEmail, err)
		g.JSON(http.StatusInternalServerError, &models.ContactResponse{OK: false, Error: "could not deliver message"})
		return
	}

	g.JSON(http.StatusOK, &models.ContactResponse{OK: true})
}
