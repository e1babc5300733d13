package controllers

import (
	"net/http"

	"munhub/errs"
	"munhub/middlewares"
	"munhub/services"

	"github.com/gin-gonic/gin"
)

// sessionFor resolves the committee's session authority; the optional
// "committee" query selects one, defaulting to the configured committee.
func sessionFor(c *gin.Context) *services.SessionService {
	return services.GetSessionService(c.Query("committee"))
}

// callerID returns the acting participant id: the identity header when
// present, otherwise the id the client sent in the request body.
func callerID(c *gin.Context, bodyID string) string {
	if id := c.GetString(middlewares.ParticipantIDKey); id != "" {
		return id
	}
	return bodyID
}

// respondError translates a typed failure into its HTTP status and body
func respondError(c *gin.Context, err error) {
	code := errs.CodeOf(err)
	c.JSON(errs.HTTPStatus(code), gin.H{"error": err.Error(), "code": code})
}

// respondBadRequest reports a malformed/unparseable request
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error(), "code": errs.CodeBadRequest})
}
