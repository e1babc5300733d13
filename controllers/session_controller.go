package controllers

import (
	"net/http"

	"munhub/models"

	"github.com/gin-gonic/gin"
)

// GetSessionHandler returns the full session snapshot the clients poll.
// Chits are filtered for the viewer identified by the participant header.
func GetSessionHandler(c *gin.Context) {
	viewer := callerID(c, "")
	snapshot := sessionFor(c).Snapshot(viewer)
	c.JSON(http.StatusOK, snapshot)
}

// JoinSessionHandler registers the caller as a delegate or chair
func JoinSessionHandler(c *gin.Context) {
	var req struct {
		UserID  string `json:"userId"`
		Country string `json:"country" binding:"required"`
		Role    string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	delegate, err := sessionFor(c).Join(callerID(c, req.UserID), req.Country, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "joined", "delegate": delegate})
}

// UpdateSessionHandler lets the chair adjust the lifecycle state and config
func UpdateSessionHandler(c *gin.Context) {
	var req struct {
		UserID        string                `json:"userId"`
		State         string                `json:"state"`
		SessionConfig *models.SessionConfig `json:"sessionConfig"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := sessionFor(c).UpdateSession(callerID(c, req.UserID), req.State, req.SessionConfig); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ResetSessionHandler starts a fresh session for the committee
func ResetSessionHandler(c *gin.Context) {
	if err := sessionFor(c).Reset(callerID(c, "")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
