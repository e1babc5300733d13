package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StartVoteHandler opens a vote (chair only)
func StartVoteHandler(c *gin.Context) {
	var req struct {
		UserID  string   `json:"userId"`
		Topic   string   `json:"topic" binding:"required"`
		Type    string   `json:"type" binding:"required"`
		Options []string `json:"options" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	vote, err := sessionFor(c).StartVote(callerID(c, req.UserID), req.Topic, req.Type, req.Options)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "vote started", "voteData": vote})
}

// CastVoteHandler records the caller's ballot
func CastVoteHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
		Vote   string `json:"vote" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	vote, err := sessionFor(c).CastVote(callerID(c, req.UserID), req.Vote)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "vote cast", "voteData": vote})
}

// EndVoteHandler closes the active vote (chair only)
func EndVoteHandler(c *gin.Context) {
	vote, err := sessionFor(c).EndVote(callerID(c, ""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "vote ended", "voteData": vote})
}
