package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MarkDelegateHandler applies a chair score adjustment to a delegate
func MarkDelegateHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"` // the delegate being marked
		Score  int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	delegate, err := sessionFor(c).MarkDelegate(callerID(c, ""), req.UserID, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "marked", "delegate": delegate})
}
