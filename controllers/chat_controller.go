package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PostMessageHandler appends a floor message (chat, motion, or point)
func PostMessageHandler(c *gin.Context) {
	var req struct {
		UserID  string `json:"userId"`
		Message string `json:"message" binding:"required"`
		Type    string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	msg, err := sessionFor(c).PostMessage(callerID(c, req.UserID), req.Message, req.Type)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "sent", "message": msg})
}

// SendChitHandler appends a private note to another participant or the chair
func SendChitHandler(c *gin.Context) {
	var req struct {
		FromUserID string `json:"fromUserId"`
		ToUserID   string `json:"toUserId" binding:"required"`
		Message    string `json:"message" binding:"required"`
		IsViaEb    bool   `json:"isViaEb"`
		Tag        string `json:"tag"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	chit, err := sessionFor(c).SendChit(callerID(c, req.FromUserID), req.ToUserID, req.Message, req.IsViaEb, req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "sent", "chit": chit})
}
