package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JoinQueueHandler adds the caller to the General Speakers List
func JoinQueueHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	// Body is optional; the header alone identifies the caller
	c.ShouldBindJSON(&req)

	list, err := sessionFor(c).JoinQueue(callerID(c, req.UserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"speakersList": list})
}

// LeaveQueueHandler removes the caller from the General Speakers List
func LeaveQueueHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
	}
	c.ShouldBindJSON(&req)

	list, err := sessionFor(c).LeaveQueue(callerID(c, req.UserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"speakersList": list})
}

// StartSpeakingHandler gives the floor to a queued delegate (chair only)
func StartSpeakingHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"` // the delegate taking the floor
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	svc := sessionFor(c)
	caller := callerID(c, "")
	if err := svc.StartSpeaking(caller, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	snapshot := svc.Snapshot(caller)
	c.JSON(http.StatusOK, gin.H{
		"speakersList":       snapshot.SpeakersList,
		"currentSpeechStart": snapshot.CurrentSpeechStart,
	})
}

// EndSpeakingHandler closes the current speech (chair only)
func EndSpeakingHandler(c *gin.Context) {
	svc := sessionFor(c)
	caller := callerID(c, "")
	if err := svc.EndSpeaking(caller); err != nil {
		respondError(c, err)
		return
	}
	snapshot := svc.Snapshot(caller)
	c.JSON(http.StatusOK, gin.H{
		"speakersList":       snapshot.SpeakersList,
		"currentSpeechStart": snapshot.CurrentSpeechStart,
	})
}

// YieldHandler records the active speaker yielding their remaining time
func YieldHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId"`
		Target string `json:"target" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	msg, err := sessionFor(c).Yield(callerID(c, req.UserID), req.Target)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
