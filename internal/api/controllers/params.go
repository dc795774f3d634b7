package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// recordID parses the :id path parameter. A malformed id cannot name a
// record the caller owns, so callers answer it with the resource's 404.
func recordID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
