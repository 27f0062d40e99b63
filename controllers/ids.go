package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booking-backend/utils"
)

// parseID validates a UUID4 path identifier before any storage access.
// Malformed ids are rejected with 400 and the entity name in the message.
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil || id.Version() != 4 {
		log.Printf("invalid %s id supplied: %q", entity, raw)
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("The supplied %s id is not a valid UUID4.", entity))
		return uuid.Nil, false
	}
	return id, true
}
