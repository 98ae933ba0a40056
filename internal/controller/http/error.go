package http

import (
	"errors"
	"net/http"
	"regexp"

	"pixvault/pkg/apperr"
	"pixvault/pkg/logger"
	"pixvault/pkg/response"

	"github.com/gin-gonic/gin"
)

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// requireID validates the id path parameter before any handler logic runs.
// A malformed id is a 400, never a 404.
func requireID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !idPattern.MatchString(id) {
		response.FailValidation(c, []apperr.FieldError{{Field: "id", Message: "must be a valid identifier"}})
		return "", false
	}
	return id, true
}

// respondError is the single point translating service errors into HTTP
// responses. Unclassified detail never reaches the client outside
// development mode.
func respondError(c *gin.Context, log *logger.Logger, dev bool, err error) {
	var validation *apperr.ValidationError
	if errors.As(err, &validation) {
		response.FailValidation(c, validation.Fields)
		return
	}

	var notFound *apperr.NotFoundError
	if errors.As(err, &notFound) {
		response.Fail(c, http.StatusNotFound, notFound.Error())
		return
	}

	var conflict *apperr.ConflictError
	if errors.As(err, &conflict) {
		response.Fail(c, http.StatusConflict, conflict.Error())
		return
	}

	var upstream *apperr.UpstreamAssetError
	if errors.As(err, &upstream) {
		log.Error("asset host failure: %v", err)
		message := "Failed to reach the image store"
		if dev {
			message = upstream.Error()
		}
		response.Fail(c, http.StatusInternalServerError, message)
		return
	}

	log.Error("unhandled error: %v", err)
	message := "Internal server error"
	if dev {
		message = err.Error()
	}
	response.Fail(c, http.StatusInternalServerError, message)
}
