package gin

import (
	"errors"
	"net/http"

	"github.com/fwojciec/nxask"
	"github.com/gin-gonic/gin"
)

// Error messages returned in the "error" field.
const (
	MsgInvalidBody     = "Invalid request body"
	MsgFetchFailed     = "Failed to fetch Cisco docs"
	MsgGeneralFailed   = "Failed to generate response"
	MsgGroundedFailed  = "Failed to process with LLM"
	MsgInternalFailure = "Internal error"
)

func (s *Server) handleAsk(c *gin.Context) {
	var q nxask.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   MsgInvalidBody,
			"details": err.Error(),
		})
		return
	}

	reply, err := s.assistant.Reply(c.Request.Context(), q.Text)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"type":    reply.Kind.String(),
		"data":    reply.Data(),
	})
}

// writeError maps a pipeline failure to a 500 response.
func (s *Server) writeError(c *gin.Context, err error) {
	body := gin.H{
		"success": false,
		"error":   MsgInternalFailure,
		"details": err.Error(),
	}

	var fetchErr *nxask.FetchError
	var genErr *nxask.GenerationError
	switch {
	case errors.As(err, &fetchErr):
		body["error"] = MsgFetchFailed
		body["attemptedUrl"] = fetchErr.URL
		body["details"] = fetchErr.Err.Error()
	case errors.As(err, &genErr):
		body["error"] = MsgGroundedFailed
		if genErr.Mode == nxask.ModeGeneral {
			body["error"] = MsgGeneralFailed
		}
		body["details"] = genErr.Err.Error()
	}

	rid, _ := c.Get(requestIDKey)
	s.logger.Error("reply failed", "code", nxask.ErrorCode(err), "err", err, "request_id", rid)
	c.JSON(http.StatusInternalServerError, body)
}
