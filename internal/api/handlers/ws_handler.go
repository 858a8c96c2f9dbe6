package handlers

import (
	"net/http"
	"time"

	"github.com/coverdesk/claims-go/internal/application"
	"github.com/coverdesk/claims-go/internal/domain/claim"
	"github.com/coverdesk/claims-go/pkg/response"
	"github.com/coverdesk/claims-go/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// How often the backend is polled for a status change.
	statusPollPeriod = 3 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type statusEvent struct {
	ClaimID string            `json:"claimId"`
	Status  claim.ClaimStatus `json:"status"`
	Reason  string            `json:"reason,omitempty"`
}

// ClaimStatusHandler streams claim status changes to the waiting claimant so
// the review screens refresh without polling from the browser.
type ClaimStatusHandler struct {
	service *application.ClaimService
}

func NewClaimStatusHandler(service *application.ClaimService) *ClaimStatusHandler {
	return &ClaimStatusHandler{service: service}
}

func (h *ClaimStatusHandler) Stream(c *gin.Context) {
	sess, err := utils.GetSessionFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	claimID := c.Param("id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	// Drain control frames so pongs are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	poll := time.NewTicker(statusPollPeriod)
	defer poll.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	var lastStatus claim.ClaimStatus
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-poll.C:
			cl, err := h.service.GetClaim(c.Request.Context(), sess, claimID)
			if err != nil {
				continue
			}
			if cl.Status == lastStatus {
				continue
			}
			lastStatus = cl.Status
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(statusEvent{ClaimID: cl.ID, Status: cl.Status, Reason: cl.Reason}); err != nil {
				return
			}
			if cl.Status.Terminal() {
				return
			}
		}
	}
}
