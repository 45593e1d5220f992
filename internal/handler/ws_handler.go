package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-backend/internal/response"
	"github.com/stemsi/trivia-backend/internal/service"
	ws "github.com/stemsi/trivia-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins.
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams quiz questions over a WebSocket.
type WSHandler struct {
	selector *service.QuizSelector
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(selector *service.QuizSelector, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		selector: selector,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// QuizStream godoc
// WS /ws/v1/quizzes
// Each "next" frame is answered independently from the history it carries.
func (h *WSHandler) QuizStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	wsLog := h.log.With().Str("request_id", response.RequestID(c)).Logger()
	wsLog.Debug().Msg("Quiz client connected")

	ctx := c.Request.Context()
	for {
		var frame ws.QuizFrame
		if err := ws.ReadJSON(conn, &frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		var writeErr error
		switch frame.Action {
		case ws.ActionNext:
			writeErr = h.handleNext(ctx, conn, wsLog, &frame)
		case ws.ActionPing:
			writeErr = ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
		default:
			writeErr = ws.WriteError(conn, "unknown action: "+string(frame.Action))
		}
		if writeErr != nil {
			wsLog.Debug().Err(writeErr).Msg("Write failed")
			return
		}
	}
}

func (h *WSHandler) handleNext(ctx context.Context, conn *websocket.Conn, log zerolog.Logger, frame *ws.QuizFrame) error {
	if frame.QuizCategory == nil || frame.QuizCategory.ID == nil || frame.PreviousQuestions == nil {
		return ws.WriteError(conn, "quiz_category and previous_questions are required")
	}

	result, err := h.selector.Next(ctx, frame.QuizCategory.ID.Int(), frame.PreviousQuestions)
	if err != nil {
		log.Error().Err(err).Msg("Quiz draw failed")
		return ws.WriteError(conn, "draw failed")
	}

	return ws.WriteTyped(conn, ws.QuestionResponse{
		Event:         ws.EventQuestion,
		Question:      result.Question,
		QuestionsLeft: result.QuestionsLeft,
	})
}
