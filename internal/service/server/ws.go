package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"e2e_relay/internal/utils/log"
	apperrors "e2e_relay/pkg/errors"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type (
	// subscriber pairs a socket with its own write lock, so a stalled write
	// to one recipient cannot hold up forwarding to any other.
	subscriber struct {
		mu   sync.Mutex
		conn *websocket.Conn
	}
)

// HandleSubscribe upgrades the connection and streams the subscriber's
// mailbox: the backlog on connect, then each message as it arrives. Delivery
// always goes through the mailbox's atomic drain, so a message pushed over
// the socket is purged and will not show up in a later fetch.
func (s *HttpServer) HandleSubscribe() http.HandlerFunc {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // Allow all origins
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			writeError(w, apperrors.InvalidInput("username cannot be empty"))
			return
		}

		ok, err := s.registry.Exists(r.Context(), username)
		if err != nil {
			log.Error("subscribe lookup failed", zap.String("username", username), zap.Error(err))
			writeError(w, err)
			return
		}
		if !ok {
			writeError(w, apperrors.RecipientUnknown("recipient is not registered"))
			return
		}

		s.mu.Lock()
		if _, dup := s.mapper[username]; dup {
			s.mu.Unlock()
			writeError(w, apperrors.InvalidInput("username already subscribed"))
			return
		}
		s.mu.Unlock()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "Failed to upgrade", http.StatusInternalServerError)
			return
		}

		if !s.addSubscriber(username, conn) {
			return
		}

		go s.watchConn(username, conn)
		s.flush(username)
	}
}

// addSubscriber registers conn for username. The pre-upgrade duplicate check
// can lose a race, so on a duplicate here the peer is told why before the
// socket closes.
func (s *HttpServer) addSubscriber(username string, conn *websocket.Conn) bool {
	s.mu.Lock()
	if _, dup := s.mapper[username]; dup {
		s.mu.Unlock()
		reason := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "duplicate subscription")
		if err := conn.WriteControl(websocket.CloseMessage, reason, time.Now().Add(time.Second)); err != nil {
			log.Debug("write close frame failed", zap.String("username", username), zap.Error(err))
		}
		conn.Close()
		return false
	}
	s.mapper[username] = &subscriber{conn: conn}
	s.mu.Unlock()
	return true
}

// watchConn blocks on the socket until the peer closes it, then deregisters.
// Subscribers only receive; inbound frames are discarded.
func (s *HttpServer) watchConn(username string, conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Debug("subscriber web socket closed", zap.String("username", username), zap.Error(err))
			s.mu.Lock()
			delete(s.mapper, username)
			s.mu.Unlock()
			conn.Close()
			break
		}
	}
}

// flush drains the recipient's mailbox onto its socket, if connected. Only
// the subscriber's own lock is held across the drain and writes, which keeps
// per-recipient delivery ordered without stalling unrelated requests. Writes
// carry a deadline; a subscriber that stops reading is torn down once its
// socket buffers fill, and the read loop then deregisters it.
func (s *HttpServer) flush(recipient string) {
	s.mu.Lock()
	sub, ok := s.mapper[recipient]
	s.mu.Unlock()
	if !ok {
		return
	}

	sub.mu.Lock()
	defer sub.mu.Unlock()

	messages, err := s.mailbox.FetchAndPurge(context.Background(), recipient)
	if err != nil {
		log.Error("forward pending messages failed", zap.String("recipient", recipient), zap.Error(err))
		return
	}

	for i := range messages {
		if err := sub.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout)); err != nil {
			sub.conn.Close()
			return
		}
		if err := sub.conn.WriteJSON(&messages[i]); err != nil {
			log.Error("forward over web socket failed", zap.String("recipient", recipient), zap.Error(err))
			sub.conn.Close()
			return
		}
	}
}
