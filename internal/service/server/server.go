package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"e2e_relay/internal/model"
	"e2e_relay/internal/service/mailbox"
	"e2e_relay/internal/service/registry"
	"e2e_relay/internal/utils/log"
	apperrors "e2e_relay/pkg/errors"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type (
	HttpServer struct {
		registry *registry.Service
		mailbox  *mailbox.Service

		mu     sync.Mutex
		mapper map[string]*subscriber

		writeTimeout time.Duration

		httpServer *http.Server
	}
)

func NewHttpServer(registry *registry.Service, mailbox *mailbox.Service) *HttpServer {
	return &HttpServer{
		registry:     registry,
		mailbox:      mailbox,
		mapper:       make(map[string]*subscriber),
		writeTimeout: 10 * time.Second,
	}
}

func (s *HttpServer) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/register", s.HandleRegister()).Methods(http.MethodPost)
	r.HandleFunc("/users", s.HandleListUsers()).Methods(http.MethodGet)
	r.HandleFunc("/send_message", s.HandleSendMessage()).Methods(http.MethodPost)
	r.HandleFunc("/get_messages/{recipient}", s.HandleGetMessages()).Methods(http.MethodGet)
	r.HandleFunc("/subscribe", s.HandleSubscribe()).Methods(http.MethodGet)

	return r
}

// Run blocks serving the API on addr until Shutdown is called.
func (s *HttpServer) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	return s.httpServer.ListenAndServe()
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *HttpServer) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.InvalidInput("malformed request body"))
			return
		}

		user, err := s.registry.Register(r.Context(), req.Username)
		if err != nil {
			log.Error("register failed", zap.String("username", req.Username), zap.Error(err))
			writeError(w, err)
			return
		}

		log.Info("user registered", zap.String("username", user.Username))
		writeJSON(w, http.StatusOK, &RegisterResponse{Status: "ok", Username: user.Username})
	}
}

func (s *HttpServer) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := s.registry.List(r.Context())
		if err != nil {
			log.Error("list users failed", zap.Error(err))
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, &ListUsersResponse{Users: users, Count: len(users)})
	}
}

func (s *HttpServer) HandleSendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, apperrors.InvalidInput("malformed request body"))
			return
		}

		_, err := s.mailbox.Send(r.Context(), req.Sender, req.Recipient, req.Encrypted)
		if err != nil {
			log.Error("send failed", zap.String("sender", req.Sender), zap.String("recipient", req.Recipient), zap.Error(err))
			writeError(w, err)
			return
		}

		s.flush(req.Recipient)
		writeJSON(w, http.StatusOK, &StatusResponse{Status: "ok"})
	}
}

func (s *HttpServer) HandleGetMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		recipient := vars["recipient"]

		messages, err := s.mailbox.FetchAndPurge(r.Context(), recipient)
		if err != nil {
			log.Error("fetch failed", zap.String("recipient", recipient), zap.Error(err))
			writeError(w, err)
			return
		}

		if messages == nil {
			messages = []model.Message{}
		}
		writeJSON(w, http.StatusOK, &GetMessagesResponse{Messages: messages, Count: len(messages)})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("marshal response failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)

	var status int
	msg := err.Error()
	switch code {
	case apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.CodeAlreadyExists:
		status = http.StatusConflict
	case apperrors.CodeSenderUnknown, apperrors.CodeRecipientUnknown:
		status = http.StatusNotFound
	default:
		// Storage faults are not the caller's doing; keep the details out
		// of the response.
		code = apperrors.CodeInternal
		status = http.StatusInternalServerError
		msg = "internal error"
	}

	writeJSON(w, status, &ErrorResponse{Error: ErrorBody{Code: string(code), Message: msg}})
}
