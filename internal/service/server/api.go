package server

import "e2e_relay/internal/model"

// Wire shapes. Route and field names follow the relay's original HTTP API.
type (
	RegisterRequest struct {
		Username string `json:"username"`
	}

	RegisterResponse struct {
		Status   string `json:"status"`
		Username string `json:"username"`
	}

	SendMessageRequest struct {
		Sender    string `json:"sender"`
		Recipient string `json:"recipient"`
		Encrypted string `json:"encrypted"`
	}

	StatusResponse struct {
		Status string `json:"status"`
	}

	ListUsersResponse struct {
		Users []model.User `json:"users"`
		Count int          `json:"count"`
	}

	GetMessagesResponse struct {
		Messages []model.Message `json:"messages"`
		Count    int             `json:"count"`
	}

	ErrorBody struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Error ErrorBody `json:"error"`
	}
)
