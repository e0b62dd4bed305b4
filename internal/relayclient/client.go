// Package relayclient is a thin HTTP/websocket client for the relay API,
// used by the relayctl command.
package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"e2e_relay/internal/model"
	"e2e_relay/internal/service/server"
	apperrors "e2e_relay/pkg/errors"

	"github.com/gorilla/websocket"
)

type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string) *Client {
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

func (c *Client) Register(username string) error {
	return c.post("/register", &server.RegisterRequest{Username: username}, nil)
}

func (c *Client) ListUsers() ([]model.User, error) {
	var out server.ListUsersResponse
	if err := c.getJSON("/users", &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) Send(sender, recipient, encrypted string) error {
	req := &server.SendMessageRequest{
		Sender:    sender,
		Recipient: recipient,
		Encrypted: encrypted,
	}
	return c.post("/send_message", req, nil)
}

func (c *Client) Fetch(recipient string) ([]model.Message, error) {
	var out server.GetMessagesResponse
	if err := c.getJSON("/get_messages/"+url.PathEscape(recipient), &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// Watch subscribes over websocket and calls handle for each forwarded
// message until handle errors, the connection drops, or ctx is cancelled.
func (c *Client) Watch(ctx context.Context, username string, handle func(model.Message) error) error {
	wsBase := strings.Replace(c.Base, "http", "ws", 1)
	u := wsBase + "/subscribe?username=" + url.QueryEscape(username)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var m model.Message
		if err := conn.ReadJSON(&m); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if err := handle(m); err != nil {
			return err
		}
	}
}

func (c *Client) post(path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return decodeError(resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return decodeError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError turns the relay's error body back into an AppError, so callers
// can branch on the same codes the server uses.
func decodeError(resp *http.Response) error {
	var body server.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error.Code == "" {
		return fmt.Errorf("relay: %s", resp.Status)
	}
	return apperrors.New(apperrors.Code(body.Error.Code), body.Error.Message)
}
