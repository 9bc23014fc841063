package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nhle/demodash/internal/model"
)

// loginResponse is the success shape of POST /api/auth/login.
type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		Username string `json:"username"`
	} `json:"user"`
	Error string `json:"error"`
}

// rejection is the error payload the auth endpoints return on failure.
type rejection struct {
	Error string `json:"error"`
}

// Login exchanges a username and password for a session credential.
// A rejection (either a non-2xx status or an error payload) is returned
// as *ServerError carrying the server's message.
func (c *Client) Login(
	ctx context.Context,
	username string,
	password string,
) (model.Credential, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	resp, respBody, err := c.send(ctx, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return model.Credential{}, err
	}

	var parsed loginResponse
	if unmarshalErr := json.Unmarshal(respBody, &parsed); unmarshalErr == nil {
		if parsed.Error != "" {
			return model.Credential{}, &ServerError{Message: parsed.Error}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.Credential{}, &ServerError{Message: "login failed"}
	}

	if parsed.Token == "" {
		return model.Credential{}, fmt.Errorf("login response missing token")
	}

	return model.Credential{
		Token:    parsed.Token,
		Username: parsed.User.Username,
	}, nil
}

// Register creates a new account. The server responds with an empty
// object on success or an error payload on rejection.
func (c *Client) Register(
	ctx context.Context,
	username string,
	email string,
	password string,
) error {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	resp, respBody, err := c.send(ctx, http.MethodPost, "/api/auth/register", body)
	if err != nil {
		return err
	}

	var parsed rejection
	if unmarshalErr := json.Unmarshal(respBody, &parsed); unmarshalErr == nil {
		if parsed.Error != "" {
			return &ServerError{Message: parsed.Error}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServerError{Message: "registration failed"}
	}

	return nil
}

// ListTodos fetches the full todo collection.
func (c *Client) ListTodos(ctx context.Context) ([]model.Todo, error) {
	var result struct {
		Todos []model.Todo `json:"todos"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &result); err != nil {
		return nil, err
	}
	return result.Todos, nil
}

// CreateTodo submits a new todo. The canonical list is re-fetched by the
// caller; the response body is not used.
func (c *Client) CreateTodo(ctx context.Context, title, description string) error {
	body := map[string]string{
		"title":       title,
		"description": description,
	}
	return c.do(ctx, http.MethodPost, "/api/todos", body, nil)
}

// UpdateTodo flips a todo's completed flag. The wire format is 0/1.
func (c *Client) UpdateTodo(ctx context.Context, id int64, completed bool) error {
	body := map[string]model.IntBool{
		"completed": model.IntBool(completed),
	}
	path := fmt.Sprintf("/api/todos/%d", id)
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// DeleteTodo removes a todo.
func (c *Client) DeleteTodo(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/todos/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListMessages fetches the chat history. The server returns messages
// newest-first; the rendering layer reverses them.
func (c *Client) ListMessages(ctx context.Context) ([]model.Message, error) {
	var result struct {
		Messages []model.Message `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/messages", nil, &result); err != nil {
		return nil, err
	}
	return result.Messages, nil
}

// SendMessage appends a chat message. Messages cannot be edited or
// deleted once sent.
func (c *Client) SendMessage(ctx context.Context, text string) error {
	body := map[string]string{"message": text}
	return c.do(ctx, http.MethodPost, "/api/messages", body, nil)
}

// ListFiles fetches the file listing.
func (c *Client) ListFiles(ctx context.Context) ([]model.File, error) {
	var result struct {
		Files []model.File `json:"files"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/files", nil, &result); err != nil {
		return nil, err
	}
	return result.Files, nil
}

// UploadFile records file metadata. No byte payload is transferred.
func (c *Client) UploadFile(ctx context.Context, filename string, filesize int64) error {
	body := map[string]interface{}{
		"filename": filename,
		"filesize": filesize,
	}
	return c.do(ctx, http.MethodPost, "/api/files", body, nil)
}

// Stats fetches the per-user dashboard summary.
func (c *Client) Stats(ctx context.Context) (model.Stats, error) {
	var result model.Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &result); err != nil {
		return model.Stats{}, err
	}
	return result, nil
}

// Analytics fetches the site-wide counters.
func (c *Client) Analytics(ctx context.Context) (model.Analytics, error) {
	var result model.Analytics
	if err := c.do(ctx, http.MethodGet, "/api/analytics", nil, &result); err != nil {
		return model.Analytics{}, err
	}
	return result, nil
}
