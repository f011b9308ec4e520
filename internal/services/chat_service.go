package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/JasminHed/project-final-sub000/internal/config"
)

var ErrEmptyMessage = errors.New("message is required")

// UpstreamError carries the chat provider's status and raw body through to
// the caller unmodified. No retries; every relay is single-attempt.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("chat provider returned %d: %s", e.Status, e.Body)
}

// ChatService relays a single user message to an OpenAI-compatible
// chat-completions endpoint.
type ChatService struct {
	cfg    *config.Config
	client *http.Client
}

func NewChatService(cfg *config.Config) *ChatService {
	return &ChatService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.ChatTimeout},
	}
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *ChatService) Relay(message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model: s.cfg.ChatModel,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a supportive coach helping users reflect on their intentions and SMART goals. Keep answers short and encouraging."},
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.ChatAPIURL, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.ChatAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(raw)}
	}

	return parsed.Choices[0].Message.Content, nil
}
