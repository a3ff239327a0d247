package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultOpenAIChatEndpoint = "https://api.openai.com/v1/chat/completions"

const resumeSystemPrompt = `You extract structured data from resumes. ` +
	`Respond with a single JSON object and nothing else, using exactly these keys: ` +
	`fullName, email, phone, jobTitle, experience, location, bio, skills, education, workHistory. ` +
	`"skills" is an array of short strings, every other value is a string. ` +
	`"experience" is a one-line summary like "5+ years". "bio" is a 2-3 sentence first-person summary. ` +
	`Use an empty string (or empty array) for anything the resume does not state. Never invent facts.`

// OpenAIResumeOptions controls how resumes are structured via the OpenAI
// chat completions API.
type OpenAIResumeOptions struct {
	Model      string
	Endpoint   string
	HTTPClient *http.Client
}

// OpenAIResumeStructurer implements ResumeStructurer on top of the OpenAI
// chat completions API.
type OpenAIResumeStructurer struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewOpenAIResumeStructurer(apiKey string, opts OpenAIResumeOptions) (*OpenAIResumeStructurer, error) {
	trimmedKey := strings.TrimSpace(apiKey)
	if trimmedKey == "" {
		return nil, errors.New("openai api key is required for resume structuring")
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = defaultOpenAIChatEndpoint
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}

	return &OpenAIResumeStructurer{
		apiKey:   trimmedKey,
		model:    model,
		endpoint: endpoint,
		client:   client,
	}, nil
}

type chatCompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float32           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
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

func (s *OpenAIResumeStructurer) Structure(ctx context.Context, text string) (*ResumeProfile, error) {
	if s == nil || s.client == nil {
		return nil, errors.New("openai resume structurer is not configured")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResume
	}

	payload := chatCompletionRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: resumeSystemPrompt},
			{Role: "user", Content: text},
		},
		Temperature:    0,
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to encode request: %w", err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to build request: %w", err)
	}
	httpRequest.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpRequest.Header.Set("Content-Type", "application/json")

	response, err := s.client.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("openai: completion request failed: %w", err)
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read response: %w", err)
	}

	if response.StatusCode >= http.StatusMultipleChoices {
		message := strings.TrimSpace(string(data))
		if message == "" {
			message = response.Status
		}
		return nil, fmt.Errorf("openai: completion request returned status %s: %s", response.Status, message)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(data, &completion); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, errors.New("openai completion returned no choices")
	}

	content := stripCodeFences(completion.Choices[0].Message.Content)
	var profile ResumeProfile
	if err := json.Unmarshal([]byte(content), &profile); err != nil {
		return nil, fmt.Errorf("openai: model returned invalid profile json: %w", err)
	}

	return &profile, nil
}

// stripCodeFences unwraps ```json fenced blocks some models insist on even
// when asked for bare JSON.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
