package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
)

// ChatbotConfig points at the third-party text-generation endpoint. An empty
// APIKey disables the external call entirely.
type ChatbotConfig struct {
	APIKey   string
	Model    string
	Endpoint string
	Prompt   string
}

// ChatbotService answers support questions. The external call is never the
// only path to a response: any failure, from transport errors to a malformed
// body, falls back to the local keyword table.
type ChatbotService struct {
	config ChatbotConfig
	client HTTPClient
}

func NewChatbotService(config ChatbotConfig, client HTTPClient) *ChatbotService {
	return &ChatbotService{config: config, client: client}
}

func (s *ChatbotService) Reply(ctx context.Context, message string) (string, error) {
	if s.config.APIKey == "" {
		return FallbackResponse(message), nil
	}

	reply, err := s.generate(ctx, message)
	if err != nil {
		log.Printf("[qualigo] chatbot API failed, using fallback: %v", err)
		return FallbackResponse(message), nil
	}
	return reply, nil
}

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
		TopP            float64 `json:"topP"`
		TopK            int     `json:"topK"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (s *ChatbotService) generate(ctx context.Context, message string) (string, error) {
	var payload generateRequest
	payload.Contents = make([]struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}, 1)
	payload.Contents[0].Parts = []struct {
		Text string `json:"text"`
	}{{Text: fmt.Sprintf("%s\n\nUsuario pregunta: %s\n\nResponde brevemente en español.", s.config.Prompt, message)}}
	payload.GenerationConfig.Temperature = 0.7
	payload.GenerationConfig.MaxOutputTokens = 500
	payload.GenerationConfig.TopP = 0.9
	payload.GenerationConfig.TopK = 40

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1/models/%s:generateContent?key=%s", s.config.Endpoint, s.config.Model, s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("unexpected response structure")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
