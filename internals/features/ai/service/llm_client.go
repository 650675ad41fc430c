// internals/features/ai/service/llm_client.go
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"pesantrenku_backend/internals/configs"
)

var ErrLLMUnavailable = errors.New("layanan LLM tidak tersedia")

// Klien chat-completions (format OpenAI); provider lain yang kompatibel
// cukup ganti LLM_API_URL + LLM_MODEL lewat env.
type LLMClient struct {
	HTTP   *http.Client
	APIURL string
	APIKey string
	Model  string
}

func NewLLMClient() *LLMClient {
	return &LLMClient{
		HTTP:   &http.Client{Timeout: 60 * time.Second},
		APIURL: configs.LLMAPIURL,
		APIKey: configs.LLMAPIKey,
		Model:  configs.LLMModel,
	}
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Chat mengirim prompt teks biasa dan mengembalikan isi jawaban beserta
// body respons mentah (untuk audit log).
func (c *LLMClient) Chat(ctx context.Context, system, user string) (string, []byte, error) {
	messages := []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	return c.send(ctx, messages)
}

// ChatWithImage mengirim pertanyaan + gambar (data URL base64) untuk analisis visual.
func (c *LLMClient) ChatWithImage(ctx context.Context, system, question, imageDataURL string) (string, []byte, error) {
	messages := []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: []map[string]interface{}{
			{"type": "text", "text": question},
			{"type": "image_url", "image_url": map[string]string{"url": imageDataURL}},
		}},
	}
	return c.send(ctx, messages)
}

func (c *LLMClient) send(ctx context.Context, messages []chatMessage) (string, []byte, error) {
	if c.APIKey == "" {
		return "", nil, ErrLLMUnavailable
	}

	payload, err := sonic.Marshal(chatRequest{
		Model:       c.Model,
		Messages:    messages,
		Temperature: 0,
	})
	if err != nil {
		return "", nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(payload))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrLLMUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", nil, err
	}

	var parsed chatResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return "", body, fmt.Errorf("%w: respons bukan JSON valid", ErrLLMUnavailable)
	}
	if parsed.Error != nil {
		return "", body, fmt.Errorf("%w: %s", ErrLLMUnavailable, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", body, fmt.Errorf("%w: respons kosong", ErrLLMUnavailable)
	}
	return parsed.Choices[0].Message.Content, body, nil
}
