// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"krishisakhi/entities"
	cropsvc "krishisakhi/pkg/crop/service"
)

// openAI talks to any OpenAI-compatible chat/completions endpoint (this
// includes Gemini's compatibility endpoint); endpoint, key and model come
// from config.
type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string, or content parts for vision
}

type contentPart struct {
	Type     string    `json:"type"` // text|image_url
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

func (c *openAI) complete(messages []chatMessage, temperature float64) (string, error) {
	reqBody := map[string]any{
		"model":       c.model,
		"messages":    messages,
		"temperature": temperature,
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return content, nil
}

func (c *openAI) Chat(history []entities.ChatMessage, message, language, kbContext string) (string, error) {
	msgs := []chatMessage{{Role: "system", Content: chatSystemPrompt(language)}}
	if kbContext != "" {
		msgs = append(msgs, chatMessage{Role: "system", Content: "Relevant advisory notes:\n" + kbContext})
	}
	for _, m := range history {
		role := "user"
		if m.Sender == "bot" {
			role = "assistant"
		}
		msgs = append(msgs, chatMessage{Role: role, Content: m.Text})
	}
	enforced := fmt.Sprintf("%s (Please answer strictly in %s)", message, languageName(language))
	msgs = append(msgs, chatMessage{Role: "user", Content: enforced})
	return c.complete(msgs, 0.4)
}

func (c *openAI) AnalyzePlantImage(imageB64, mimeType, language, cropName string) (string, error) {
	msgs := []chatMessage{{
		Role: "user",
		Content: []contentPart{
			{Type: "image_url", ImageURL: &imageURL{URL: fmt.Sprintf("data:%s;base64,%s", mimeType, imageB64)}},
			{Type: "text", Text: pestPrompt(language, cropName)},
		},
	}}
	return c.complete(msgs, 0.2)
}

func (c *openAI) AnalyzeSoilCard(imageB64, mimeType, language string) (string, error) {
	msgs := []chatMessage{{
		Role: "user",
		Content: []contentPart{
			{Type: "image_url", ImageURL: &imageURL{URL: fmt.Sprintf("data:%s;base64,%s", mimeType, imageB64)}},
			{Type: "text", Text: soilCardPrompt(language)},
		},
	}}
	return c.complete(msgs, 0.2)
}

func (c *openAI) RecommendCrops(rc RecommendContext) ([]entities.CropRecommendation, error) {
	raw, err := c.complete([]chatMessage{
		{Role: "system", Content: "You are an expert Indian agronomist. Reply ONLY valid JSON."},
		{Role: "user", Content: recommendPrompt(rc)},
	}, 0.2)
	if err != nil {
		return nil, err
	}

	var recs []entities.CropRecommendation
	if err := json.Unmarshal([]byte(stripFences(raw)), &recs); err != nil {
		return nil, fmt.Errorf("parse recommendations: %w", err)
	}
	out := recs[:0]
	for _, r := range recs {
		if err := cropsvc.ValidateRecommendation(r); err != nil {
			continue // drop malformed templates rather than failing the batch
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no usable recommendations returned")
	}
	return out, nil
}
