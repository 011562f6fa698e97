package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const (
	chatModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.5-flash-image"
	videoModel = "veo-3.0-generate-001"
)

// GeminiClient wrapper tipis generativelanguage API. Satu klien dipakai
// bersama seluruh request, timeout dipegang caller lewat context.
type GeminiClient struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig *geminiConfig   `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiConfig struct {
	Temperature        float64  `json:"temperature,omitempty"`
	MaxOutputTokens    int      `json:"maxOutputTokens,omitempty"`
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
}

type videoSubmitRequest struct {
	Instances []struct {
		Prompt string `json:"prompt"`
	} `json:"instances"`
}

type videoOperation struct {
	Name     string `json:"name"`
	Done     bool   `json:"done"`
	Response struct {
		GenerateVideoResponse struct {
			GeneratedSamples []struct {
				Video struct {
					URI string `json:"uri"`
				} `json:"video"`
			} `json:"generatedSamples"`
		} `json:"generateVideoResponse"`
	} `json:"response"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// doJSON kirim request dan decode jawabannya. Error transport dicoba
// ulang sekali (server streaming-nya sesekali reset koneksi), error
// HTTP langsung diteruskan.
func (g *GeminiClient) doJSON(ctx context.Context, method, url string, payload, out interface{}) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = sonic.Marshal(payload)
		if err != nil {
			return err
		}
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", g.APIKey)

		resp, err := g.HTTP.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("gemini API %d: %s", resp.StatusCode, string(raw))
		}
		return sonic.Unmarshal(raw, out)
	}
	return lastErr
}

// GenerateText chat sinkron satu giliran.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", g.BaseURL, chatModel)
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiConfig{Temperature: 0.7, MaxOutputTokens: 1024},
	}

	var resp geminiResponse
	if err := g.doJSON(ctx, http.MethodPost, url, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: respons kosong")
	}

	text := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}

// GenerateImage sinkron, pulang base64 + mime type.
func (g *GeminiClient) GenerateImage(ctx context.Context, prompt string) (data, mimeType string, err error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", g.BaseURL, imageModel)
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: &geminiConfig{ResponseModalities: []string{"IMAGE"}},
	}

	var resp geminiResponse
	if err := g.doJSON(ctx, http.MethodPost, url, req, &resp); err != nil {
		return "", "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				return part.InlineData.Data, part.InlineData.MimeType, nil
			}
		}
	}
	return "", "", fmt.Errorf("gemini: tidak ada gambar di respons")
}

// SubmitVideo mulai job long-running, pulang nama operation untuk di-poll.
func (g *GeminiClient) SubmitVideo(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/models/%s:predictLongRunning", g.BaseURL, videoModel)
	var req videoSubmitRequest
	req.Instances = append(req.Instances, struct {
		Prompt string `json:"prompt"`
	}{Prompt: prompt})

	var op videoOperation
	if err := g.doJSON(ctx, http.MethodPost, url, req, &op); err != nil {
		return "", err
	}
	if op.Name == "" {
		return "", fmt.Errorf("gemini: operation name kosong")
	}
	return op.Name, nil
}

// PollVideo cek status operation. done=true dengan uri kosong berarti
// job gagal di sisi Google.
func (g *GeminiClient) PollVideo(ctx context.Context, operationName string) (done bool, uri string, err error) {
	url := fmt.Sprintf("%s/%s", g.BaseURL, operationName)

	var op videoOperation
	if err := g.doJSON(ctx, http.MethodGet, url, nil, &op); err != nil {
		return false, "", err
	}
	if op.Error != nil {
		return true, "", fmt.Errorf("gemini: %s", op.Error.Message)
	}
	if !op.Done {
		return false, "", nil
	}

	samples := op.Response.GenerateVideoResponse.GeneratedSamples
	if len(samples) > 0 {
		uri = samples[0].Video.URI
	}
	return true, uri, nil
}
