package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"chefviral/internal/application/generation/usecases"
	"chefviral/internal/domain/content"
	"chefviral/internal/shared/config"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// Generated images arrive base64-inlined, so responses can be large.
	maxResponseSize = 32 << 20
)

// GeminiClient calls the Gemini generateContent REST API for structured
// marketing copy and for illustrations.
type GeminiClient struct {
	apiKey     string
	textModel  string
	imageModel string
	imageDelay time.Duration
	httpClient *http.Client
	logger     logger.Interface
}

// NewGeminiClient creates a client from configuration. A missing API key
// is tolerated here; generation calls fail before any network request.
func NewGeminiClient(cfg config.GeminiConfig, log logger.Interface) *GeminiClient {
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		imageDelay: time.Duration(cfg.ImageDelayMS) * time.Millisecond,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: log.Named("gemini"),
	}
}

var _ usecases.CampaignGenerator = (*GeminiClient)(nil)

// request/response wire types for generateContent.

type generateRequest struct {
	Contents          []reqContent      `json:"contents"`
	SystemInstruction *reqContent       `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type reqContent struct {
	Parts []reqPart `json:"parts"`
}

type reqPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64         `json:"temperature,omitempty"`
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
	ImageConfig      *imageConfig    `json:"imageConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
	ImageSize   string `json:"imageSize,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MIMEType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// itemWire is the model-output shape constrained by contentSchema.
type itemWire struct {
	Kind       content.Kind `json:"type"`
	Hook       string       `json:"hook"`
	Caption    string       `json:"caption"`
	CTA        string       `json:"cta"`
	Hashtags   []string     `json:"hashtags"`
	Script     string       `json:"script"`
	Suggestion string       `json:"suggestion"`
}

// contentSchema constrains the text model to the campaign item shape.
var contentSchema = json.RawMessage(`{
  "type": "ARRAY",
  "items": {
    "type": "OBJECT",
    "properties": {
      "type": {"type": "STRING", "enum": ["FEED", "STORY", "REELS", "WHATSAPP"]},
      "hook": {"type": "STRING", "description": "A primeira frase que prende a atenção (gancho) ou título da arte"},
      "caption": {"type": "STRING", "description": "O corpo do texto completo com emojis"},
      "cta": {"type": "STRING", "description": "Chamada para ação (Ex: Peça no Link da Bio)"},
      "hashtags": {"type": "ARRAY", "items": {"type": "STRING"}},
      "script": {"type": "STRING", "description": "Roteiro visual apenas para Reels"},
      "suggestion": {"type": "STRING", "description": "Descrição visual para uma ILUSTRAÇÃO 3D (Estilo Pixar/Disney). Foco em comida apetitosa, cores vibrantes, fundo limpo. PROIBIDO MARCAS."}
    },
    "required": ["type", "caption", "cta", "hashtags"]
  }
}`)

// GenerateCampaign produces the campaign items for the command: one text
// model call for the copy, then one image call per item that wants an
// illustration, spaced by the configured delay. Image failures are
// logged and the item is kept without an image.
func (c *GeminiClient) GenerateCampaign(ctx context.Context, cmd usecases.CampaignCommand) ([]usecases.CampaignItem, error) {
	if c.apiKey == "" {
		return nil, errors.NewConfigError("chave de API não configurada")
	}

	prompt := buildCampaignPrompt(cmd)

	body := generateRequest{
		Contents:          []reqContent{{Parts: []reqPart{{Text: prompt}}}},
		SystemInstruction: &reqContent{Parts: []reqPart{{Text: systemInstruction}}},
		GenerationConfig: &generationConfig{
			Temperature:      0.7,
			ResponseMIMEType: "application/json",
			ResponseSchema:   contentSchema,
		},
	}

	resp, err := c.call(ctx, c.textModel, body)
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, errors.NewInternalError("modelo não retornou conteúdo")
	}

	var raw []itemWire
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode model output: %w", err)
	}

	items := make([]usecases.CampaignItem, 0, len(raw))
	for _, w := range raw {
		kind := w.Kind
		switch {
		case cmd.Mode == content.ModeCustomerReply:
			kind = content.KindReply
		case kind == "":
			kind = content.KindFeed
		}
		items = append(items, usecases.CampaignItem{
			Kind:       kind,
			Hook:       w.Hook,
			Caption:    w.Caption,
			CTA:        w.CTA,
			Hashtags:   w.Hashtags,
			Script:     w.Script,
			Suggestion: w.Suggestion,
		})
	}

	for i := range items {
		item := &items[i]
		if item.Suggestion == "" || !item.Kind.WantsImage() {
			continue
		}

		select {
		case <-time.After(c.imageDelay):
		case <-ctx.Done():
			return items, ctx.Err()
		}

		image, err := c.generateImage(ctx, cmd.BusinessName, item.Kind, item.Suggestion)
		if err != nil {
			c.logger.Warnw("image generation failed, keeping item without image",
				"kind", item.Kind,
				"error", err,
			)
			continue
		}
		item.ImageBase64 = image
	}

	return items, nil
}

// generateImage produces one base64 PNG illustration for an item.
func (c *GeminiClient) generateImage(ctx context.Context, businessName string, kind content.Kind, suggestion string) (string, error) {
	clean := SanitizeImagePrompt(suggestion)
	prompt := buildImagePrompt(businessName, clean)

	body := generateRequest{
		Contents: []reqContent{{Parts: []reqPart{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{
				AspectRatio: kind.AspectRatio(),
				ImageSize:   "1K",
			},
		},
	}

	resp, err := c.call(ctx, c.imageModel, body)
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return part.InlineData.Data, nil
			}
		}
	}
	return "", fmt.Errorf("no image in response")
}

func (c *GeminiClient) call(ctx context.Context, model string, body generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent", geminiBaseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, errors.NewRateLimitedError("Muitas solicitações. Aguarde um momento.")
	case httpResp.StatusCode != http.StatusOK:
		c.logger.Errorw("gemini returned non-200 status",
			"status", httpResp.StatusCode,
			"model", model,
		)
		return nil, errors.NewInternalError(fmt.Sprintf("gemini status %d", httpResp.StatusCode))
	}

	var resp generateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

func firstText(resp *generateResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}
