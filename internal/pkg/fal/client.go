package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrMissingAPIKey API Key 未配置
var ErrMissingAPIKey = errors.New("fal API key is required")

// Client fal.ai 图片生成客户端
// 同步接口：提交提示词，等待生成完成后返回图片URL，单次调用不做重试
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient 创建 fal.ai 客户端
func NewClient(config *Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	config.normalize()

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// generateRequest 图片生成请求体
type generateRequest struct {
	Prompt            string `json:"prompt"`
	ImageSize         string `json:"image_size"`
	NumInferenceSteps int    `json:"num_inference_steps"`
	NumImages         int    `json:"num_images"`
}

// generateResponse 图片生成响应体
type generateResponse struct {
	Images []imageOutput `json:"images"`
}

// imageOutput 单张图片信息
type imageOutput struct {
	URL         string `json:"url"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ContentType string `json:"content_type"`
}

// GenerateImage 生成一张图片，返回图片URL
// 请求失败、非200响应、响应中无图片或URL为空都返回错误，由调用方兜底
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Prompt:            prompt,
		ImageSize:         c.config.ImageSize,
		NumInferenceSteps: c.config.NumSteps,
		NumImages:         1,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generate payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.config.BaseURL, c.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Key "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request fal: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read fal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn().
			Int("status", resp.StatusCode).
			Str("model", c.config.Model).
			Msg("fal 图片生成请求失败")
		return "", fmt.Errorf("fal returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode fal response: %w", err)
	}

	if len(result.Images) == 0 || result.Images[0].URL == "" {
		return "", errors.New("fal response contains no image url")
	}

	return result.Images[0].URL, nil
}

// truncate 截断日志中的长响应体
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
