package fal

import (
	"strings"
	"time"
)

// 默认参数：绘本插图用横幅构图，flux/schnell 4 步出图已足够
const (
	defaultBaseURL   = "https://fal.run"
	defaultModel     = "fal-ai/flux/schnell"
	defaultImageSize = "landscape_16_9"
	defaultSteps     = 4
	defaultTimeout   = 60 * time.Second
)

// Config fal.ai 客户端配置
// APIKey 必填；其余字段为空时使用默认值
type Config struct {
	APIKey    string        // fal.ai API Key
	BaseURL   string        // API 根地址（默认 https://fal.run）
	Model     string        // 模型路径（默认 fal-ai/flux/schnell）
	ImageSize string        // 画幅（默认 landscape_16_9）
	NumSteps  int           // 推理步数（默认 4）
	Timeout   time.Duration // 请求超时时间
}

// normalize 补齐默认值并规范化地址
func (c *Config) normalize() {
	c.BaseURL = strings.TrimSuffix(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.ImageSize == "" {
		c.ImageSize = defaultImageSize
	}
	if c.NumSteps <= 0 {
		c.NumSteps = defaultSteps
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}
