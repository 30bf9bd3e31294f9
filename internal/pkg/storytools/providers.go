package storytools

import "context"

// LLMProvider 文本生成提供者接口
// temperature 由调用方按用途指定（故事正文/场景提取使用不同温度）
type LLMProvider interface {
	// Generate 根据提示词生成文本
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// ImageProvider 图片生成提供者接口
// 返回图片服务托管的图片链接；失败由调用方兜底为占位图
type ImageProvider interface {
	// GenerateImage 根据提示词生成一张图片，返回图片URL
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
