package providers

import (
	"context"
	"fmt"

	"lullaby/internal/pkg/fal"
)

// FalImageProvider fal.ai 图片生成提供者
// 适配层，调用 fal.Client
// 实现了 storytools.ImageProvider 接口
type FalImageProvider struct {
	client *fal.Client
}

// NewFalImageProvider 创建 fal.ai 图片生成提供者
func NewFalImageProvider(config *fal.Config) (*FalImageProvider, error) {
	client, err := fal.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("create fal client: %w", err)
	}

	return &FalImageProvider{
		client: client,
	}, nil
}

// GenerateImage 生成图片，返回图片URL
func (p *FalImageProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	imageURL, err := p.client.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("fal generate image: %w", err)
	}
	return imageURL, nil
}
