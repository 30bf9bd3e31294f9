package story

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"lullaby/internal/model/story"
)

// fakeStoryRepo 内存故事仓库，行为与 MongoDB 实现保持一致（按用户隔离、倒序列表）
type fakeStoryRepo struct {
	stories   []*story.Story
	createErr error
}

func (r *fakeStoryRepo) Create(ctx context.Context, s *story.Story) error {
	if r.createErr != nil {
		return r.createErr
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.stories = append(r.stories, s)
	return nil
}

func (r *fakeStoryRepo) FindByID(ctx context.Context, id, userID string) (*story.Story, error) {
	for _, s := range r.stories {
		if s.ID == id && s.UserID == userID {
			return s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeStoryRepo) FindByUserID(ctx context.Context, userID string) ([]*story.Story, error) {
	var result []*story.Story
	for _, s := range r.stories {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeStoryRepo) UpdateRating(ctx context.Context, id, userID string, rating int) error {
	for _, s := range r.stories {
		if s.ID == id && s.UserID == userID {
			v := rating
			s.Rating = &v
			s.UpdatedAt = time.Now()
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeStoryRepo) Delete(ctx context.Context, id, userID string) error {
	for i, s := range r.stories {
		if s.ID == id && s.UserID == userID {
			r.stories = append(r.stories[:i], r.stories[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// fakeLLM 按提示词内容区分两类调用：场景提取提示词包含 SCENE 格式说明
type fakeLLM struct {
	storyCompletion  string
	scenesCompletion string
	storyErr         error
	scenesErr        error
	calls            int
	temperatures     []float32
}

func (l *fakeLLM) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	l.calls++
	l.temperatures = append(l.temperatures, temperature)

	if strings.Contains(prompt, "SCENE 1:") {
		return l.scenesCompletion, l.scenesErr
	}
	return l.storyCompletion, l.storyErr
}

// fakeImage 返回编号递增的图片URL，可按调用序号注入失败
type fakeImage struct {
	calls   int
	failOn  map[int]error // 第 n 次调用（从1开始）返回的错误
	urlOn   map[int]string
	prompts []string
}

func (f *fakeImage) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)

	if err, ok := f.failOn[f.calls]; ok {
		return "", err
	}
	if url, ok := f.urlOn[f.calls]; ok {
		return url, nil
	}
	return "https://images.example.com/story/" + string(rune('0'+f.calls)) + ".png", nil
}

var errImageDown = errors.New("image service unavailable")
