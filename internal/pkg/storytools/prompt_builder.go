package storytools

import (
	"fmt"
	"strings"

	"lullaby/internal/model/story"
)

// 文本生成温度：故事正文偏高保证想象力，场景提取偏低保证格式稳定
const (
	StoryTemperature  float32 = 0.8
	ScenesTemperature float32 = 0.7
)

// DefaultProtagonist 未提供孩子名字时的默认主角
const DefaultProtagonist = "a brave young hero"

// StoryPromptBuilder 故事提示词构建器
// 纯函数集合：同样的输入总是产生同样的提示词，无状态、无副作用
type StoryPromptBuilder struct{}

// NewStoryPromptBuilder 创建故事提示词构建器实例
func NewStoryPromptBuilder() *StoryPromptBuilder {
	return &StoryPromptBuilder{}
}

// Protagonist 返回故事主角称呼
func (b *StoryPromptBuilder) Protagonist(childName string) string {
	if strings.TrimSpace(childName) != "" {
		return childName
	}
	return DefaultProtagonist
}

// BuildStoryPrompt 构建故事生成提示词
// 要求模型以 TITLE:/STORY: 标记格式输出，便于后续解析
func (b *StoryPromptBuilder) BuildStoryPrompt(genre story.Genre, theme, dailyContext, childName string) string {
	protagonist := b.Protagonist(childName)

	themeLine := ""
	if theme != "" {
		themeLine = fmt.Sprintf("The story should teach the lesson: %s.", theme)
	}

	contextLine := ""
	if dailyContext != "" {
		contextLine = fmt.Sprintf("Incorporate these events from their day: %s.", dailyContext)
	}

	return fmt.Sprintf(`You are a professional children's book author specializing in bedtime stories for ages 3-10.

Create a magical, soothing bedtime story in the %s genre featuring %s as the main character.

Requirements:
- Word count: 700-900 words
- Reading level: Appropriate for ages 3-10 (Flesch-Kincaid Grade 2-4)
- Structure: Clear beginning, gentle rising action, positive climax, calming resolution
- Tone: Magical, comforting, age-appropriate, and optimistic
- Ending: Must be peaceful and reassuring to help children fall asleep
%s
%s

CRITICAL SAFETY RULES:
- NO violence, horror, scary content, or anything disturbing
- NO adult themes or inappropriate content
- Keep everything positive, gentle, and child-friendly
- Focus on wonder, friendship, courage, and comfort

First, provide a short, catchy title (max 60 characters).
Then write the complete story.

Format your response as:
TITLE: [Your title here]
STORY: [Your story here]`, genre, protagonist, themeLine, contextLine)
}

// BuildScenesPrompt 构建场景提取提示词
// 嵌入已生成的故事正文，要求模型输出 5 个 SCENE n: 格式的画面描述
func (b *StoryPromptBuilder) BuildScenesPrompt(storyContent string) string {
	return fmt.Sprintf(`Based on this children's bedtime story, create detailed image prompts for 5 beautiful storybook illustrations.

Story: %s

First, identify the main character(s) and their key visual characteristics (appearance, clothing, distinctive features).

Then, for each of the 5 key scenes, provide:
1. The scene description with specific visual details
2. Character appearances (consistent across all scenes)
3. Setting details (time of day, environment, atmosphere)
4. Mood and lighting
5. Important objects or elements in the scene

Make each description vivid, specific, and perfect for generating a watercolor storybook illustration.

Format each scene as:
SCENE 1: [Detailed visual description including characters, setting, mood, and key elements - 40-60 words]

Provide exactly 5 scenes that span the story from beginning to end.`, storyContent)
}

// BuildIllustrationPrompt 构建单张插图的完整提示词
// 固定的水彩绘本风格模板包裹场景描述
func (b *StoryPromptBuilder) BuildIllustrationPrompt(scene string) string {
	return fmt.Sprintf(`A professional children's book illustration in soft watercolor style: %s.
Style: Gentle, dreamy watercolor painting with soft edges and luminous colors. Warm, comforting palette perfect for bedtime.
Quality: High-quality children's storybook art, detailed but soothing, magical realism style similar to classic picture books.
Mood: Peaceful, enchanting, and age-appropriate for children 3-10 years old.`, scene)
}

// FallbackScenes 场景提取失败时的兜底场景
// 按主角和题材参数化，固定 5 个，覆盖故事从开始到结束
func (b *StoryPromptBuilder) FallbackScenes(protagonist string, genre story.Genre) []string {
	return []string{
		fmt.Sprintf("%s beginning their magical %s adventure in a dreamy, twilight setting", protagonist, genre),
		fmt.Sprintf("%s discovering something wonderful and magical, eyes wide with amazement", protagonist),
		fmt.Sprintf("%s making a new friend in a warm, welcoming environment", protagonist),
		fmt.Sprintf("%s overcoming a gentle challenge with courage and kindness", protagonist),
		fmt.Sprintf("%s in a peaceful, happy ending scene under soft moonlight", protagonist),
	}
}
