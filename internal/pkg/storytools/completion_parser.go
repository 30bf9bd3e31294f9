package storytools

import (
	"fmt"
	"regexp"
	"strings"

	"lullaby/internal/model/story"
)

const (
	// MinSceneLength 场景描述的最小长度，低于该长度的片段视为解析噪音丢弃
	MinSceneLength = 20
	// MaxScenes 每个故事最多保留的场景数
	MaxScenes = 5
)

var (
	// TITLE: 之后到换行、STORY: 标记或文本结束为止；大小写不敏感。
	// 标记后的空白用 \s* 吞掉，标题出现在标记下一行时也能解析
	titleRe = regexp.MustCompile(`(?i)TITLE:\s*(.+?)(?:\n|STORY:|$)`)
	// STORY: 到文本结束；(?s) 让 . 跨行匹配
	contentRe = regexp.MustCompile(`(?is)STORY:\s*(.+)`)
	// SCENE 标记，编号可选（SCENE 1: / SCENE: / scene 3:）
	sceneMarkerRe = regexp.MustCompile(`(?i)SCENE\s*\d*:`)
)

// StoryText 标题和正文的解析结果
// 带标记的结果：调用方可以区分"模型按格式输出"和"兜底合成"
type StoryText struct {
	Title         string
	Content       string
	TitleParsed   bool // 标题是否来自 TITLE: 标记
	ContentParsed bool // 正文是否来自 STORY: 标记
}

// SceneSet 场景提取结果
type SceneSet struct {
	Scenes       []string
	FallbackUsed bool // 是否使用了兜底场景
}

// CompletionParser 模型输出解析器
// 纯文本分段逻辑，不访问网络和存储；解析失败永远走兜底而不是报错
type CompletionParser struct{}

// NewCompletionParser 创建模型输出解析器实例
func NewCompletionParser() *CompletionParser {
	return &CompletionParser{}
}

// ParseStoryText 从第一次补全中提取标题和正文
// 标题缺失时兜底为 "A {genre} Adventure"，正文缺失时兜底为原始补全全文
func (p *CompletionParser) ParseStoryText(completion string, genre story.Genre) StoryText {
	result := StoryText{
		Title:   fmt.Sprintf("A %s Adventure", genre),
		Content: strings.TrimSpace(completion),
	}

	if m := titleRe.FindStringSubmatch(completion); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			result.Title = title
			result.TitleParsed = true
		}
	}

	if m := contentRe.FindStringSubmatch(completion); m != nil {
		if content := strings.TrimSpace(m[1]); content != "" {
			result.Content = content
			result.ContentParsed = true
		}
	}

	return result
}

// ExtractScenes 从第二次补全中提取场景描述
// 按 SCENE 标记切分：每段从标记结束到下一个标记（或文本结束）为止；
// 丢弃短于 MinSceneLength 的片段，按出现顺序最多保留 MaxScenes 个。
// 一个都没解析出来时，使用按主角和题材参数化的固定兜底场景（不是错误）
func (p *CompletionParser) ExtractScenes(completion string, protagonist string, genre story.Genre) SceneSet {
	var scenes []string

	markers := sceneMarkerRe.FindAllStringIndex(completion, -1)
	for i, marker := range markers {
		end := len(completion)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		segment := strings.TrimSpace(completion[marker[1]:end])
		if len(segment) < MinSceneLength {
			continue
		}

		scenes = append(scenes, segment)
		if len(scenes) == MaxScenes {
			break
		}
	}

	if len(scenes) == 0 {
		return SceneSet{
			Scenes:       NewStoryPromptBuilder().FallbackScenes(protagonist, genre),
			FallbackUsed: true,
		}
	}

	return SceneSet{Scenes: scenes}
}
