package story

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Genre 故事题材
type Genre string

const (
	GenreFantasy   Genre = "fantasy"     // 奇幻
	GenreSciFi     Genre = "sci-fi"      // 科幻
	GenreAnimals   Genre = "animals"     // 动物
	GenreSuperhero Genre = "superheroes" // 超级英雄
	GenreCalming   Genre = "calming"     // 安抚助眠
)

// IsValid 检查题材是否有效
func (g Genre) IsValid() bool {
	switch g {
	case GenreFantasy, GenreSciFi, GenreAnimals, GenreSuperhero, GenreCalming:
		return true
	}
	return false
}

// String 返回题材字符串
func (g Genre) String() string {
	return string(g)
}

// Illustration 插图
// URL 要么是图片服务返回的真实链接，要么是编码了场景描述的占位图链接；
// 顺序与故事情节一致，创建后不再调整
type Illustration struct {
	URL   string `bson:"url" json:"url"`     // 图片链接
	Scene string `bson:"scene" json:"scene"` // 场景描述（用于生成该图的提示词）
}

// Story 故事实体
// 由生成流水线一次性创建；创建后只有 rating 可变，正文和插图不可变
type Story struct {
	ID string `bson:"_id,omitempty" json:"id"` // 故事ID（UUID）

	UserID string `bson:"user_id" json:"user_id"` // 所属用户，所有读写都按该字段隔离

	Title     string `bson:"title" json:"title"`
	Genre     Genre  `bson:"genre" json:"genre"`
	Theme     string `bson:"theme,omitempty" json:"theme,omitempty"`           // 希望传达的主题（可选）
	Context   string `bson:"context,omitempty" json:"context,omitempty"`       // 孩子当天的生活片段（可选）
	ChildName string `bson:"child_name,omitempty" json:"child_name,omitempty"` // 孩子的名字（可选）

	Content       string         `bson:"content" json:"content"`             // 故事正文
	Illustrations []Illustration `bson:"illustrations" json:"illustrations"` // 插图（0-5张，按情节顺序）

	ReadingTime int  `bson:"reading_time" json:"reading_time"`         // 阅读时长估计（分钟，固定值）
	Rating      *int `bson:"rating,omitempty" json:"rating,omitempty"` // 评分 1-5（可选，创建后可更新）

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Collection 返回集合名称
func (s *Story) Collection() string { return "stories" }

// EnsureIndexes 创建和维护索引
func (s *Story) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(s.Collection())
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_user_created"),
		},
		{
			Keys:    bson.D{{Key: "genre", Value: 1}},
			Options: options.Index().SetName("idx_genre"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}
