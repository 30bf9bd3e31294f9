package story

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"lullaby/internal/model/story"
)

// StoryRepository 故事仓库接口（供 service 层依赖）
// 所有查询和修改都按 userID 隔离：非本人的故事等同于不存在
type StoryRepository interface {
	Create(ctx context.Context, s *story.Story) error
	FindByID(ctx context.Context, id, userID string) (*story.Story, error)
	FindByUserID(ctx context.Context, userID string) ([]*story.Story, error)
	UpdateRating(ctx context.Context, id, userID string, rating int) error
	Delete(ctx context.Context, id, userID string) error
}

// StoryRepo 故事仓库
type StoryRepo struct {
	coll *mongo.Collection
}

// NewStoryRepo 创建故事仓库
func NewStoryRepo(db *mongo.Database) *StoryRepo {
	var s story.Story
	return &StoryRepo{coll: db.Collection(s.Collection())}
}

// Create 创建故事
func (r *StoryRepo) Create(ctx context.Context, s *story.Story) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, s)
	return err
}

// FindByID 根据ID查询（按用户隔离）
func (r *StoryRepo) FindByID(ctx context.Context, id, userID string) (*story.Story, error) {
	var s story.Story
	if err := r.coll.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByUserID 查询用户的所有故事（按创建时间倒序）
func (r *StoryRepo) FindByUserID(ctx context.Context, userID string) ([]*story.Story, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var stories []*story.Story
	if err := cur.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

// UpdateRating 更新评分（单字段更新，后写覆盖先写，不保留历史）
// 没有匹配的文档时返回 mongo.ErrNoDocuments
func (r *StoryRepo) UpdateRating(ctx context.Context, id, userID string, rating int) error {
	update := bson.M{"$set": bson.M{"rating": rating, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id, "user_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete 删除故事（硬删除，无软删除和恢复）
// 没有匹配的文档时返回 mongo.ErrNoDocuments
func (r *StoryRepo) Delete(ctx context.Context, id, userID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
