package repo

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/database"
)

type IPostRepository interface {
	CreatePost(post *model.Post) error
	GetPostById(postId int64) (*model.Post, error)
	ListPosts(query *model.PostQuery) ([]model.Post, int64, error)
	ListAllPosts() ([]model.Post, error)
	UpdatePost(postId int64, updates map[string]any) error
	DeletePosts(postIds []int64) error
	CountUserBindings(postIds []int64) (int64, error)
	CheckPostCodeUnique(postCode string, excludePostId int64) (bool, error)
}

type PostRepo struct {
	database.IDatabase
}

func NewPostRepo(db database.IDatabase) IPostRepository {
	return &PostRepo{
		IDatabase: db,
	}
}

// CreatePost 创建岗位
func (r *PostRepo) CreatePost(post *model.Post) error {
	return r.Database().Create(post).Error
}

// GetPostById 根据ID获取岗位
func (r *PostRepo) GetPostById(postId int64) (*model.Post, error) {
	var post model.Post
	if err := r.Database().Where("post_id = ?", postId).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ListPosts 岗位列表（支持分页）
func (r *PostRepo) ListPosts(query *model.PostQuery) ([]model.Post, int64, error) {
	tx := r.Database().Model(&model.Post{})
	if query.PostName != "" {
		tx = tx.Where("post_name LIKE ?", "%"+query.PostName+"%")
	}
	if query.PostCode != "" {
		tx = tx.Where("post_code LIKE ?", "%"+query.PostCode+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var posts []model.Post
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("post_sort ASC").Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, count, nil
}

// ListAllPosts 全量岗位，用于下拉选择
func (r *PostRepo) ListAllPosts() ([]model.Post, error) {
	var posts []model.Post
	err := r.Database().Order("post_sort ASC").Find(&posts).Error
	return posts, err
}

// UpdatePost 更新岗位
func (r *PostRepo) UpdatePost(postId int64, updates map[string]any) error {
	return r.Database().Model(&model.Post{}).Where("post_id = ?", postId).Updates(updates).Error
}

// DeletePosts 批量删除岗位
func (r *PostRepo) DeletePosts(postIds []int64) error {
	return r.Database().Where("post_id IN ?", postIds).Delete(&model.Post{}).Error
}

// CountUserBindings 统计岗位被多少用户持有，删除前校验
func (r *PostRepo) CountUserBindings(postIds []int64) (int64, error) {
	return Count(r.Database().Model(&model.UserPost{}).Where("post_id IN ?", postIds))
}

// CheckPostCodeUnique 校验岗位编码唯一性
func (r *PostRepo) CheckPostCodeUnique(postCode string, excludePostId int64) (bool, error) {
	tx := r.Database().Model(&model.Post{}).Where("post_code = ?", postCode)
	if excludePostId != 0 {
		tx = tx.Where("post_id <> ?", excludePostId)
	}
	count, err := Count(tx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
