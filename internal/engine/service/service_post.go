package service

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/pkg/errors"
)

type PostService struct {
	postRepo repo.IPostRepository
}

func NewPostService(postRepo repo.IPostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

// CreatePost 创建岗位
func (ps *PostService) CreatePost(post *model.Post) error {
	unique, err := ps.postRepo.CheckPostCodeUnique(post.PostCode, 0)
	if err != nil {
		return err
	}
	if !unique {
		return errors.Errorf("post code %s already exists", post.PostCode)
	}
	return ps.postRepo.CreatePost(post)
}

// UpdatePost 更新岗位
func (ps *PostService) UpdatePost(postId int64, updates map[string]any) error {
	if postCode, ok := updates["post_code"].(string); ok {
		unique, err := ps.postRepo.CheckPostCodeUnique(postCode, postId)
		if err != nil {
			return err
		}
		if !unique {
			return errors.Errorf("post code %s already exists", postCode)
		}
	}
	return ps.postRepo.UpdatePost(postId, updates)
}

// DeletePosts 批量删除岗位，被用户持有时拒绝
func (ps *PostService) DeletePosts(postIds []int64) error {
	count, err := ps.postRepo.CountUserBindings(postIds)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("post is assigned to users")
	}
	return ps.postRepo.DeletePosts(postIds)
}
