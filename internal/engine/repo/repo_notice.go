package repo

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/database"
)

type INoticeRepository interface {
	CreateNotice(notice *model.Notice) error
	GetNoticeById(noticeId int64) (*model.Notice, error)
	ListNotices(query *model.NoticeQuery) ([]model.Notice, int64, error)
	UpdateNotice(noticeId int64, updates map[string]any) error
	DeleteNotices(noticeIds []int64) error
}

type NoticeRepo struct {
	database.IDatabase
}

func NewNoticeRepo(db database.IDatabase) INoticeRepository {
	return &NoticeRepo{
		IDatabase: db,
	}
}

// CreateNotice 创建通知公告
func (r *NoticeRepo) CreateNotice(notice *model.Notice) error {
	return r.Database().Create(notice).Error
}

func (r *NoticeRepo) GetNoticeById(noticeId int64) (*model.Notice, error) {
	var notice model.Notice
	if err := r.Database().Where("notice_id = ?", noticeId).First(&notice).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

// ListNotices 通知公告列表（支持分页）
func (r *NoticeRepo) ListNotices(query *model.NoticeQuery) ([]model.Notice, int64, error) {
	tx := r.Database().Model(&model.Notice{})
	if query.NoticeTitle != "" {
		tx = tx.Where("notice_title LIKE ?", "%"+query.NoticeTitle+"%")
	}
	if query.NoticeType != "" {
		tx = tx.Where("notice_type = ?", query.NoticeType)
	}
	if query.CreateBy != "" {
		tx = tx.Where("create_by LIKE ?", "%"+query.CreateBy+"%")
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var notices []model.Notice
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("notice_id DESC").Find(&notices).Error; err != nil {
		return nil, 0, err
	}
	return notices, count, nil
}

// UpdateNotice 更新通知公告
func (r *NoticeRepo) UpdateNotice(noticeId int64, updates map[string]any) error {
	return r.Database().Model(&model.Notice{}).Where("notice_id = ?", noticeId).Updates(updates).Error
}

// DeleteNotices 批量删除通知公告
func (r *NoticeRepo) DeleteNotices(noticeIds []int64) error {
	return r.Database().Where("notice_id IN ?", noticeIds).Delete(&model.Notice{}).Error
}
