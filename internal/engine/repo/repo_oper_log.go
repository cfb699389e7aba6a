package repo

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/database"
)

type IOperLogRepository interface {
	CreateOperLog(operLog *model.OperLog) error
	GetOperLogById(id int64) (*model.OperLog, error)
	ListOperLogs(query *model.OperLogQuery) ([]model.OperLog, int64, error)
	DeleteOperLogs(ids []int64) error
	CleanOperLogs() error
}

type OperLogRepo struct {
	database.IDatabase
}

func NewOperLogRepo(db database.IDatabase) IOperLogRepository {
	return &OperLogRepo{
		IDatabase: db,
	}
}

// CreateOperLog 写入操作日志
func (r *OperLogRepo) CreateOperLog(operLog *model.OperLog) error {
	return r.Database().Create(operLog).Error
}

func (r *OperLogRepo) GetOperLogById(id int64) (*model.OperLog, error) {
	var operLog model.OperLog
	if err := r.Database().Where("id = ?", id).First(&operLog).Error; err != nil {
		return nil, err
	}
	return &operLog, nil
}

// ListOperLogs 操作日志列表（支持分页与时间范围）
func (r *OperLogRepo) ListOperLogs(query *model.OperLogQuery) ([]model.OperLog, int64, error) {
	tx := r.Database().Model(&model.OperLog{})
	if query.Title != "" {
		tx = tx.Where("title LIKE ?", "%"+query.Title+"%")
	}
	if query.Operator != "" {
		tx = tx.Where("operator LIKE ?", "%"+query.Operator+"%")
	}
	if query.BusinessType != "" {
		tx = tx.Where("business_type = ?", query.BusinessType)
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.BeginTime != "" {
		tx = tx.Where("oper_time >= ?", query.BeginTime)
	}
	if query.EndTime != "" {
		tx = tx.Where("oper_time <= ?", query.EndTime)
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var logs []model.OperLog
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("oper_time DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, count, nil
}

// DeleteOperLogs 批量删除操作日志
func (r *OperLogRepo) DeleteOperLogs(ids []int64) error {
	return r.Database().Where("id IN ?", ids).Delete(&model.OperLog{}).Error
}

// CleanOperLogs 清空操作日志
func (r *OperLogRepo) CleanOperLogs() error {
	return r.Database().Exec("TRUNCATE TABLE sys_operation_log").Error
}
