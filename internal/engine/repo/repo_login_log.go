package repo

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/database"
)

type ILoginLogRepository interface {
	CreateLoginLog(loginLog *model.LoginLog) error
	ListLoginLogs(query *model.LoginLogQuery) ([]model.LoginLog, int64, error)
	DeleteLoginLogs(infoIds []int64) error
	CleanLoginLogs() error
}

type LoginLogRepo struct {
	database.IDatabase
}

func NewLoginLogRepo(db database.IDatabase) ILoginLogRepository {
	return &LoginLogRepo{
		IDatabase: db,
	}
}

// CreateLoginLog 写入登录日志
func (r *LoginLogRepo) CreateLoginLog(loginLog *model.LoginLog) error {
	return r.Database().Create(loginLog).Error
}

// ListLoginLogs 登录日志列表（支持分页与时间范围）
func (r *LoginLogRepo) ListLoginLogs(query *model.LoginLogQuery) ([]model.LoginLog, int64, error) {
	tx := r.Database().Model(&model.LoginLog{})
	if query.Username != "" {
		tx = tx.Where("username LIKE ?", "%"+query.Username+"%")
	}
	if query.IpAddr != "" {
		tx = tx.Where("ipaddr LIKE ?", "%"+query.IpAddr+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}
	if query.BeginTime != "" {
		tx = tx.Where("login_time >= ?", query.BeginTime)
	}
	if query.EndTime != "" {
		tx = tx.Where("login_time <= ?", query.EndTime)
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var logs []model.LoginLog
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("login_time DESC").Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, count, nil
}

// DeleteLoginLogs 批量删除登录日志
func (r *LoginLogRepo) DeleteLoginLogs(infoIds []int64) error {
	return r.Database().Where("info_id IN ?", infoIds).Delete(&model.LoginLog{}).Error
}

// CleanLoginLogs 清空登录日志
func (r *LoginLogRepo) CleanLoginLogs() error {
	return r.Database().Exec("TRUNCATE TABLE sys_login_log").Error
}
