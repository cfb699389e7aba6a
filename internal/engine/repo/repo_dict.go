package repo

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/pkg/database"
	"gorm.io/gorm"
)

type IDictRepository interface {
	CreateDictType(dictType *model.DictType) error
	GetDictTypeById(dictId int64) (*model.DictType, error)
	GetDictTypeByType(dictType string) (*model.DictType, error)
	ListDictTypes(query *model.DictTypeQuery) ([]model.DictType, int64, error)
	ListAllDictTypes() ([]model.DictType, error)
	UpdateDictType(dictId int64, updates map[string]any) error
	DeleteDictTypes(dictIds []int64) error
	CheckDictTypeUnique(dictType string, excludeDictId int64) (bool, error)

	CreateDictData(dictData *model.DictData) error
	GetDictDataById(dictCode int64) (*model.DictData, error)
	ListDictDatas(query *model.DictDataQuery) ([]model.DictData, int64, error)
	ListDictDatasByType(dictType string) ([]model.DictData, error)
	UpdateDictData(dictCode int64, updates map[string]any) error
	DeleteDictDatas(dictCodes []int64) error
	CountDataByType(dictType string) (int64, error)
}

type DictRepo struct {
	database.IDatabase
}

func NewDictRepo(db database.IDatabase) IDictRepository {
	return &DictRepo{
		IDatabase: db,
	}
}

// CreateDictType 创建字典类型
func (r *DictRepo) CreateDictType(dictType *model.DictType) error {
	return r.Database().Create(dictType).Error
}

func (r *DictRepo) GetDictTypeById(dictId int64) (*model.DictType, error) {
	var dt model.DictType
	if err := r.Database().Where("dict_id = ?", dictId).First(&dt).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

func (r *DictRepo) GetDictTypeByType(dictType string) (*model.DictType, error) {
	var dt model.DictType
	if err := r.Database().Where("dict_type = ?", dictType).First(&dt).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

// ListDictTypes 字典类型列表（支持分页）
func (r *DictRepo) ListDictTypes(query *model.DictTypeQuery) ([]model.DictType, int64, error) {
	tx := r.Database().Model(&model.DictType{})
	if query.DictName != "" {
		tx = tx.Where("dict_name LIKE ?", "%"+query.DictName+"%")
	}
	if query.DictType != "" {
		tx = tx.Where("dict_type LIKE ?", "%"+query.DictType+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var types []model.DictType
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("dict_id ASC").Find(&types).Error; err != nil {
		return nil, 0, err
	}
	return types, count, nil
}

func (r *DictRepo) ListAllDictTypes() ([]model.DictType, error) {
	var types []model.DictType
	err := r.Database().Order("dict_id ASC").Find(&types).Error
	return types, err
}

// UpdateDictType 更新字典类型，类型值变更时级联更新字典数据
func (r *DictRepo) UpdateDictType(dictId int64, updates map[string]any) error {
	return r.Database().Transaction(func(tx *gorm.DB) error {
		var old model.DictType
		if err := tx.Where("dict_id = ?", dictId).First(&old).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.DictType{}).Where("dict_id = ?", dictId).Updates(updates).Error; err != nil {
			return err
		}
		if newType, ok := updates["dict_type"].(string); ok && newType != old.DictType {
			if err := tx.Model(&model.DictData{}).Where("dict_type = ?", old.DictType).
				Update("dict_type", newType).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteDictTypes 批量删除字典类型
func (r *DictRepo) DeleteDictTypes(dictIds []int64) error {
	return r.Database().Where("dict_id IN ?", dictIds).Delete(&model.DictType{}).Error
}

// CheckDictTypeUnique 校验字典类型唯一性
func (r *DictRepo) CheckDictTypeUnique(dictType string, excludeDictId int64) (bool, error) {
	tx := r.Database().Model(&model.DictType{}).Where("dict_type = ?", dictType)
	if excludeDictId != 0 {
		tx = tx.Where("dict_id <> ?", excludeDictId)
	}
	count, err := Count(tx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateDictData 创建字典数据
func (r *DictRepo) CreateDictData(dictData *model.DictData) error {
	return r.Database().Create(dictData).Error
}

func (r *DictRepo) GetDictDataById(dictCode int64) (*model.DictData, error) {
	var dd model.DictData
	if err := r.Database().Where("dict_code = ?", dictCode).First(&dd).Error; err != nil {
		return nil, err
	}
	return &dd, nil
}

// ListDictDatas 字典数据列表（支持分页）
func (r *DictRepo) ListDictDatas(query *model.DictDataQuery) ([]model.DictData, int64, error) {
	tx := r.Database().Model(&model.DictData{})
	if query.DictType != "" {
		tx = tx.Where("dict_type = ?", query.DictType)
	}
	if query.DictLabel != "" {
		tx = tx.Where("dict_label LIKE ?", "%"+query.DictLabel+"%")
	}
	if query.Status != "" {
		tx = tx.Where("status = ?", query.Status)
	}

	count, err := Count(tx)
	if err != nil {
		return nil, 0, err
	}

	var datas []model.DictData
	if err := paginate(tx, query.PageNum, query.PageSize).
		Order("dict_sort ASC").Find(&datas).Error; err != nil {
		return nil, 0, err
	}
	return datas, count, nil
}

// ListDictDatasByType 按类型取启用状态的字典数据，前端下拉用
func (r *DictRepo) ListDictDatasByType(dictType string) ([]model.DictData, error) {
	var datas []model.DictData
	err := r.Database().Where("dict_type = ? AND status = ?", dictType, model.StatusNormal).
		Order("dict_sort ASC").Find(&datas).Error
	return datas, err
}

// UpdateDictData 更新字典数据
func (r *DictRepo) UpdateDictData(dictCode int64, updates map[string]any) error {
	return r.Database().Model(&model.DictData{}).Where("dict_code = ?", dictCode).Updates(updates).Error
}

// DeleteDictDatas 批量删除字典数据
func (r *DictRepo) DeleteDictDatas(dictCodes []int64) error {
	return r.Database().Where("dict_code IN ?", dictCodes).Delete(&model.DictData{}).Error
}

// CountDataByType 统计类型下的字典数据量，删除类型前校验
func (r *DictRepo) CountDataByType(dictType string) (int64, error) {
	return Count(r.Database().Model(&model.DictData{}).Where("dict_type = ?", dictType))
}
