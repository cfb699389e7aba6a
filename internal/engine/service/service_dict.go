package service

import (
	"github.com/go-atlas/atlas/internal/engine/model"
	"github.com/go-atlas/atlas/internal/engine/repo"
	"github.com/pkg/errors"
)

type DictService struct {
	dictRepo repo.IDictRepository
}

func NewDictService(dictRepo repo.IDictRepository) *DictService {
	return &DictService{
		dictRepo: dictRepo,
	}
}

// CreateDictType 创建字典类型
func (ds *DictService) CreateDictType(dictType *model.DictType) error {
	unique, err := ds.dictRepo.CheckDictTypeUnique(dictType.DictType, 0)
	if err != nil {
		return err
	}
	if !unique {
		return errors.Errorf("dict type %s already exists", dictType.DictType)
	}
	return ds.dictRepo.CreateDictType(dictType)
}

// UpdateDictType 更新字典类型
func (ds *DictService) UpdateDictType(dictId int64, updates map[string]any) error {
	if dictType, ok := updates["dict_type"].(string); ok {
		unique, err := ds.dictRepo.CheckDictTypeUnique(dictType, dictId)
		if err != nil {
			return err
		}
		if !unique {
			return errors.Errorf("dict type %s already exists", dictType)
		}
	}
	return ds.dictRepo.UpdateDictType(dictId, updates)
}

// DeleteDictTypes 批量删除字典类型，类型下仍有数据时拒绝
func (ds *DictService) DeleteDictTypes(dictIds []int64) error {
	for _, dictId := range dictIds {
		dt, err := ds.dictRepo.GetDictTypeById(dictId)
		if err != nil {
			return err
		}
		count, err := ds.dictRepo.CountDataByType(dt.DictType)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.Errorf("dict type %s still has data", dt.DictType)
		}
	}
	return ds.dictRepo.DeleteDictTypes(dictIds)
}

// CreateDictData 创建字典数据
func (ds *DictService) CreateDictData(dictData *model.DictData) error {
	return ds.dictRepo.CreateDictData(dictData)
}

// UpdateDictData 更新字典数据
func (ds *DictService) UpdateDictData(dictCode int64, updates map[string]any) error {
	return ds.dictRepo.UpdateDictData(dictCode, updates)
}

// DeleteDictDatas 批量删除字典数据
func (ds *DictService) DeleteDictDatas(dictCodes []int64) error {
	return ds.dictRepo.DeleteDictDatas(dictCodes)
}
