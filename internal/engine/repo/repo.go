// Copyright 2025 Atlas Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repo

import (
	"github.com/go-atlas/atlas/pkg/cache"
	"github.com/go-atlas/atlas/pkg/database"
	"gorm.io/gorm"
)

// Repositories 统一管理所有 repository
type Repositories struct {
	User     IUserRepository
	Role     IRoleRepository
	Menu     IMenuRepository
	Dept     IDeptRepository
	Post     IPostRepository
	Dict     IDictRepository
	Config   IConfigRepository
	Notice   INoticeRepository
	OperLog  IOperLogRepository
	LoginLog ILoginLogRepository
}

// NewRepositories 初始化所有 repository
func NewRepositories(db database.IDatabase, cache cache.ICache) *Repositories {
	return &Repositories{
		User:     NewUserRepo(db),
		Role:     NewRoleRepo(db),
		Menu:     NewMenuRepo(db),
		Dept:     NewDeptRepo(db),
		Post:     NewPostRepo(db),
		Dict:     NewDictRepo(db),
		Config:   NewConfigRepo(db, cache),
		Notice:   NewNoticeRepo(db),
		OperLog:  NewOperLogRepo(db),
		LoginLog: NewLoginLogRepo(db),
	}
}

func Count(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// paginate 统一分页，pageNum 从 1 开始
func paginate(tx *gorm.DB, pageNum, pageSize int) *gorm.DB {
	if pageNum <= 0 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return tx.Offset((pageNum - 1) * pageSize).Limit(pageSize)
}
