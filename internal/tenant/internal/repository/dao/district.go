// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

// District 学区表，租户隔离的根。
type District struct {
	ID           int64                         `gorm:"primaryKey;autoIncrement;comment:学区自增ID"`
	Name         string                        `gorm:"type:varchar(255);not null;uniqueIndex:uniq_district_name;comment:学区名称"`
	Code         string                        `gorm:"type:varchar(63);not null;uniqueIndex:uniq_district_code;comment:学区短代码，例如 district-308"`
	ContactEmail string                        `gorm:"type:varchar(255);comment:联系邮箱"`
	ContactPhone string                        `gorm:"type:varchar(31);comment:联系电话"`
	Address      string                        `gorm:"type:text;comment:地址"`
	Settings     sqlx.JsonColumn[map[string]any] `gorm:"type:json;comment:学区级配置JSON"`
	Active       bool                          `gorm:"not null;default:true;index:idx_district_active;comment:是否启用"`
	Ctime        int64
	Utime        int64
}

func (District) TableName() string {
	return "districts"
}

type DistrictDAO interface {
	Create(ctx context.Context, d District) (int64, error)
	FindByID(ctx context.Context, id int64) (District, error)
	// FindActive 只返回启用状态的学区，租户校验走这个方法
	FindActive(ctx context.Context, id int64) (District, error)
	List(ctx context.Context, offset, limit int) ([]District, error)
	Count(ctx context.Context) (int64, error)
}

type GORMDistrictDAO struct {
	db *egorm.Component
}

func NewGORMDistrictDAO(db *egorm.Component) DistrictDAO {
	return &GORMDistrictDAO{db: db}
}

func (g *GORMDistrictDAO) Create(ctx context.Context, d District) (int64, error) {
	now := time.Now().UnixMilli()
	d.Ctime = now
	d.Utime = now
	err := g.db.WithContext(ctx).Create(&d).Error
	return d.ID, err
}

func (g *GORMDistrictDAO) FindByID(ctx context.Context, id int64) (District, error) {
	var d District
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	return d, err
}

func (g *GORMDistrictDAO) FindActive(ctx context.Context, id int64) (District, error) {
	var d District
	err := g.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&d).Error
	return d, err
}

func (g *GORMDistrictDAO) List(ctx context.Context, offset, limit int) ([]District, error) {
	var res []District
	err := g.db.WithContext(ctx).Order("name ASC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMDistrictDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&District{}).Count(&count).Error
	return count, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&District{})
}
