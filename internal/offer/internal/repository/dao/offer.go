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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 状态CAS失败：并发操作或前置状态不满足
	ErrStatusConflict = errors.New("Offer状态冲突")
	// ErrDuplicateOffer 一个申请最多一个Offer
	ErrDuplicateOffer = errors.New("该申请已有Offer")
)

// Offer 录用通知表，application_id 唯一，sn 是对外凭证。
type Offer struct {
	ID            int64  `gorm:"primaryKey;autoIncrement;comment:Offer自增ID"`
	SN            string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_offer_sn;comment:对外的不透明编号"`
	DistrictID    int64  `gorm:"not null;index:idx_offer_district_status,priority:1;comment:所属学区ID，冗余自申请"`
	ApplicationID int64  `gorm:"not null;uniqueIndex:uniq_offer_application;comment:所属申请ID，1对1"`
	TemplateID    int64  `gorm:"comment:创建时使用的模板ID"`

	TemplateText string                          `gorm:"type:text;not null;comment:模板文本快照"`
	TemplateData sqlx.JsonColumn[map[string]any] `gorm:"type:json;comment:占位符取值"`

	Salary         string `gorm:"type:varchar(127);comment:薪资"`
	PositionTitle  string `gorm:"type:varchar(255);comment:岗位名称"`
	OfferDate      int64  `gorm:"comment:发出日期"`
	StartDate      int64  `gorm:"comment:入职日期"`
	ExpirationDate int64  `gorm:"not null;index:idx_offer_expiration;comment:过期日期"`

	Status         string `gorm:"type:ENUM('Pending','Accepted','Declined','Expired','Withdrawn');not null;default:'Pending';index:idx_offer_district_status,priority:2;comment:Offer状态"`
	AcceptedDate   int64  `gorm:"comment:接受时间"`
	DeclinedReason string `gorm:"type:text;comment:拒绝原因"`

	Ctime int64
	Utime int64
}

func (Offer) TableName() string {
	return "offers"
}

// OfferTemplate 信函模板表。
type OfferTemplate struct {
	ID           int64  `gorm:"primaryKey;autoIncrement;comment:模板自增ID"`
	DistrictID   int64  `gorm:"not null;index:idx_tpl_district;comment:所属学区ID"`
	Name         string `gorm:"type:varchar(255);not null;comment:模板名称"`
	TemplateText string `gorm:"type:text;not null;comment:模板文本"`
	Ctime        int64
	Utime        int64
}

func (OfferTemplate) TableName() string {
	return "offer_templates"
}

// HiredEmployee 录用员工表，offer_id 和 application_id 都唯一。
type HiredEmployee struct {
	ID            int64  `gorm:"primaryKey;autoIncrement;comment:自增ID"`
	DistrictID    int64  `gorm:"not null;index:idx_hired_district;comment:所属学区ID"`
	OfferID       int64  `gorm:"not null;uniqueIndex:uniq_hired_offer;comment:来源OfferID"`
	ApplicationID int64  `gorm:"not null;uniqueIndex:uniq_hired_application;comment:来源申请ID"`
	Name          string `gorm:"type:varchar(255);not null;comment:姓名"`
	Email         string `gorm:"type:varchar(255);not null;comment:邮箱"`
	PositionTitle string `gorm:"type:varchar(255);comment:岗位名称"`
	HireDate      int64  `gorm:"not null;comment:入职日期，等于Offer的入职日期"`
	Ctime         int64
}

func (HiredEmployee) TableName() string {
	return "hired_employees"
}

type OfferDAO interface {
	Create(ctx context.Context, offer Offer) (int64, error)
	FindByID(ctx context.Context, district, id int64) (Offer, error)
	FindBySN(ctx context.Context, sn string) (Offer, error)
	FindByApplication(ctx context.Context, district, applicationID int64) (Offer, error)
	List(ctx context.Context, district int64, status string, offset, limit int) ([]Offer, error)
	Count(ctx context.Context, district int64, status string) (int64, error)

	// Accept CAS接受：Pending->Accepted 和 HiredEmployee 的创建在同一事务里，
	// 并发接受最多一个成功，HiredEmployee 最多一行
	Accept(ctx context.Context, offerID int64, acceptedAt int64, hired HiredEmployee) error
	// Decline CAS拒绝：仅 Pending 可拒绝
	Decline(ctx context.Context, offerID int64, reason string) error
	// Withdraw CAS撤回：仅 Pending 可撤回
	Withdraw(ctx context.Context, district, offerID int64) error
	// MarkExpired 惰性过期落库：仅 Pending 且已过期时写入
	MarkExpired(ctx context.Context, offerID int64, deadline int64) error

	// FindExpiring Pending 且过期日期落在区间内的Offer
	FindExpiring(ctx context.Context, district, from, to int64) ([]Offer, error)
	// FindExpired 全库维度查出已过期但仍 Pending 的Offer，给定时巡检用
	FindExpired(ctx context.Context, deadline int64, limit int) ([]Offer, error)
	CountByStatus(ctx context.Context, district int64, status string) (int64, error)

	CreateTemplate(ctx context.Context, t OfferTemplate) (int64, error)
	FindTemplate(ctx context.Context, district, id int64) (OfferTemplate, error)
	ListTemplates(ctx context.Context, district int64) ([]OfferTemplate, error)

	FindHired(ctx context.Context, district int64, offset, limit int) ([]HiredEmployee, error)
	CountHired(ctx context.Context, district int64) (int64, error)
}

type GORMOfferDAO struct {
	db *egorm.Component
}

func NewGORMOfferDAO(db *egorm.Component) OfferDAO {
	return &GORMOfferDAO{db: db}
}

func (g *GORMOfferDAO) Create(ctx context.Context, offer Offer) (int64, error) {
	now := time.Now().UnixMilli()
	offer.Ctime, offer.Utime = now, now
	err := g.db.WithContext(ctx).Create(&offer).Error
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == 1062 {
			return 0, ErrDuplicateOffer
		}
		return 0, err
	}
	return offer.ID, nil
}

func (g *GORMOfferDAO) FindByID(ctx context.Context, district, id int64) (Offer, error) {
	var offer Offer
	err := g.db.WithContext(ctx).
		Where("id = ? AND district_id = ?", id, district).First(&offer).Error
	return offer, err
}

func (g *GORMOfferDAO) FindBySN(ctx context.Context, sn string) (Offer, error) {
	var offer Offer
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&offer).Error
	return offer, err
}

func (g *GORMOfferDAO) FindByApplication(ctx context.Context, district, applicationID int64) (Offer, error) {
	var offer Offer
	err := g.db.WithContext(ctx).
		Where("application_id = ? AND district_id = ?", applicationID, district).
		First(&offer).Error
	return offer, err
}

func (g *GORMOfferDAO) List(ctx context.Context, district int64, status string, offset, limit int) ([]Offer, error) {
	builder := g.db.WithContext(ctx).Where("district_id = ?", district)
	if status != "" {
		builder = builder.Where("status = ?", status)
	}
	var res []Offer
	err := builder.Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMOfferDAO) Count(ctx context.Context, district int64, status string) (int64, error) {
	builder := g.db.WithContext(ctx).Model(&Offer{}).Where("district_id = ?", district)
	if status != "" {
		builder = builder.Where("status = ?", status)
	}
	var count int64
	err := builder.Count(&count).Error
	return count, err
}

func (g *GORMOfferDAO) Accept(ctx context.Context, offerID int64, acceptedAt int64, hired HiredEmployee) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Offer{}).
			Where("id = ? AND status = ?", offerID, "Pending").
			Updates(map[string]any{
				"status":        "Accepted",
				"accepted_date": acceptedAt,
				"utime":         acceptedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		// CAS失败说明另一个并发接受已经成功，或者Offer已不在Pending
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		hired.OfferID = offerID
		hired.Ctime = acceptedAt
		return tx.Create(&hired).Error
	})
}

func (g *GORMOfferDAO) Decline(ctx context.Context, offerID int64, reason string) error {
	res := g.db.WithContext(ctx).Model(&Offer{}).
		Where("id = ? AND status = ?", offerID, "Pending").
		Updates(map[string]any{
			"status":          "Declined",
			"declined_reason": reason,
			"utime":           time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMOfferDAO) Withdraw(ctx context.Context, district, offerID int64) error {
	res := g.db.WithContext(ctx).Model(&Offer{}).
		Where("id = ? AND district_id = ? AND status = ?", offerID, district, "Pending").
		Updates(map[string]any{
			"status": "Withdrawn",
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMOfferDAO) MarkExpired(ctx context.Context, offerID int64, deadline int64) error {
	// 过期落库也走CAS，输给并发的接受/拒绝时放弃
	return g.db.WithContext(ctx).Model(&Offer{}).
		Where("id = ? AND status = ? AND expiration_date < ?", offerID, "Pending", deadline).
		Updates(map[string]any{
			"status": "Expired",
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *GORMOfferDAO) FindExpiring(ctx context.Context, district, from, to int64) ([]Offer, error) {
	var res []Offer
	err := g.db.WithContext(ctx).
		Where("district_id = ? AND status = ? AND expiration_date >= ? AND expiration_date <= ?",
			district, "Pending", from, to).
		Order("expiration_date ASC").Find(&res).Error
	return res, err
}

func (g *GORMOfferDAO) FindExpired(ctx context.Context, deadline int64, limit int) ([]Offer, error) {
	var res []Offer
	err := g.db.WithContext(ctx).
		Where("status = ? AND expiration_date < ?", "Pending", deadline).
		Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMOfferDAO) CountByStatus(ctx context.Context, district int64, status string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Offer{}).
		Where("district_id = ? AND status = ?", district, status).Count(&count).Error
	return count, err
}

func (g *GORMOfferDAO) CreateTemplate(ctx context.Context, t OfferTemplate) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime, t.Utime = now, now
	err := g.db.WithContext(ctx).Create(&t).Error
	return t.ID, err
}

func (g *GORMOfferDAO) FindTemplate(ctx context.Context, district, id int64) (OfferTemplate, error) {
	var t OfferTemplate
	err := g.db.WithContext(ctx).
		Where("id = ? AND district_id = ?", id, district).First(&t).Error
	return t, err
}

func (g *GORMOfferDAO) ListTemplates(ctx context.Context, district int64) ([]OfferTemplate, error) {
	var res []OfferTemplate
	err := g.db.WithContext(ctx).
		Where("district_id = ?", district).Order("name ASC").Find(&res).Error
	return res, err
}

func (g *GORMOfferDAO) FindHired(ctx context.Context, district int64, offset, limit int) ([]HiredEmployee, error) {
	var res []HiredEmployee
	err := g.db.WithContext(ctx).
		Where("district_id = ?", district).
		Order("hire_date DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMOfferDAO) CountHired(ctx context.Context, district int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&HiredEmployee{}).
		Where("district_id = ?", district).Count(&count).Error
	return count, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Offer{},
		&OfferTemplate{},
		&HiredEmployee{},
	)
}
