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
	// ErrDuplicateApplication 同一个人对同一岗位重复投递
	ErrDuplicateApplication = errors.New("重复的求职申请")
	// ErrStageConflict 阶段CAS失败，说明并发更新或前置状态不满足
	ErrStageConflict = errors.New("申请阶段冲突")
)

// JobApplication 求职申请表，(position_id, email) 唯一。
type JobApplication struct {
	ID         int64 `gorm:"primaryKey;autoIncrement;comment:申请自增ID"`
	DistrictID int64 `gorm:"not null;index:idx_app_district_stage,priority:1;comment:所属学区ID，冗余自岗位"`
	PositionID int64 `gorm:"not null;uniqueIndex:uniq_position_email,priority:1;comment:所属岗位ID"`

	ApplicantName string `gorm:"type:varchar(255);not null;comment:申请人姓名"`
	Email         string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_position_email,priority:2;comment:申请人邮箱"`
	Phone         string `gorm:"type:varchar(63);comment:联系电话"`
	ResumeURL     string `gorm:"type:varchar(511);comment:简历存储地址"`
	CoverLetter   string `gorm:"type:text;comment:求职信"`

	ScreeningAnswers sqlx.JsonColumn[map[string]any] `gorm:"type:json;comment:筛选问题答案"`

	Stage                    string `gorm:"type:varchar(63);not null;default:'Application Review';index:idx_app_district_stage,priority:2;comment:当前阶段"`
	CurrentInterviewStage    int    `gorm:"not null;default:0;comment:当前面试轮次"`
	CompletedInterviewStages int    `gorm:"not null;default:0;comment:已完成的最大面试轮次，只增不减"`
	Active                   bool   `gorm:"not null;default:true;comment:是否仍在流程中"`

	Ctime int64
	Utime int64
}

func (JobApplication) TableName() string {
	return "job_applications"
}

// Reference 申请附带的推荐人。
type Reference struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ApplicationID int64  `gorm:"not null;index:idx_ref_application;comment:所属申请ID"`
	Name          string `gorm:"type:varchar(255);not null;comment:姓名"`
	Relationship  string `gorm:"type:varchar(127);comment:与申请人关系"`
	Email         string `gorm:"type:varchar(255);comment:邮箱"`
	Phone         string `gorm:"type:varchar(63);comment:电话"`
	Ctime         int64
	Utime         int64
}

func (Reference) TableName() string {
	return "application_references"
}

// InterviewAvailability 申请人的可面试时段。
type InterviewAvailability struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	ApplicationID int64  `gorm:"not null;index:idx_avail_application;comment:所属申请ID"`
	Date          string `gorm:"type:varchar(31);not null;comment:日期 YYYY-MM-DD"`
	TimeSlot      string `gorm:"type:varchar(63);comment:时间段"`
	Ctime         int64
}

func (InterviewAvailability) TableName() string {
	return "interview_availabilities"
}

type ApplicationDAO interface {
	Create(ctx context.Context, app JobApplication, refs []Reference, avails []InterviewAvailability) (int64, error)
	FindByID(ctx context.Context, district, id int64) (JobApplication, error)
	List(ctx context.Context, district int64, stage string, offset, limit int) ([]JobApplication, error)
	Count(ctx context.Context, district int64, stage string) (int64, error)
	FindReferences(ctx context.Context, applicationID int64) ([]Reference, error)
	FindAvailability(ctx context.Context, applicationID int64) ([]InterviewAvailability, error)

	// UpdateStage CAS更新：只有当前阶段等于 from 时才写入 to
	UpdateStage(ctx context.Context, district, id int64, from, to string) error
	// SetStage 直接写入阶段，用于Offer接受联动和运营强改
	SetStage(ctx context.Context, district, id int64, stage string) error
	Reject(ctx context.Context, district, id int64) error
	// CompleteInterviewStage 单调推进已完成轮次，取两者较大值
	CompleteInterviewStage(ctx context.Context, district, id int64, stageNumber int) error
	SetCurrentInterviewStage(ctx context.Context, district, id int64, stageNumber int) error
	CountByStage(ctx context.Context, district int64, stage string) (int64, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Create(ctx context.Context, app JobApplication, refs []Reference, avails []InterviewAvailability) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime, app.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			var me *mysql.MySQLError
			if errors.As(err, &me) && me.Number == 1062 {
				return ErrDuplicateApplication
			}
			return err
		}
		for i := range refs {
			refs[i].ApplicationID = app.ID
			refs[i].Ctime, refs[i].Utime = now, now
		}
		if len(refs) > 0 {
			if err := tx.Create(&refs).Error; err != nil {
				return err
			}
		}
		for i := range avails {
			avails[i].ApplicationID = app.ID
			avails[i].Ctime = now
		}
		if len(avails) > 0 {
			if err := tx.Create(&avails).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return app.ID, err
}

func (g *GORMApplicationDAO) FindByID(ctx context.Context, district, id int64) (JobApplication, error) {
	var app JobApplication
	err := g.db.WithContext(ctx).
		Where("id = ? AND district_id = ?", id, district).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) List(ctx context.Context, district int64, stage string, offset, limit int) ([]JobApplication, error) {
	builder := g.db.WithContext(ctx).Where("district_id = ?", district)
	if stage != "" {
		builder = builder.Where("stage = ?", stage)
	}
	var res []JobApplication
	err := builder.Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) Count(ctx context.Context, district int64, stage string) (int64, error) {
	builder := g.db.WithContext(ctx).Model(&JobApplication{}).Where("district_id = ?", district)
	if stage != "" {
		builder = builder.Where("stage = ?", stage)
	}
	var count int64
	err := builder.Count(&count).Error
	return count, err
}

func (g *GORMApplicationDAO) FindReferences(ctx context.Context, applicationID int64) ([]Reference, error) {
	var res []Reference
	err := g.db.WithContext(ctx).
		Where("application_id = ?", applicationID).Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindAvailability(ctx context.Context, applicationID int64) ([]InterviewAvailability, error) {
	var res []InterviewAvailability
	err := g.db.WithContext(ctx).
		Where("application_id = ?", applicationID).Order("date ASC").Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) UpdateStage(ctx context.Context, district, id int64, from, to string) error {
	res := g.db.WithContext(ctx).Model(&JobApplication{}).
		Where("id = ? AND district_id = ? AND stage = ?", id, district, from).
		Updates(map[string]any{
			"stage": to,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStageConflict
	}
	return nil
}

func (g *GORMApplicationDAO) SetStage(ctx context.Context, district, id int64, stage string) error {
	res := g.db.WithContext(ctx).Model(&JobApplication{}).
		Where("id = ? AND district_id = ?", id, district).
		Updates(map[string]any{
			"stage": stage,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMApplicationDAO) Reject(ctx context.Context, district, id int64) error {
	res := g.db.WithContext(ctx).Model(&JobApplication{}).
		Where("id = ? AND district_id = ?", id, district).
		Updates(map[string]any{
			"stage":  "Rejected",
			"active": false,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMApplicationDAO) CompleteInterviewStage(ctx context.Context, district, id int64, stageNumber int) error {
	// GREATEST 保证并发乱序完成时计数只增不减
	res := g.db.WithContext(ctx).Model(&JobApplication{}).
		Where("id = ? AND district_id = ?", id, district).
		Updates(map[string]any{
			"completed_interview_stages": gorm.Expr("GREATEST(completed_interview_stages, ?)", stageNumber),
			"utime":                      time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMApplicationDAO) SetCurrentInterviewStage(ctx context.Context, district, id int64, stageNumber int) error {
	return g.db.WithContext(ctx).Model(&JobApplication{}).
		Where("id = ? AND district_id = ?", id, district).
		Updates(map[string]any{
			"current_interview_stage": stageNumber,
			"utime":                   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMApplicationDAO) CountByStage(ctx context.Context, district int64, stage string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&JobApplication{}).
		Where("district_id = ? AND stage = ?", district, stage).Count(&count).Error
	return count, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&JobApplication{},
		&Reference{},
		&InterviewAvailability{},
	)
}
