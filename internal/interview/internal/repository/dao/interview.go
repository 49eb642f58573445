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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 状态CAS失败
	ErrStatusConflict = errors.New("面试状态冲突")
)

// Interview 面试表。
type Interview struct {
	ID            int64 `gorm:"primaryKey;autoIncrement;comment:面试自增ID"`
	DistrictID    int64 `gorm:"not null;index:idx_itv_district_date,priority:1;comment:所属学区ID，冗余自申请"`
	ApplicationID int64 `gorm:"not null;index:idx_itv_application;comment:所属申请ID"`
	StageID       int64 `gorm:"not null;index:idx_itv_stage;comment:所属面试轮次ID"`
	StageNumber   int   `gorm:"not null;default:1;comment:轮次编号，冗余自轮次定义"`

	Date     string `gorm:"type:varchar(31);not null;index:idx_itv_district_date,priority:2;comment:面试日期 YYYY-MM-DD"`
	Time     string `gorm:"type:varchar(31);comment:面试时间"`
	Location string `gorm:"type:varchar(255);comment:面试地点"`

	Virtual     bool   `gorm:"not null;default:false;comment:是否线上"`
	MeetingLink string `gorm:"type:varchar(255);comment:会议链接"`

	Status   string `gorm:"type:ENUM('Scheduled','Completed','Cancelled','No Show');not null;default:'Scheduled';comment:面试状态"`
	Feedback string `gorm:"type:text;comment:面试反馈"`
	Rating   int8   `gorm:"not null;default:0;comment:评分1-5，0未评分"`

	Ctime int64
	Utime int64
}

func (Interview) TableName() string {
	return "interviews"
}

type InterviewDAO interface {
	Create(ctx context.Context, itv Interview) (int64, error)
	FindByID(ctx context.Context, district, id int64) (Interview, error)
	ListByApplication(ctx context.Context, district, applicationID int64) ([]Interview, error)
	ListByDateRange(ctx context.Context, district int64, from, to string) ([]Interview, error)

	// Complete CAS：只有 Scheduled 状态能标记完成
	Complete(ctx context.Context, district, id int64, feedback string, rating int8) error
	// UpdateStatus CAS更新状态
	UpdateStatus(ctx context.Context, district, id int64, from, to string) error

	// BusyStageIDs 指定时间点已有 Scheduled/Completed 面试的轮次
	BusyStageIDs(ctx context.Context, district int64, date, timeSlot string) ([]int64, error)
	CountByStatus(ctx context.Context, district int64, status string) (int64, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Create(ctx context.Context, itv Interview) (int64, error) {
	now := time.Now().UnixMilli()
	itv.Ctime, itv.Utime = now, now
	err := g.db.WithContext(ctx).Create(&itv).Error
	return itv.ID, err
}

func (g *GORMInterviewDAO) FindByID(ctx context.Context, district, id int64) (Interview, error) {
	var itv Interview
	err := g.db.WithContext(ctx).
		Where("id = ? AND district_id = ?", id, district).First(&itv).Error
	return itv, err
}

func (g *GORMInterviewDAO) ListByApplication(ctx context.Context, district, applicationID int64) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).
		Where("application_id = ? AND district_id = ?", applicationID, district).
		Order("date ASC, time ASC").Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) ListByDateRange(ctx context.Context, district int64, from, to string) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).
		Where("district_id = ? AND date >= ? AND date <= ?", district, from, to).
		Order("date ASC, time ASC").Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) Complete(ctx context.Context, district, id int64, feedback string, rating int8) error {
	res := g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ? AND district_id = ? AND status = ?", id, district, "Scheduled").
		Updates(map[string]any{
			"status":   "Completed",
			"feedback": feedback,
			"rating":   rating,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *GORMInterviewDAO) UpdateStatus(ctx context.Context, district, id int64, from, to string) error {
	res := g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ? AND district_id = ? AND status = ?", id, district, from).
		Updates(map[string]any{
			"status": to,
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

func (g *GORMInterviewDAO) BusyStageIDs(ctx context.Context, district int64, date, timeSlot string) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&Interview{}).
		Where("district_id = ? AND date = ? AND time = ? AND status IN ?",
			district, date, timeSlot, []string{"Scheduled", "Completed"}).
		Distinct().Pluck("stage_id", &res).Error
	return res, err
}

func (g *GORMInterviewDAO) CountByStatus(ctx context.Context, district int64, status string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Interview{}).
		Where("district_id = ? AND status = ?", district, status).Count(&count).Error
	return count, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Interview{})
}
