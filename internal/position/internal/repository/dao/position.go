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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDistrictMismatch 子实体的学区与父实体不一致，写入被拒绝
	ErrDistrictMismatch = errors.New("学区与父实体不一致")
	// ErrDuplicateReqID 同一学区内 req_id 冲突
	ErrDuplicateReqID = errors.New("招聘需求编号已存在")
)

// Position 岗位表，req_id 在学区内唯一。
type Position struct {
	ID          int64   `gorm:"primaryKey;autoIncrement;comment:岗位自增ID"`
	DistrictID  int64   `gorm:"not null;uniqueIndex:uniq_district_req_id,priority:1;index:idx_pos_district_status,priority:1;comment:所属学区ID"`
	ReqID       string  `gorm:"type:varchar(63);not null;uniqueIndex:uniq_district_req_id,priority:2;comment:招聘需求编号，学区内唯一"`
	Title       string  `gorm:"type:varchar(255);not null;comment:岗位名称"`
	Department  string  `gorm:"type:varchar(255);index:idx_pos_department;comment:部门"`
	Worksite    string  `gorm:"type:varchar(255);comment:工作地点"`
	FTE         float64 `gorm:"type:decimal(3,2);not null;default:1.0;comment:全职当量"`
	SalaryRange string  `gorm:"type:varchar(127);comment:薪资范围"`
	StartDate   int64   `gorm:"comment:预计入职时间"`
	Status      string  `gorm:"type:ENUM('Draft','Open','Closed');not null;default:'Draft';index:idx_pos_district_status,priority:2;comment:岗位状态"`

	EmployeeCategory string `gorm:"type:varchar(127);comment:员工类别"`
	Description      string `gorm:"type:text;comment:岗位描述"`
	Requirements     string `gorm:"type:text;comment:任职要求"`

	PostingStartDate int64 `gorm:"comment:发布窗口开始"`
	PostingEndDate   int64 `gorm:"comment:发布窗口结束"`

	InterviewStageCount int `gorm:"not null;default:1;comment:面试轮次数"`

	Ctime int64
	Utime int64
}

func (Position) TableName() string {
	return "positions"
}

// InterviewStage 面试轮次定义，(position_id, stage_number) 唯一。
type InterviewStage struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;comment:轮次自增ID"`
	DistrictID  int64  `gorm:"not null;index:idx_stage_district;comment:所属学区ID，冗余自岗位"`
	PositionID  int64  `gorm:"not null;uniqueIndex:uniq_position_stage_number,priority:1;comment:所属岗位ID"`
	StageNumber int    `gorm:"not null;default:1;uniqueIndex:uniq_position_stage_number,priority:2;comment:轮次编号，从1开始"`
	StageName   string `gorm:"type:varchar(255);not null;comment:轮次名称，例如 初筛面、校长面"`
	Ctime       int64
	Utime       int64
}

func (InterviewStage) TableName() string {
	return "interview_stages"
}

// Interviewer 轮次的面试官。
type Interviewer struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;comment:面试官自增ID"`
	DistrictID int64  `gorm:"not null;index:idx_interviewer_district;comment:所属学区ID，冗余自轮次"`
	StageID    int64  `gorm:"not null;index:idx_interviewer_stage;comment:所属轮次ID"`
	Name       string `gorm:"type:varchar(255);not null;comment:姓名"`
	Email      string `gorm:"type:varchar(255);not null;comment:邮箱"`
	Role       string `gorm:"type:varchar(255);comment:角色，例如 HR、校长"`
	Ctime      int64
	Utime      int64
}

func (Interviewer) TableName() string {
	return "interviewers"
}

// ScreeningQuestion 学区级筛选问题。
type ScreeningQuestion struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;comment:问题自增ID"`
	DistrictID int64  `gorm:"not null;index:idx_question_district_category,priority:1;comment:所属学区ID"`
	Question   string `gorm:"type:text;not null;comment:问题内容"`
	Category   string `gorm:"type:varchar(63);not null;index:idx_question_district_category,priority:2;comment:问题类别"`
	Required   bool   `gorm:"not null;default:true;comment:是否必答"`
	Ctime      int64
	Utime      int64
}

func (ScreeningQuestion) TableName() string {
	return "screening_questions"
}

// PositionQuestion 岗位与筛选问题的关联表。
type PositionQuestion struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	PositionID int64 `gorm:"not null;uniqueIndex:uniq_position_question,priority:1"`
	QuestionID int64 `gorm:"not null;uniqueIndex:uniq_position_question,priority:2"`
	Ctime      int64
}

func (PositionQuestion) TableName() string {
	return "position_questions"
}

// JobTemplate 学区的岗位模板。
type JobTemplate struct {
	ID                  int64   `gorm:"primaryKey;autoIncrement;comment:模板自增ID"`
	DistrictID          int64   `gorm:"not null;index:idx_template_district;comment:所属学区ID"`
	TemplateName        string  `gorm:"type:varchar(255);not null;comment:模板名称"`
	PrimaryJobTitle     string  `gorm:"type:varchar(255);not null;comment:主岗位名称"`
	Department          string  `gorm:"type:varchar(255);comment:部门"`
	Worksite            string  `gorm:"type:varchar(255);comment:工作地点"`
	FTE                 float64 `gorm:"type:decimal(3,2);not null;default:1.0;comment:全职当量"`
	SalaryRange         string  `gorm:"type:varchar(127);comment:薪资范围"`
	EmployeeCategory    string  `gorm:"type:varchar(127);comment:员工类别"`
	InterviewStageCount int     `gorm:"not null;default:1;comment:面试轮次数"`
	Ctime               int64
	Utime               int64
}

func (JobTemplate) TableName() string {
	return "job_templates"
}

type PositionDAO interface {
	Save(ctx context.Context, pos Position, stages []InterviewStage) (int64, error)
	Find(ctx context.Context, district, id int64) (Position, []InterviewStage, error)
	List(ctx context.Context, district int64, offset, limit int) ([]Position, error)
	Count(ctx context.Context, district int64) (int64, error)
	// ListOpen 公开招聘版查询：Open 状态且发布窗口覆盖当天
	ListOpen(ctx context.Context, district, today int64, search, department, worksite string) ([]Position, error)
	CountByStatus(ctx context.Context, district int64, status string) (int64, error)

	FindStage(ctx context.Context, district, stageID int64) (InterviewStage, error)
	FindStagesByPosition(ctx context.Context, district, positionID int64) ([]InterviewStage, error)
	AddInterviewer(ctx context.Context, iv Interviewer) (int64, error)
	FindInterviewersByStage(ctx context.Context, district, stageID int64) ([]Interviewer, error)

	CreateQuestion(ctx context.Context, q ScreeningQuestion) (int64, error)
	ListQuestions(ctx context.Context, district int64, category string) ([]ScreeningQuestion, error)
	BindQuestions(ctx context.Context, district, positionID int64, questionIDs []int64) error
	FindQuestionsByPosition(ctx context.Context, district, positionID int64) ([]ScreeningQuestion, error)

	CreateTemplate(ctx context.Context, t JobTemplate) (int64, error)
	FindTemplate(ctx context.Context, district, id int64) (JobTemplate, error)
	ListTemplates(ctx context.Context, district int64) ([]JobTemplate, error)
}

type GORMPositionDAO struct {
	db *egorm.Component
}

func NewGORMPositionDAO(db *egorm.Component) PositionDAO {
	return &GORMPositionDAO{db: db}
}

func (g *GORMPositionDAO) Save(ctx context.Context, pos Position, stages []InterviewStage) (int64, error) {
	now := time.Now().UnixMilli()
	pos.Utime = now
	if pos.ID == 0 {
		pos.Ctime = now
	}
	for i := range stages {
		stages[i].Utime = now
		if stages[i].ID == 0 {
			stages[i].Ctime = now
		}
	}

	var pid int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if pos.ID == 0 {
			if err := tx.Create(&pos).Error; err != nil {
				var me *mysql.MySQLError
				if errors.As(err, &me) && me.Number == 1062 {
					return ErrDuplicateReqID
				}
				return err
			}
		} else {
			// 更新时学区和 req_id 不可变更
			res := tx.Model(&Position{}).
				Where("id = ? AND district_id = ?", pos.ID, pos.DistrictID).
				Updates(map[string]any{
					"title":                 pos.Title,
					"department":            pos.Department,
					"worksite":              pos.Worksite,
					"fte":                   pos.FTE,
					"salary_range":          pos.SalaryRange,
					"start_date":            pos.StartDate,
					"status":                pos.Status,
					"employee_category":     pos.EmployeeCategory,
					"description":           pos.Description,
					"requirements":          pos.Requirements,
					"posting_start_date":    pos.PostingStartDate,
					"posting_end_date":      pos.PostingEndDate,
					"interview_stage_count": pos.InterviewStageCount,
					"utime":                 pos.Utime,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrRecordNotFound
			}
		}
		pid = pos.ID

		if len(stages) == 0 {
			return nil
		}
		for i := range stages {
			stages[i].PositionID = pid
			// 轮次的学区必须冗余自岗位本身
			stages[i].DistrictID = pos.DistrictID
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "position_id"}, {Name: "stage_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"stage_name", "utime",
			}),
		}).Create(&stages).Error
	})
	return pid, err
}

func (g *GORMPositionDAO) Find(ctx context.Context, district, id int64) (Position, []InterviewStage, error) {
	var pos Position
	var stages []InterviewStage
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND district_id = ?", id, district).First(&pos).Error; err != nil {
			return err
		}
		return tx.Where("position_id = ? AND district_id = ?", id, district).
			Order("stage_number ASC").Find(&stages).Error
	})
	return pos, stages, err
}

func (g *GORMPositionDAO) List(ctx context.Context, district int64, offset, limit int) ([]Position, error) {
	var res []Position
	err := g.db.WithContext(ctx).Where("district_id = ?", district).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMPositionDAO) Count(ctx context.Context, district int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Position{}).
		Where("district_id = ?", district).Count(&count).Error
	return count, err
}

func (g *GORMPositionDAO) ListOpen(ctx context.Context, district, today int64, search, department, worksite string) ([]Position, error) {
	builder := g.db.WithContext(ctx).
		Where("district_id = ? AND status = ? AND posting_start_date <= ? AND posting_end_date >= ?",
			district, "Open", today, today)
	if search != "" {
		like := "%" + search + "%"
		builder = builder.Where("title LIKE ? OR department LIKE ? OR worksite LIKE ?", like, like, like)
	}
	if department != "" {
		builder = builder.Where("department = ?", department)
	}
	if worksite != "" {
		builder = builder.Where("worksite = ?", worksite)
	}
	var res []Position
	err := builder.Order("posting_end_date ASC").Find(&res).Error
	return res, err
}

func (g *GORMPositionDAO) CountByStatus(ctx context.Context, district int64, status string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Position{}).
		Where("district_id = ? AND status = ?", district, status).Count(&count).Error
	return count, err
}

func (g *GORMPositionDAO) FindStage(ctx context.Context, district, stageID int64) (InterviewStage, error) {
	var stage InterviewStage
	err := g.db.WithContext(ctx).
		Where("id = ? AND district_id = ?", stageID, district).First(&stage).Error
	return stage, err
}

func (g *GORMPositionDAO) FindStagesByPosition(ctx context.Context, district, positionID int64) ([]InterviewStage, error) {
	var stages []InterviewStage
	err := g.db.WithContext(ctx).
		Where("position_id = ? AND district_id = ?", positionID, district).
		Order("stage_number ASC").Find(&stages).Error
	return stages, err
}

func (g *GORMPositionDAO) AddInterviewer(ctx context.Context, iv Interviewer) (int64, error) {
	now := time.Now().UnixMilli()
	iv.Ctime = now
	iv.Utime = now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stage InterviewStage
		if err := tx.Where("id = ?", iv.StageID).First(&stage).Error; err != nil {
			return err
		}
		// 写入时显式断言租户一致，而不是依赖隐式作用域
		if stage.DistrictID != iv.DistrictID {
			return ErrDistrictMismatch
		}
		return tx.Create(&iv).Error
	})
	return iv.ID, err
}

func (g *GORMPositionDAO) FindInterviewersByStage(ctx context.Context, district, stageID int64) ([]Interviewer, error) {
	var res []Interviewer
	err := g.db.WithContext(ctx).
		Where("stage_id = ? AND district_id = ?", stageID, district).Find(&res).Error
	return res, err
}

func (g *GORMPositionDAO) CreateQuestion(ctx context.Context, q ScreeningQuestion) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := g.db.WithContext(ctx).Create(&q).Error
	return q.ID, err
}

func (g *GORMPositionDAO) ListQuestions(ctx context.Context, district int64, category string) ([]ScreeningQuestion, error) {
	builder := g.db.WithContext(ctx).Where("district_id = ?", district)
	if category != "" {
		builder = builder.Where("category = ?", category)
	}
	var res []ScreeningQuestion
	err := builder.Order("category ASC, ctime ASC").Find(&res).Error
	return res, err
}

func (g *GORMPositionDAO) BindQuestions(ctx context.Context, district, positionID int64, questionIDs []int64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pos Position
		if err := tx.Where("id = ? AND district_id = ?", positionID, district).First(&pos).Error; err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&ScreeningQuestion{}).
			Where("id IN ? AND district_id = ?", questionIDs, district).
			Count(&count).Error; err != nil {
			return err
		}
		// 不允许把别的学区的问题绑定到本学区的岗位上
		if count != int64(len(questionIDs)) {
			return ErrDistrictMismatch
		}
		links := make([]PositionQuestion, 0, len(questionIDs))
		for _, qid := range questionIDs {
			links = append(links, PositionQuestion{
				PositionID: positionID,
				QuestionID: qid,
				Ctime:      now,
			})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
	})
}

func (g *GORMPositionDAO) FindQuestionsByPosition(ctx context.Context, district, positionID int64) ([]ScreeningQuestion, error) {
	var res []ScreeningQuestion
	err := g.db.WithContext(ctx).
		Joins("JOIN position_questions pq ON pq.question_id = screening_questions.id").
		Where("pq.position_id = ? AND screening_questions.district_id = ?", positionID, district).
		Find(&res).Error
	return res, err
}

func (g *GORMPositionDAO) CreateTemplate(ctx context.Context, t JobTemplate) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := g.db.WithContext(ctx).Create(&t).Error
	return t.ID, err
}

func (g *GORMPositionDAO) FindTemplate(ctx context.Context, district, id int64) (JobTemplate, error) {
	var t JobTemplate
	err := g.db.WithContext(ctx).
		Where("id = ? AND district_id = ?", id, district).First(&t).Error
	return t, err
}

func (g *GORMPositionDAO) ListTemplates(ctx context.Context, district int64) ([]JobTemplate, error) {
	var res []JobTemplate
	err := g.db.WithContext(ctx).
		Where("district_id = ?", district).Order("template_name ASC").Find(&res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Position{},
		&InterviewStage{},
		&Interviewer{},
		&ScreeningQuestion{},
		&PositionQuestion{},
		&JobTemplate{},
	)
}
