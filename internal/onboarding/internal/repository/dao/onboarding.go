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
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrAlreadySubmitted 提交CAS失败：重复提交或分区数不满足
	ErrAlreadySubmitted = errors.New("入职表单已提交")
)

// Candidate 入职候选人表，access_token 全局唯一。
type Candidate struct {
	ID         int64 `gorm:"primaryKey;autoIncrement;comment:候选人自增ID"`
	DistrictID int64 `gorm:"not null;index:idx_cand_district_status,priority:1;comment:所属学区ID"`

	Name          string `gorm:"type:varchar(255);not null;comment:姓名"`
	Email         string `gorm:"type:varchar(255);not null;index:idx_cand_email;comment:邮箱"`
	PositionTitle string `gorm:"type:varchar(255);comment:入职岗位"`
	OfferDate     int64  `gorm:"comment:Offer日期"`
	StartDate     int64  `gorm:"index:idx_cand_start_date;comment:入职日期"`

	Status            string `gorm:"type:varchar(31);not null;default:'not_started';index:idx_cand_district_status,priority:2;comment:状态，由完成数和提交时间推导"`
	CompletedSections int    `gorm:"not null;default:0;comment:已完成分区数 0..8"`
	LastUpdated       int64  `gorm:"comment:候选人最近一次填写时间"`
	SubmittedAt       int64  `gorm:"not null;default:0;comment:提交时间，0表示未提交"`

	AccessToken    string `gorm:"type:varchar(127);not null;uniqueIndex:uniq_cand_token;comment:候选人访问令牌"`
	TokenExpiresAt int64  `gorm:"comment:令牌过期时间"`

	ApplicationID int64 `gorm:"index:idx_cand_application;comment:关联的求职申请ID，0表示独立创建"`

	ReviewedBy int64  `gorm:"comment:审核职员uid"`
	ReviewedAt int64  `gorm:"comment:审核时间"`
	AdminNotes string `gorm:"type:text;comment:审核备注"`

	Ctime int64
	Utime int64
}

func (Candidate) TableName() string {
	return "onboarding_candidates"
}

// Section 分区表单数据，每个候选人固定8行，(candidate_id, section_index) 唯一。
type Section struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	DistrictID  int64 `gorm:"not null;index:idx_section_district;comment:所属学区ID,冗余自候选人"`
	CandidateID int64 `gorm:"not null;uniqueIndex:uniq_candidate_section,priority:1;comment:所属候选人ID"`

	SectionName  string `gorm:"type:varchar(63);not null;comment:分区名"`
	SectionIndex int    `gorm:"not null;uniqueIndex:uniq_candidate_section,priority:2;comment:分区下标 0..7"`

	FormData    sqlx.JsonColumn[map[string]any] `gorm:"type:json;comment:表单内容"`
	IsCompleted bool                            `gorm:"not null;default:false;comment:是否完成"`
	CompletedAt int64                           `gorm:"not null;default:0;comment:首次完成时间"`

	ReviewedByAdmin bool   `gorm:"not null;default:false;comment:是否已被职员审阅"`
	AdminReviewedAt int64  `gorm:"comment:审阅时间"`
	AdminComments   string `gorm:"type:text;comment:审阅意见"`

	Ctime int64
	Utime int64
}

func (Section) TableName() string {
	return "onboarding_section_data"
}

// Document 入职上传的材料及其核验子状态。
type Document struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	DistrictID  int64 `gorm:"not null;index:idx_doc_district;comment:所属学区ID"`
	CandidateID int64 `gorm:"not null;index:idx_doc_candidate;comment:所属候选人ID"`

	DocumentType string `gorm:"type:varchar(63);not null;comment:材料类型"`
	FileName     string `gorm:"type:varchar(255);not null;comment:文件名"`
	FileSize     int64  `gorm:"comment:文件大小，字节"`
	FileURL      string `gorm:"type:varchar(511);comment:文件存储地址"`

	Verified          bool   `gorm:"not null;default:false;index:idx_doc_verified;comment:是否已核验"`
	VerifiedBy        int64  `gorm:"comment:核验职员uid"`
	VerifiedAt        int64  `gorm:"comment:核验时间"`
	VerificationNotes string `gorm:"type:text;comment:核验备注"`

	Ctime int64
	Utime int64
}

func (Document) TableName() string {
	return "onboarding_documents"
}

// AuditLog 只追加的审计日志，没有更新和删除路径。
type AuditLog struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	DistrictID  int64 `gorm:"not null;index:idx_audit_district;comment:所属学区ID"`
	CandidateID int64 `gorm:"not null;index:idx_audit_candidate,priority:1;comment:所属候选人ID"`

	Action      string `gorm:"type:varchar(63);not null;comment:动作"`
	SectionName string `gorm:"type:varchar(63);comment:涉及的分区名，可空"`

	PerformedBy int64 `gorm:"comment:职员uid，候选人操作为0"`
	ByCandidate bool  `gorm:"not null;default:false;comment:是否候选人凭token操作"`

	Details   sqlx.JsonColumn[map[string]any] `gorm:"type:json;comment:动作详情"`
	IP        string                          `gorm:"type:varchar(63);comment:来源IP"`
	UserAgent string                          `gorm:"type:varchar(511);comment:UA"`

	Ctime int64 `gorm:"index:idx_audit_candidate,priority:2"`
}

func (AuditLog) TableName() string {
	return "onboarding_audit_logs"
}

// EmailLog 入职邮件发送记录，失败也落一条并带错误信息。
type EmailLog struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	DistrictID  int64 `gorm:"not null;index:idx_email_district;comment:所属学区ID"`
	CandidateID int64 `gorm:"not null;index:idx_email_candidate;comment:所属候选人ID"`

	EmailType string `gorm:"type:varchar(63);not null;comment:邮件类型"`
	Recipient string `gorm:"type:varchar(255);not null;comment:收件人"`
	Subject   string `gorm:"type:varchar(255);comment:主题"`

	Sent         bool   `gorm:"not null;default:false;comment:是否发送成功"`
	ErrorMessage string `gorm:"type:text;comment:失败原因"`

	Ctime int64
}

func (EmailLog) TableName() string {
	return "onboarding_email_logs"
}

type OnboardingDAO interface {
	// CreateCandidate 事务内创建候选人并预置8个空分区
	CreateCandidate(ctx context.Context, cand Candidate, sections []Section) (int64, error)
	FindCandidateByID(ctx context.Context, district, id int64) (Candidate, error)
	FindCandidateByToken(ctx context.Context, token string) (Candidate, error)
	ListCandidates(ctx context.Context, district int64, status string, offset, limit int) ([]Candidate, error)
	CountCandidates(ctx context.Context, district int64, status string) (int64, error)
	CountByStatus(ctx context.Context, district int64, status string) (int64, error)
	// LinkedApplicationIDs 已建入职记录的申请ID集合
	LinkedApplicationIDs(ctx context.Context, district int64) ([]int64, error)

	// UpdateSection 事务内写分区并从存储重数完成数，
	// 状态由调用方依据重数结果推导后一并写入
	UpdateSection(ctx context.Context, district, candidateID int64, section Section,
		statusOf func(completed int, submittedAt int64) string) (Candidate, error)
	FindSections(ctx context.Context, candidateID int64) ([]Section, error)
	// MarkSubmitted CAS：未提交且8个分区全部完成才允许
	MarkSubmitted(ctx context.Context, district, candidateID, submittedAt int64) error
	ReviewSection(ctx context.Context, district, candidateID int64, sectionIndex int, comments string) error
	ReviewCandidate(ctx context.Context, district, candidateID, staffID int64, notes string) error

	CreateDocument(ctx context.Context, doc Document) (int64, error)
	FindDocuments(ctx context.Context, district, candidateID int64) ([]Document, error)
	VerifyDocument(ctx context.Context, district, docID, staffID int64, notes string) error

	AppendAudit(ctx context.Context, log AuditLog) error
	FindAuditLogs(ctx context.Context, district, candidateID int64, offset, limit int) ([]AuditLog, error)

	CreateEmailLog(ctx context.Context, log EmailLog) (int64, error)
	FindEmailLogs(ctx context.Context, district, candidateID int64) ([]EmailLog, error)
}

type GORMOnboardingDAO struct {
	db *egorm.Component
}

func NewGORMOnboardingDAO(db *egorm.Component) OnboardingDAO {
	return &GORMOnboardingDAO{db: db}
}

func (g *GORMOnboardingDAO) CreateCandidate(ctx context.Context, cand Candidate, sections []Section) (int64, error) {
	now := time.Now().UnixMilli()
	cand.Ctime, cand.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cand).Error; err != nil {
			return err
		}
		for i := range sections {
			sections[i].CandidateID = cand.ID
			sections[i].DistrictID = cand.DistrictID
			sections[i].Ctime, sections[i].Utime = now, now
		}
		return tx.Create(&sections).Error
	})
	return cand.ID, err
}

func (g *GORMOnboardingDAO) FindCandidateByID(ctx context.Context, district, id int64) (Candidate, error) {
	var cand Candidate
	err := g.db.WithContext(ctx).
		Where("id = ? AND district_id = ?", id, district).First(&cand).Error
	return cand, err
}

func (g *GORMOnboardingDAO) FindCandidateByToken(ctx context.Context, token string) (Candidate, error) {
	var cand Candidate
	err := g.db.WithContext(ctx).
		Where("access_token = ?", token).First(&cand).Error
	return cand, err
}

func (g *GORMOnboardingDAO) ListCandidates(ctx context.Context, district int64, status string, offset, limit int) ([]Candidate, error) {
	builder := g.db.WithContext(ctx).Where("district_id = ?", district)
	if status != "" {
		builder = builder.Where("status = ?", status)
	}
	var res []Candidate
	err := builder.Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMOnboardingDAO) CountCandidates(ctx context.Context, district int64, status string) (int64, error) {
	builder := g.db.WithContext(ctx).Model(&Candidate{}).Where("district_id = ?", district)
	if status != "" {
		builder = builder.Where("status = ?", status)
	}
	var count int64
	err := builder.Count(&count).Error
	return count, err
}

func (g *GORMOnboardingDAO) CountByStatus(ctx context.Context, district int64, status string) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Candidate{}).
		Where("district_id = ? AND status = ?", district, status).Count(&count).Error
	return count, err
}

func (g *GORMOnboardingDAO) LinkedApplicationIDs(ctx context.Context, district int64) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&Candidate{}).
		Where("district_id = ? AND application_id > 0", district).
		Pluck("application_id", &ids).Error
	return ids, err
}

func (g *GORMOnboardingDAO) UpdateSection(ctx context.Context, district, candidateID int64, section Section,
	statusOf func(completed int, submittedAt int64) string) (Candidate, error) {
	var cand Candidate
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur Section
		err := tx.Where("candidate_id = ? AND section_index = ?", candidateID, section.SectionIndex).
			First(&cur).Error
		if err != nil {
			return err
		}
		if cur.DistrictID != district {
			return ErrRecordNotFound
		}
		vals := map[string]any{
			"form_data":    section.FormData,
			"is_completed": section.IsCompleted,
			"utime":        now,
		}
		// 首次完成才盖时间戳
		if section.IsCompleted && cur.CompletedAt == 0 {
			vals["completed_at"] = now
		}
		if err = tx.Model(&Section{}).Where("id = ?", cur.ID).Updates(vals).Error; err != nil {
			return err
		}
		// 完成数从库内当前集合重数，不依赖内存里的旧值
		var completed int64
		err = tx.Model(&Section{}).
			Where("candidate_id = ? AND is_completed = ?", candidateID, true).
			Count(&completed).Error
		if err != nil {
			return err
		}
		if err = tx.Where("id = ?", candidateID).First(&cand).Error; err != nil {
			return err
		}
		cand.CompletedSections = int(completed)
		cand.LastUpdated = now
		cand.Utime = now
		cand.Status = statusOf(cand.CompletedSections, cand.SubmittedAt)
		return tx.Model(&Candidate{}).Where("id = ?", candidateID).
			Updates(map[string]any{
				"completed_sections": cand.CompletedSections,
				"last_updated":       now,
				"status":             cand.Status,
				"utime":              now,
			}).Error
	})
	return cand, err
}

func (g *GORMOnboardingDAO) FindSections(ctx context.Context, candidateID int64) ([]Section, error) {
	var res []Section
	err := g.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).Order("section_index ASC").Find(&res).Error
	return res, err
}

func (g *GORMOnboardingDAO) MarkSubmitted(ctx context.Context, district, candidateID, submittedAt int64) error {
	res := g.db.WithContext(ctx).Model(&Candidate{}).
		Where("id = ? AND district_id = ? AND submitted_at = 0 AND completed_sections = ?",
			candidateID, district, 8).
		Updates(map[string]any{
			"submitted_at": submittedAt,
			"status":       "submitted",
			"utime":        submittedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadySubmitted
	}
	return nil
}

func (g *GORMOnboardingDAO) ReviewSection(ctx context.Context, district, candidateID int64, sectionIndex int, comments string) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Section{}).
		Where("candidate_id = ? AND district_id = ? AND section_index = ?",
			candidateID, district, sectionIndex).
		Updates(map[string]any{
			"reviewed_by_admin": true,
			"admin_reviewed_at": now,
			"admin_comments":    comments,
			"utime":             now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMOnboardingDAO) ReviewCandidate(ctx context.Context, district, candidateID, staffID int64, notes string) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Candidate{}).
		Where("id = ? AND district_id = ?", candidateID, district).
		Updates(map[string]any{
			"reviewed_by": staffID,
			"reviewed_at": now,
			"admin_notes": notes,
			"utime":       now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMOnboardingDAO) CreateDocument(ctx context.Context, doc Document) (int64, error) {
	now := time.Now().UnixMilli()
	doc.Ctime, doc.Utime = now, now
	err := g.db.WithContext(ctx).Create(&doc).Error
	return doc.ID, err
}

func (g *GORMOnboardingDAO) FindDocuments(ctx context.Context, district, candidateID int64) ([]Document, error) {
	var res []Document
	err := g.db.WithContext(ctx).
		Where("district_id = ? AND candidate_id = ?", district, candidateID).
		Order("ctime DESC").Find(&res).Error
	return res, err
}

func (g *GORMOnboardingDAO) VerifyDocument(ctx context.Context, district, docID, staffID int64, notes string) error {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Document{}).
		Where("id = ? AND district_id = ?", docID, district).
		Updates(map[string]any{
			"verified":           true,
			"verified_by":        staffID,
			"verified_at":        now,
			"verification_notes": notes,
			"utime":              now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMOnboardingDAO) AppendAudit(ctx context.Context, log AuditLog) error {
	log.Ctime = time.Now().UnixMilli()
	return g.db.WithContext(ctx).Create(&log).Error
}

func (g *GORMOnboardingDAO) FindAuditLogs(ctx context.Context, district, candidateID int64, offset, limit int) ([]AuditLog, error) {
	var res []AuditLog
	err := g.db.WithContext(ctx).
		Where("district_id = ? AND candidate_id = ?", district, candidateID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMOnboardingDAO) CreateEmailLog(ctx context.Context, log EmailLog) (int64, error) {
	log.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&log).Error
	return log.ID, err
}

func (g *GORMOnboardingDAO) FindEmailLogs(ctx context.Context, district, candidateID int64) ([]EmailLog, error) {
	var res []EmailLog
	err := g.db.WithContext(ctx).
		Where("district_id = ? AND candidate_id = ?", district, candidateID).
		Order("ctime DESC").Find(&res).Error
	return res, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Candidate{},
		&Section{},
		&Document{},
		&AuditLog{},
		&EmailLog{},
	)
}
