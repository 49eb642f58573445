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

package domain

import "time"

// SectionNames 固定的8个入职表单分区，下标即section_index
var SectionNames = [8]string{
	"personal_info",
	"employment_details",
	"i9_form",
	"tax_withholdings",
	"payment_method",
	"time_off",
	"deductions",
	"emergency_contact",
}

const SectionCount = len(SectionNames)

type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusSubmitted  Status = "submitted"
)

func (s Status) String() string {
	return string(s)
}

// StatusOf 状态是 (completedSections, submittedAt) 的纯函数，
// 除这两个输入外不受任何状态影响。
func StatusOf(completedSections int, submittedAt int64) Status {
	switch {
	case completedSections == SectionCount && submittedAt > 0:
		return StatusSubmitted
	case completedSections == SectionCount:
		return StatusCompleted
	case completedSections > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// Candidate 入职候选人，独立于招聘链路存在，可选关联产生它的申请。
// AccessToken 是无会话的持有凭证，候选人凭它读写自己的记录。
type Candidate struct {
	ID         int64
	DistrictID int64

	Name          string
	Email         string
	PositionTitle string
	OfferDate     int64
	StartDate     int64

	Status            Status
	CompletedSections int
	LastUpdated       int64
	SubmittedAt       int64

	AccessToken    string
	TokenExpiresAt int64

	// ApplicationID 产生该候选人的申请，0表示独立创建
	ApplicationID int64

	ReviewedBy int64
	ReviewedAt int64
	AdminNotes string

	Ctime int64
	Utime int64
}

func (c Candidate) IsTokenExpired(now time.Time) bool {
	return c.TokenExpiresAt > 0 && c.TokenExpiresAt < now.UnixMilli()
}

// Progress 完成百分比
func (c Candidate) Progress() int {
	return c.CompletedSections * 100 / SectionCount
}

type Section struct {
	ID          int64
	DistrictID  int64
	CandidateID int64

	SectionName  string
	SectionIndex int

	FormData    map[string]any
	IsCompleted bool
	CompletedAt int64

	ReviewedByAdmin bool
	AdminReviewedAt int64
	AdminComments   string

	Utime int64
}

const (
	DocumentResume        = "resume"
	DocumentI9ListA       = "i9_document_a"
	DocumentI9ListB       = "i9_document_b"
	DocumentI9ListC       = "i9_document_c"
	DocumentCertification = "certification"
	DocumentLicense       = "license"
	DocumentTranscript    = "transcript"
	DocumentOther         = "other"
)

type Document struct {
	ID          int64
	DistrictID  int64
	CandidateID int64

	DocumentType string
	FileName     string
	FileSize     int64
	FileURL      string

	Verified          bool
	VerifiedBy        int64
	VerifiedAt        int64
	VerificationNotes string

	Ctime int64
}

const (
	ActionCreated          = "created"
	ActionUpdated          = "updated"
	ActionSectionCompleted = "section_completed"
	ActionSubmitted        = "submitted"
	ActionReviewed         = "reviewed"
	ActionDocumentUploaded = "document_uploaded"
	ActionEmailSent        = "email_sent"
)

// AuditLog 只追加的操作审计，区分职员操作和候选人凭token的操作
type AuditLog struct {
	ID          int64
	DistrictID  int64
	CandidateID int64

	Action      string
	SectionName string

	// PerformedBy 职员uid，候选人操作时为0
	PerformedBy int64
	ByCandidate bool

	Details   map[string]any
	IP        string
	UserAgent string

	Ctime int64
}

const (
	EmailInvitation  = "invitation"
	EmailReminder    = "reminder"
	EmailSubmission  = "submission_confirmation"
	EmailAdminNotice = "admin_notification"
)

type EmailLog struct {
	ID          int64
	DistrictID  int64
	CandidateID int64

	EmailType string
	Recipient string
	Subject   string

	Sent         bool
	ErrorMessage string

	Ctime int64
}

// TokenState validateToken的只读结果，过期或已提交的token不再放行写入
type TokenState struct {
	Valid            bool
	Expired          bool
	AlreadySubmitted bool
}
