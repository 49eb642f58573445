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

package web

import (
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/domain"
)

type Candidate struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	PositionTitle string `json:"positionTitle,omitempty"`
	OfferDate     int64  `json:"offerDate,omitempty"`
	StartDate     int64  `json:"startDate,omitempty"`

	Status            string `json:"status,omitempty"`
	CompletedSections int    `json:"completedSections"`
	Progress          int    `json:"progress"`
	LastUpdated       int64  `json:"lastUpdated,omitempty"`
	SubmittedAt       int64  `json:"submittedAt,omitempty"`

	ApplicationID int64 `json:"applicationId,omitempty"`

	ReviewedBy int64  `json:"reviewedBy,omitempty"`
	ReviewedAt int64  `json:"reviewedAt,omitempty"`
	AdminNotes string `json:"adminNotes,omitempty"`

	// AccessToken 只在创建响应里返回一次
	AccessToken    string `json:"accessToken,omitempty"`
	TokenExpiresAt int64  `json:"tokenExpiresAt,omitempty"`
}

type Section struct {
	SectionName     string         `json:"sectionName"`
	SectionIndex    int            `json:"sectionIndex"`
	FormData        map[string]any `json:"formData,omitempty"`
	IsCompleted     bool           `json:"isCompleted"`
	CompletedAt     int64          `json:"completedAt,omitempty"`
	ReviewedByAdmin bool           `json:"reviewedByAdmin,omitempty"`
	AdminComments   string         `json:"adminComments,omitempty"`
}

type Document struct {
	ID           int64  `json:"id,omitempty"`
	CandidateID  int64  `json:"candidateId,omitempty"`
	DocumentType string `json:"documentType,omitempty"`
	FileName     string `json:"fileName,omitempty"`
	FileSize     int64  `json:"fileSize,omitempty"`
	FileURL      string `json:"fileUrl,omitempty"`
	Verified     bool   `json:"verified"`
	VerifiedAt   int64  `json:"verifiedAt,omitempty"`
}

type AuditLog struct {
	Action      string         `json:"action"`
	SectionName string         `json:"sectionName,omitempty"`
	PerformedBy int64          `json:"performedBy,omitempty"`
	ByCandidate bool           `json:"byCandidate"`
	Details     map[string]any `json:"details,omitempty"`
	IP          string         `json:"ip,omitempty"`
	Ctime       int64          `json:"ctime"`
}

type EmailLog struct {
	EmailType    string `json:"emailType"`
	Recipient    string `json:"recipient"`
	Subject      string `json:"subject,omitempty"`
	Sent         bool   `json:"sent"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Ctime        int64  `json:"ctime"`
}

type CreateCandidateReq struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PositionTitle string `json:"positionTitle"`
	OfferDate     int64  `json:"offerDate"`
	StartDate     int64  `json:"startDate"`
	ApplicationID int64  `json:"applicationId"`
}

type ListReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type TokenReq struct {
	Token string `json:"token"`
}

type UpdateSectionReq struct {
	CandidateID  int64          `json:"candidateId"`
	SectionIndex int            `json:"sectionIndex"`
	FormData     map[string]any `json:"formData"`
	IsCompleted  bool           `json:"isCompleted"`
}

type TokenUpdateSectionReq struct {
	Token        string         `json:"token"`
	SectionIndex int            `json:"sectionIndex"`
	FormData     map[string]any `json:"formData"`
	IsCompleted  bool           `json:"isCompleted"`
}

type ReviewSectionReq struct {
	CandidateID  int64  `json:"candidateId"`
	SectionIndex int    `json:"sectionIndex"`
	Comments     string `json:"comments"`
}

type ReviewCandidateReq struct {
	CandidateID int64  `json:"candidateId"`
	Notes       string `json:"notes"`
}

type UploadDocumentReq struct {
	CandidateID  int64  `json:"candidateId"`
	DocumentType string `json:"documentType"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"`
	FileURL      string `json:"fileUrl"`
}

type TokenUploadDocumentReq struct {
	Token        string `json:"token"`
	DocumentType string `json:"documentType"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"`
	FileURL      string `json:"fileUrl"`
}

type VerifyDocumentReq struct {
	DocumentID int64  `json:"documentId"`
	Notes      string `json:"notes"`
}

type AuditReq struct {
	CandidateID int64 `json:"candidateId"`
	Offset      int   `json:"offset"`
	Limit       int   `json:"limit"`
}

func newCandidate(cand domain.Candidate, withToken bool) Candidate {
	res := Candidate{
		ID:                cand.ID,
		Name:              cand.Name,
		Email:             cand.Email,
		PositionTitle:     cand.PositionTitle,
		OfferDate:         cand.OfferDate,
		StartDate:         cand.StartDate,
		Status:            cand.Status.String(),
		CompletedSections: cand.CompletedSections,
		Progress:          cand.Progress(),
		LastUpdated:       cand.LastUpdated,
		SubmittedAt:       cand.SubmittedAt,
		ApplicationID:     cand.ApplicationID,
		ReviewedBy:        cand.ReviewedBy,
		ReviewedAt:        cand.ReviewedAt,
		AdminNotes:        cand.AdminNotes,
	}
	if withToken {
		res.AccessToken = cand.AccessToken
		res.TokenExpiresAt = cand.TokenExpiresAt
	}
	return res
}

func newSection(s domain.Section) Section {
	return Section{
		SectionName:     s.SectionName,
		SectionIndex:    s.SectionIndex,
		FormData:        s.FormData,
		IsCompleted:     s.IsCompleted,
		CompletedAt:     s.CompletedAt,
		ReviewedByAdmin: s.ReviewedByAdmin,
		AdminComments:   s.AdminComments,
	}
}
