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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/repository/dao"
)

type OnboardingRepository interface {
	CreateCandidate(ctx context.Context, cand domain.Candidate) (int64, error)
	FindCandidateByID(ctx context.Context, district, id int64) (domain.Candidate, error)
	FindCandidateByToken(ctx context.Context, token string) (domain.Candidate, error)
	ListCandidates(ctx context.Context, district int64, status domain.Status, offset, limit int) ([]domain.Candidate, error)
	CountCandidates(ctx context.Context, district int64, status domain.Status) (int64, error)
	CountByStatus(ctx context.Context, district int64, status domain.Status) (int64, error)
	LinkedApplicationIDs(ctx context.Context, district int64) ([]int64, error)

	UpdateSection(ctx context.Context, district, candidateID int64, section domain.Section) (domain.Candidate, error)
	FindSections(ctx context.Context, candidateID int64) ([]domain.Section, error)
	MarkSubmitted(ctx context.Context, district, candidateID, submittedAt int64) error
	ReviewSection(ctx context.Context, district, candidateID int64, sectionIndex int, comments string) error
	ReviewCandidate(ctx context.Context, district, candidateID, staffID int64, notes string) error

	CreateDocument(ctx context.Context, doc domain.Document) (int64, error)
	FindDocuments(ctx context.Context, district, candidateID int64) ([]domain.Document, error)
	VerifyDocument(ctx context.Context, district, docID, staffID int64, notes string) error

	AppendAudit(ctx context.Context, log domain.AuditLog) error
	FindAuditLogs(ctx context.Context, district, candidateID int64, offset, limit int) ([]domain.AuditLog, error)

	CreateEmailLog(ctx context.Context, log domain.EmailLog) (int64, error)
	FindEmailLogs(ctx context.Context, district, candidateID int64) ([]domain.EmailLog, error)
}

type onboardingRepository struct {
	dao dao.OnboardingDAO
}

func NewOnboardingRepository(d dao.OnboardingDAO) OnboardingRepository {
	return &onboardingRepository{dao: d}
}

func (o *onboardingRepository) CreateCandidate(ctx context.Context, cand domain.Candidate) (int64, error) {
	sections := make([]dao.Section, 0, domain.SectionCount)
	for i, name := range domain.SectionNames {
		sections = append(sections, dao.Section{
			SectionName:  name,
			SectionIndex: i,
			FormData:     sqlx.JsonColumn[map[string]any]{Val: map[string]any{}, Valid: true},
		})
	}
	return o.dao.CreateCandidate(ctx, o.toEntity(cand), sections)
}

func (o *onboardingRepository) FindCandidateByID(ctx context.Context, district, id int64) (domain.Candidate, error) {
	entity, err := o.dao.FindCandidateByID(ctx, district, id)
	if err != nil {
		return domain.Candidate{}, err
	}
	return o.toDomain(entity), nil
}

func (o *onboardingRepository) FindCandidateByToken(ctx context.Context, token string) (domain.Candidate, error) {
	entity, err := o.dao.FindCandidateByToken(ctx, token)
	if err != nil {
		return domain.Candidate{}, err
	}
	return o.toDomain(entity), nil
}

func (o *onboardingRepository) ListCandidates(ctx context.Context, district int64, status domain.Status, offset, limit int) ([]domain.Candidate, error) {
	entities, err := o.dao.ListCandidates(ctx, district, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Candidate) domain.Candidate {
		return o.toDomain(src)
	}), nil
}

func (o *onboardingRepository) CountCandidates(ctx context.Context, district int64, status domain.Status) (int64, error) {
	return o.dao.CountCandidates(ctx, district, status.String())
}

func (o *onboardingRepository) CountByStatus(ctx context.Context, district int64, status domain.Status) (int64, error) {
	return o.dao.CountByStatus(ctx, district, status.String())
}

func (o *onboardingRepository) LinkedApplicationIDs(ctx context.Context, district int64) ([]int64, error) {
	return o.dao.LinkedApplicationIDs(ctx, district)
}

func (o *onboardingRepository) UpdateSection(ctx context.Context, district, candidateID int64, section domain.Section) (domain.Candidate, error) {
	entity, err := o.dao.UpdateSection(ctx, district, candidateID, dao.Section{
		SectionIndex: section.SectionIndex,
		FormData:     sqlx.JsonColumn[map[string]any]{Val: section.FormData, Valid: section.FormData != nil},
		IsCompleted:  section.IsCompleted,
	}, func(completed int, submittedAt int64) string {
		return domain.StatusOf(completed, submittedAt).String()
	})
	if err != nil {
		return domain.Candidate{}, err
	}
	return o.toDomain(entity), nil
}

func (o *onboardingRepository) FindSections(ctx context.Context, candidateID int64) ([]domain.Section, error) {
	entities, err := o.dao.FindSections(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Section) domain.Section {
		return domain.Section{
			ID:              src.ID,
			DistrictID:      src.DistrictID,
			CandidateID:     src.CandidateID,
			SectionName:     src.SectionName,
			SectionIndex:    src.SectionIndex,
			FormData:        src.FormData.Val,
			IsCompleted:     src.IsCompleted,
			CompletedAt:     src.CompletedAt,
			ReviewedByAdmin: src.ReviewedByAdmin,
			AdminReviewedAt: src.AdminReviewedAt,
			AdminComments:   src.AdminComments,
			Utime:           src.Utime,
		}
	}), nil
}

func (o *onboardingRepository) MarkSubmitted(ctx context.Context, district, candidateID, submittedAt int64) error {
	return o.dao.MarkSubmitted(ctx, district, candidateID, submittedAt)
}

func (o *onboardingRepository) ReviewSection(ctx context.Context, district, candidateID int64, sectionIndex int, comments string) error {
	return o.dao.ReviewSection(ctx, district, candidateID, sectionIndex, comments)
}

func (o *onboardingRepository) ReviewCandidate(ctx context.Context, district, candidateID, staffID int64, notes string) error {
	return o.dao.ReviewCandidate(ctx, district, candidateID, staffID, notes)
}

func (o *onboardingRepository) CreateDocument(ctx context.Context, doc domain.Document) (int64, error) {
	return o.dao.CreateDocument(ctx, dao.Document{
		DistrictID:   doc.DistrictID,
		CandidateID:  doc.CandidateID,
		DocumentType: doc.DocumentType,
		FileName:     doc.FileName,
		FileSize:     doc.FileSize,
		FileURL:      doc.FileURL,
	})
}

func (o *onboardingRepository) FindDocuments(ctx context.Context, district, candidateID int64) ([]domain.Document, error) {
	entities, err := o.dao.FindDocuments(ctx, district, candidateID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.Document) domain.Document {
		return domain.Document{
			ID:                src.ID,
			DistrictID:        src.DistrictID,
			CandidateID:       src.CandidateID,
			DocumentType:      src.DocumentType,
			FileName:          src.FileName,
			FileSize:          src.FileSize,
			FileURL:           src.FileURL,
			Verified:          src.Verified,
			VerifiedBy:        src.VerifiedBy,
			VerifiedAt:        src.VerifiedAt,
			VerificationNotes: src.VerificationNotes,
			Ctime:             src.Ctime,
		}
	}), nil
}

func (o *onboardingRepository) VerifyDocument(ctx context.Context, district, docID, staffID int64, notes string) error {
	return o.dao.VerifyDocument(ctx, district, docID, staffID, notes)
}

func (o *onboardingRepository) AppendAudit(ctx context.Context, log domain.AuditLog) error {
	return o.dao.AppendAudit(ctx, dao.AuditLog{
		DistrictID:  log.DistrictID,
		CandidateID: log.CandidateID,
		Action:      log.Action,
		SectionName: log.SectionName,
		PerformedBy: log.PerformedBy,
		ByCandidate: log.ByCandidate,
		Details:     sqlx.JsonColumn[map[string]any]{Val: log.Details, Valid: log.Details != nil},
		IP:          log.IP,
		UserAgent:   log.UserAgent,
	})
}

func (o *onboardingRepository) FindAuditLogs(ctx context.Context, district, candidateID int64, offset, limit int) ([]domain.AuditLog, error) {
	entities, err := o.dao.FindAuditLogs(ctx, district, candidateID, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.AuditLog) domain.AuditLog {
		return domain.AuditLog{
			ID:          src.ID,
			DistrictID:  src.DistrictID,
			CandidateID: src.CandidateID,
			Action:      src.Action,
			SectionName: src.SectionName,
			PerformedBy: src.PerformedBy,
			ByCandidate: src.ByCandidate,
			Details:     src.Details.Val,
			IP:          src.IP,
			UserAgent:   src.UserAgent,
			Ctime:       src.Ctime,
		}
	}), nil
}

func (o *onboardingRepository) CreateEmailLog(ctx context.Context, log domain.EmailLog) (int64, error) {
	return o.dao.CreateEmailLog(ctx, dao.EmailLog{
		DistrictID:   log.DistrictID,
		CandidateID:  log.CandidateID,
		EmailType:    log.EmailType,
		Recipient:    log.Recipient,
		Subject:      log.Subject,
		Sent:         log.Sent,
		ErrorMessage: log.ErrorMessage,
	})
}

func (o *onboardingRepository) FindEmailLogs(ctx context.Context, district, candidateID int64) ([]domain.EmailLog, error) {
	entities, err := o.dao.FindEmailLogs(ctx, district, candidateID)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(_ int, src dao.EmailLog) domain.EmailLog {
		return domain.EmailLog{
			ID:           src.ID,
			DistrictID:   src.DistrictID,
			CandidateID:  src.CandidateID,
			EmailType:    src.EmailType,
			Recipient:    src.Recipient,
			Subject:      src.Subject,
			Sent:         src.Sent,
			ErrorMessage: src.ErrorMessage,
			Ctime:        src.Ctime,
		}
	}), nil
}

func (o *onboardingRepository) toEntity(cand domain.Candidate) dao.Candidate {
	return dao.Candidate{
		ID:                cand.ID,
		DistrictID:        cand.DistrictID,
		Name:              cand.Name,
		Email:             cand.Email,
		PositionTitle:     cand.PositionTitle,
		OfferDate:         cand.OfferDate,
		StartDate:         cand.StartDate,
		Status:            cand.Status.String(),
		CompletedSections: cand.CompletedSections,
		LastUpdated:       cand.LastUpdated,
		SubmittedAt:       cand.SubmittedAt,
		AccessToken:       cand.AccessToken,
		TokenExpiresAt:    cand.TokenExpiresAt,
		ApplicationID:     cand.ApplicationID,
		ReviewedBy:        cand.ReviewedBy,
		ReviewedAt:        cand.ReviewedAt,
		AdminNotes:        cand.AdminNotes,
	}
}

func (o *onboardingRepository) toDomain(entity dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:                entity.ID,
		DistrictID:        entity.DistrictID,
		Name:              entity.Name,
		Email:             entity.Email,
		PositionTitle:     entity.PositionTitle,
		OfferDate:         entity.OfferDate,
		StartDate:         entity.StartDate,
		Status:            domain.Status(entity.Status),
		CompletedSections: entity.CompletedSections,
		LastUpdated:       entity.LastUpdated,
		SubmittedAt:       entity.SubmittedAt,
		AccessToken:       entity.AccessToken,
		TokenExpiresAt:    entity.TokenExpiresAt,
		ApplicationID:     entity.ApplicationID,
		ReviewedBy:        entity.ReviewedBy,
		ReviewedAt:        entity.ReviewedAt,
		AdminNotes:        entity.AdminNotes,
		Ctime:             entity.Ctime,
		Utime:             entity.Utime,
	}
}
