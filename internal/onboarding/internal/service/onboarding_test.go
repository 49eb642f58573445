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

package service

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/application"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/domain"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/event"
	"github.com/ecodeclub/hireflow/internal/onboarding/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateCandidate(t *testing.T) {
	t.Parallel()
	repo := newFakeOnboardingRepo()
	prd := &fakeOnboardingProducer{}
	svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), prd)

	cand, err := svc.CreateCandidate(context.Background(), 1, domain.Candidate{
		Name:          "王五",
		Email:         "wangwu@example.com",
		PositionTitle: "数学教师",
	}, Actor{StaffID: 9})
	require.NoError(t, err)

	// 令牌URL安全且不可猜测
	assert.GreaterOrEqual(t, len(cand.AccessToken), 43)
	assert.Greater(t, cand.TokenExpiresAt, time.Now().UnixMilli())
	assert.Equal(t, domain.StatusNotStarted, cand.Status)

	// 8个分区按固定顺序预置
	sections := repo.sections[cand.ID]
	require.Len(t, sections, domain.SectionCount)
	for i, sec := range sections {
		assert.Equal(t, domain.SectionNames[i], sec.SectionName)
		assert.False(t, sec.IsCompleted)
	}

	require.Len(t, repo.audits, 1)
	assert.Equal(t, domain.ActionCreated, repo.audits[0].Action)
	require.Len(t, prd.events, 1)
	assert.Equal(t, event.ActionInvited, prd.events[0].Action)
	assert.Contains(t, prd.events[0].OnboardingURL, cand.AccessToken)

	_, err = svc.CreateCandidate(context.Background(), 1, domain.Candidate{Name: "缺邮箱"}, Actor{})
	assert.ErrorIs(t, err, ErrInvalidCandidate)
}

func TestService_UpdateSection(t *testing.T) {
	t.Parallel()

	t.Run("第七个完成后仍是进行中", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOnboardingRepo()
		svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})
		id := repo.seedCandidate(1, 0, false)
		for i := 0; i < 6; i++ {
			repo.completeSection(id, i)
		}

		cand, err := svc.UpdateSection(context.Background(), 1, id, 7,
			map[string]any{"contactName": "Jane"}, true, Actor{ByCandidate: true})
		require.NoError(t, err)
		assert.Equal(t, 7, cand.CompletedSections)
		assert.Equal(t, domain.StatusInProgress, cand.Status)

		// 审计带上了操作者身份
		last := repo.audits[len(repo.audits)-1]
		assert.Equal(t, domain.ActionSectionCompleted, last.Action)
		assert.Equal(t, "emergency_contact", last.SectionName)
		assert.True(t, last.ByCandidate)
	})

	t.Run("第八个完成后状态为完成", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOnboardingRepo()
		svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})
		id := repo.seedCandidate(1, 0, false)
		for i := 0; i < 7; i++ {
			repo.completeSection(id, i)
		}

		cand, err := svc.UpdateSection(context.Background(), 1, id, 7, nil, true, Actor{})
		require.NoError(t, err)
		assert.Equal(t, domain.SectionCount, cand.CompletedSections)
		assert.Equal(t, domain.StatusCompleted, cand.Status)
	})

	t.Run("取消完成会回退计数", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOnboardingRepo()
		svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})
		id := repo.seedCandidate(1, 0, false)
		repo.completeSection(id, 0)
		repo.completeSection(id, 1)

		cand, err := svc.UpdateSection(context.Background(), 1, id, 1, nil, false, Actor{})
		require.NoError(t, err)
		assert.Equal(t, 1, cand.CompletedSections)
		assert.Equal(t, domain.StatusInProgress, cand.Status)
	})

	t.Run("下标越界", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOnboardingRepo()
		svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})
		id := repo.seedCandidate(1, 0, false)
		_, err := svc.UpdateSection(context.Background(), 1, id, 8, nil, true, Actor{})
		assert.ErrorIs(t, err, ErrInvalidSection)
	})
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("七个分区不许提交", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOnboardingRepo()
		svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})
		id := repo.seedCandidate(1, 7, false)

		err := svc.Submit(context.Background(), 1, id, Actor{ByCandidate: true})
		assert.ErrorIs(t, err, ErrSectionsIncomplete)
		assert.Zero(t, repo.candidates[id].SubmittedAt)
	})

	t.Run("正常提交", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOnboardingRepo()
		prd := &fakeOnboardingProducer{}
		svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), prd)
		id := repo.seedCandidate(1, 8, false)

		require.NoError(t, svc.Submit(context.Background(), 1, id, Actor{ByCandidate: true}))
		assert.Equal(t, domain.StatusSubmitted, repo.candidates[id].Status)
		assert.NotZero(t, repo.candidates[id].SubmittedAt)
		require.Len(t, prd.events, 1)
		assert.Equal(t, event.ActionSubmitted, prd.events[0].Action)
	})

	t.Run("重复提交被CAS拦下", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOnboardingRepo()
		svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})
		id := repo.seedCandidate(1, 8, false)

		require.NoError(t, svc.Submit(context.Background(), 1, id, Actor{}))
		err := svc.Submit(context.Background(), 1, id, Actor{})
		assert.ErrorIs(t, err, ErrAlreadySubmitted)
	})

	t.Run("令牌过期候选人不能提交职员可以", func(t *testing.T) {
		t.Parallel()
		repo := newFakeOnboardingRepo()
		svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})
		id := repo.seedCandidate(1, 8, true)

		err := svc.Submit(context.Background(), 1, id, Actor{ByCandidate: true})
		assert.ErrorIs(t, err, ErrTokenExpired)
		require.NoError(t, svc.Submit(context.Background(), 1, id, Actor{StaffID: 9}))
	})
}

func TestService_ValidateToken(t *testing.T) {
	t.Parallel()
	repo := newFakeOnboardingRepo()
	svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})

	fresh := repo.seedCandidate(1, 0, false)
	expired := repo.seedCandidate(1, 0, true)
	submitted := repo.seedCandidate(1, 8, false)
	cand := repo.candidates[submitted]
	cand.SubmittedAt = time.Now().UnixMilli()
	repo.candidates[submitted] = cand

	state, err := svc.ValidateToken(context.Background(), repo.candidates[fresh].AccessToken)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenState{Valid: true}, state)

	state, err = svc.ValidateToken(context.Background(), repo.candidates[expired].AccessToken)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenState{Expired: true}, state)

	state, err = svc.ValidateToken(context.Background(), repo.candidates[submitted].AccessToken)
	require.NoError(t, err)
	assert.Equal(t, domain.TokenState{AlreadySubmitted: true}, state)

	// 未知token三个位都是false，也不报错
	state, err = svc.ValidateToken(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Equal(t, domain.TokenState{}, state)
}

func TestService_ResolveByToken(t *testing.T) {
	t.Parallel()
	repo := newFakeOnboardingRepo()
	svc := NewService(repo, appmocks.NewMockService(gomock.NewController(t)), &fakeOnboardingProducer{})
	expired := repo.seedCandidate(1, 0, true)

	// 过期令牌不返回任何候选人数据
	_, err := svc.ResolveByToken(context.Background(), repo.candidates[expired].AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = svc.ResolveByToken(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCandidateNotFound)
}

func TestService_AwaitingOnboarding(t *testing.T) {
	t.Parallel()
	repo := newFakeOnboardingRepo()
	appSvc := appmocks.NewMockService(gomock.NewController(t))
	appSvc.EXPECT().List(gomock.Any(), int64(1), application.StageOfferAccepted, gomock.Any(), gomock.Any()).
		Return([]application.JobApplication{
			{ID: 100, DistrictID: 1, ApplicantName: "甲"},
			{ID: 101, DistrictID: 1, ApplicantName: "乙"},
		}, int64(2), nil)
	svc := NewService(repo, appSvc, &fakeOnboardingProducer{})
	id := repo.seedCandidate(1, 0, false)
	cand := repo.candidates[id]
	cand.ApplicationID = 100
	repo.candidates[id] = cand

	apps, err := svc.AwaitingOnboarding(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, int64(101), apps[0].ID)
}

// ---- fakes ----

type fakeOnboardingRepo struct {
	nextID     int64
	candidates map[int64]domain.Candidate
	sections   map[int64][]domain.Section
	audits     []domain.AuditLog
	emails     []domain.EmailLog
	documents  []domain.Document
}

func newFakeOnboardingRepo() *fakeOnboardingRepo {
	return &fakeOnboardingRepo{
		nextID:     1,
		candidates: make(map[int64]domain.Candidate),
		sections:   make(map[int64][]domain.Section),
	}
}

func (f *fakeOnboardingRepo) seedCandidate(district int64, completed int, tokenExpired bool) int64 {
	id := f.nextID
	f.nextID++
	expires := time.Now().Add(720 * time.Hour)
	if tokenExpired {
		expires = time.Now().Add(-time.Hour)
	}
	f.candidates[id] = domain.Candidate{
		ID:                id,
		DistrictID:        district,
		Name:              "测试候选人",
		Email:             "cand@example.com",
		Status:            domain.StatusOf(completed, 0),
		CompletedSections: completed,
		AccessToken:       seededToken(id),
		TokenExpiresAt:    expires.UnixMilli(),
	}
	secs := make([]domain.Section, 0, domain.SectionCount)
	for i, name := range domain.SectionNames {
		secs = append(secs, domain.Section{
			CandidateID: id, DistrictID: district,
			SectionName: name, SectionIndex: i,
			IsCompleted: i < completed,
		})
	}
	f.sections[id] = secs
	return id
}

func seededToken(id int64) string {
	return "token-" + string(rune('a'+id%26)) + "-fixed"
}

func (f *fakeOnboardingRepo) completeSection(candidateID int64, index int) {
	secs := f.sections[candidateID]
	secs[index].IsCompleted = true
	f.recount(candidateID)
}

func (f *fakeOnboardingRepo) recount(candidateID int64) {
	count := 0
	for _, sec := range f.sections[candidateID] {
		if sec.IsCompleted {
			count++
		}
	}
	cand := f.candidates[candidateID]
	cand.CompletedSections = count
	cand.Status = domain.StatusOf(count, cand.SubmittedAt)
	f.candidates[candidateID] = cand
}

func (f *fakeOnboardingRepo) CreateCandidate(_ context.Context, cand domain.Candidate) (int64, error) {
	id := f.nextID
	f.nextID++
	cand.ID = id
	f.candidates[id] = cand
	secs := make([]domain.Section, 0, domain.SectionCount)
	for i, name := range domain.SectionNames {
		secs = append(secs, domain.Section{
			CandidateID: id, DistrictID: cand.DistrictID,
			SectionName: name, SectionIndex: i,
			FormData: map[string]any{},
		})
	}
	f.sections[id] = secs
	return id, nil
}

func (f *fakeOnboardingRepo) FindCandidateByID(_ context.Context, district, id int64) (domain.Candidate, error) {
	cand, ok := f.candidates[id]
	if !ok || cand.DistrictID != district {
		return domain.Candidate{}, dao.ErrRecordNotFound
	}
	return cand, nil
}

func (f *fakeOnboardingRepo) FindCandidateByToken(_ context.Context, token string) (domain.Candidate, error) {
	for _, cand := range f.candidates {
		if cand.AccessToken == token {
			return cand, nil
		}
	}
	return domain.Candidate{}, dao.ErrRecordNotFound
}

func (f *fakeOnboardingRepo) ListCandidates(_ context.Context, district int64, status domain.Status, _, _ int) ([]domain.Candidate, error) {
	var res []domain.Candidate
	for _, cand := range f.candidates {
		if cand.DistrictID == district && (status == "" || cand.Status == status) {
			res = append(res, cand)
		}
	}
	return res, nil
}

func (f *fakeOnboardingRepo) CountCandidates(_ context.Context, district int64, status domain.Status) (int64, error) {
	list, _ := f.ListCandidates(nil, district, status, 0, 0)
	return int64(len(list)), nil
}

func (f *fakeOnboardingRepo) CountByStatus(_ context.Context, district int64, status domain.Status) (int64, error) {
	return f.CountCandidates(nil, district, status)
}

func (f *fakeOnboardingRepo) LinkedApplicationIDs(_ context.Context, district int64) ([]int64, error) {
	var ids []int64
	for _, cand := range f.candidates {
		if cand.DistrictID == district && cand.ApplicationID > 0 {
			ids = append(ids, cand.ApplicationID)
		}
	}
	return ids, nil
}

func (f *fakeOnboardingRepo) UpdateSection(_ context.Context, district, candidateID int64, section domain.Section) (domain.Candidate, error) {
	cand, ok := f.candidates[candidateID]
	if !ok || cand.DistrictID != district {
		return domain.Candidate{}, dao.ErrRecordNotFound
	}
	secs := f.sections[candidateID]
	secs[section.SectionIndex].FormData = section.FormData
	secs[section.SectionIndex].IsCompleted = section.IsCompleted
	f.recount(candidateID)
	return f.candidates[candidateID], nil
}

func (f *fakeOnboardingRepo) FindSections(_ context.Context, candidateID int64) ([]domain.Section, error) {
	return f.sections[candidateID], nil
}

func (f *fakeOnboardingRepo) MarkSubmitted(_ context.Context, district, candidateID, submittedAt int64) error {
	cand, ok := f.candidates[candidateID]
	if !ok || cand.DistrictID != district ||
		cand.SubmittedAt != 0 || cand.CompletedSections != domain.SectionCount {
		return dao.ErrAlreadySubmitted
	}
	cand.SubmittedAt = submittedAt
	cand.Status = domain.StatusSubmitted
	f.candidates[candidateID] = cand
	return nil
}

func (f *fakeOnboardingRepo) ReviewSection(_ context.Context, district, candidateID int64, sectionIndex int, comments string) error {
	cand, ok := f.candidates[candidateID]
	if !ok || cand.DistrictID != district {
		return dao.ErrRecordNotFound
	}
	secs := f.sections[candidateID]
	secs[sectionIndex].ReviewedByAdmin = true
	secs[sectionIndex].AdminComments = comments
	return nil
}

func (f *fakeOnboardingRepo) ReviewCandidate(_ context.Context, district, candidateID, staffID int64, notes string) error {
	cand, ok := f.candidates[candidateID]
	if !ok || cand.DistrictID != district {
		return dao.ErrRecordNotFound
	}
	cand.ReviewedBy = staffID
	cand.ReviewedAt = time.Now().UnixMilli()
	cand.AdminNotes = notes
	f.candidates[candidateID] = cand
	return nil
}

func (f *fakeOnboardingRepo) CreateDocument(_ context.Context, doc domain.Document) (int64, error) {
	doc.ID = int64(len(f.documents) + 1)
	f.documents = append(f.documents, doc)
	return doc.ID, nil
}

func (f *fakeOnboardingRepo) FindDocuments(_ context.Context, district, candidateID int64) ([]domain.Document, error) {
	var res []domain.Document
	for _, doc := range f.documents {
		if doc.DistrictID == district && doc.CandidateID == candidateID {
			res = append(res, doc)
		}
	}
	return res, nil
}

func (f *fakeOnboardingRepo) VerifyDocument(_ context.Context, district, docID, staffID int64, notes string) error {
	for i, doc := range f.documents {
		if doc.ID == docID && doc.DistrictID == district {
			f.documents[i].Verified = true
			f.documents[i].VerifiedBy = staffID
			f.documents[i].VerificationNotes = notes
			return nil
		}
	}
	return dao.ErrRecordNotFound
}

func (f *fakeOnboardingRepo) AppendAudit(_ context.Context, log domain.AuditLog) error {
	f.audits = append(f.audits, log)
	return nil
}

func (f *fakeOnboardingRepo) FindAuditLogs(_ context.Context, district, candidateID int64, _, _ int) ([]domain.AuditLog, error) {
	var res []domain.AuditLog
	for _, log := range f.audits {
		if log.DistrictID == district && log.CandidateID == candidateID {
			res = append(res, log)
		}
	}
	return res, nil
}

func (f *fakeOnboardingRepo) CreateEmailLog(_ context.Context, log domain.EmailLog) (int64, error) {
	f.emails = append(f.emails, log)
	return int64(len(f.emails)), nil
}

func (f *fakeOnboardingRepo) FindEmailLogs(_ context.Context, district, candidateID int64) ([]domain.EmailLog, error) {
	var res []domain.EmailLog
	for _, log := range f.emails {
		if log.DistrictID == district && log.CandidateID == candidateID {
			res = append(res, log)
		}
	}
	return res, nil
}

type fakeOnboardingProducer struct {
	events []event.OnboardingEvent
}

func (f *fakeOnboardingProducer) Produce(_ context.Context, evt event.OnboardingEvent) error {
	f.events = append(f.events, evt)
	return nil
}
