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

package event

// 各业务模块发出的事件topic，这里只消费不生产
const (
	applicationSubmittedEvents = "application_submitted_events"
	stageChangedEvents         = "application_stage_changed_events"
	interviewScheduledEvents   = "interview_scheduled_events"
	offerStatusEvents          = "offer_status_events"
	onboardingEvents           = "onboarding_events"
)

type SubmittedEvent struct {
	ApplicationID int64  `json:"applicationId"`
	DistrictID    int64  `json:"districtId"`
	PositionID    int64  `json:"positionId"`
	ApplicantName string `json:"applicantName"`
	Email         string `json:"email"`
}

type StageChangedEvent struct {
	ApplicationID int64  `json:"applicationId"`
	DistrictID    int64  `json:"districtId"`
	ApplicantName string `json:"applicantName"`
	Email         string `json:"email"`
	FromStage     string `json:"fromStage"`
	ToStage       string `json:"toStage"`
}

type InterviewScheduledEvent struct {
	Action        string `json:"action"`
	InterviewID   int64  `json:"interviewId"`
	DistrictID    int64  `json:"districtId"`
	ApplicationID int64  `json:"applicationId"`
	ApplicantName string `json:"applicantName"`
	Email         string `json:"email"`
	StageName     string `json:"stageName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	MeetingLink   string `json:"meetingLink"`
}

type OfferEvent struct {
	OfferID       int64  `json:"offerId"`
	OfferSN       string `json:"offerSN"`
	DistrictID    int64  `json:"districtId"`
	ApplicationID int64  `json:"applicationId"`
	Action        string `json:"action"`
	ApplicantName string `json:"applicantName"`
	Email         string `json:"email"`
	PositionTitle string `json:"positionTitle"`
	Letter        string `json:"letter"`
}

type OnboardingEvent struct {
	CandidateID   int64  `json:"candidateId"`
	DistrictID    int64  `json:"districtId"`
	Action        string `json:"action"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Position      string `json:"position"`
	OnboardingURL string `json:"onboardingUrl,omitempty"`
	StartDate     int64  `json:"startDate,omitempty"`
}
