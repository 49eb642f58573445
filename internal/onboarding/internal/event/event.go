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

const (
	OnboardingEventName = "onboarding_events"
)

const (
	ActionInvited   = "invited"
	ActionSubmitted = "submitted"
)

type OnboardingEvent struct {
	CandidateID int64  `json:"candidateId"`
	DistrictID  int64  `json:"districtId"`
	Action      string `json:"action"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	// OnboardingURL 凭token的填写入口，仅invited事件携带
	OnboardingURL string `json:"onboardingUrl,omitempty"`
	StartDate     int64  `json:"startDate,omitempty"`
}
