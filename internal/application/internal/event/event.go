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
	SubmittedEventName    = "application_submitted_events"
	StageChangedEventName = "application_stage_changed_events"
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
