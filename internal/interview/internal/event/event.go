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
	ScheduledEventName = "interview_scheduled_events"

	ActionScheduled = "scheduled"
	ActionCompleted = "completed"
)

type ScheduledEvent struct {
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
