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
	OfferEventName = "offer_status_events"
)

const (
	ActionCreated  = "created"
	ActionAccepted = "accepted"
	ActionDeclined = "declined"
	ActionExpired  = "expired"
)

type OfferEvent struct {
	OfferID       int64  `json:"offerId"`
	OfferSN       string `json:"offerSN"`
	DistrictID    int64  `json:"districtId"`
	ApplicationID int64  `json:"applicationId"`
	Action        string `json:"action"`
	ApplicantName string `json:"applicantName"`
	Email         string `json:"email"`
	PositionTitle string `json:"positionTitle"`
	// Letter 按快照和占位符取值渲染好的信函文本
	Letter string `json:"letter"`
}
