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
	"github.com/ecodeclub/hireflow/internal/offer/internal/domain"
)

type Offer struct {
	ID            int64  `json:"id,omitempty"`
	SN            string `json:"sn,omitempty"`
	ApplicationID int64  `json:"applicationId,omitempty"`
	TemplateID    int64  `json:"templateId,omitempty"`

	Salary         string `json:"salary,omitempty"`
	PositionTitle  string `json:"positionTitle,omitempty"`
	OfferDate      int64  `json:"offerDate,omitempty"`
	StartDate      int64  `json:"startDate,omitempty"`
	ExpirationDate int64  `json:"expirationDate,omitempty"`

	Status         string `json:"status,omitempty"`
	AcceptedDate   int64  `json:"acceptedDate,omitempty"`
	DeclinedReason string `json:"declinedReason,omitempty"`

	Utime int64 `json:"utime,omitempty"`
}

// PublicOffer 凭SN访问的候选人视图，不暴露内部ID和模板配置
type PublicOffer struct {
	SN             string `json:"sn"`
	PositionTitle  string `json:"positionTitle,omitempty"`
	Salary         string `json:"salary,omitempty"`
	OfferDate      int64  `json:"offerDate,omitempty"`
	StartDate      int64  `json:"startDate,omitempty"`
	ExpirationDate int64  `json:"expirationDate,omitempty"`
	Status         string `json:"status"`
	Letter         string `json:"letter,omitempty"`
}

type OfferTemplate struct {
	ID           int64    `json:"id,omitempty"`
	Name         string   `json:"name,omitempty"`
	TemplateText string   `json:"templateText,omitempty"`
	Fields       []string `json:"fields,omitempty"`
	Utime        int64    `json:"utime,omitempty"`
}

type HiredEmployee struct {
	ID            int64  `json:"id,omitempty"`
	OfferID       int64  `json:"offerId,omitempty"`
	ApplicationID int64  `json:"applicationId,omitempty"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	PositionTitle string `json:"positionTitle,omitempty"`
	HireDate      int64  `json:"hireDate,omitempty"`
}

type CreateReq struct {
	ApplicationID  int64          `json:"applicationId"`
	TemplateID     int64          `json:"templateId"`
	TemplateData   map[string]any `json:"templateData"`
	Salary         string         `json:"salary"`
	PositionTitle  string         `json:"positionTitle"`
	OfferDate      int64          `json:"offerDate"`
	StartDate      int64          `json:"startDate"`
	ExpirationDate int64          `json:"expirationDate"`
}

type ListReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type SNReq struct {
	SN string `json:"sn"`
}

type DeclineReq struct {
	SN     string `json:"sn"`
	Reason string `json:"reason"`
}

type ExpiringReq struct {
	Days int `json:"days"`
}

type TemplateSaveReq struct {
	Name         string `json:"name"`
	TemplateText string `json:"templateText"`
}

type PageReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (r CreateReq) toDomain() domain.Offer {
	return domain.Offer{
		ApplicationID:  r.ApplicationID,
		TemplateID:     r.TemplateID,
		TemplateData:   r.TemplateData,
		Salary:         r.Salary,
		PositionTitle:  r.PositionTitle,
		OfferDate:      r.OfferDate,
		StartDate:      r.StartDate,
		ExpirationDate: r.ExpirationDate,
	}
}

func newOffer(offer domain.Offer) Offer {
	return Offer{
		ID:             offer.ID,
		SN:             offer.SN,
		ApplicationID:  offer.ApplicationID,
		TemplateID:     offer.TemplateID,
		Salary:         offer.Salary,
		PositionTitle:  offer.PositionTitle,
		OfferDate:      offer.OfferDate,
		StartDate:      offer.StartDate,
		ExpirationDate: offer.ExpirationDate,
		Status:         offer.Status.String(),
		AcceptedDate:   offer.AcceptedDate,
		DeclinedReason: offer.DeclinedReason,
		Utime:          offer.Utime,
	}
}

func newPublicOffer(offer domain.Offer, letter string) PublicOffer {
	return PublicOffer{
		SN:             offer.SN,
		PositionTitle:  offer.PositionTitle,
		Salary:         offer.Salary,
		OfferDate:      offer.OfferDate,
		StartDate:      offer.StartDate,
		ExpirationDate: offer.ExpirationDate,
		Status:         offer.Status.String(),
		Letter:         letter,
	}
}
