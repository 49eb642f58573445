package web

import (
	"github.com/ecodeclub/hireflow/internal/tenant/internal/domain"
)

type District struct {
	ID           int64          `json:"id,omitempty"`
	Name         string         `json:"name,omitempty"`
	Code         string         `json:"code,omitempty"`
	ContactEmail string         `json:"contactEmail,omitempty"`
	ContactPhone string         `json:"contactPhone,omitempty"`
	Address      string         `json:"address,omitempty"`
	Settings     map[string]any `json:"settings,omitempty"`
	Active       bool           `json:"active,omitempty"`
}

type SaveReq struct {
	District District `json:"district,omitempty"`
}

type ListReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type DetailReq struct {
	ID int64 `json:"id"`
}

func (d District) toDomain() domain.District {
	return domain.District{
		ID:           d.ID,
		Name:         d.Name,
		Code:         d.Code,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		Address:      d.Address,
		Settings:     d.Settings,
	}
}

func newDistrict(d domain.District) District {
	return District{
		ID:           d.ID,
		Name:         d.Name,
		Code:         d.Code,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		Address:      d.Address,
		Settings:     d.Settings,
		Active:       d.Active,
	}
}
