package dto

import (
	"github.com/Lucasteinmann/Aarebooking/internal/domains/boat/model"
	"github.com/Lucasteinmann/Aarebooking/shared"
	gDto "github.com/Lucasteinmann/Aarebooking/shared/dto"
	gModel "github.com/Lucasteinmann/Aarebooking/shared/model"
	"github.com/Lucasteinmann/Aarebooking/shared/timezone"
)

type CreateBoatRequest struct {
	ID             string  `json:"boat_id"         validate:"required,max=50"`
	Name           string  `json:"name"            validate:"required,max=100"`
	UnitPrice      float64 `json:"unit_price"      validate:"gte=0"`
	TotalInventory int     `json:"total_inventory" validate:"gte=0"`
	Active         *bool   `json:"active"          validate:"omitempty"`
}

func (c *CreateBoatRequest) ToModel(user string) model.Boat {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Boat{
		ID:             c.ID,
		Name:           c.Name,
		UnitPrice:      c.UnitPrice,
		TotalInventory: c.TotalInventory,
		Active:         active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBoatRequest struct {
	Name           string   `db:"name"            json:"name"            validate:"omitempty,max=100"`
	UnitPrice      *float64 `db:"unit_price"      json:"unit_price"      validate:"omitempty,gte=0"`
	TotalInventory *int     `db:"total_inventory" json:"total_inventory" validate:"omitempty,gte=0"`
	Active         *bool    `db:"active"          json:"active"          validate:"omitempty"`
}

type BoatResponse struct {
	ID             string  `json:"boat_id"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	TotalInventory int     `json:"total_inventory"`
	Active         bool    `json:"active"`
	gDto.Metadata
}

func (r *BoatResponse) FromModel(model model.Boat) {
	r.ID = model.ID
	r.Name = model.Name
	r.UnitPrice = model.UnitPrice
	r.TotalInventory = model.TotalInventory
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetBoatsResponse struct {
	Boats     []BoatResponse `json:"boats"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBoatsResponse) FromModels(models []model.Boat, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Boats = make([]BoatResponse, len(models))
	for i, mod := range models {
		r.Boats[i].FromModel(mod)
	}
}
