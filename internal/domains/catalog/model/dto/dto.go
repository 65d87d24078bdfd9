package dto

import (
	"tripgate/internal/domains/catalog/model"
	"tripgate/internal/domains/seatmap"
	gDto "tripgate/shared/dto"
)

// ListPage is the listing envelope the gateway exposes: the entity slice plus
// pagination flags derived from the upstream page.
type ListPage[T any] struct {
	Data []T           `json:"data"`
	Meta gDto.PageMeta `json:"meta"`
}

func (p *ListPage[T]) FromPage(page gDto.Page, data []T) {
	p.Data = data
	if p.Data == nil {
		p.Data = []T{}
	}

	p.Meta.FromPage(page)
}

type RoomDetailResponse struct {
	Room         model.Room        `json:"room"`
	SimilarRooms []model.Room      `json:"similar_rooms"`
	Bookings     []model.DateRange `json:"bookings"`
}

type ApartmentDetailResponse struct {
	Apartment model.Apartment   `json:"apartment"`
	Bookings  []model.DateRange `json:"bookings"`
}

type JourneyDetailResponse struct {
	Journey model.Journey `json:"journey"`
	Seats   seatmap.Grid  `json:"seats"`
}

type RetreatDetailResponse struct {
	Retreat model.Retreat `json:"retreat"`
}
