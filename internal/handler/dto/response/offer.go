package response

import (
	"offers-service/internal/domain/offer"
	"offers-service/internal/usecase/queries"
)

type OfferResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Type      string            `json:"type"`
	Name      string            `json:"name"`
	Guests    int64             `json:"guests"`
	Price     int64             `json:"price"`
	Rooms     int64             `json:"rooms"`
	Address   string            `json:"address"`
	Checkin   string            `json:"checkin,omitempty"`
	Checkout  string            `json:"checkout,omitempty"`
	Location  *LocationResponse `json:"location,omitempty"`
	Avatar    *ImageResponse    `json:"avatar,omitempty"`
	Preview   *ImageResponse    `json:"preview,omitempty"`
	CreatedAt int64             `json:"created_at,omitempty"`
}

type LocationResponse struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

type ImageResponse struct {
	Name     string `json:"name"`
	MimeType string `json:"mimetype"`
}

// FromOffer shapes a freshly created offer, before any read-side round trip.
func FromOffer(o *offer.Offer) *OfferResponse {
	resp := &OfferResponse{
		ID:       o.ID.String(),
		Title:    o.Title,
		Type:     o.Type,
		Name:     o.Name,
		Guests:   o.Guests,
		Price:    o.Price,
		Rooms:    o.Rooms,
		Address:  o.Address,
		Checkin:  o.Checkin,
		Checkout: o.Checkout,
	}
	if o.Location != nil {
		resp.Location = &LocationResponse{X: o.Location.X, Y: o.Location.Y}
	}
	if o.Avatar != nil {
		resp.Avatar = &ImageResponse{Name: o.Avatar.Name, MimeType: o.Avatar.MediaType}
	}
	if o.Preview != nil {
		resp.Preview = &ImageResponse{Name: o.Preview.Name, MimeType: o.Preview.MediaType}
	}
	return resp
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	resp := &OfferResponse{
		ID:        v.ID.String(),
		Title:     v.Title,
		Type:      v.Type,
		Name:      v.Name,
		Guests:    v.Guests,
		Price:     v.Price,
		Rooms:     v.Rooms,
		Address:   v.Address,
		Checkin:   v.Checkin,
		Checkout:  v.Checkout,
		CreatedAt: v.CreatedAt.Unix(),
	}
	if v.Location != nil {
		resp.Location = &LocationResponse{X: v.Location.X, Y: v.Location.Y}
	}
	if v.Avatar != nil {
		resp.Avatar = &ImageResponse{Name: v.Avatar.Name, MimeType: v.Avatar.MediaType}
	}
	if v.Preview != nil {
		resp.Preview = &ImageResponse{Name: v.Preview.Name, MimeType: v.Preview.MediaType}
	}
	return resp
}

func FromOfferViews(views []*queries.OfferView) []*OfferResponse {
	res := make([]*OfferResponse, len(views))
	for i, v := range views {
		res[i] = FromOfferView(v)
	}
	return res
}
