package response

import (
	"tab-kiosk/internal/domain/catalog"
	"tab-kiosk/internal/usecase"
)

type ItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int    `json:"priceCents"`
}

func FromItem(item catalog.Item) ItemResponse {
	return ItemResponse{
		ID:         item.ID(),
		Name:       item.Name(),
		PriceCents: item.PriceCents(),
	}
}

func FromItems(items []catalog.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = FromItem(item)
	}
	return out
}

type BalanceResponse struct {
	Status string `json:"status"`
	Cents  *int   `json:"cents,omitempty"`
}

type LastResultResponse struct {
	NewBalanceCents *int   `json:"newBalanceCents,omitempty"`
	FailureMessage  string `json:"failureMessage,omitempty"`
}

type SessionResponse struct {
	DisplayID         string              `json:"displayId"`
	RememberID        bool                `json:"rememberId"`
	Balance           BalanceResponse     `json:"balance"`
	SelectedItem      *ItemResponse       `json:"selectedItem,omitempty"`
	Quantity          int                 `json:"quantity"`
	Query             string              `json:"query"`
	TotalCents        int                 `json:"totalCents"`
	AfterBookingCents *int                `json:"afterBookingCents,omitempty"`
	BookingInFlight   bool                `json:"bookingInFlight"`
	LastResult        *LastResultResponse `json:"lastResult,omitempty"`
}

func FromSessionView(view usecase.SessionView) SessionResponse {
	resp := SessionResponse{
		DisplayID:         view.DisplayID,
		RememberID:        view.RememberID,
		Quantity:          view.Quantity,
		Query:             view.Query,
		TotalCents:        view.TotalCents,
		AfterBookingCents: view.AfterBookingCents,
		BookingInFlight:   view.BookingInFlight,
	}

	resp.Balance = BalanceResponse{Status: string(view.Balance.Status)}
	if cents, known := view.Balance.Known(); known {
		resp.Balance.Cents = &cents
	}

	if view.SelectedItem != nil {
		item := FromItem(*view.SelectedItem)
		resp.SelectedItem = &item
	}

	if view.LastResult != nil {
		resp.LastResult = &LastResultResponse{
			NewBalanceCents: view.LastResult.NewBalanceCents,
			FailureMessage:  view.LastResult.FailureMessage,
		}
	}

	return resp
}

type CommitResponse struct {
	NewBalanceCents *int            `json:"newBalanceCents"`
	Session         SessionResponse `json:"session"`
}
