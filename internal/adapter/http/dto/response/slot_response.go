package response

import "waste_pickup/internal/domain/entities"

type AvailableSlotsResponse struct {
	Date     string         `json:"date"`
	Category string         `json:"category"`
	Slots    []SlotResponse `json:"slots"`
}

func FromAvailableSlots(date string, category entities.WasteCategory, slots []entities.SlotWindow) AvailableSlotsResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, FromSlot(s))
	}
	return AvailableSlotsResponse{Date: date, Category: string(category), Slots: out}
}
