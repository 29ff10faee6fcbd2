package request

import (
	"strings"
	"time"

	"waste_pickup/internal/domain/entities"
)

type AvailableSlotsQuery struct {
	Date     string `form:"date" binding:"required"`
	Category string `form:"category" binding:"required"`
}

// Day parses the YYYY-MM-DD date. Only the calendar fields are used.
func (q AvailableSlotsQuery) Day() (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(q.Date))
}

func (q AvailableSlotsQuery) WasteCategory() entities.WasteCategory {
	return entities.WasteCategory(strings.ToLower(strings.TrimSpace(q.Category)))
}
