package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tide/internal/domains/settings/dto"
)

func TestSetStopSellRequest_Key(t *testing.T) {
	req := dto.SetStopSellRequest{
		Date:     "2026-12-24",
		RoomType: "Deluxe",
		Closed:   true,
	}

	assert.Equal(t, "2026-12-24_Deluxe", req.Key())
}

func TestUpdateTaxSettingsRequest_Empty(t *testing.T) {
	assert.True(t, (&dto.UpdateTaxSettingsRequest{}).Empty())

	rate := 7.5
	assert.False(t, (&dto.UpdateTaxSettingsRequest{Rate: &rate}).Empty())
}
