package services

import (
	"errors"
	"testing"

	"pgstay-backend/models"
)

func countedRoom(total, available int) models.Room {
	return models.Room{TotalBeds: total, AvailableBeds: available}
}

func TestMergeBedCountsRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name    string
		updates map[string]interface{}
	}{
		{"negative available", map[string]interface{}{"available_beds": float64(-3)}},
		{"zero total", map[string]interface{}{"total_beds": float64(0)}},
		{"negative total", map[string]interface{}{"total_beds": float64(-1)}},
		{"available above current total", map[string]interface{}{"available_beds": float64(5)}},
		{"both explicit, inverted", map[string]interface{}{"total_beds": float64(2), "available_beds": float64(4)}},
		{"non-numeric available", map[string]interface{}{"available_beds": "two"}},
		{"non-numeric total", map[string]interface{}{"total_beds": "many"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			room := countedRoom(3, 2)
			if err := mergeBedCounts(room, tc.updates); !errors.Is(err, ErrInvalidIntent) {
				t.Errorf("got %v, want ErrInvalidIntent", err)
			}
		})
	}
}

func TestMergeBedCountsClampsOnTotalShrink(t *testing.T) {
	room := countedRoom(4, 4)
	updates := map[string]interface{}{"total_beds": float64(2)}
	if err := mergeBedCounts(room, updates); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := updates["available_beds"]; !ok || got != 2 {
		t.Errorf("available_beds = %v, want clamped to 2", got)
	}
}

func TestMergeBedCountsAcceptsValidEdits(t *testing.T) {
	cases := []map[string]interface{}{
		{"available_beds": float64(0)},
		{"available_beds": float64(3)},
		{"total_beds": float64(5)},
		{"total_beds": float64(6), "available_beds": float64(6)},
		{"room_number": "204"}, // no bed keys at all
	}
	for _, updates := range cases {
		room := countedRoom(3, 2)
		if err := mergeBedCounts(room, updates); err != nil {
			t.Errorf("updates %v: unexpected error: %v", updates, err)
		}
	}
}
