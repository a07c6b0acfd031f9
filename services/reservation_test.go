package services

import (
	"errors"
	"testing"
	"time"

	"pgstay-backend/models"

	"gorm.io/gorm"
)

func makeRoom(id uint, price, availableBeds int) models.Room {
	r := models.Room{
		SharingType:    "2 Sharing",
		PricePerPerson: price,
		TotalBeds:      availableBeds + 1,
		AvailableBeds:  availableBeds,
		IsAvailable:    true,
	}
	r.Model = gorm.Model{ID: id}
	return r
}

func TestPickRepresentativeRoomSkipsSoldOut(t *testing.T) {
	// three rooms of the same tier priced 8000/8500/9000 with beds 0/2/1:
	// the cheapest room with a bed wins, not the sold-out cheapest
	rooms := []models.Room{
		makeRoom(1, 8000, 0),
		makeRoom(2, 8500, 2),
		makeRoom(3, 9000, 1),
	}

	got := pickRepresentativeRoom(rooms)
	if got == nil {
		t.Fatal("expected a room, got nil")
	}
	if got.PricePerPerson != 8500 {
		t.Errorf("picked price %d, want 8500", got.PricePerPerson)
	}
}

func TestPickRepresentativeRoomTieBreaksByCreationOrder(t *testing.T) {
	rooms := []models.Room{
		makeRoom(7, 8500, 1),
		makeRoom(4, 8500, 2),
	}
	got := pickRepresentativeRoom(rooms)
	if got == nil || got.ID != 4 {
		t.Errorf("picked %+v, want room id 4", got)
	}
}

func TestPickRepresentativeRoomAllSoldOut(t *testing.T) {
	rooms := []models.Room{
		makeRoom(1, 8000, 0),
		makeRoom(2, 8500, 0),
	}
	if got := pickRepresentativeRoom(rooms); got != nil {
		t.Errorf("expected nil, got room id %d", got.ID)
	}

	unavailable := makeRoom(3, 8000, 2)
	unavailable.IsAvailable = false
	if got := pickRepresentativeRoom([]models.Room{unavailable}); got != nil {
		t.Errorf("unavailable room must not be picked, got id %d", got.ID)
	}
}

func TestStayFromProperty(t *testing.T) {
	p := models.Property{
		Name:         "Sunrise Residency",
		PropertyType: models.PropertyTypeRoom,
		MonthlyPrice: 12000,
		IsAvailable:  true,
	}
	p.ID = 11

	stay, err := stayFromProperty(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stay.Kind != StayWholeProperty {
		t.Errorf("kind = %v, want StayWholeProperty", stay.Kind)
	}
	if stay.PricePerPerson != 12000 {
		t.Errorf("price = %d, want 12000", stay.PricePerPerson)
	}
	if stay.SecurityDepositPerPerson != nil {
		t.Errorf("deposit should stay nil so the quote falls back to 2x rent")
	}
	if stay.RoomID() != nil {
		t.Errorf("whole-property stay must have no room id")
	}

	q, err := QuoteStay(stay.PricePerPerson, stay.SecurityDepositPerPerson)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalAmount != 36000 || q.AdvanceAmount != 2400 {
		t.Errorf("quote = %+v, want total 36000 advance 2400", q)
	}
}

func TestStayFromPropertyUnavailable(t *testing.T) {
	p := models.Property{PropertyType: models.PropertyTypeRoom, MonthlyPrice: 12000, IsAvailable: false}
	if _, err := stayFromProperty(p); !errors.Is(err, ErrPropertyUnavailable) {
		t.Errorf("got %v, want ErrPropertyUnavailable", err)
	}
}

func validIntent() ReservationIntent {
	sharing := "2 Sharing"
	return ReservationIntent{
		PropertyID:     1,
		SharingType:    sharing,
		FullName:       "Asha Rao",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		MoveIn:         time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		DurationMonths: 3,
	}
}

func TestIntentValidateAccepts(t *testing.T) {
	if err := validIntent().Validate(); err != nil {
		t.Fatalf("valid intent rejected: %v", err)
	}
}

func TestIntentValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ReservationIntent)
		want   error
	}{
		{"missing name", func(i *ReservationIntent) { i.FullName = "" }, ErrInvalidIntent},
		{"bad email", func(i *ReservationIntent) { i.Email = "not-an-email" }, ErrInvalidIntent},
		{"short phone", func(i *ReservationIntent) { i.Phone = "987654321" }, ErrInvalidPhone},
		{"landline prefix", func(i *ReservationIntent) { i.Phone = "1234567890" }, ErrInvalidPhone},
		{"zero duration", func(i *ReservationIntent) { i.DurationMonths = 0 }, ErrInvalidIntent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent := validIntent()
			tc.mutate(&intent)
			if err := intent.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestIntentMoveOutDerivation(t *testing.T) {
	intent := validIntent()
	want := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	if got := intent.MoveOut(); !got.Equal(want) {
		t.Errorf("move-out = %v, want %v", got, want)
	}
}
