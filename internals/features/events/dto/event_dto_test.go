package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"eventpoint_backend/internals/constants"
	model "eventpoint_backend/internals/features/events/model"
)

var validate = validator.New()

func TestCreateEventRequestToModel(t *testing.T) {
	req := CreateEventRequest{
		EventTitle:       "  Seminar Go  ",
		EventDescription: "Belajar Go bareng",
		EventPointValue:  50,
		EventDate:        "2025-06-01",
		EventTime:        "14:00",
		EventMaxStudent:  30,
	}

	m := req.ToModel()

	assert.Equal(t, "Seminar Go", m.EventTitle)
	assert.Equal(t, 50, m.EventPointValue)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), m.EventDate)
	assert.Equal(t, 0, m.EventStudentEnrolled)
	assert.Equal(t, constants.EventTypeInside, m.EventType)
}

func TestCreateEventRequestToModelKeepsExplicitType(t *testing.T) {
	req := CreateEventRequest{
		EventTitle:       "Bakti sosial",
		EventDescription: "Kegiatan luar",
		EventPointValue:  20,
		EventDate:        "2025-06-01",
		EventTime:        "08:00",
		EventMaxStudent:  10,
		EventType:        constants.EventTypeOutside,
	}

	assert.Equal(t, constants.EventTypeOutside, req.ToModel().EventType)
}

func TestCreateEventRequestValidation(t *testing.T) {
	bad := CreateEventRequest{
		EventTitle:       "ab", // terlalu pendek
		EventDescription: "x",
		EventPointValue:  10,
		EventDate:        "01-06-2025", // format salah
		EventTime:        "14:00",
		EventMaxStudent:  0,
	}
	assert.Error(t, validate.Struct(bad))

	good := CreateEventRequest{
		EventTitle:       "Seminar Go",
		EventDescription: "Belajar Go bareng",
		EventPointValue:  10,
		EventDate:        "2025-06-01",
		EventTime:        "14:00",
		EventMaxStudent:  5,
	}
	assert.NoError(t, validate.Struct(good))
}

func TestCreateEventRequestAllowsZeroPointValue(t *testing.T) {
	// Event gratis (0 poin) sah; hanya nilai negatif yang ditolak
	free := CreateEventRequest{
		EventTitle:       "Kelas perkenalan",
		EventDescription: "Sesi gratis tanpa poin",
		EventPointValue:  0,
		EventDate:        "2025-06-01",
		EventTime:        "14:00",
		EventMaxStudent:  5,
	}
	assert.NoError(t, validate.Struct(free))
	assert.Equal(t, 0, free.ToModel().EventPointValue)

	negative := free
	negative.EventPointValue = -1
	assert.Error(t, validate.Struct(negative))
}

func TestCreateOutsideEventRequestAllowsZeroPointValue(t *testing.T) {
	free := CreateOutsideEventRequest{
		OutsideEventTitle:       "Kerja bakti RT",
		OutsideEventDescription: "Kegiatan sukarela",
		OutsideEventPointValue:  0,
		OutsideEventDate:        "2025-06-01",
	}
	assert.NoError(t, validate.Struct(free))

	negative := free
	negative.OutsideEventPointValue = -5
	assert.Error(t, validate.Struct(negative))
}

func TestUpdateEventRequestApplyToModelPartial(t *testing.T) {
	m := &model.EventModel{
		EventTitle:      "Lama",
		EventPointValue: 10,
		EventTime:       "09:00",
	}

	newTitle := "Baru"
	newPoint := 25
	req := UpdateEventRequest{
		EventTitle:      &newTitle,
		EventPointValue: &newPoint,
	}
	req.ApplyToModel(m)

	assert.Equal(t, "Baru", m.EventTitle)
	assert.Equal(t, 25, m.EventPointValue)
	assert.Equal(t, "09:00", m.EventTime) // tidak dikirim → tidak berubah
}

func TestToEventResponse(t *testing.T) {
	m := &model.EventModel{
		EventTitle:           "Seminar",
		EventMaxStudent:      30,
		EventStudentEnrolled: 12,
	}

	res := ToEventResponse(m)
	assert.Equal(t, "Seminar", res.EventTitle)
	assert.Equal(t, 30, res.EventMaxStudent)
	assert.Equal(t, 12, res.EventStudentEnrolled)
}
