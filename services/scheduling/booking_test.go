package scheduling

import (
	"context"
	"sync"
	"testing"

	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookHappyPath(t *testing.T) {
	doctor := testDoctor("doc-1")
	patient := testPatient("pat-1")
	engine, repo, notifier := newTestEngine(doctor, patient)
	ctx := context.Background()

	appt, err := engine.Book(ctx, "pat-1", models.BookingRequest{
		DoctorID:  "doc-1",
		StartTime: "2024-06-01T10:00:00",
		Reason:    "  annual checkup  ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "doc-1", appt.DoctorID)
	assert.Equal(t, "pat-1", appt.PatientID)
	assert.Equal(t, "2024-06-01T10:00:00", appt.StartTime.String())
	assert.Equal(t, "2024-06-01T10:30:00", appt.EndTime.String())
	assert.Equal(t, "annual checkup", appt.Reason)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, 1, repo.insertCount())

	sent := notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "confirmed", sent[0].Kind)
	assert.Equal(t, appt.ID, sent[0].AppointmentID)
	assert.Equal(t, doctor.Name, sent[0].DoctorName)
	assert.Equal(t, patient.Email, sent[0].PatientEmail)
}

func TestBookAcceptsExplicitEndTime(t *testing.T) {
	engine, _, _ := newTestEngine(testDoctor("doc-1"), testPatient("pat-1"))

	appt, err := engine.Book(context.Background(), "pat-1", models.BookingRequest{
		DoctorID:  "doc-1",
		StartTime: "2024-06-01T10:00:00",
		EndTime:   "2024-06-01T10:30:00",
		Reason:    "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T10:30:00", appt.EndTime.String())
}

func TestBookValidationWritesNothing(t *testing.T) {
	engine, repo, notifier := newTestEngine(testDoctor("doc-1"), testPatient("pat-1"))
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.BookingRequest
	}{
		{"missing doctor", models.BookingRequest{StartTime: "2024-06-01T10:00:00", Reason: "x"}},
		{"empty reason", models.BookingRequest{DoctorID: "doc-1", StartTime: "2024-06-01T10:00:00", Reason: "   "}},
		{"bad timestamp", models.BookingRequest{DoctorID: "doc-1", StartTime: "June 1st, 10am", Reason: "x"}},
		{"off the hour", models.BookingRequest{DoctorID: "doc-1", StartTime: "2024-06-01T10:30:00", Reason: "x"}},
		{"before opening", models.BookingRequest{DoctorID: "doc-1", StartTime: "2024-06-01T08:00:00", Reason: "x"}},
		{"after last start", models.BookingRequest{DoctorID: "doc-1", StartTime: "2024-06-01T17:00:00", Reason: "x"}},
		{"wrong end time", models.BookingRequest{DoctorID: "doc-1", StartTime: "2024-06-01T10:00:00", EndTime: "2024-06-01T11:00:00", Reason: "x"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.Book(ctx, "pat-1", tc.req)
			require.Error(t, err)
			assert.Equal(t, CodeValidation, CodeOf(err))
		})
	}

	assert.Zero(t, repo.insertCount())
	assert.Empty(t, notifier.sent())
}

func TestBookUnknownDoctor(t *testing.T) {
	engine, repo, _ := newTestEngine(testPatient("pat-1"))

	_, err := engine.Book(context.Background(), "pat-1", models.BookingRequest{
		DoctorID:  "doc-missing",
		StartTime: "2024-06-01T10:00:00",
		Reason:    "checkup",
	})
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
	assert.Zero(t, repo.insertCount())
}

func TestBookNonDoctorTarget(t *testing.T) {
	// A valid user id that is not a doctor must read as unknown doctor.
	engine, _, _ := newTestEngine(testPatient("pat-1"), testPatient("pat-2"))

	_, err := engine.Book(context.Background(), "pat-1", models.BookingRequest{
		DoctorID:  "pat-2",
		StartTime: "2024-06-01T10:00:00",
		Reason:    "checkup",
	})
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestBookTakenSlotConflicts(t *testing.T) {
	engine, _, _ := newTestEngine(testDoctor("doc-1"), testPatient("pat-1"), testPatient("pat-2"))
	ctx := context.Background()

	_, err := engine.Book(ctx, "pat-1", models.BookingRequest{
		DoctorID:  "doc-1",
		StartTime: "2024-06-01T10:00:00",
		Reason:    "checkup",
	})
	require.NoError(t, err)

	_, err = engine.Book(ctx, "pat-2", models.BookingRequest{
		DoctorID:  "doc-1",
		StartTime: "2024-06-01T10:00:00",
		Reason:    "follow-up",
	})
	require.Error(t, err)
	assert.Equal(t, CodeSlotConflict, CodeOf(err))
}

func TestBookPatientDoubleBooking(t *testing.T) {
	// One patient cannot hold the same time with two doctors.
	engine, _, _ := newTestEngine(testDoctor("doc-1"), testDoctor("doc-2"), testPatient("pat-1"))
	ctx := context.Background()

	_, err := engine.Book(ctx, "pat-1", models.BookingRequest{
		DoctorID:  "doc-1",
		StartTime: "2024-06-01T10:00:00",
		Reason:    "checkup",
	})
	require.NoError(t, err)

	_, err = engine.Book(ctx, "pat-1", models.BookingRequest{
		DoctorID:  "doc-2",
		StartTime: "2024-06-01T10:00:00",
		Reason:    "second opinion",
	})
	require.Error(t, err)
	assert.Equal(t, CodeSlotConflict, CodeOf(err))
}

func TestBookConcurrentRace(t *testing.T) {
	engine, repo, _ := newTestEngine(testDoctor("doc-7"), testPatient("pat-1"), testPatient("pat-2"))
	ctx := context.Background()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, patient := range []string{"pat-1", "pat-2"} {
		wg.Add(1)
		go func(i int, patient string) {
			defer wg.Done()
			_, errs[i] = engine.Book(ctx, patient, models.BookingRequest{
				DoctorID:  "doc-7",
				StartTime: "2024-06-01T10:00:00",
				Reason:    "race for the same slot",
			})
		}(i, patient)
	}
	wg.Wait()

	var okCount, conflictCount int
	for _, err := range errs {
		if err == nil {
			okCount++
		} else if CodeOf(err) == CodeSlotConflict {
			conflictCount++
		}
	}
	assert.Equal(t, 1, okCount, "exactly one booking must win")
	assert.Equal(t, 1, conflictCount, "the loser must get a slot conflict")
	assert.Equal(t, 1, repo.insertCount())
}

func TestBookThenAvailabilityScenario(t *testing.T) {
	// Full pass over one doctor's day: empty grid, one booking, regenerated
	// availability, conflict on rebooking the taken slot.
	engine, _, _ := newTestEngine(testDoctor("d1"), testPatient("p1"), testPatient("p2"))
	ctx := context.Background()

	resp, err := engine.Availability(ctx, "d1", "2024-07-10")
	require.NoError(t, err)
	require.Len(t, resp.AvailableSlots, 8)

	_, err = engine.Book(ctx, "p1", models.BookingRequest{
		DoctorID:  "d1",
		StartTime: "2024-07-10T09:00:00",
		Reason:    "first visit",
	})
	require.NoError(t, err)

	resp, err = engine.Availability(ctx, "d1", "2024-07-10")
	require.NoError(t, err)
	assert.Len(t, resp.AvailableSlots, 7)
	assert.NotContains(t, slotStrings(resp.AvailableSlots), "2024-07-10T09:00:00")

	_, err = engine.Book(ctx, "p2", models.BookingRequest{
		DoctorID:  "d1",
		StartTime: "2024-07-10T09:00:00",
		Reason:    "first visit",
	})
	require.Error(t, err)
	assert.Equal(t, CodeSlotConflict, CodeOf(err))
}
