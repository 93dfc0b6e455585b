package errors

import (
	"fmt"
	"net/http"
	"testing"

	"rentacar/internal/booking"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{booking.ErrNotFound, http.StatusNotFound},
		{booking.ErrDuplicateID, http.StatusConflict},
		{booking.ErrReservationConflict, http.StatusConflict},
		{booking.ErrNotAvailable, http.StatusConflict},
		{booking.ErrAlreadyTerminal, http.StatusConflict},
		{booking.ErrVehicleInUse, http.StatusConflict},
		{booking.ErrInvalidDateFormat, http.StatusBadRequest},
		{booking.ErrInvalidDateRange, http.StatusBadRequest},
		{booking.ErrInvalidStatus, http.StatusBadRequest},
		{booking.ErrMissingField, http.StatusBadRequest},
		{fmt.Errorf("%w: vehicle id, model and plate are required", booking.ErrMissingField), http.StatusBadRequest},
		{fmt.Errorf("something else"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := StatusForError(c.err); got != c.want {
			t.Errorf("StatusForError(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
