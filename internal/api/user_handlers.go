package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentacar/internal/entities"
	httperr "rentacar/internal/errors"
	"rentacar/internal/service"
)

type UserReservationHandler struct {
	Service *service.ReservationService
}

func NewUserReservationHandler(svc *service.ReservationService) *UserReservationHandler {
	return &UserReservationHandler{Service: svc}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), httperr.StatusForError(err))
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *UserReservationHandler) ListAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entities.FromVehicles(h.Service.ListAvailableVehicles()))
}

func (h *UserReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	res, err := h.Service.Book(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.FromReservation(res))
}

func (h *UserReservationHandler) ListMyReservations(w http.ResponseWriter, r *http.Request) {
	user := mux.Vars(r)["user"]
	writeJSON(w, http.StatusOK, entities.FromReservations(h.Service.ListForUser(user)))
}

func (h *UserReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.CancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.Cancel(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation cancelled"})
}

func (h *UserReservationHandler) PayReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	url, err := h.Service.Pay(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":      "Payment registered",
		"checkout_url": url,
	})
}
