package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"rentacar/internal/entities"
	"rentacar/internal/service"
)

type AdminHandler struct {
	Service *service.AdminService
}

func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

func (h *AdminHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var req entities.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	v, err := h.Service.AddVehicle(r.Context(), req.ID, req.Model, req.Plate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entities.FromVehicle(v))
}

func (h *AdminHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req entities.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateVehicleModel(r.Context(), id, req.Model); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle updated"})
}

func (h *AdminHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Service.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted"})
}

func (h *AdminHandler) UpdateVehicleStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req entities.VehicleStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateVehicleStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle status updated"})
}

func (h *AdminHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	model := r.URL.Query().Get("model")
	writeJSON(w, http.StatusOK, entities.FromVehicles(h.Service.ListVehicles(model)))
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entities.FromReservations(h.Service.ListReservations()))
}

func (h *AdminHandler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	var req entities.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateReservationStatus(r.Context(), req.VehicleID, req.UserID, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation status updated"})
}
