package handler

import (
	"encoding/json"
	"net/http"

	"github.com/northwestmeats/storefront/internal/api/dto"
	"github.com/northwestmeats/storefront/internal/api/respond"
	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/model"
	"github.com/northwestmeats/storefront/internal/service"
	"github.com/northwestmeats/storefront/internal/util"
)

type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	if adminService == nil {
		panic("adminService cannot be nil")
	}
	return &AdminHandler{adminService: adminService}
}

func convertAdminToDTO(admin *model.Admin) dto.AdminDTO {
	return dto.AdminDTO{
		ID:       admin.ID.Hex(),
		Username: admin.Username,
		Email:    admin.Email,
	}
}

func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	if err := h.adminService.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusCreated, nil, "Admin registered successfully!")
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ErrorJSON(w, apperr.New(apperr.BadRequestCode, "invalid request body"))
		return
	}

	result, err := h.adminService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, dto.LoginResponse{
		Token: result.Token,
		Admin: convertAdminToDTO(result.Admin),
	}, "Login successful!")
}

func (h *AdminHandler) Profile(w http.ResponseWriter, r *http.Request) {
	payload := util.GetTokenPayloadFromContext(r.Context())
	if payload == nil {
		respond.ErrorJSON(w, apperr.New(apperr.UnauthenticatedCode, ""))
		return
	}

	admin, err := h.adminService.Profile(r.Context(), payload.AdminID.Hex())
	if err != nil {
		respond.ErrorJSON(w, err)
		return
	}
	respond.SuccessJSON(w, http.StatusOK, convertAdminToDTO(admin), "")
}
