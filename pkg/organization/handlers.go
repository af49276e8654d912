// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskhive/workspace-service/internal/authorization"
	httptypes "github.com/taskhive/workspace-service/internal/http/types"
	"github.com/taskhive/workspace-service/internal/logging"
	"github.com/taskhive/workspace-service/internal/monitoring"
	"github.com/taskhive/workspace-service/internal/storage"
	"github.com/taskhive/workspace-service/internal/tracing"
	"github.com/taskhive/workspace-service/pkg/authentication"
)

type TitleRequest struct {
	Title string `json:"title" validate:"required,max=256"`
}

type JoinRequest struct {
	Code string `json:"code" validate:"required"`
}

type RoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type TransferRequest struct {
	PrincipalID string `json:"principal_id" validate:"required"`
}

type ScopeMemberRequest struct {
	PrincipalID string `json:"principal_id" validate:"required"`
	Role        string `json:"role" validate:"required"`
}

type API struct {
	service ServiceInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

// RegisterEndpoints mounts the organization routes. Every route assumes
// the authentication middleware already ran.
func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Route("/api/v1/orgs", func(r chi.Router) {
		r.Post("/", a.handleCreate)
		r.Get("/", a.handleList)
		r.Post("/join", a.handleJoin)

		r.Route("/{orgID}", func(r chi.Router) {
			r.Get("/", a.handleGet)
			r.Patch("/", a.handleUpdate)
			r.Delete("/", a.handleDelete)
			r.Post("/join-code", a.handleRotateJoinCode)
			r.Post("/leave", a.handleLeave)
			r.Post("/transfer-ownership", a.handleTransferOwnership)

			r.Get("/members", a.handleListMembers)
			r.Patch("/members/{principalID}/role", a.handleChangeRole)
			r.Patch("/members/{principalID}/status", a.handleSetStatus)
			r.Delete("/members/{principalID}", a.handleRemoveMember)

			r.Route("/teams", func(r chi.Router) {
				r.Post("/", a.handleCreateTeam)
				r.Get("/", a.handleListTeams)
				r.Route("/{scopeID}", func(r chi.Router) {
					r.Patch("/", a.handleUpdateTeam)
					r.Delete("/", a.handleDeleteTeam)
					a.registerScopeMemberRoutes(r, authorization.ScopeTeam)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", a.handleCreateProject)
				r.Get("/", a.handleListProjects)
				r.Route("/{scopeID}", func(r chi.Router) {
					r.Patch("/", a.handleUpdateProject)
					r.Delete("/", a.handleDeleteProject)
					r.Post("/transfer-manager", a.handleTransferProjectManager)
					a.registerScopeMemberRoutes(r, authorization.ScopeProject)
				})
			})
		})
	})
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleCreate")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	payload := new(TitleRequest)
	if !a.decode(w, r, payload) {
		return
	}

	org, err := a.service.CreateOrganization(ctx, principalID, payload.Title)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusCreated, org)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleList")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	orgs, err := a.service.ListOrganizations(ctx, principalID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, orgs)
}

func (a *API) handleJoin(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleJoin")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	payload := new(JoinRequest)
	if !a.decode(w, r, payload) {
		return
	}

	membership, err := a.service.JoinByCode(ctx, principalID, payload.Code)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, membership)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleGet")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	org, err := a.service.GetOrganization(ctx, principalID, chi.URLParam(r, "orgID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, org)
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleUpdate")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	payload := new(TitleRequest)
	if !a.decode(w, r, payload) {
		return
	}

	if err := a.service.UpdateOrganization(ctx, principalID, chi.URLParam(r, "orgID"), payload.Title); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleDelete")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	if err := a.service.DeleteOrganization(ctx, principalID, chi.URLParam(r, "orgID")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleRotateJoinCode(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleRotateJoinCode")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	code, err := a.service.RotateJoinCode(ctx, principalID, chi.URLParam(r, "orgID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, map[string]string{"join_code": code})
}

func (a *API) handleLeave(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleLeave")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	if err := a.service.Leave(ctx, principalID, chi.URLParam(r, "orgID")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleTransferOwnership")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	payload := new(TransferRequest)
	if !a.decode(w, r, payload) {
		return
	}

	if err := a.service.TransferOwnership(ctx, principalID, chi.URLParam(r, "orgID"), payload.PrincipalID); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleListMembers")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	members, err := a.service.ListMembers(ctx, principalID, chi.URLParam(r, "orgID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, members)
}

func (a *API) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleChangeRole")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	payload := new(RoleRequest)
	if !a.decode(w, r, payload) {
		return
	}

	err := a.service.ChangeRole(ctx, principalID, chi.URLParam(r, "orgID"), chi.URLParam(r, "principalID"), authorization.Role(payload.Role))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleSetStatus")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	payload := new(StatusRequest)
	if !a.decode(w, r, payload) {
		return
	}

	err := a.service.SetStatus(ctx, principalID, chi.URLParam(r, "orgID"), chi.URLParam(r, "principalID"), authorization.Status(payload.Status))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleRemoveMember")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	if err := a.service.RemoveMember(ctx, principalID, chi.URLParam(r, "orgID"), chi.URLParam(r, "principalID")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := a.validate.Struct(payload); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// serviceError maps domain errors onto the HTTP error taxonomy.
func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrResourceNotFound),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, ErrMemberNotFound),
		errors.Is(err, ErrInvalidCode):
		a.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, authorization.ErrNotAMember),
		errors.Is(err, authorization.ErrBanned),
		errors.Is(err, authorization.ErrInsufficientRole):
		a.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrLastOwner),
		errors.Is(err, ErrOwnerImmune),
		errors.Is(err, ErrNotActiveMember):
		a.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidStatus):
		a.writeError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("internal error: %v", err)
		a.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (a *API) writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Status: status, Data: data}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(httptypes.Response{Status: status, Message: message}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
