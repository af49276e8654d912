// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive/workspace-service/internal/authorization"
	"github.com/taskhive/workspace-service/pkg/authentication"
)

func (a *API) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleCreateTeam")
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

	team, err := a.service.CreateTeam(ctx, principalID, chi.URLParam(r, "orgID"), payload.Title)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusCreated, team)
}

func (a *API) handleListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleListTeams")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	teams, err := a.service.ListTeams(ctx, principalID, chi.URLParam(r, "orgID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, teams)
}

func (a *API) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleUpdateTeam")
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

	if err := a.service.UpdateTeam(ctx, principalID, chi.URLParam(r, "orgID"), chi.URLParam(r, "scopeID"), payload.Title); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleDeleteTeam")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	if err := a.service.DeleteTeam(ctx, principalID, chi.URLParam(r, "orgID"), chi.URLParam(r, "scopeID")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleCreateProject")
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

	project, err := a.service.CreateProject(ctx, principalID, chi.URLParam(r, "orgID"), payload.Title)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusCreated, project)
}

func (a *API) handleListProjects(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleListProjects")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	projects, err := a.service.ListProjects(ctx, principalID, chi.URLParam(r, "orgID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, projects)
}

func (a *API) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleUpdateProject")
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

	if err := a.service.UpdateProject(ctx, principalID, chi.URLParam(r, "orgID"), chi.URLParam(r, "scopeID"), payload.Title); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleDeleteProject")
	defer span.End()

	principalID, ok := authentication.GetPrincipalID(ctx)
	if !ok {
		a.writeError(w, http.StatusUnauthorized, "token missing")
		return
	}

	if err := a.service.DeleteProject(ctx, principalID, chi.URLParam(r, "orgID"), chi.URLParam(r, "scopeID")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

func (a *API) handleTransferProjectManager(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organization.API.handleTransferProjectManager")
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

	if err := a.service.TransferProjectManager(ctx, principalID, chi.URLParam(r, "orgID"), chi.URLParam(r, "scopeID"), payload.PrincipalID); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeResponse(w, http.StatusOK, nil)
}

// registerScopeMemberRoutes mounts member management under a team or
// project subtree; the handlers are shared between both scope kinds.
func (a *API) registerScopeMemberRoutes(r chi.Router, kind authorization.ScopeKind) {
	r.Get("/members", a.handleListScopeMembers(kind))
	r.Post("/members", a.handleAddScopeMember(kind))
	r.Patch("/members/{principalID}/role", a.handleSetScopeMemberRole(kind))
	r.Patch("/members/{principalID}/status", a.handleSetScopeMemberStatus(kind))
	r.Delete("/members/{principalID}", a.handleRemoveScopeMember(kind))
}

func (a *API) handleListScopeMembers(kind authorization.ScopeKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "organization.API.handleListScopeMembers")
		defer span.End()

		principalID, ok := authentication.GetPrincipalID(ctx)
		if !ok {
			a.writeError(w, http.StatusUnauthorized, "token missing")
			return
		}

		members, err := a.service.ListScopeMembers(ctx, principalID, chi.URLParam(r, "orgID"), kind, chi.URLParam(r, "scopeID"))
		if err != nil {
			a.serviceError(w, err)
			return
		}

		a.writeResponse(w, http.StatusOK, members)
	}
}

func (a *API) handleAddScopeMember(kind authorization.ScopeKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "organization.API.handleAddScopeMember")
		defer span.End()

		principalID, ok := authentication.GetPrincipalID(ctx)
		if !ok {
			a.writeError(w, http.StatusUnauthorized, "token missing")
			return
		}

		payload := new(ScopeMemberRequest)
		if !a.decode(w, r, payload) {
			return
		}

		membership, err := a.service.AddScopeMember(ctx, principalID, chi.URLParam(r, "orgID"), kind, chi.URLParam(r, "scopeID"), payload.PrincipalID, authorization.Role(payload.Role))
		if err != nil {
			a.serviceError(w, err)
			return
		}

		a.writeResponse(w, http.StatusCreated, membership)
	}
}

func (a *API) handleSetScopeMemberRole(kind authorization.ScopeKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "organization.API.handleSetScopeMemberRole")
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

		err := a.service.SetScopeMemberRole(ctx, principalID, chi.URLParam(r, "orgID"), kind, chi.URLParam(r, "scopeID"), chi.URLParam(r, "principalID"), authorization.Role(payload.Role))
		if err != nil {
			a.serviceError(w, err)
			return
		}

		a.writeResponse(w, http.StatusOK, nil)
	}
}

func (a *API) handleSetScopeMemberStatus(kind authorization.ScopeKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "organization.API.handleSetScopeMemberStatus")
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

		err := a.service.SetScopeMemberStatus(ctx, principalID, chi.URLParam(r, "orgID"), kind, chi.URLParam(r, "scopeID"), chi.URLParam(r, "principalID"), authorization.Status(payload.Status))
		if err != nil {
			a.serviceError(w, err)
			return
		}

		a.writeResponse(w, http.StatusOK, nil)
	}
}

func (a *API) handleRemoveScopeMember(kind authorization.ScopeKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "organization.API.handleRemoveScopeMember")
		defer span.End()

		principalID, ok := authentication.GetPrincipalID(ctx)
		if !ok {
			a.writeError(w, http.StatusUnauthorized, "token missing")
			return
		}

		err := a.service.RemoveScopeMember(ctx, principalID, chi.URLParam(r, "orgID"), kind, chi.URLParam(r, "scopeID"), chi.URLParam(r, "principalID"))
		if err != nil {
			a.serviceError(w, err)
			return
		}

		a.writeResponse(w, http.StatusOK, nil)
	}
}
