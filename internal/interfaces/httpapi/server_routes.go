package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/catalog/roles", handler.ListRoles)
	mux.HandleFunc("GET /v1/catalog/roles/{roleID}/categories", handler.ListCategoriesByRole)
	mux.HandleFunc("GET /v1/catalog/categories/{categoryID}/specializations", handler.ListSpecializationsByCategory)
	mux.HandleFunc("GET /v1/catalog/experience-levels", handler.ListExperienceLevels)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedRoutingRoutes(mux, handler, verifier)
	registerAuthorizedOnboardingRoutes(mux, handler, verifier)
	registerAuthorizedSearchRoutes(mux, handler, verifier)
	registerAuthorizedClientResourceRoutes(mux, handler, verifier)
}

func registerAuthorizedRoutingRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/route/resolve", RequireAuth(verifier, http.HandlerFunc(handler.ResolveRoute)))
	mux.Handle("GET /v1/onboarding/resume-context", RequireAuth(verifier, http.HandlerFunc(handler.GetResumeContext)))
}

func registerAuthorizedOnboardingRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/onboarding/start", RequireAuth(verifier, http.HandlerFunc(handler.StartOnboarding)))
	mux.Handle("GET /v1/onboarding/progress", RequireAuth(verifier, http.HandlerFunc(handler.GetOnboardingProgress)))
	mux.Handle("PATCH /v1/onboarding/form", RequireAuth(verifier, http.HandlerFunc(handler.SaveOnboardingForm)))
	mux.Handle("POST /v1/onboarding/steps/advance", RequireAuth(verifier, http.HandlerFunc(handler.AdvanceOnboardingStep)))
	mux.Handle("POST /v1/onboarding/steps/back", RequireAuth(verifier, http.HandlerFunc(handler.BackOnboardingStep)))
	mux.Handle("POST /v1/onboarding/complete", RequireAuth(verifier, http.HandlerFunc(handler.CompleteOnboarding)))
	mux.Handle("POST /v1/onboarding/abandon", RequireAuth(verifier, http.HandlerFunc(handler.AbandonOnboarding)))
}

func registerAuthorizedSearchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/developers/search", RequireAuth(verifier, http.HandlerFunc(handler.SearchDevelopers)))
}

func registerAuthorizedClientResourceRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/organizations", RequireAuth(verifier, http.HandlerFunc(handler.CreateOrganization)))
	mux.Handle("GET /v1/organizations", RequireAuth(verifier, http.HandlerFunc(handler.ListOrganizations)))
	mux.Handle("GET /v1/organizations/{orgID}", RequireAuth(verifier, http.HandlerFunc(handler.GetOrganization)))
	mux.Handle("POST /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("GET /v1/teams", RequireAuth(verifier, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("POST /v1/hiring-personas", RequireAuth(verifier, http.HandlerFunc(handler.CreateHiringPersona)))
	mux.Handle("GET /v1/hiring-personas", RequireAuth(verifier, http.HandlerFunc(handler.ListHiringPersonas)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/reconcile-projections", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReconcileProjectionsJob)))
	mux.Handle("POST /v1/internal/jobs/onboarding-completed", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.HandleOnboardingCompletedJob)))
}
