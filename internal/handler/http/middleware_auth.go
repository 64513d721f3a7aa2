package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/service"
	"github.com/MKhiriev/go-ligand/internal/utils"
)

// RoleRequired returns a middleware that admits only requests carrying a
// valid access token whose subject holds role.
//
// The token is read from the JWT_HEADER_NAME header with the JWT_HEADER_TYPE
// scheme and verified by [service.AuthService.ParseToken]. Requests are
// rejected with:
//   - 401 when the header is missing or malformed, the token is invalid or
//     it has expired;
//   - 500 when role is not part of ALLOWED_ROLES;
//   - 403 when the user does not hold role.
//
// On success the [models.User] is stored in the request context, see
// [utils.GetUserFromContext].
func (h *Handler) RoleRequired(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			tokenString, err := utils.ParseBearerToken(r.Header.Get(h.settings.JWTHeaderName), h.settings.JWTHeaderType)
			if err != nil {
				log.Debug().Err(err).Msg("no bearer token")
				api.Abort(w, r, http.StatusUnauthorized, msgMissingAuthorizationHeader)
				return
			}

			ctx := r.Context()
			user, err := h.services.AuthService.ParseToken(ctx, tokenString)
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				api.Abort(w, r, http.StatusUnauthorized, msgTokenExpired)
				return
			case errors.Is(err, service.ErrTokenMissing):
				api.Abort(w, r, http.StatusUnauthorized, msgMissingAuthorizationHeader)
				return
			case err != nil:
				api.Abort(w, r, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			if !h.settings.RoleAllowed(role) {
				log.Error().Str("role", role).Strs("allowed_roles", h.settings.AllowedRoles).Msg("endpoint requires a role outside ALLOWED_ROLES")
				api.Abort(w, r, http.StatusInternalServerError, msgRoleNotAllowed)
				return
			}

			if !slices.Contains(user.Roles, role) {
				log.Info().Str("sub", user.ID).Str("role", role).Msg("user lacks the required role")
				api.Abort(w, r, http.StatusForbidden, fmt.Sprintf(msgRoleRequiredFormat, role))
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
		})
	}
}
