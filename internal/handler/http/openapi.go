package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/service"
	"github.com/MKhiriev/go-ligand/internal/utils"
	"github.com/MKhiriev/go-ligand/models"
)

type clientLinkFunc func(ctx context.Context, usePrivateURL bool) (models.ClientDownload, error)

func (h *Handler) openAPIBlueprint() *api.Blueprint {
	bp := api.NewBlueprint("openapi", "/openapi", "Download generated OpenAPI clients of this service.")

	responses := api.Options(
		api.WithQuery(models.ClientDownloadQuery{}),
		api.WithResponse(http.StatusOK, models.ClientDownload{}, "Client download"),
		api.WithResponse(http.StatusUnprocessableEntity, api.HTTPError{}, "Invalid query arguments"),
	)

	bp.Route(http.MethodGet, "/typescript-axios/", h.clientLink(h.services.OpenAPIClientService.TypescriptAxiosLink),
		api.WithOperationID("getTypescriptAxiosClient"),
		api.WithSummary("Generate a Typescript Axios client"),
		responses,
	)
	bp.Route(http.MethodGet, "/python/", h.clientLink(h.services.OpenAPIClientService.PythonLink),
		api.WithOperationID("getPythonClient"),
		api.WithSummary("Generate a Python client"),
		responses,
	)

	return bp
}

func (h *Handler) clientLink(link clientLinkFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var query models.ClientDownloadQuery
		if err := api.DecodeQuery(r, &query); err != nil {
			api.AbortError(w, r, err)
			return
		}

		download, err := link(r.Context(), query.UsePrivateURL)
		if errors.Is(err, service.ErrClientGeneration) {
			api.Abort(w, r, http.StatusInternalServerError, fmt.Sprintf(msgGeneratorFailedFormat, h.settings.OpenAPIGenServerURL))
			return
		}
		if err != nil {
			api.AbortError(w, r, err)
			return
		}

		utils.WriteJSON(w, download, http.StatusOK)
	}
}
