package http

import (
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-ligand/internal/api"
	"github.com/MKhiriev/go-ligand/internal/logger"
	"github.com/MKhiriev/go-ligand/internal/utils"
)

var swaggerUITemplate = template.Must(template.New("swagger-ui").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.UIURL}}swagger-ui.css">
</head>
<body>
  <div id="swagger-ui" data-spec-url="{{.SpecURL}}"></div>
  <script src="{{.UIURL}}swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: document.getElementById("swagger-ui").dataset.specUrl,
      dom_id: "#swagger-ui",
      deepLinking: true
    });
  </script>
</body>
</html>
`))

type swaggerUIPage struct {
	Title   string
	UIURL   string
	SpecURL string
}

func (h *Handler) getSpec(w http.ResponseWriter, r *http.Request) {
	data, err := h.api.SpecJSON()
	if err != nil {
		api.AbortError(w, r, err)
		return
	}

	utils.WriteRawJSON(w, data, http.StatusOK)
}

func (h *Handler) getSwaggerUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := swaggerUITemplate.Execute(w, swaggerUIPage{
		Title:   h.settings.APITitle,
		UIURL:   h.settings.OpenAPISwaggerUIURL,
		SpecURL: h.docsPath(h.settings.OpenAPIJSONPath),
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering swagger ui")
	}
}
