package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ligand"
)

// Widget is the stored representation of a widget.
type Widget struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// WidgetCreate is the request body creating a widget.
type WidgetCreate struct {
	Name  string `json:"name" validate:"required,max=64" description:"Unique widget name"`
	Color string `json:"color,omitempty" validate:"omitempty,oneof=grey red green blue"`
}

var widgetColumns = []string{"id", "name", "color"}

func scanWidget(row ligand.RowScanner) (Widget, error) {
	var w Widget
	err := row.Scan(&w.ID, &w.Name, &w.Color)
	return w, err
}

type widgets struct {
	app *ligand.App
}

func registerWidgets(app *ligand.App) error {
	h := widgets{app: app}

	bp := ligand.NewBlueprint("widgets", "/widgets", "Widget inventory.")
	bp.Route(http.MethodGet, "/", h.list,
		ligand.WithSummary("List widgets"),
		ligand.WithQuery(ligand.PaginationParams{}),
		ligand.WithResponse(http.StatusOK, []Widget{}, "A page of widgets"),
		app.RoleRequired("user"),
	)
	bp.Route(http.MethodPost, "/", h.create,
		ligand.WithSummary("Create a widget"),
		ligand.WithRequestBody(WidgetCreate{}),
		ligand.WithResponse(http.StatusCreated, Widget{}, "The created widget"),
		ligand.WithResponse(http.StatusConflict, ligand.HTTPError{}, "Name already taken"),
		app.RoleRequired("admin"),
	)
	bp.Route(http.MethodGet, "/{id:[0-9]+}", h.get,
		ligand.WithSummary("Get a widget"),
		ligand.WithResponse(http.StatusOK, Widget{}, "The widget"),
		ligand.WithResponse(http.StatusNotFound, ligand.HTTPError{}, "Unknown widget"),
		app.RoleRequired("user"),
	)
	bp.Route(http.MethodDelete, "/{id:[0-9]+}", h.delete,
		ligand.WithSummary("Delete a widget"),
		ligand.WithResponse(http.StatusNoContent, nil, "Deleted"),
		ligand.WithResponse(http.StatusPreconditionFailed, ligand.HTTPError{}, "Stale ETag"),
		app.RoleRequired("admin"),
	)

	return app.RegisterBlueprint(bp)
}

func (h widgets) list(w http.ResponseWriter, r *http.Request) {
	page, err := ligand.ParsePagination(r)
	if err != nil {
		ligand.AbortError(w, r, err)
		return
	}

	q := h.app.DB.Builder().Select(widgetColumns...).From("widgets").OrderBy("id")
	items, meta, err := ligand.Paginate(r.Context(), h.app.DB, q, page, scanWidget)
	if err != nil {
		ligand.AbortError(w, r, err)
		return
	}

	if err = ligand.SetPaginationHeader(w, meta); err != nil {
		ligand.AbortError(w, r, err)
		return
	}
	ligand.WriteJSON(w, items, http.StatusOK)
}

func (h widgets) create(w http.ResponseWriter, r *http.Request) {
	var body WidgetCreate
	if err := ligand.DecodeJSON(r, &body); err != nil {
		ligand.AbortError(w, r, err)
		return
	}
	if body.Color == "" {
		body.Color = "grey"
	}

	if _, err := h.app.DB.Exec(r.Context(), h.app.DB.Builder().
		Insert("widgets").
		Columns("name", "color").
		Values(body.Name, body.Color)); err != nil {
		if errors.Is(err, ligand.ErrAlreadyExists) {
			ligand.Abort(w, r, http.StatusConflict, fmt.Sprintf("A widget named '%s' already exists.", body.Name))
			return
		}
		ligand.AbortError(w, r, err)
		return
	}

	widget, err := h.byName(r, body.Name)
	if err != nil {
		ligand.AbortError(w, r, err)
		return
	}

	ligand.WriteJSON(w, widget, http.StatusCreated)
}

func (h widgets) get(w http.ResponseWriter, r *http.Request) {
	widget, err := h.byID(r)
	if err != nil {
		ligand.AbortError(w, r, err, "Widget not found.")
		return
	}

	ligand.WriteWithETag(w, r, http.StatusOK, widget)
}

func (h widgets) delete(w http.ResponseWriter, r *http.Request) {
	widget, err := h.byID(r)
	if err != nil {
		ligand.AbortError(w, r, err, "Widget not found.")
		return
	}

	if err = ligand.CheckIfMatch(r, widget); err != nil {
		ligand.AbortError(w, r, err)
		return
	}

	if _, err = h.app.DB.Exec(r.Context(), h.app.DB.Builder().
		Delete("widgets").
		Where(squirrel.Eq{"id": widget.ID})); err != nil {
		ligand.AbortError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h widgets) byID(r *http.Request) (Widget, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return Widget{}, errors.Join(ligand.ErrNotFound, err)
	}

	return ligand.GetOne(r.Context(), h.app.DB,
		h.app.DB.Builder().Select(widgetColumns...).From("widgets").Where(squirrel.Eq{"id": id}),
		scanWidget)
}

func (h widgets) byName(r *http.Request, name string) (Widget, error) {
	return ligand.GetOne(r.Context(), h.app.DB,
		h.app.DB.Builder().Select(widgetColumns...).From("widgets").Where(squirrel.Eq{"name": name}),
		scanWidget)
}
