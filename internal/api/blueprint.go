package api

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/google/uuid"
)

// Blueprint is a named group of routes sharing a URL prefix. Its name is
// used as the OpenAPI tag of every operation it holds.
type Blueprint struct {
	Name        string
	Prefix      string
	Description string

	routes []route
}

type route struct {
	method  string
	pattern string
	handler http.Handler
	cfg     routeConfig
}

type routeConfig struct {
	summary     string
	description string
	operationID string
	query       any
	body        any
	responses   []response
	security    []string
	middlewares []func(http.Handler) http.Handler
}

type response struct {
	status      int
	value       any
	description string
}

// RouteOption configures a single route of a [Blueprint].
type RouteOption func(*routeConfig)

// NewBlueprint returns an empty blueprint mounted under prefix.
func NewBlueprint(name, prefix, description string) *Blueprint {
	return &Blueprint{Name: name, Prefix: prefix, Description: description}
}

// Route adds a route. pattern follows chi syntax and is relative to the
// blueprint prefix. Routes are mounted by [API.RegisterBlueprint].
func (b *Blueprint) Route(method, pattern string, handler http.HandlerFunc, opts ...RouteOption) *Blueprint {
	var cfg routeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b.routes = append(b.routes, route{
		method:  strings.ToUpper(method),
		pattern: pattern,
		handler: handler,
		cfg:     cfg,
	})

	return b
}

func (b *Blueprint) path(pattern string) string {
	if !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}

	return strings.TrimSuffix(b.Prefix, "/") + pattern
}

// WithSummary sets the operation summary.
func WithSummary(summary string) RouteOption {
	return func(c *routeConfig) { c.summary = summary }
}

// WithDescription sets the operation description.
func WithDescription(description string) RouteOption {
	return func(c *routeConfig) { c.description = description }
}

// WithOperationID sets the operation id used by generated clients.
func WithOperationID(id string) RouteOption {
	return func(c *routeConfig) { c.operationID = id }
}

// WithQuery documents the fields of the struct v as query parameters. The
// `mapstructure` tag names the parameter, as in [DecodeQuery].
func WithQuery(v any) RouteOption {
	return func(c *routeConfig) { c.query = v }
}

// WithRequestBody documents v as the required JSON request body.
func WithRequestBody(v any) RouteOption {
	return func(c *routeConfig) { c.body = v }
}

// WithResponse documents a response. A nil v documents a response without
// a body.
func WithResponse(status int, v any, description string) RouteOption {
	return func(c *routeConfig) {
		c.responses = append(c.responses, response{status: status, value: v, description: description})
	}
}

// WithMiddleware wraps the route handler with mws, outermost first.
func WithMiddleware(mws ...func(http.Handler) http.Handler) RouteOption {
	return func(c *routeConfig) { c.middlewares = append(c.middlewares, mws...) }
}

// WithSecurity marks the operation as requiring the named security scheme.
func WithSecurity(scheme string) RouteOption {
	return func(c *routeConfig) { c.security = append(c.security, scheme) }
}

// Options combines several options into one.
func Options(opts ...RouteOption) RouteOption {
	return func(c *routeConfig) {
		for _, opt := range opts {
			opt(c)
		}
	}
}

func (rt route) operation(tag string) (*openapi3.Operation, error) {
	op := openapi3.NewOperation()
	op.Tags = []string{tag}
	op.Summary = rt.cfg.summary
	op.Description = rt.cfg.description
	op.OperationID = rt.cfg.operationID

	for _, name := range pathParams(rt.pattern) {
		op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()))
	}

	if rt.cfg.query != nil {
		params, err := queryParameters(rt.cfg.query)
		if err != nil {
			return nil, err
		}
		for _, p := range params {
			op.AddParameter(p)
		}
	}

	if rt.cfg.body != nil {
		ref, err := schemaRef(rt.cfg.body)
		if err != nil {
			return nil, err
		}
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref),
		}
	}

	for _, resp := range rt.cfg.responses {
		r := openapi3.NewResponse().WithDescription(resp.description)
		if resp.value != nil {
			ref, err := schemaRef(resp.value)
			if err != nil {
				return nil, err
			}
			r = r.WithJSONSchemaRef(ref)
		}
		op.AddResponse(resp.status, r)
	}

	errRef, err := schemaRef(HTTPError{})
	if err != nil {
		return nil, err
	}
	op.AddResponse(0, openapi3.NewResponse().WithDescription("Default error response").WithJSONSchemaRef(errRef))

	if len(rt.cfg.security) > 0 {
		req := openapi3.NewSecurityRequirement()
		for _, scheme := range rt.cfg.security {
			req = req.Authenticate(scheme)
		}
		op.Security = openapi3.NewSecurityRequirements().With(req)
	}

	return op, nil
}

var uuidType = reflect.TypeOf(uuid.UUID{})

// customizeSchema describes uuid.UUID as a string and applies the `format`
// and `description` struct tags.
func customizeSchema(_ string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	if t == uuidType {
		*schema = *openapi3.NewUUIDSchema()
	}
	if format := tag.Get("format"); format != "" {
		schema.Format = format
	}
	if description := tag.Get("description"); description != "" {
		schema.Description = description
	}

	return nil
}

func schemaRef(v any) (*openapi3.SchemaRef, error) {
	ref, err := openapi3gen.NewSchemaRefForValue(v, nil, openapi3gen.SchemaCustomizer(customizeSchema))
	if err != nil {
		return nil, fmt.Errorf("%w for %T: %w", ErrBuildingSchema, v, err)
	}

	return ref, nil
}

func queryParameters(v any) ([]*openapi3.Parameter, error) {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: query type %T is not a struct", ErrBuildingSchema, v)
	}

	gen := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(customizeSchema))

	var params []*openapi3.Parameter
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := tagName(f, "mapstructure")
		if name == "-" {
			continue
		}

		ref, err := gen.GenerateSchemaRef(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%w for query field %s: %w", ErrBuildingSchema, f.Name, err)
		}

		p := openapi3.NewQueryParameter(name).
			WithSchema(ref.Value).
			WithRequired(strings.Contains(f.Tag.Get("validate"), "required"))
		if description := f.Tag.Get("description"); description != "" {
			p = p.WithDescription(description)
		}
		params = append(params, p)
	}

	return params, nil
}

func tagName(f reflect.StructField, key string) string {
	name, _, _ := strings.Cut(f.Tag.Get(key), ",")
	if name == "" {
		return f.Name
	}

	return name
}

var chiParam = regexp.MustCompile(`\{([^}:]+)(:[^}]*)?\}`)

// openAPIPath strips chi regexp constraints from path parameters.
func openAPIPath(path string) string {
	return chiParam.ReplaceAllString(path, "{$1}")
}

func pathParams(pattern string) []string {
	var names []string
	for _, m := range chiParam.FindAllStringSubmatch(pattern, -1) {
		names = append(names, m[1])
	}

	return names
}
