// Package routes declares HTTP routes as data and registers them on a ServeMux.
package routes

import (
	"net/http"

	"github.com/JaimeStill/litterlens/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler. OpenAPI is optional;
// routes without it are left out of the generated document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group organizes routes under a common prefix with shared tags. Children
// inherit the accumulated prefix of their parents.
type Group struct {
	Prefix   string
	Tags     []string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
	}
}

// Patterns returns the ServeMux patterns a group would register, in order.
func Patterns(group Group) []string {
	var patterns []string
	collect(&patterns, "", group)
	return patterns
}

// Describe adds the documented routes of each group to spec. Operations
// without tags take the group's tags.
func Describe(spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		describeGroup(spec, "", group)
	}
}

func describeGroup(spec *openapi.Spec, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}
		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}
		path := fullPrefix + route.Pattern
		if path == "" {
			path = "/"
		}
		spec.AddOperation(path, route.Method, &op)
	}
	for _, child := range group.Children {
		describeGroup(spec, fullPrefix, child)
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(pattern(route, fullPrefix), route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}

func collect(out *[]string, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		*out = append(*out, pattern(route, fullPrefix))
	}
	for _, child := range group.Children {
		collect(out, fullPrefix, child)
	}
}

func pattern(route Route, prefix string) string {
	path := prefix + route.Pattern
	if path == "" {
		path = "/"
	}
	if path == "/" {
		// exact match; a bare "/" pattern would otherwise claim every path
		path = "/{$}"
	}
	return route.Method + " " + path
}
