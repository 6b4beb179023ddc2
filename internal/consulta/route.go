package consulta

import (
	dErrors "remessa/pkg/domain-errors"
)

// Route selects which entity search is active. It controls the backend
// endpoint dispatched to and which detail view is rendered.
type Route string

const (
	RouteNone           Route = ""
	RoutePessoaFisica   Route = "pessoa-fisica"
	RoutePessoaJuridica Route = "pessoa-juridica"
	RouteSocios         Route = "socios"
)

// ParseRoute validates a route selector coming from the client.
func ParseRoute(s string) (Route, error) {
	switch Route(s) {
	case RoutePessoaFisica, RoutePessoaJuridica, RouteSocios:
		return Route(s), nil
	case RouteNone:
		return RouteNone, nil
	default:
		return RouteNone, dErrors.New(dErrors.CodeValidation, "tipo de consulta desconhecido: "+s)
	}
}
