// Package api handles incoming HTTP requests for the movie and user
// resources. It decodes request bodies, delegates to the resource services,
// and translates their outcomes into status codes and JSON bodies without
// exposing internal error detail to clients.
package api
