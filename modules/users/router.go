// Package users serves the create_user endpoint.
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions lists the services of the users module. Nil services are
// not mounted.
type RouterOptions struct {
	CreateUser Mountable
}

// Router returns the users module routes.
//
//	svc, err := users.NewCreateUserService(cfg, log, m, users.DefaultViews())
//	r.Mount("/", users.Router(users.RouterOptions{CreateUser: svc}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.CreateUser != nil {
		r.Mount("/create_user", opts.CreateUser.Handle())
	}
	return r
}
