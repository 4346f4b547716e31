package middleware

import (
	"teamcity-notifier/pkg/log"
)

// Middleware holds the dependencies shared by the gin middlewares.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
