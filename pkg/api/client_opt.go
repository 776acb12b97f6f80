package api

import "net/http"

// Opt adjusts an outgoing request right before it is sent.
type Opt interface {
	Apply(req *http.Request)
}

type bearerOpt string

// Bearer sets the Authorization header to "Bearer <token>".
func Bearer(token string) Opt {
	return bearerOpt(token)
}

func (o bearerOpt) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+string(o))
}
