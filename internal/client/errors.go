package client

import "errors"

var (
	errNoServices = errors.New("client services are not provided")
	errNoUI       = errors.New("user interface is not provided")
)
