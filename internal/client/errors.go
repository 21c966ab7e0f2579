package client

import "errors"

var errNoServices = errors.New("client app requires storages and services")
