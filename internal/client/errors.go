package client

import "errors"

var ErrNoUserID = errors.New("no user id configured")
