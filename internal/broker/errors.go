package broker

import "errors"

var (
	ErrEmptyBrokerURL = errors.New("broker url is empty")
	ErrPublishFailed  = errors.New("failed to publish event")
)
