package discord

import "errors"

var (
	ErrWebhookRequired  = errors.New("discord: webhook id and token are required")
	ErrUnexpectedStatus = errors.New("discord: unexpected status code")
)
