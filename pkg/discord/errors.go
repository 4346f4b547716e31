package discord

import "errors"

var (
	ErrMissingToken   = errors.New("discord: bot token is required")
	ErrMissingChannel = errors.New("discord: channel id is required")
	ErrNotTextChannel = errors.New("discord: channel is not a text channel")
	ErrMissingAppID   = errors.New("discord: application id is required to register commands")
)
