// Package config loads runtime settings for vlr-matches.
//
// Settings come from the process environment, optionally seeded from a .env
// file in the working directory. Only DISCORD_WEBHOOK_URL is required, and only
// when messages are actually sent.
package config
