// Package main implements corebornctl, the Coreborn map API server and
// its operational commands.
//
// The API collects community-contributed resource positions for the
// Coreborn world map, behind Steam OpenID login and a removal consensus
// scheme that lets the community clean up bad entries.
//
// # Quick Start
//
//	# Run database migrations
//	corebornctl db migrate
//
//	# Start the server
//	corebornctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - AUDIT_DATABASE_URL: optional separate database for audit messages
//   - COREBORN_CONFIG_PATH: directory holding coreborn.yml
//   - COREBORN_STEAM_API_KEY: Steam Web API key for profile lookups
//   - COREBORN_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8000)
package main
