// Package auth provides the session-based authentication middleware for the
// admin panel pages and the admin JSON API.
package auth
