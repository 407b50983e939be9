// Package main provides the entry point for the GarantiCo website service.
// It initializes and runs a web server using the Fiber framework that serves
// the localized public marketing pages, a JSON API for products, categories
// and inquiries, and a session-gated admin panel for editing site content.
// The application uses gorm for data persistence and stores editable site
// content as JSON documents in a settings table.
package main
