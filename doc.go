// Package main provides the entry point for the Tablecraft site builder.
// It initializes and runs a web server using the Fiber framework that hosts
// multi-tenant restaurant marketing sites, a JSON content/media API consumed
// by the visual editor, and a review/analytics dashboard. The application
// uses gorm for data persistence and S3-compatible object storage for
// uploaded media.
package main
