// Package testinfra provides databases for tests that run the real GORM
// queries instead of repository mocks.
//
// NewSQLite opens a throwaway in-process database and is always available.
// NewMySQL (build tag "integration") starts a MySQL container through
// testcontainers-go and is needed for MySQL-only SQL such as YEAR()/MONTH():
//
//	go test -tags integration ./internal/repository/...
package testinfra
