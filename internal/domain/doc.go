// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/entrytype,
// domain/fieldeditor). This root package holds the sentinel errors and the
// field-level validation error that every sub-package wraps, so that adapters
// can map failures without knowing which entity raised them.
package domain
