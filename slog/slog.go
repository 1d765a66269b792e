// Package slog provides log/slog decorators for the teamfood collaborators.
package slog
