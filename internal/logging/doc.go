// Package logging builds the file-backed zap logger shared by every command.
package logging
