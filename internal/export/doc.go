// Package export writes a cards.Page to files outside the terminal: a static
// HTML page and a plain-text digest suitable for pasting into a chat.
package export
