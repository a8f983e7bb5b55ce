// Package cards turns reducer state into display records.
//
// A Page is what every presentation surface consumes: the terminal UI, the
// HTML export and the text digest. Formatting rules for amounts, stipends
// and dates live here so all three surfaces agree.
package cards
