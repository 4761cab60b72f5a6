// Package entity defines the core domain entities and the domain failure
// taxonomy for the application. It contains the fundamental business objects
// such as News, along with the business constants the validation rules build on.
package entity

import "time"

// MinTextLength is the minimum number of characters a news body must have.
// A text of exactly MinTextLength characters is accepted.
const MinTextLength = 500

// News represents a news article entity in the system.
// ID and CreatedAt are system-assigned and immutable; every other field is
// replaced wholesale on update.
type News struct {
	ID              int64
	Author          string
	Title           string
	Text            string
	PublicationDate time.Time
	FirstHand       bool
	CreatedAt       time.Time
}
