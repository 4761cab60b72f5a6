// Package news provides use cases for managing news entities.
// It implements the validation pipeline and orchestration for creating,
// updating, deleting, and querying news, delegating persistence to the
// news repository.
package news

import (
	"fmt"

	"newsdesk/internal/domain/entity"
)

// Domain failures raised by the news use cases. The messages are part of the
// API contract and must not change without a client-facing version bump.

// ErrNewsNotFound indicates that no news with the given id exists.
func ErrNewsNotFound(id int64) *entity.Error {
	return entity.E(entity.KindNotFound, fmt.Sprintf("News with id %d not found.", id))
}

// ErrDuplicateTitle indicates that another news item already carries the title.
func ErrDuplicateTitle(title string) *entity.Error {
	return entity.E(entity.KindConflict, fmt.Sprintf("News with title \"%s\" already exists.", title))
}

// ErrTextTooShort indicates that the news body is below the minimum length.
func ErrTextTooShort() *entity.Error {
	return entity.E(entity.KindBadRequest,
		fmt.Sprintf("The news text must be at least %d characters long", entity.MinTextLength))
}

// ErrPastPublicationDate indicates a publication date strictly before now.
func ErrPastPublicationDate() *entity.Error {
	return entity.E(entity.KindBadRequest, "The publication date cannot be in the past.")
}
