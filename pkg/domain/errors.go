package domain

import "errors"

var ErrNotFound = errors.New("not found")

// GenerationFallbackMessage is sent verbatim when the generation backend
// fails; the dispatch still counts as delivered and the cooldown stays
// consumed.
const GenerationFallbackMessage = "Sorry, I am having trouble thinking right now."
