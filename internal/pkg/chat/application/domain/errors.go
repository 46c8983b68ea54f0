package chat

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for every rule violation detected before any
// write. Specific violations wrap it so controllers can map the whole family
// with a single errors.Is check.
var ErrValidation = errors.New("chat: validation failed")

var (
	ErrTooFewParticipants     = fmt.Errorf("%w: a chat needs at least two distinct participants", ErrValidation)
	ErrRequesterNotIncluded   = fmt.Errorf("%w: the requester must be part of the participant set", ErrValidation)
	ErrDirectChatTitled       = fmt.Errorf("%w: direct chats carry no title", ErrValidation)
	ErrGroupTitleRequired     = fmt.Errorf("%w: group chats require a non-empty title", ErrValidation)
	ErrEmptyMessageContent    = fmt.Errorf("%w: message content must not be empty", ErrValidation)
	ErrMessageContentTooLong  = fmt.Errorf("%w: message content exceeds the configured bound", ErrValidation)
)

// Domain-level errors outside the validation family.
var (
	// ErrDirectChatExists signals that a direct chat for the same unordered
	// pair of users already exists (unique pair invariant).
	ErrDirectChatExists = errors.New("chat: direct chat already exists")

	// ErrChatNotFound signals a reference to a chat id that does not exist.
	ErrChatNotFound = errors.New("chat: chat not found")

	// ErrNotMember signals that the acting user has no membership in the chat.
	ErrNotMember = errors.New("chat: user is not a member of the chat")
)
