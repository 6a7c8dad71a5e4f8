package model

import (
	constant "github.com/papermapper/papermapper/internal/constant"
)

// Payload is implemented by the five typed rows a card can point at.
// Attachment references and their original filenames are comma-delimited
// aligned lists; both are always read and written together.
type Payload interface {
	PayloadID() uint
	AttachmentLists() (files string, filenames string)
	SetAttachmentLists(files string, filenames string)
}

// PayloadForCardType returns a zero value of the payload model behind a
// card type. It is the only place card types are mapped to tables; adding
// a card type without extending this switch will not compile against
// callers that require exhaustive handling.
func PayloadForCardType(t constant.CardType) (Payload, bool) {
	switch t {
	case constant.CardTypeSource:
		return &SourceMaterial{}, true
	case constant.CardTypeQuestion:
		return &Question{}, true
	case constant.CardTypeInsight:
		return &Insight{}, true
	case constant.CardTypeThought:
		return &Thought{}, true
	case constant.CardTypeClaim:
		return &Claim{}, true
	}

	return nil, false
}
