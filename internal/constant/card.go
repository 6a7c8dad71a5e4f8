package constant

// CardType tags which payload table a card's data_id points into.
// This list is the single authoritative mapping; route validation and the
// deletion cascade both derive their dispatch from it.
type CardType string

const (
	CardTypeSource   CardType = "source"
	CardTypeQuestion CardType = "question"
	CardTypeInsight  CardType = "insight"
	CardTypeThought  CardType = "thought"
	CardTypeClaim    CardType = "claim"
)

var CardTypes = []CardType{
	CardTypeSource,
	CardTypeQuestion,
	CardTypeInsight,
	CardTypeThought,
	CardTypeClaim,
}

func (ct CardType) Valid() bool {
	switch ct {
	case CardTypeSource, CardTypeQuestion, CardTypeInsight, CardTypeThought, CardTypeClaim:
		return true
	}

	return false
}
