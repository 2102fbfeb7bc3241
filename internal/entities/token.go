package entities

import "strings"

type HandoffTokenType string

const (
	PickupTokenType   HandoffTokenType = "PCK"
	DeliveryTokenType HandoffTokenType = "DEL"
)

func (t HandoffTokenType) String() string {
	return string(t)
}

func (t HandoffTokenType) Prefix() string {
	return string(t) + "-"
}

// TokenTypeOf определяет тип токена по префиксу, ok=false для чужих префиксов.
func TokenTypeOf(token string) (HandoffTokenType, bool) {
	switch {
	case strings.HasPrefix(token, PickupTokenType.Prefix()):
		return PickupTokenType, true
	case strings.HasPrefix(token, DeliveryTokenType.Prefix()):
		return DeliveryTokenType, true
	default:
		return "", false
	}
}
