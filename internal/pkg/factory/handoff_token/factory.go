package handoff_token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"fastfare/internal/entities"
)

// suffixBytes 5 байт = 40 бит энтропии в суффиксе токена.
const suffixBytes = 5

const shipmentIDPrefix = "FFR-"

type TokenFactory struct{}

func New() *TokenFactory {
	return &TokenFactory{}
}

// IssueTokens выдает пару свежих токенов для одной отправки.
// Глобальную уникальность гарантируют уникальные индексы БД:
// при коллизии вызывающая сторона запрашивает новую пару.
func (f *TokenFactory) IssueTokens() (pickupToken, deliveryToken string, err error) {
	pickupToken, err = f.newToken(entities.PickupTokenType)
	if err != nil {
		return "", "", err
	}

	deliveryToken, err = f.newToken(entities.DeliveryTokenType)
	if err != nil {
		return "", "", err
	}

	return pickupToken, deliveryToken, nil
}

func (f *TokenFactory) NewShipmentID() (string, error) {
	suffix, err := randomSuffix()
	if err != nil {
		return "", fmt.Errorf("shipment id entropy: %w", err)
	}
	return shipmentIDPrefix + suffix, nil
}

func (f *TokenFactory) newToken(tokenType entities.HandoffTokenType) (string, error) {
	suffix, err := randomSuffix()
	if err != nil {
		return "", fmt.Errorf("token entropy: %w", err)
	}
	return tokenType.Prefix() + suffix, nil
}

func randomSuffix() (string, error) {
	buf := make([]byte, suffixBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
