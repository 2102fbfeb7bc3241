package confirmation

import "strings"

func isValidShipmentID(shipmentID string) bool {
	return strings.TrimSpace(shipmentID) != ""
}

func isValidID(id int64) bool {
	return id > 0
}

// parseScanPayload строго разбирает sid=<shipmentId>&token=<token>.
// Лишние ключи, пустые значения и любой другой порядок полей отклоняются.
func parseScanPayload(raw string) (shipmentID, token string, err error) {
	pairs := strings.Split(raw, "&")
	if len(pairs) != 2 {
		return "", "", ErrMalformedScanPayload
	}

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || value == "" {
			return "", "", ErrMalformedScanPayload
		}

		switch key {
		case "sid":
			if shipmentID != "" {
				return "", "", ErrMalformedScanPayload
			}
			shipmentID = value
		case "token":
			if token != "" {
				return "", "", ErrMalformedScanPayload
			}
			token = value
		default:
			return "", "", ErrMalformedScanPayload
		}
	}

	if shipmentID == "" || token == "" {
		return "", "", ErrMalformedScanPayload
	}

	return shipmentID, token, nil
}
