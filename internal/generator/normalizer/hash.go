package normalizer

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"hangar-service/internal/generator/models"
)

// Hash: содержательный хеш нормализованной конфигурации. encoding/json сортирует ключи
// map, поэтому одинаковые конфигурации дают одинаковый хеш.
func Hash(b models.Building) (string, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("marshal building: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
