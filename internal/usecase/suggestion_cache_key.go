package usecase

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

const suggestionKeyPattern = "suggest:event:*"

func suggestionCacheKey(eventID uuid.UUID) string {
	sum := sha256.Sum256([]byte(eventID.String()))
	return "suggest:event:" + hex.EncodeToString(sum[:])
}
