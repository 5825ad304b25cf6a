package nlp

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// identitySeparator joins the identity fields. It is not expected to occur
// in normalized review content.
const identitySeparator = "||"

// ReviewID derives the content-addressed identity hash of a review from the
// five fields that define it. Every field passes through Normalize except the
// rating, which is stringified as-is. The hex SHA-256 digest is the sole
// deduplication key for ingestion and enrichment; two calls with equal inputs
// return bit-identical output.
func ReviewID(bank, text, date string, rating int, source string) string {
	base := strings.Join([]string{
		Normalize(bank),
		Normalize(text),
		Normalize(date),
		strconv.Itoa(rating),
		Normalize(source),
	}, identitySeparator)

	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])
}
