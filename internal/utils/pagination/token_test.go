package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	startTime := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 5, 10, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(startTime, createdAt)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedStart, decodedCreatedAt, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, startTime, decodedStart, "Sort time should match after decode")
	assert.Equal(t, createdAt, decodedCreatedAt, "Created at time should match after decode")

	// Zero values survive the round trip too.
	zeroTime := time.Time{}
	zeroToken := EncodeToken(zeroTime, zeroTime)
	decodedZeroStart, decodedZeroCreated, err := DecodeToken(zeroToken)
	assert.NoError(t, err)
	assert.Equal(t, zeroTime, decodedZeroStart)
	assert.Equal(t, zeroTime, decodedZeroCreated)
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Base64 of a single timestamp with no separator.
	invalidToken := "MjAyMy0wNS0xNVQwMDowMDowMFo="
	_, _, err = DecodeToken(invalidToken)
	assert.Error(t, err, "Should return an error for a token without a separator")
	assert.Contains(t, err.Error(), "split")
}

func TestDateBasedToken(t *testing.T) {
	submitted := time.Date(2025, 6, 1, 17, 2, 3, 0, time.UTC)
	token := EncodeDateBasedToken(submitted)

	decoded, err := DecodeDateBasedToken(token)
	assert.NoError(t, err)
	assert.Equal(t, submitted, decoded)

	_, err = DecodeDateBasedToken("%%%")
	assert.Error(t, err)
}
