package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/midtrans/midtrans-go"
	"github.com/stretchr/testify/assert"
)

func signatureFor(orderID, statusCode, grossAmount, serverKey string) string {
	hash := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(hash[:])
}

func TestVerifySignature(t *testing.T) {
	const serverKey = "SB-Mid-server-test"
	sig := signatureFor("ORDER-42-abc", "200", "6497.00", serverKey)

	assert.True(t, VerifySignature("ORDER-42-abc", "200", "6497.00", sig, serverKey))
	assert.False(t, VerifySignature("ORDER-42-abc", "200", "9999.00", sig, serverKey), "tampered amount must fail")
	assert.False(t, VerifySignature("ORDER-42-abc", "200", "6497.00", sig, "other-key"))
	assert.False(t, VerifySignature("ORDER-42-abc", "200", "6497.00", "", serverKey))
}

func TestNewSnapClientEnvironment(t *testing.T) {
	t.Setenv("MIDTRANS_SERVER_KEY", "SB-Mid-server-test")

	t.Setenv("MIDTRANS_ENV", "")
	assert.Equal(t, midtrans.Sandbox, NewSnapClient().Env)

	t.Setenv("MIDTRANS_ENV", "production")
	assert.Equal(t, midtrans.Production, NewSnapClient().Env)
}
