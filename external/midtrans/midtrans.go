// Package midtrans wraps the Snap client used for online payments and the
// webhook signature check.
package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"os"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// NewSnapClient builds a Snap client from MIDTRANS_SERVER_KEY. It targets the
// sandbox unless MIDTRANS_ENV=production.
func NewSnapClient() *snap.Client {
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(os.Getenv("MIDTRANS_SERVER_KEY"), env)
	return &client
}

// VerifySignature checks a notification's signature_key: the SHA-512 hex
// digest of order id + status code + gross amount + server key.
func VerifySignature(orderID, statusCode, grossAmount, signature, serverKey string) bool {
	hash := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(hash[:]) == signature
}
