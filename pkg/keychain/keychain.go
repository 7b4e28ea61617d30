package keychain

import (
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	serviceName = "telegram-bot-framework"

	// RefPrefix marks a config value that must be read from the keychain.
	RefPrefix = "keyring:"
)

// Get retrieves a secret from the system keychain.
func Get(account string) (string, error) {
	return keyring.Get(serviceName, account)
}

// Set stores a secret in the system keychain.
func Set(account, value string) error {
	return keyring.Set(serviceName, account, value)
}

// Resolve returns value unchanged unless it is a "keyring:<account>"
// reference, in which case the secret stored under account is returned.
func Resolve(value string) (string, error) {
	account, ok := strings.CutPrefix(value, RefPrefix)
	if !ok {
		return value, nil
	}
	return Get(account)
}
