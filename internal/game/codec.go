package game

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"telegram-bot-framework/pkg/encrypter"
)

const (
	// CodecPurpose scopes the token key, so other users of the same
	// secret cannot produce valid player tokens.
	CodecPurpose = "GameHandler"

	separator = ':'
)

// Codec turns a PlayerID into an encrypted, URL-safe token and back.
type Codec struct {
	enc encrypter.Encrypter
}

// NewCodec derives the token key from secret.
func NewCodec(secret []byte) (*Codec, error) {
	enc, err := encrypter.New(secret, CodecPurpose)
	if err != nil {
		return nil, err
	}
	return &Codec{enc: enc}, nil
}

func (c *Codec) Encode(id PlayerID) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}

	token, err := c.enc.Encrypt([]byte(id.String()))
	if err != nil {
		return "", fmt.Errorf("encrypt player id: %w", err)
	}
	return url.QueryEscape(token), nil
}

// Decode fails with ErrDecode unless token was produced by Encode with the
// same secret and left untouched.
func (c *Codec) Decode(token string) (PlayerID, error) {
	raw, err := url.QueryUnescape(token)
	if err != nil {
		return PlayerID{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	plain, err := c.enc.Decrypt(raw)
	if err != nil {
		return PlayerID{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return parsePlayerID(string(plain))
}

func parsePlayerID(s string) (PlayerID, error) {
	fields := strings.Split(s, string(separator))

	var id PlayerID
	switch len(fields) {
	case 2:
		if fields[1] == "" {
			return PlayerID{}, fmt.Errorf("%w: empty inline message id", ErrDecode)
		}
		id.InlineMessageID = fields[1]
	case 3:
		chatID, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return PlayerID{}, fmt.Errorf("%w: chat id: %v", ErrDecode, err)
		}
		msgID, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return PlayerID{}, fmt.Errorf("%w: message id: %v", ErrDecode, err)
		}
		id.ChatID, id.MessageID = chatID, msgID
	default:
		return PlayerID{}, fmt.Errorf("%w: %d fields", ErrDecode, len(fields))
	}

	userID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return PlayerID{}, fmt.Errorf("%w: user id: %v", ErrDecode, err)
	}
	id.UserID = userID

	if err := id.Validate(); err != nil {
		return PlayerID{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return id, nil
}
