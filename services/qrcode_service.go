// services/qrcode_service.go
package services

import (
	"errors"
	"net/url"
	"strings"
	"unicode"

	"github.com/skip2/go-qrcode"

	"fanconnect/models"
)

// QRCodeEncoder matches qrcode.Encode so tests can swap it out.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GenerateQRCode renders content as a size×size PNG.
func GenerateQRCode(content string, size int, encode QRCodeEncoder) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid size: must be positive")
	}
	if content == "" {
		return nil, errors.New("invalid content: must not be empty")
	}
	png, err := encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}

// Slugify lower-cases text and replaces whitespace runs with a dash.
func Slugify(text string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(text), unicode.IsSpace), "-")
}

// MatchPath is the public rating page of a game, e.g.
// /matchday/arsenal-vs-chelsea?game=<id>.
func MatchPath(g models.Game) string {
	return "/matchday/" + Slugify(g.HomeTeam) + "-vs-" + Slugify(g.AwayTeam) + "?game=" + url.QueryEscape(g.ID)
}

// MatchURL is MatchPath on the public application URL.
func MatchURL(baseURL string, g models.Game) string {
	return strings.TrimRight(baseURL, "/") + MatchPath(g)
}
