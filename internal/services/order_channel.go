package services

import "strings"

// DefaultChannelBaseURL is the click-to-chat endpoint orders are sent through.
const DefaultChannelBaseURL = "https://wa.me/"

// OrderChannel builds the pre-addressed messaging link for an order.
type OrderChannel struct {
	baseURL string
	phone   string
}

func NewOrderChannel(baseURL, phone string) *OrderChannel {
	return &OrderChannel{baseURL: baseURL, phone: phone}
}

func (c *OrderChannel) BuildURL(message string) string {
	return c.baseURL + c.phone + "?text=" + EncodeURIComponent(message)
}

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way browsers' encodeURIComponent
// does. url.QueryEscape differs: it turns spaces into '+' and escapes !*'().
// Invalid UTF-8 is encoded as U+FFFD.
func EncodeURIComponent(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func isURIUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
