package httphandler

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/gaze-network/inscription-indexer/modules/inscription/internal/token"
)

const txHashLength = 66 // 0x + 32 bytes hex

func isTxHash(tx string) bool {
	if len(tx) != txHashLength || !strings.HasPrefix(tx, "0x") {
		return false
	}
	_, err := hex.DecodeString(tx[2:])
	return err == nil
}

func isTick(tick string) bool {
	n := utf8.RuneCountInString(tick)
	return n > 0 && n <= token.MaxTickLength
}
