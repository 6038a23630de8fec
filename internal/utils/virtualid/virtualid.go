// Package virtualid encodes the identifiers of computed (non-persisted) occurrences
// of a recurring transaction. A virtual id names the root record and the month of the
// occurrence, e.g. "0b9e...::2025-03".
package virtualid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Separator splits the root id from the month suffix. Root ids are UUIDs, which
// never contain it.
const Separator = "::"

// suffixLen is len("YYYY-MM").
const suffixLen = 7

// VirtualID is the decoded form of a virtual occurrence identifier.
type VirtualID struct {
	RootID string
	Year   int
	Month  time.Month
}

// String re-encodes the id.
func (v VirtualID) String() string {
	return Encode(v.RootID, v.Year, v.Month)
}

// Encode builds the virtual id for the occurrence of rootID in the given month.
func Encode(rootID string, year int, month time.Month) string {
	return fmt.Sprintf("%s%s%04d-%02d", rootID, Separator, year, int(month))
}

// Decode parses a virtual id. It returns false for anything that is not a well
// formed virtual id; callers treat that as a real (persisted) id.
func Decode(id string) (VirtualID, bool) {
	idx := strings.LastIndex(id, Separator)
	if idx <= 0 {
		return VirtualID{}, false
	}
	rootID, suffix := id[:idx], id[idx+len(Separator):]
	if len(suffix) != suffixLen || suffix[4] != '-' {
		return VirtualID{}, false
	}
	year, ok := parseDigits(suffix[:4])
	if !ok {
		return VirtualID{}, false
	}
	month, ok := parseDigits(suffix[5:])
	if !ok || month < 1 || month > 12 {
		return VirtualID{}, false
	}
	return VirtualID{RootID: rootID, Year: year, Month: time.Month(month)}, true
}

// IsVirtual reports whether id is a well formed virtual id.
func IsVirtual(id string) bool {
	_, ok := Decode(id)
	return ok
}

// parseDigits accepts only ASCII digits; strconv.Atoi alone would let "+1" or "-1" through.
func parseDigits(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
