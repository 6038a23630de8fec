package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded cursor from the sort key (due date, id) of the
// last item on a page.
func EncodeToken(dueDate time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", dueDate.Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into due date and id.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	dueDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (due date parse): %w", err)
	}

	return dueDate, parts[1], nil
}

// Key is the (due date, id) sort key of a paged item.
type Key struct {
	DueDate time.Time
	ID      string
}

// Less orders keys by due date, then id.
func (k Key) Less(o Key) bool {
	if !k.DueDate.Equal(o.DueDate) {
		return k.DueDate.Before(o.DueDate)
	}
	return k.ID < o.ID
}

// Page returns up to limit items that sort after the cursor in nextToken, and the token
// for the following page (nil on the last page). items must already be sorted by key.
// A limit <= 0 returns everything after the cursor.
func Page[T any](items []T, key func(T) Key, limit int, nextToken *string) ([]T, *string, error) {
	start := 0
	if nextToken != nil && *nextToken != "" {
		dueDate, id, err := DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		cursor := Key{DueDate: dueDate, ID: id}
		for start < len(items) && !cursor.Less(key(items[start])) {
			start++
		}
	}

	rest := items[start:]
	if limit <= 0 || len(rest) <= limit {
		return rest, nil, nil
	}
	page := rest[:limit]
	last := key(page[len(page)-1])
	token := EncodeToken(last.DueDate, last.ID)
	return page, &token, nil
}
