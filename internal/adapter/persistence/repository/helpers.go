package repository

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// sortableTimeLayout is fixed width so that lexical order of stored values
// matches chronological order (RFC3339Nano trims trailing zeros).
const sortableTimeLayout = "2006-01-02T15:04:05.000000000Z"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(sortableTimeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(sortableTimeLayout, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t.UTC()
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// conditionFailed unwraps a failed ConditionExpression. The returned item is
// the pre-image when ReturnValuesOnConditionCheckFailure was ALL_OLD.
func conditionFailed(err error) (map[string]types.AttributeValue, bool) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return cfe.Item, true
	}
	return nil, false
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
