// Package model defines the domain models for the session ledger.
package model

import "time"

// UntaggedBucket is the tag row used in reports for sessions without tags.
const UntaggedBucket = "(untagged)"

// TruncateToSecond drops sub-second precision; ledger timestamps are stored
// with whole seconds.
func TruncateToSecond(t time.Time) time.Time {
	return t.Truncate(time.Second)
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
