// Package idgen implements the original's "increment the trailing number
// until an id is free" insertion-id scheme (util/util.hpp's
// incrementLastNumberUntilAConditionIsSatisfied), used wherever a caller
// inserts something under a caller-supplied id into an id-keyed collection
// (events, callbacks, goal groups) and must not silently collide.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
)

// IncrementLastNumberUntilAConditionIsSatisfied returns id unchanged if ok(id)
// holds. Otherwise it strips any trailing "_N" suffix from id to recover a
// base and starting number (1 if id has no such suffix), then tries
// "base_N+1", "base_N+2", ... until ok returns true for a candidate
// (spec testable property #7).
func IncrementLastNumberUntilAConditionIsSatisfied(id string, ok func(string) bool) string {
	if ok(id) {
		return id
	}
	base, n := splitTrailingNumber(id)
	for {
		n++
		candidate := fmt.Sprintf("%s_%d", base, n)
		if ok(candidate) {
			return candidate
		}
	}
}

func splitTrailingNumber(id string) (base string, n int) {
	idx := strings.LastIndexByte(id, '_')
	if idx < 0 || idx == len(id)-1 {
		return id, 1
	}
	suffix := id[idx+1:]
	parsed, err := strconv.Atoi(suffix)
	if err != nil {
		return id, 1
	}
	return id[:idx], parsed
}
