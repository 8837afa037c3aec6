/*
 * Copyright (c) 2024-present Opalbase, Ltd.
 */

package schema

import "sync/atomic"

// Internal-consistency checks are enabled by default and stay enabled in
// tests. A production build that trusts its callers may switch them off;
// violating a checked contract with checks disabled is unspecified behavior.
var checksEnabled int32 = 1

func SetChecksEnabled(enabled bool) (old bool) {
	var v int32
	if enabled {
		v = 1
	}
	return atomic.SwapInt32(&checksEnabled, v) != 0
}

func SetChecksEnabledWithRestore(enabled bool) (restore func()) {
	old := SetChecksEnabled(enabled)
	return func() {
		SetChecksEnabled(old)
	}
}

func ChecksEnabled() bool {
	return atomic.LoadInt32(&checksEnabled) != 0
}
