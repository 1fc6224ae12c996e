// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncState is the coordinator's externally visible state.
type SyncState string

const (
	SyncStateOffline    SyncState = "offline"
	SyncStateOnlineIdle SyncState = "online_idle"
	SyncStateSyncing    SyncState = "syncing"
)

// SyncMode tells which step of the protocol delivered the records.
type SyncMode string

const (
	SyncModeNone       SyncMode = ""
	SyncModeBulk       SyncMode = "bulk"
	SyncModeIndividual SyncMode = "individual"
)

// Reasons a reconciliation pass did not run.
const (
	SkipOffline     = "offline"
	SkipInProgress  = "in_progress"
	SkipUnreachable = "backend_unreachable"
	SkipNothingToDo = "nothing_to_sync"
)

// SyncReport summarizes one reconciliation pass.
type SyncReport struct {
	Skipped    bool     `json:"skipped"`
	SkipReason string   `json:"skip_reason,omitempty"`
	Mode       SyncMode `json:"mode,omitempty"`
	Attempted  int      `json:"attempted"`
	SyncedIDs  []string `json:"synced_ids"`
	FailedIDs  []string `json:"failed_ids"`
}

// SyncStatus is what the local API reports about the coordinator.
type SyncStatus struct {
	State   SyncState `json:"state"`
	Online  bool      `json:"online"`
	Pending int       `json:"pending"`
	Version string    `json:"version,omitempty"`
}
