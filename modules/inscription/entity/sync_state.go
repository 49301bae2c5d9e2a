package entity

// SyncState is a snapshot of the processed cursor and the ingestion watermarks.
type SyncState struct {
	TopInscriptionId     uint64
	TopInscriptionSyncId uint64
	SyncBlockNumber      uint64
}
