package badger

import (
	"encoding/binary"
	"strings"
)

var (
	keyTopInscriptionId     = []byte("state/top_inscription_id")
	keyTopInscriptionSyncId = []byte("state/top_inscription_sync_id")
	keySyncBlockNumber      = []byte("state/sync_block_number")

	prefixInscription     = []byte("insc/id/")
	prefixInscriptionTx   = []byte("insc/tx/")
	prefixInscriptionSign = []byte("insc/sign/")
	prefixNftHolder       = []byte("nft/holder/")
	prefixNftCollectionOf = []byte("nft/collection_of/")
	prefixNftCollection   = []byte("nft/collection/")
	prefixNftTransfer     = []byte("nft/transfer/")
	prefixToken           = []byte("token/tick/")
	prefixTokenBalance    = []byte("token/balance/")
	prefixTokenTransfer   = []byte("token/transfer/")
)

func appendUint64(b []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(b, v)
}

func encodeUint64(v uint64) []byte {
	return appendUint64(nil, v)
}

func decodeUint64(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

func withPrefix(prefix []byte, parts ...[]byte) []byte {
	size := len(prefix)
	for _, p := range parts {
		size += len(p)
	}
	key := make([]byte, 0, size)
	key = append(key, prefix...)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

// tx hashes are case-insensitive hex.
func normalizeTx(txHash string) []byte {
	return []byte(strings.ToLower(txHash))
}

func inscriptionKey(id uint64) []byte {
	return appendUint64(withPrefix(prefixInscription), id)
}

func inscriptionTxKey(txHash string) []byte {
	return withPrefix(prefixInscriptionTx, normalizeTx(txHash))
}

func inscriptionSignKey(signature string) []byte {
	return withPrefix(prefixInscriptionSign, []byte(signature))
}

func nftHolderKey(id uint64) []byte {
	return appendUint64(withPrefix(prefixNftHolder), id)
}

func nftCollectionOfKey(id uint64) []byte {
	return appendUint64(withPrefix(prefixNftCollectionOf), id)
}

func nftCollectionKey(txHash string) []byte {
	return withPrefix(prefixNftCollection, normalizeTx(txHash))
}

func nftTransferPrefix(inscriptionId uint64) []byte {
	return appendUint64(withPrefix(prefixNftTransfer), inscriptionId)
}

func nftTransferKey(inscriptionId uint64, index uint32) []byte {
	return binary.BigEndian.AppendUint32(nftTransferPrefix(inscriptionId), index)
}

func tokenKey(tick string) []byte {
	return withPrefix(prefixToken, []byte(tick))
}

// the tick is length-prefixed so a tick can never be a prefix of another tick's keys.
func tokenBalanceKey(tick string, address string) []byte {
	key := withPrefix(prefixTokenBalance, []byte{byte(len(tick))}, []byte(tick))
	return append(key, strings.ToLower(address)...)
}

func tokenTransferKey(tick string, inscriptionId uint64) []byte {
	key := withPrefix(prefixTokenTransfer, []byte{byte(len(tick))}, []byte(tick))
	return appendUint64(key, inscriptionId)
}
