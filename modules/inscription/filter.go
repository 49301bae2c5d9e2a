package inscription

import (
	_ "embed"
	"encoding/json"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscription-indexer/common/errs"
)

//go:embed inscribe_filter.json
var defaultInscribeFilter []byte

type inscribeFilterConfig struct {
	TxFilter    []string `json:"tx_filter"`
	BlockFilter []uint64 `json:"block_filter"`
	MintPassTx  []string `json:"mint_pass_tx"`
}

// InscribeFilter is the static deny/pass policy consulted before any validation.
// It is read-only after construction.
type InscribeFilter struct {
	txFilter    map[string]struct{}
	blockFilter map[uint64]struct{}
	mintPassTx  map[string]struct{}
}

// LoadInscribeFilter reads the filter from path, or the built-in filter if path is empty.
func LoadInscribeFilter(path string) (*InscribeFilter, error) {
	data := defaultInscribeFilter
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read inscribe filter file %q", path)
		}
	}
	filter, err := ParseInscribeFilter(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return filter, nil
}

func ParseInscribeFilter(data []byte) (*InscribeFilter, error) {
	var conf inscribeFilterConfig
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "malformed inscribe filter: %v", err)
	}
	return NewInscribeFilter(conf.TxFilter, conf.BlockFilter, conf.MintPassTx), nil
}

func NewInscribeFilter(txFilter []string, blockFilter []uint64, mintPassTx []string) *InscribeFilter {
	f := &InscribeFilter{
		txFilter:    make(map[string]struct{}, len(txFilter)),
		blockFilter: make(map[uint64]struct{}, len(blockFilter)),
		mintPassTx:  make(map[string]struct{}, len(mintPassTx)),
	}
	for _, tx := range txFilter {
		f.txFilter[strings.ToLower(tx)] = struct{}{}
	}
	for _, blockNumber := range blockFilter {
		f.blockFilter[blockNumber] = struct{}{}
	}
	for _, tx := range mintPassTx {
		f.mintPassTx[strings.ToLower(tx)] = struct{}{}
	}
	return f
}

// ShouldReject returns true if the tx hash or the block number is denied.
func (f *InscribeFilter) ShouldReject(txHash string, blockNumber uint64) bool {
	if f == nil {
		return false
	}
	if _, ok := f.txFilter[strings.ToLower(txHash)]; ok {
		return true
	}
	_, ok := f.blockFilter[blockNumber]
	return ok
}

// IsMintPass returns true if the tx hash is in the privileged mint pass-list.
func (f *InscribeFilter) IsMintPass(txHash string) bool {
	if f == nil {
		return false
	}
	_, ok := f.mintPassTx[strings.ToLower(txHash)]
	return ok
}

func (f *InscribeFilter) Len() (txs int, blocks int, mintPass int) {
	if f == nil {
		return 0, 0, 0
	}
	return len(f.txFilter), len(f.blockFilter), len(f.mintPassTx)
}
