package badger

import (
	"context"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/config"
	"github.com/gaze-network/inscription-indexer/modules/inscription/datagateway"
	"github.com/gaze-network/inscription-indexer/pkg/logger"
)

var (
	_ datagateway.InscriptionDataGateway = (*Repository)(nil)
	_ datagateway.SyncDataGateway        = (*Repository)(nil)
)

const (
	DefaultMemTableSize   = 128 << 20
	DefaultValueThreshold = 1 << 10
)

// ErrTxnTooBig marks a block whose writes don't fit into one badger transaction.
// Retrying can't help, the memtable size has to be raised.
var ErrTxnTooBig = errors.New("block writes exceed one badger transaction, increase badger mem_table_size")

type Repository struct {
	db  *badger.DB
	txn *badger.Txn
}

// Open opens the badger database described by conf.
func Open(conf config.BadgerConfig) (*badger.DB, error) {
	if conf.Path == "" && !conf.InMemory {
		return nil, errors.Wrap(errs.InvalidArgument, "badger path is required")
	}

	memTableSize := utils.Default(conf.MemTableSize, DefaultMemTableSize)
	valueThreshold := utils.Default(conf.ValueThreshold, DefaultValueThreshold)

	opts := badger.DefaultOptions(conf.Path)
	if conf.InMemory {
		// everything stays in the LSM tree, only the memtable size bounds a transaction
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		// large payloads go to the value log, the transaction only counts their pointers
		opts = opts.WithValueThreshold(valueThreshold)
	}
	opts = opts.
		WithLogger(nil).
		WithSyncWrites(conf.SyncWrites).
		WithMemTableSize(memTableSize)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open badger db")
	}
	return db, nil
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// view runs fn against the open transaction, or a read-only one if there is none.
func (r *Repository) view(fn func(txn *badger.Txn) error) error {
	if r.txn != nil {
		return fn(r.txn)
	}
	return r.db.View(fn)
}

// update runs fn against the open transaction, or a new one committed right after fn returns.
func (r *Repository) update(fn func(txn *badger.Txn) error) error {
	var err error
	if r.txn != nil {
		err = fn(r.txn)
	} else {
		err = r.db.Update(fn)
	}
	return markTxnTooBig(err)
}

func markTxnTooBig(err error) error {
	if err != nil && errors.Is(err, badger.ErrTxnTooBig) {
		return errors.Mark(err, ErrTxnTooBig)
	}
	return err
}

var ErrTxAlreadyExists = errors.New("Transaction already exists. Call Commit() or Rollback() first.")

func (r *Repository) BeginInscriptionTx(ctx context.Context) (datagateway.InscriptionDataGatewayWithTx, error) {
	if r.txn != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}
	return &Repository{
		db:  r.db,
		txn: r.db.NewTransaction(true),
	}, nil
}

func (r *Repository) Commit(ctx context.Context) error {
	if r.txn == nil {
		return nil
	}
	txn := r.txn
	r.txn = nil
	if err := txn.Commit(); err != nil {
		return errors.Wrap(markTxnTooBig(err), "failed to commit transaction")
	}
	return nil
}

func (r *Repository) Rollback(ctx context.Context) error {
	if r.txn == nil {
		return nil
	}
	r.txn.Discard()
	r.txn = nil
	logger.DebugContext(ctx, "rolled back transaction")
	return nil
}

// get copies the value of key. Returns errs.NotFound if the key does not exist.
func get(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "failed to get key")
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read value")
	}
	return value, nil
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to get key")
	}
	return true, nil
}

// iterate calls fn for every key with the given prefix, in key order.
func iterate(txn *badger.Txn, prefix []byte, fn func(key, value []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		value, err := item.ValueCopy(nil)
		if err != nil {
			return errors.Wrap(err, "failed to read value")
		}
		if err := fn(item.KeyCopy(nil), value); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
