package badger

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v4"
	"github.com/gaze-network/inscription-indexer/common/errs"
	"github.com/gaze-network/inscription-indexer/modules/inscription/entity"
	"github.com/shopspring/decimal"
)

func (r *Repository) getUint64(key []byte) (uint64, error) {
	var v uint64
	err := r.view(func(txn *badger.Txn) error {
		data, err := get(txn, key)
		if err != nil {
			return errors.WithStack(err)
		}
		v = decodeUint64(data)
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return 0, nil
		}
		return 0, errors.WithStack(err)
	}
	return v, nil
}

func (r *Repository) setUint64(key []byte, v uint64) error {
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		return errors.Wrap(txn.Set(key, encodeUint64(v)), "failed to set key")
	}))
}

func (r *Repository) GetTopInscriptionId(ctx context.Context) (uint64, error) {
	return r.getUint64(keyTopInscriptionId)
}

func (r *Repository) GetTopInscriptionSyncId(ctx context.Context) (uint64, error) {
	return r.getUint64(keyTopInscriptionSyncId)
}

func (r *Repository) GetSyncBlockNumber(ctx context.Context) (uint64, error) {
	return r.getUint64(keySyncBlockNumber)
}

func (r *Repository) SetTopInscriptionId(ctx context.Context, id uint64) error {
	return r.setUint64(keyTopInscriptionId, id)
}

func getInscription(txn *badger.Txn, id uint64) (*entity.Inscription, error) {
	data, err := get(txn, inscriptionKey(id))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	inscription, err := unmarshal[entity.Inscription](data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &inscription, nil
}

func (r *Repository) GetInscriptionById(ctx context.Context, id uint64) (*entity.Inscription, error) {
	var inscription *entity.Inscription
	err := r.view(func(txn *badger.Txn) (err error) {
		inscription, err = getInscription(txn, id)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return inscription, nil
}

func (r *Repository) GetInscriptionByTx(ctx context.Context, txHash string) (*entity.Inscription, error) {
	var inscription *entity.Inscription
	err := r.view(func(txn *badger.Txn) error {
		data, err := get(txn, inscriptionTxKey(txHash))
		if err != nil {
			return errors.WithStack(err)
		}
		inscription, err = getInscription(txn, decodeUint64(data))
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return inscription, nil
}

func (r *Repository) InscriptionSignExists(ctx context.Context, signature string) (bool, error) {
	var ok bool
	err := r.view(func(txn *badger.Txn) (err error) {
		ok, err = exists(txn, inscriptionSignKey(signature))
		return err
	})
	if err != nil {
		return false, errors.WithStack(err)
	}
	return ok, nil
}

func (r *Repository) InscriptionInscribe(ctx context.Context, inscription *entity.Inscription) error {
	data, err := marshal(inscription)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		if err := txn.Set(inscriptionKey(inscription.Id), data); err != nil {
			return errors.Wrap(err, "failed to set inscription")
		}
		if err := txn.Set(inscriptionTxKey(inscription.TxHash), encodeUint64(inscription.Id)); err != nil {
			return errors.Wrap(err, "failed to set inscription tx index")
		}
		if inscription.Signature != "" && inscription.IsSuccessful() {
			if err := txn.Set(inscriptionSignKey(inscription.Signature), encodeUint64(inscription.Id)); err != nil {
				return errors.Wrap(err, "failed to set inscription signature index")
			}
		}
		if inscription.HasHolder() {
			if err := txn.Set(nftHolderKey(inscription.Id), []byte(inscription.To)); err != nil {
				return errors.Wrap(err, "failed to set nft holder")
			}
		}
		return nil
	}))
}

func (r *Repository) GetInscriptionNftHolderById(ctx context.Context, id uint64) (string, error) {
	var holder string
	err := r.view(func(txn *badger.Txn) error {
		data, err := get(txn, nftHolderKey(id))
		if err != nil {
			return errors.WithStack(err)
		}
		holder = string(data)
		return nil
	})
	if err != nil {
		return "", errors.WithStack(err)
	}
	return holder, nil
}

func (r *Repository) InscriptionNftHolderUpdate(ctx context.Context, id uint64, address string) error {
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		return errors.Wrap(txn.Set(nftHolderKey(id), []byte(address)), "failed to set nft holder")
	}))
}

func (r *Repository) GetInscriptionNftCollectionById(ctx context.Context, id uint64) (string, error) {
	var collectionTx string
	err := r.view(func(txn *badger.Txn) error {
		data, err := get(txn, nftCollectionOfKey(id))
		if err != nil {
			return errors.WithStack(err)
		}
		collectionTx = string(data)
		return nil
	})
	if err != nil {
		return "", errors.WithStack(err)
	}
	return collectionTx, nil
}

func (r *Repository) GetNftCollectionByTx(ctx context.Context, txHash string) (*entity.NftCollection, error) {
	var collection entity.NftCollection
	err := r.view(func(txn *badger.Txn) error {
		data, err := get(txn, nftCollectionKey(txHash))
		if err != nil {
			return errors.WithStack(err)
		}
		collection, err = unmarshal[entity.NftCollection](data)
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &collection, nil
}

func (r *Repository) InscriptionNftCollectionInsert(ctx context.Context, collection *entity.NftCollection) error {
	data, err := marshal(collection)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		key := nftCollectionKey(collection.TxHash)
		ok, err := exists(txn, key)
		if err != nil {
			return errors.WithStack(err)
		}
		if ok {
			return errors.Wrapf(errs.Duplicate, "collection %s already exists", collection.TxHash)
		}
		return errors.Wrap(txn.Set(key, data), "failed to set collection")
	}))
}

func (r *Repository) InscriptionNftSetCollection(ctx context.Context, id uint64, collectionTx string) error {
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		key := nftCollectionOfKey(id)
		ok, err := exists(txn, key)
		if err != nil {
			return errors.WithStack(err)
		}
		if ok {
			return errors.Wrapf(errs.Duplicate, "inscription %d already belongs to a collection", id)
		}
		return errors.Wrap(txn.Set(key, []byte(collectionTx)), "failed to set collection membership")
	}))
}

func (r *Repository) InscriptionNftTransferInsert(ctx context.Context, transfer entity.NftTransfer) error {
	data, err := marshal(transfer)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		return errors.Wrap(txn.Set(nftTransferKey(transfer.InscriptionId, transfer.Index), data), "failed to set nft transfer")
	}))
}

func (r *Repository) GetNftTransfersByInscriptionId(ctx context.Context, id uint64) ([]entity.NftTransfer, error) {
	transfers := make([]entity.NftTransfer, 0)
	err := r.view(func(txn *badger.Txn) error {
		return iterate(txn, nftTransferPrefix(id), func(_, value []byte) error {
			transfer, err := unmarshal[entity.NftTransfer](value)
			if err != nil {
				return errors.WithStack(err)
			}
			transfers = append(transfers, transfer)
			return nil
		})
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return transfers, nil
}

func (r *Repository) GetTokens(ctx context.Context) (map[string]*entity.Token, error) {
	tokens := make(map[string]*entity.Token)
	err := r.view(func(txn *badger.Txn) error {
		return iterate(txn, prefixToken, func(_, value []byte) error {
			model, err := unmarshal[tokenModel](value)
			if err != nil {
				return errors.WithStack(err)
			}
			tokens[model.Tick] = mapTokenModelToType(model)
			return nil
		})
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return tokens, nil
}

func (r *Repository) GetToken(ctx context.Context, tick string) (*entity.Token, error) {
	var token *entity.Token
	err := r.view(func(txn *badger.Txn) error {
		data, err := get(txn, tokenKey(tick))
		if err != nil {
			return errors.WithStack(err)
		}
		model, err := unmarshal[tokenModel](data)
		if err != nil {
			return errors.WithStack(err)
		}
		token = mapTokenModelToType(model)
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return token, nil
}

func (r *Repository) InscriptionTokenInsert(ctx context.Context, token *entity.Token) error {
	data, err := marshal(mapTokenTypeToModel(token))
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		key := tokenKey(token.Tick)
		ok, err := exists(txn, key)
		if err != nil {
			return errors.WithStack(err)
		}
		if ok {
			return errors.Wrapf(errs.Duplicate, "token %s already exists", token.Tick)
		}
		return errors.Wrap(txn.Set(key, data), "failed to set token")
	}))
}

func (r *Repository) InscriptionTokenUpdate(ctx context.Context, token *entity.Token) error {
	data, err := marshal(mapTokenTypeToModel(token))
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		key := tokenKey(token.Tick)
		ok, err := exists(txn, key)
		if err != nil {
			return errors.WithStack(err)
		}
		if !ok {
			return errors.Wrapf(errs.NotFound, "token %s not found", token.Tick)
		}
		return errors.Wrap(txn.Set(key, data), "failed to set token")
	}))
}

func getBalance(txn *badger.Txn, tick string, address string) (decimal.Decimal, error) {
	data, err := get(txn, tokenBalanceKey(tick, address))
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, errors.WithStack(err)
	}
	balance, err := decimal.NewFromString(string(data))
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to parse balance")
	}
	return balance, nil
}

func (r *Repository) GetTokenBalance(ctx context.Context, tick string, address string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.view(func(txn *badger.Txn) (err error) {
		balance, err = getBalance(txn, tick, address)
		return err
	})
	if err != nil {
		return decimal.Zero, errors.WithStack(err)
	}
	return balance, nil
}

func (r *Repository) InscriptionTokenBalanceUpdate(ctx context.Context, tick string, address string, delta decimal.Decimal) (int64, error) {
	var holderDelta int64
	err := r.update(func(txn *badger.Txn) error {
		prev, err := getBalance(txn, tick, address)
		if err != nil {
			return errors.WithStack(err)
		}
		next := prev.Add(delta)
		if next.IsNegative() {
			return errors.Wrapf(errs.InvalidArgument, "negative balance of %s for %s", tick, address)
		}
		key := tokenBalanceKey(tick, address)
		if next.IsZero() {
			if err := txn.Delete(key); err != nil {
				return errors.Wrap(err, "failed to delete balance")
			}
		} else if err := txn.Set(key, []byte(next.String())); err != nil {
			return errors.Wrap(err, "failed to set balance")
		}

		switch {
		case !prev.IsPositive() && next.IsPositive():
			holderDelta = 1
		case prev.IsPositive() && !next.IsPositive():
			holderDelta = -1
		}
		return nil
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return holderDelta, nil
}

func (r *Repository) InscriptionTokenTransferInsert(ctx context.Context, transfer entity.TokenTransfer) error {
	return errors.WithStack(r.update(func(txn *badger.Txn) error {
		return errors.Wrap(txn.Set(tokenTransferKey(transfer.Tick, transfer.InscriptionId), []byte{}), "failed to set token transfer")
	}))
}

// keys are big-endian so the iteration order is the id order.
func (r *Repository) GetTokenTransfers(ctx context.Context, tick string) ([]uint64, error) {
	prefix := tokenTransferKey(tick, 0)
	prefix = prefix[:len(prefix)-8]

	ids := make([]uint64, 0)
	err := r.view(func(txn *badger.Txn) error {
		return iterate(txn, prefix, func(key, _ []byte) error {
			ids = append(ids, decodeUint64(key[len(prefix):]))
			return nil
		})
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ids, nil
}
