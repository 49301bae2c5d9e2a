package entity

import "github.com/shopspring/decimal"

type Token struct {
	Tick     string
	Max      decimal.Decimal
	Limit    decimal.Decimal
	Decimals uint16
	Minted   decimal.Decimal
	Holders  uint64

	DeployInscriptionId uint64
	DeployTxHash        string
	DeployBy            string
	DeployBlockNumber   uint64

	// Deploy marks a token that was deployed in the current block and still has to be inserted.
	Deploy bool
	// Updated marks a token whose state has to be written back at commit.
	Updated bool
}

// AddHolders applies a signed holder count delta. The count never goes below zero.
func (t *Token) AddHolders(delta int64) {
	if delta < 0 && uint64(-delta) > t.Holders {
		t.Holders = 0
		return
	}
	t.Holders = uint64(int64(t.Holders) + delta)
}

// IsMintedOut returns true if there is nothing left to mint.
func (t *Token) IsMintedOut() bool {
	return t.Minted.GreaterThanOrEqual(t.Max)
}

type TokenBalance struct {
	Tick    string
	Address string
	Amount  decimal.Decimal
}

type TokenTransfer struct {
	Tick          string
	InscriptionId uint64
}
