package entity

type NftCollection struct {
	TxHash        string   `json:"txHash"`
	InscriptionId uint64   `json:"inscriptionId"`
	Deployer      string   `json:"deployer"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Url           string   `json:"url"`
	Image         string   `json:"image"`
	Icon          string   `json:"icon"`
	Items         []string `json:"items"` // member tx hashes, in deploy order
}

// NftTransfer is one hop of a transfer inscription.
// Index is the position of the reference inside the transfer payload.
type NftTransfer struct {
	InscriptionId uint64 `json:"inscriptionId"`
	NftId         uint64 `json:"nftId"`
	Index         uint32 `json:"index"`
}
