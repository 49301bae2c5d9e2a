package inscription

const (
	Version = "v0.1.0"

	// TransferTxHexLength is the width of one tx hash reference inside a transfer payload ("0x" + 32 bytes hex).
	TransferTxHexLength = 66

	// CollectionApp is the `p` value of NFT collection operations.
	CollectionApp = "collection"
	// TokenProtocol is the `p` value of fungible token operations.
	TokenProtocol = "ins-20"

	OpCollectionDeploy = "deploy"
)
