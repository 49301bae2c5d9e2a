package entity

// MimeCategory is the coarse content-type classification that selects the validator.
// It is assigned by the ingester.
type MimeCategory string

const (
	MimeCategoryText     MimeCategory = "text"
	MimeCategoryImage    MimeCategory = "image"
	MimeCategoryJson     MimeCategory = "json"
	MimeCategoryTransfer MimeCategory = "transfer"
	MimeCategoryInvoke   MimeCategory = "invoke"
	MimeCategoryOther    MimeCategory = "other"
)

func (c MimeCategory) String() string {
	return string(c)
}

// IsValid returns true if the category is one of the known categories.
func (c MimeCategory) IsValid() bool {
	switch c {
	case MimeCategoryText, MimeCategoryImage, MimeCategoryJson, MimeCategoryTransfer, MimeCategoryInvoke, MimeCategoryOther:
		return true
	}
	return false
}

// VerifiedStatus moves from Pending to Successful or Failed exactly once.
type VerifiedStatus string

const (
	VerifiedStatusPending    VerifiedStatus = "pending"
	VerifiedStatusSuccessful VerifiedStatus = "successful"
	VerifiedStatusFailed     VerifiedStatus = "failed"
)

func (s VerifiedStatus) String() string {
	return string(s)
}

func (s VerifiedStatus) IsTerminal() bool {
	return s == VerifiedStatusSuccessful || s == VerifiedStatusFailed
}

type Inscription struct {
	Id           uint64         `json:"id"`
	TxHash       string         `json:"txHash"`
	BlockNumber  uint64         `json:"blockNumber"`
	From         string         `json:"from"`
	To           string         `json:"to"`
	MimeType     string         `json:"mimeType"`
	MimeCategory MimeCategory   `json:"mimeCategory"`
	MimeData     string         `json:"mimeData"`
	Json         map[string]any `json:"json,omitempty"`      // only for MimeCategoryJson
	Signature    string         `json:"signature,omitempty"` // only for text and image content after dedup
	Verified     VerifiedStatus `json:"verified"`
}

func (i *Inscription) IsSuccessful() bool {
	return i.Verified == VerifiedStatusSuccessful
}

// HasHolder reports whether the inscription is an NFT-like content that gets an owner once inscribed.
func (i *Inscription) HasHolder() bool {
	return i.IsSuccessful() && (i.MimeCategory == MimeCategoryText || i.MimeCategory == MimeCategoryImage)
}
