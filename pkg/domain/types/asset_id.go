package types

import (
	"fmt"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// AssetID represents a unique identifier for a physical asset.
// The format is "A" followed by a 4-digit zero-padded sequence, e.g. "A0001".
type AssetID string

var assetIDPattern = regexp.MustCompile(`^A[0-9]{4}$`)

// NewAssetID builds an AssetID from a 1-origin sequence number
func NewAssetID(seq int) AssetID {
	return AssetID(fmt.Sprintf("A%04d", seq))
}

// Validate checks if the AssetID is valid
func (x AssetID) Validate() error {
	if x == "" {
		return goerr.New("asset ID cannot be empty")
	}
	if !assetIDPattern.MatchString(string(x)) {
		return goerr.New("asset ID must be 'A' followed by 4 digits", goerr.V("id", x))
	}
	return nil
}

// String returns the string representation of AssetID
func (x AssetID) String() string {
	return string(x)
}
