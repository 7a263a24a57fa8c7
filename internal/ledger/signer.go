package ledger

import (
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"
)

// Signer signs transaction envelopes on behalf of a ledger account.
type Signer interface {
	// Address returns the account ID ("G...") of the signing account.
	Address() string

	// Sign returns a copy of tx signed for the given network passphrase.
	Sign(tx *txnbuild.Transaction, networkPassphrase string) (*txnbuild.Transaction, error)
}

// KeypairSigner signs with a local ed25519 secret key.
type KeypairSigner struct {
	kp *keypair.Full
}

var _ Signer = (*KeypairSigner)(nil)

// NewKeypairSigner parses a secret seed ("S...") into a Signer.
func NewKeypairSigner(seed string) (*KeypairSigner, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return nil, err
	}

	return &KeypairSigner{kp: kp}, nil
}

func (s *KeypairSigner) Address() string {
	return s.kp.Address()
}

func (s *KeypairSigner) Sign(tx *txnbuild.Transaction, networkPassphrase string) (*txnbuild.Transaction, error) {
	return tx.Sign(networkPassphrase, s.kp)
}
