package crypto

import "errors"

var (
	// ErrDecryption means the envelope could not be opened. The caller must
	// treat it as "wrong password or corrupted backup" without telling the two
	// apart.
	ErrDecryption = errors.New("decryption failed")

	// ErrEmptyPassword is returned by Seal when no master password is given.
	ErrEmptyPassword = errors.New("master password is empty")
)
