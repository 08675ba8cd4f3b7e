package vault

// TokenType is the kind of token a role or token request produces.
type TokenType int

const (
	TokenTypeDefault TokenType = iota
	TokenTypeService
	TokenTypeBatch
	TokenTypeDefaultService
	TokenTypeDefaultBatch
)

var tokenTypes = NewEnum("token_type",
	EnumTag[TokenType]{TokenTypeDefault, "default"},
	EnumTag[TokenType]{TokenTypeService, "service"},
	EnumTag[TokenType]{TokenTypeBatch, "batch"},
	EnumTag[TokenType]{TokenTypeDefaultService, "default-service"},
	EnumTag[TokenType]{TokenTypeDefaultBatch, "default-batch"},
)

// TokenTypes returns the codec for [TokenType].
func TokenTypes() *Enum[TokenType] { return tokenTypes }

func (t TokenType) String() string { return tokenTypes.String(t) }

func (t TokenType) MarshalText() ([]byte, error) {
	tag, err := tokenTypes.Encode(t)
	return []byte(tag), err
}

func (t *TokenType) UnmarshalText(text []byte) error {
	v, err := tokenTypes.Decode(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ListingVisibility controls whether a mount shows up in the
// unauthenticated UI listing.
type ListingVisibility int

const (
	// ListingVisibilityDefault leaves the server default in place (hidden).
	ListingVisibilityDefault ListingVisibility = iota
	ListingVisibilityUnauth
	ListingVisibilityHidden
)

var listingVisibilities = NewEnum("listing_visibility",
	EnumTag[ListingVisibility]{ListingVisibilityDefault, ""},
	EnumTag[ListingVisibility]{ListingVisibilityUnauth, "unauth"},
	EnumTag[ListingVisibility]{ListingVisibilityHidden, "hidden"},
)

// ListingVisibilities returns the codec for [ListingVisibility].
func ListingVisibilities() *Enum[ListingVisibility] { return listingVisibilities }

func (v ListingVisibility) String() string { return listingVisibilities.String(v) }

func (v ListingVisibility) MarshalText() ([]byte, error) {
	tag, err := listingVisibilities.Encode(v)
	return []byte(tag), err
}

func (v *ListingVisibility) UnmarshalText(text []byte) error {
	d, err := listingVisibilities.Decode(string(text))
	if err != nil {
		return err
	}
	*v = d
	return nil
}

// TransitKeyType is the algorithm of a transit key.
type TransitKeyType int

const (
	TransitKeyAES256GCM96 TransitKeyType = iota
	TransitKeyAES128GCM96
	TransitKeyChaCha20Poly1305
	TransitKeyED25519
	TransitKeyECDSAP256
	TransitKeyECDSAP384
	TransitKeyECDSAP521
	TransitKeyRSA2048
	TransitKeyRSA3072
	TransitKeyRSA4096
	TransitKeyHMAC
)

var transitKeyTypes = NewEnum("transit_key_type",
	EnumTag[TransitKeyType]{TransitKeyAES256GCM96, "aes256-gcm96"},
	EnumTag[TransitKeyType]{TransitKeyAES128GCM96, "aes128-gcm96"},
	EnumTag[TransitKeyType]{TransitKeyChaCha20Poly1305, "chacha20-poly1305"},
	EnumTag[TransitKeyType]{TransitKeyED25519, "ed25519"},
	EnumTag[TransitKeyType]{TransitKeyECDSAP256, "ecdsa-p256"},
	EnumTag[TransitKeyType]{TransitKeyECDSAP384, "ecdsa-p384"},
	EnumTag[TransitKeyType]{TransitKeyECDSAP521, "ecdsa-p521"},
	EnumTag[TransitKeyType]{TransitKeyRSA2048, "rsa-2048"},
	EnumTag[TransitKeyType]{TransitKeyRSA3072, "rsa-3072"},
	EnumTag[TransitKeyType]{TransitKeyRSA4096, "rsa-4096"},
	EnumTag[TransitKeyType]{TransitKeyHMAC, "hmac"},
)

// TransitKeyTypes returns the codec for [TransitKeyType].
func TransitKeyTypes() *Enum[TransitKeyType] { return transitKeyTypes }

func (k TransitKeyType) String() string { return transitKeyTypes.String(k) }

func (k TransitKeyType) MarshalText() ([]byte, error) {
	tag, err := transitKeyTypes.Encode(k)
	return []byte(tag), err
}

func (k *TransitKeyType) UnmarshalText(text []byte) error {
	v, err := transitKeyTypes.Decode(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MountType is the backend type of a secrets engine or auth method mount.
type MountType int

const (
	MountTypeKV MountType = iota
	MountTypeTransit
	MountTypeAppRole
	MountTypeUserPass
	MountTypeToken
	MountTypePKI
	MountTypeDatabase
	MountTypeCubbyhole
	MountTypeIdentity
	MountTypeSystem
)

var mountTypes = NewEnum("mount_type",
	EnumTag[MountType]{MountTypeKV, "kv"},
	EnumTag[MountType]{MountTypeTransit, "transit"},
	EnumTag[MountType]{MountTypeAppRole, "approle"},
	EnumTag[MountType]{MountTypeUserPass, "userpass"},
	EnumTag[MountType]{MountTypeToken, "token"},
	EnumTag[MountType]{MountTypePKI, "pki"},
	EnumTag[MountType]{MountTypeDatabase, "database"},
	EnumTag[MountType]{MountTypeCubbyhole, "cubbyhole"},
	EnumTag[MountType]{MountTypeIdentity, "identity"},
	EnumTag[MountType]{MountTypeSystem, "system"},
)

// MountTypes returns the codec for [MountType].
func MountTypes() *Enum[MountType] { return mountTypes }

func (m MountType) String() string { return mountTypes.String(m) }

func (m MountType) MarshalText() ([]byte, error) {
	tag, err := mountTypes.Encode(m)
	return []byte(tag), err
}

func (m *MountType) UnmarshalText(text []byte) error {
	v, err := mountTypes.Decode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
