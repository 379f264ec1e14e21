package base58check

// String is Base58Check text known to be well formed: every character is in
// the alphabet and the trailing checksum matches the payload. The zero value
// is not valid; build one with FromBytes or Parse.
type String struct {
	text    string
	payload []byte
}

// FromBytes encodes payload. It never fails.
func FromBytes(payload []byte) String {
	p := make([]byte, len(payload))
	copy(p, payload)

	return String{
		text:    Encode(p),
		payload: p,
	}
}

// Parse validates s and returns it as a String.
func Parse(s string) (String, error) {
	payload, err := Decode(s)
	if err != nil {
		return String{}, err
	}

	return String{
		text:    s,
		payload: payload,
	}, nil
}

// String returns the Base58Check text.
func (s String) String() string {
	return s.text
}

// Bytes returns a copy of the payload without the checksum.
func (s String) Bytes() []byte {
	p := make([]byte, len(s.payload))
	copy(p, s.payload)
	return p
}

// Equal reports whether both values carry the same text.
func (s String) Equal(other String) bool {
	return s.text == other.text
}
