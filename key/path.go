package key

import (
	"fmt"
	"strings"
)

// Path is a sequence of child numbers starting below some key, written
// "m/44'/0'/0'/0/1".
type Path []ChildNumber

// ParsePath parses a derivation path. The leading "m" is optional and "m"
// alone is the empty path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "m") {
		s = s[1:]
		if s == "" {
			return Path{}, nil
		}
		if s[0] != '/' {
			return nil, fmt.Errorf("%w: missing separator after m",
				ErrInvalidPath)
		}
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	elems := strings.Split(s, "/")
	path := make(Path, 0, len(elems))
	for i, elem := range elems {
		c, err := ParseChildNumber(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		path = append(path, c)
	}
	return path, nil
}

// String formats p with a leading "m".
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, c := range p {
		b.WriteString("/")
		b.WriteString(c.String())
	}
	return b.String()
}

// DerivePath derives every element of p in turn. Intermediate keys are zeroed
// once their child exists; k itself is left untouched.
func (k *ExtendedPrivateKey) DerivePath(p Path) (*ExtendedPrivateKey, error) {
	cur := k
	for _, c := range p {
		next, err := cur.Derive(c)
		if cur != k {
			cur.Zero()
		}
		if err != nil {
			return nil, fmt.Errorf("derive %v: %w", c, err)
		}
		cur = next
	}

	if cur == k {
		return k.clone(), nil
	}
	return cur, nil
}

// DerivePath derives every element of p in turn. Any hardened element fails
// with ErrImpossibleDerivation.
func (k *ExtendedPublicKey) DerivePath(p Path) (*ExtendedPublicKey, error) {
	cur := k
	for _, c := range p {
		next, err := cur.Derive(c)
		if err != nil {
			return nil, fmt.Errorf("derive %v: %w", c, err)
		}
		cur = next
	}
	return cur, nil
}

// clone returns an independent copy of k.
func (k *ExtendedPrivateKey) clone() *ExtendedPrivateKey {
	c := *k
	priv := *k.PrivateKey
	c.PrivateKey = &priv
	return &c
}
