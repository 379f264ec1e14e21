package base58check

// alphabet maps a base-58 digit to its character.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// invalidIndex marks bytes that are not part of the alphabet.
const invalidIndex = 0xff

// indexes maps a byte to its base-58 digit, or invalidIndex.
var indexes = func() [256]byte {
	var table [256]byte
	for i := range table {
		table[i] = invalidIndex
	}
	for i := 0; i < len(alphabet); i++ {
		table[alphabet[i]] = byte(i)
	}
	return table
}()
