package payments

import "fmt"

// MaxMetadataValueLen je Stripe limit za dužinu jedne metadata vrednosti.
const MaxMetadataValueLen = 500

// Metadata je mali key-value zapis koji putuje uz intent kod procesora.
// Vrednosti su ograničene na MaxMetadataValueLen — duže se odbijaju,
// pozivalac bira kompaktniju reprezentaciju.
type Metadata map[string]string

// Set upisuje vrednost ako staje u limit procesora.
func (m Metadata) Set(key, value string) error {
	if len(value) > MaxMetadataValueLen {
		return fmt.Errorf("metadata vrednost %q ima %d karaktera, limit je %d", key, len(value), MaxMetadataValueLen)
	}
	m[key] = value
	return nil
}

// Get vraća vrednost ili prazan string ako ključ ne postoji.
func (m Metadata) Get(key string) string {
	return m[key]
}
