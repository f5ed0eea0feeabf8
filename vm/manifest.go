package vm

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// The native manifest is the generator's sidecar description of the pointer
// table: one entry per generated binding, in slot order. The build writes it
// next to the generated Go source; VerifyManifest cross-checks it against
// the compiled-in table so a generator/table mismatch fails at startup
// instead of surfacing later as a corrupted dispatch.

// ManifestFormatVersion is bumped when the manifest encoding changes.
const ManifestFormatVersion = 1

// ManifestEntry describes one generated binding.
type ManifestEntry struct {
	Name  string `cbor:"name"`
	Token int32  `cbor:"token"`
}

// Manifest is the generator's table description.
type Manifest struct {
	FormatVersion int             `cbor:"format-version"`
	Entries       []ManifestEntry `cbor:"entries"`
}

// Canonical mode keeps manifest bytes deterministic across generator runs.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vm: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalManifest serializes a Manifest to CBOR bytes.
func MarshalManifest(m *Manifest) ([]byte, error) {
	return cborEncMode.Marshal(m)
}

// UnmarshalManifest deserializes a Manifest from CBOR bytes.
func UnmarshalManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("vm: unmarshal manifest: %w", err)
	}
	return &m, nil
}

// LoadManifestFile reads and decodes a manifest written by the generator.
func LoadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return UnmarshalManifest(data)
}

// ManifestFor builds the manifest describing a table. The generator uses
// this to emit the sidecar; tests use it to build fixtures.
func ManifestFor(t *NativeTable) *Manifest {
	m := &Manifest{FormatVersion: ManifestFormatVersion}
	for i := 0; i < t.Len(); i++ {
		m.Entries = append(m.Entries, ManifestEntry{
			Name:  t.Name(i),
			Token: t.TokenFor(i),
		})
	}
	return m
}

// VerifyManifest checks a generator manifest against the compiled-in table.
func VerifyManifest(t *NativeTable, m *Manifest) error {
	if m.FormatVersion != ManifestFormatVersion {
		return fmt.Errorf("manifest format version %d, runtime expects %d",
			m.FormatVersion, ManifestFormatVersion)
	}
	if len(m.Entries) != t.Len() {
		return fmt.Errorf("manifest lists %d bindings, table has %d", len(m.Entries), t.Len())
	}
	for i, e := range m.Entries {
		if want := t.TokenFor(i); e.Token != want {
			return fmt.Errorf("entry %d (%s): token %d, want %d", i, e.Name, e.Token, want)
		}
		if name := t.Name(i); name != "" && e.Name != name {
			return fmt.Errorf("entry %d: manifest names %q, table names %q", i, e.Name, name)
		}
	}
	return nil
}
