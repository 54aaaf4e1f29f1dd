// Package archive provides read access to the ZIP container that holds an
// XPS package.
//
// A [Store] maps package-internal part names (forward-slash separated, no
// leading slash) to their raw bytes. Lookups are exact and case-sensitive
// unless the store was opened with [WithCaseFolding].
//
//	store, err := archive.Open("document.xps")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	rels, err := store.ReadText("_rels/.rels")
//
// # Text Decoding
//
// XML parts in a package are either UTF-8 or UTF-16. [DecodeText] (and
// [Store.ReadText]) look at the first little-endian 16-bit unit: when it is
// the byte-order mark 0xFEFF the remainder is decoded as UTF-16LE, otherwise
// the whole byte slice must be valid UTF-8.
package archive
