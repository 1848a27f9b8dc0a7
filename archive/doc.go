// Package archive persists list snapshots to a blobstore.Store.
//
// An Archiver is a slotlist.Reporter: attach it with slotlist.WithReporter
// and every diagnostic report of the list is buffered as an Entry. Flush
// uploads the buffer; Load and LoadAll read entries back for inspection.
//
//	store := blobstore.NewLocalStore("dumps")
//	arch := archive.New[int](store, archive.WithCompression(archive.CompressionLZ4))
//	l, _ := slotlist.New[int](4, slotlist.WithReporter[int](arch))
//	// ... use the list ...
//	_ = arch.Flush(ctx)
//
// Entries are encoded with a codec from package codec and compressed with
// zstd or LZ4. The codec name travels in the blob header, so Load needs
// no configuration.
package archive
