package benchmark_test

import (
	"context"
	"testing"

	"github.com/hupe1980/slotlist/archive"
	"github.com/hupe1980/slotlist/blobstore"
	"github.com/hupe1980/slotlist/codec"
)

func BenchmarkArchiveSave(b *testing.B) {
	snap := NewBenchList(b, sizeSmall).Snapshot()
	ctx := context.Background()

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		for _, comp := range []archive.Compression{archive.CompressionNone, archive.CompressionLZ4, archive.CompressionZstd} {
			b.Run(c.Name()+"/"+comp.String(), func(b *testing.B) {
				store := blobstore.NewMemoryStore()
				arch := archive.New[int](store, archive.WithCodec(c), archive.WithCompression(comp))

				b.ReportAllocs()
				b.ResetTimer()
				for range b.N {
					if _, err := arch.Save(ctx, "bench", snap); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
