package compress

// ZstdCodec compresses with Zstandard, trading some speed for the best
// ratio of the supported algorithms. It is the right choice for archived LD
// files and for network transfer.
//
// Two implementations exist behind build tags: cgo builds use valyala/gozstd
// (bindings to the reference C library), pure-Go builds use
// klauspost/compress/zstd.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
