package handler

import (
	"bytes"
	"sync"
)

// bufferPool holds buffers reused across JSON responses. The dominant
// response is a full progress aggregate, which for a typical account with
// a handful of pets and placed objects encodes to one or two kilobytes,
// so buffers start at 2KB to avoid a regrow on the common path.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, aggregateBufferSize))
	},
}

const aggregateBufferSize = 2048

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
