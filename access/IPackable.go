package access

// Packable is a value that knows its exact encoded size and can write
// itself into a Writer. EncodedSize lets callers reserve the buffer once.
//
// ⚠️ Allocation Warning:
// Boxing a slice type (e.g. [][]int32) into this interface copies its
// header to the heap. On hot paths pass the concrete type, or call the
// Writer's typed methods directly.
type Packable interface {
	EncodedSize() int
	PackInto(w *Writer)
}

// Unpackable decodes itself from a Reader, consuming exactly the bytes a
// matching Packable produced.
type Unpackable interface {
	UnpackFrom(r *Reader) error
}
