package fsmbin

// signature Block of a state together with the blocks of its successors on
// bit 0 and bit 1, all taken from the same partition snapshot.
type signature struct {
	block int
	next0 int
	next1 int
}

func (s signature) hash() uint64 {
	h := uint64(mix32(s.block))
	h = h*31 + uint64(mix32(s.next0))
	h = h*31 + uint64(mix32(s.next1))
	return h
}

type signatureEntry struct {
	key   signature
	value int
	next  *signatureEntry
}

// signatureTable Chained hash table from signature to block id. Ids are handed
// out in order of first insertion.
type signatureTable struct {
	buckets []*signatureEntry
	size    int
	mask    uint64
}

const signatureLoadFactor = 0.75

type signatureTableOptions struct {
	capacity int
}

type signatureTableOption func(*signatureTableOptions)

func withCapacity(capacity int) signatureTableOption {
	return func(o *signatureTableOptions) {
		o.capacity = capacity
	}
}

func newSignatureTable(opts ...signatureTableOption) *signatureTable {
	options := &signatureTableOptions{
		capacity: 1,
	}
	for _, opt := range opts {
		opt(options)
	}

	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}

	return &signatureTable{
		buckets: make([]*signatureEntry, realCap),
		mask:    uint64(realCap - 1),
	}
}

// assign Returns the id of key, allocating the next free id if key is new.
func (t *signatureTable) assign(key signature) (int, bool) {
	index := key.hash() & t.mask
	for e := t.buckets[index]; e != nil; e = e.next {
		if e.key == key {
			return e.value, false
		}
	}

	id := t.size
	t.buckets[index] = &signatureEntry{
		key:   key,
		value: id,
		next:  t.buckets[index],
	}
	t.size++

	if float64(t.size)/float64(len(t.buckets)) > signatureLoadFactor {
		t.resize()
	}
	return id, true
}

func (t *signatureTable) resize() {
	newCap := len(t.buckets) << 1
	newBuckets := make([]*signatureEntry, newCap)
	newMask := uint64(newCap - 1)

	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.hash() & newMask
			newBuckets[newIndex] = &signatureEntry{
				key:   e.key,
				value: e.value,
				next:  newBuckets[newIndex],
			}
		}
	}

	t.buckets = newBuckets
	t.mask = newMask
}

func (t *signatureTable) len() int {
	return t.size
}

// mix32 is the 32 bit finalization step of MurmurHash3.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}
