package grisu

// bufferSize bounds every literal the formatter builds: 17 significant
// digits, a leading "0.", the exponent marker, its sign and up to four
// exponent digits fit with room to spare.
const bufferSize = 32

// digitBuffer is a fixed-capacity byte buffer owned by a single
// conversion. Only the first n bytes are meaningful.
type digitBuffer struct {
	b [bufferSize]byte
	n int
}

func (d *digitBuffer) bytes() []byte {
	return d.b[:d.n]
}

func (d *digitBuffer) len() int {
	return d.n
}

func (d *digitBuffer) reset() {
	d.n = 0
}

func (d *digitBuffer) grow(k int) {
	if d.n+k > len(d.b) {
		panic("grisu: digit buffer overflow")
	}
}

func (d *digitBuffer) append(c ...byte) {
	d.grow(len(c))
	d.n += copy(d.b[d.n:], c)
}

// insert shifts the bytes from position at onwards right by len(s) and
// writes s into the gap.
func (d *digitBuffer) insert(at int, s ...byte) {
	if at < 0 || at > d.n {
		panic("grisu: digit buffer insert out of range")
	}
	d.grow(len(s))
	copy(d.b[at+len(s):d.n+len(s)], d.b[at:d.n])
	copy(d.b[at:], s)
	d.n += len(s)
}

// insertZeros inserts k '0' bytes at position at.
func (d *digitBuffer) insertZeros(at, k int) {
	if k <= 0 {
		return
	}
	d.grow(k)
	var zeros [bufferSize]byte
	for i := 0; i < k; i++ {
		zeros[i] = '0'
	}
	d.insert(at, zeros[:k]...)
}

func (d *digitBuffer) decrementLast() {
	d.b[d.n-1]--
}

// appendInt writes v in decimal, preceded by '-' when negative.
func (d *digitBuffer) appendInt(v int) {
	if v < 0 {
		d.append('-')
		v = -v
	}
	var tmp [20]byte
	n := 0
	for {
		q := v / 10
		tmp[n] = byte('0' + v - q*10)
		n++
		if q == 0 {
			break
		}
		v = q
	}
	for i := 0; i < n/2; i++ {
		tmp[i], tmp[n-1-i] = tmp[n-1-i], tmp[i]
	}
	d.append(tmp[:n]...)
}
