package codec

import (
	"bufio"
	"io"
	"strconv"
)

// Text writes one centroid per line, coordinates joined by commas and
// formatted with exactly four decimals.
type Text struct{}

// Write renders the centroids of r.
func (Text) Write(w io.Writer, r *Report) error {
	return WriteCentroids(w, r.Centroids)
}

// Name returns "text".
func (Text) Name() string { return "text" }

// WriteCentroids writes centroids in the text layout.
func WriteCentroids[P ~[]float64](w io.Writer, centroids []P) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, c := range centroids {
		buf = AppendCentroid(buf[:0], c)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// AppendCentroid appends the text form of c (without newline) to dst.
func AppendCentroid(dst []byte, c []float64) []byte {
	for i, v := range c {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendFloat(dst, v, 'f', 4, 64)
	}
	return dst
}
