// Package edgeio reads and writes sets of edges for PM quadtrees.
package edgeio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	stdstrconv "strconv"

	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/pmquadtree"
)

func isSeparator(c byte) bool {
	return c == ' ' || c == ',' || c == '\t' || c == '\r' || c == '\n'
}

func skipSeparators(b []byte) int {
	i := 0
	for i < len(b) && isSeparator(b[i]) {
		i++
	}
	return i
}

// parseNums parses exactly len(nums) numbers separated by whitespace or commas.
func parseNums(b []byte, nums []float64) error {
	i := 0
	for k := range nums {
		i += skipSeparators(b[i:])
		if len(b) <= i {
			return fmt.Errorf("expected %d numbers, got %d", len(nums), k)
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 || i+n < len(b) && !isSeparator(b[i+n]) {
			return fmt.Errorf("bad number at column %d", i+1)
		} else if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("number at column %d is not finite", i+1)
		}
		nums[k] = f
		i += n
	}
	if i += skipSeparators(b[i:]); i < len(b) {
		return fmt.Errorf("unexpected data at column %d", i+1)
	}
	return nil
}

// ReadText reads edges from a text file, one edge per line given as four numbers x0 y0 x1 y1 separated by whitespace or commas. Empty lines and everything following a # are ignored.
func ReadText(r io.Reader) ([]pmquadtree.Edge, error) {
	var edges []pmquadtree.Edge
	nums := make([]float64, 4)
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		b := scanner.Bytes()
		if i := bytes.IndexByte(b, '#'); i != -1 {
			b = b[:i]
		}
		if len(b) == skipSeparators(b) {
			continue
		}
		if err := parseNums(b, nums); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		edges = append(edges, pmquadtree.Edge{
			A: pmquadtree.Point{X: nums[0], Y: nums[1]},
			B: pmquadtree.Point{X: nums[2], Y: nums[3]},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

// WriteText writes edges in the format read by ReadText.
func WriteText(w io.Writer, edges []*pmquadtree.Edge) error {
	bw := bufio.NewWriter(w)
	buf := []byte{}
	for _, e := range edges {
		buf = buf[:0]
		buf = stdstrconv.AppendFloat(buf, e.A.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = stdstrconv.AppendFloat(buf, e.A.Y, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = stdstrconv.AppendFloat(buf, e.B.X, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = stdstrconv.AppendFloat(buf, e.B.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Bounds returns the smallest rectangle containing all edges, ok is false if there are no edges.
func Bounds(edges []pmquadtree.Edge) (r pmquadtree.Rect, ok bool) {
	if len(edges) == 0 {
		return pmquadtree.Rect{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, e := range edges {
		for _, p := range []pmquadtree.Point{e.A, e.B} {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	return pmquadtree.NewRect(minX, minY, maxX, maxY), true
}
