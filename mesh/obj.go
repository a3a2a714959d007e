package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/xernobyl/ionmath/vec"
)

type edgeKey struct {
	A, B uint32
}

func newEdgeKey(a, b uint32) edgeKey {
	// Sort the edge to make it undirected
	if a > b {
		a, b = b, a
	}
	return edgeKey{A: a, B: b}
}

func (t Triangle) edges() [3]edgeKey {
	return [3]edgeKey{
		newEdgeKey(t[0], t[1]),
		newEdgeKey(t[1], t[2]),
		newEdgeKey(t[2], t[0]),
	}
}

// LoadOBJ reads a Wavefront OBJ mesh. Only vertex positions and triangular
// faces are used; other statements are skipped. Face indices may be negative,
// counting back from the last vertex read. The mesh must be watertight: every
// edge shared by exactly two faces.
func LoadOBJ(r io.Reader, opts ...Option) (*Mesh, error) {
	m := &Mesh{}
	for _, opt := range opts {
		opt(m)
	}
	log := m.logger()

	seen := make(map[vec.Vec3d]int)
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)

		switch tokens[0] {
		case "v":
			// An optional fourth w coordinate is ignored.
			if len(tokens) != 4 && len(tokens) != 5 {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
			}

			var vertex vec.Vec3d
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(tokens[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w: %w", lineNo, ErrMalformedLine, err)
				}
				vertex[i] = f
			}

			if first, ok := seen[vertex]; ok {
				log.Warn("mesh has duplicated vertices",
					zap.Int("line", lineNo),
					zap.Int("vertex", len(m.Vertices)+1),
					zap.Int("first", first+1))
			} else {
				seen[vertex] = len(m.Vertices)
			}
			m.Vertices = append(m.Vertices, vertex)

		case "f":
			if len(tokens) != 4 {
				return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrNonTriangularFace, line)
			}

			var triangle Triangle
			for i := 0; i < 3; i++ {
				idx, err := faceIndex(tokens[i+1], len(m.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				triangle[i] = idx
			}
			m.Triangles = append(m.Triangles, triangle)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := m.checkWatertight(); err != nil {
		return nil, err
	}

	m.Min, m.Max = vec.Bounds[float64](m.Vertices)

	log.Debug("loaded mesh",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(m.Triangles)))

	return m, nil
}

// faceIndex parses the vertex part of a face token such as "3", "3/1" or
// "3//2" into a zero based index.
func faceIndex(token string, vertexCount int) (uint32, error) {
	v, _, _ := strings.Cut(token, "/")

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	if i < 0 {
		i += vertexCount
	} else {
		i--
	}

	if i < 0 || i >= vertexCount {
		return 0, fmt.Errorf("%w: %s with %d vertices", ErrIndexOutOfRange, token, vertexCount)
	}

	return uint32(i), nil
}

func (m *Mesh) checkWatertight() error {
	edgeCount := make(map[edgeKey]int)
	for _, triangle := range m.Triangles {
		for _, e := range triangle.edges() {
			edgeCount[e]++
		}
	}

	for _, triangle := range m.Triangles {
		for _, e := range triangle.edges() {
			if count := edgeCount[e]; count != 2 {
				return fmt.Errorf("%w: edge %d-%d used by %d faces", ErrNotWatertight, e.A+1, e.B+1, count)
			}
		}
	}

	return nil
}
