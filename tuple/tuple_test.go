package tuple_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/feltrun/felt"
	"github.com/consensys/feltrun/tuple"
	"github.com/consensys/feltrun/uints"
)

func TestPair(t *testing.T) {
	p := tuple.NewPair(felt.New(10), uints.MustNew[uints.B8](20))
	a, b := p.Destructure()
	require.True(t, a.Equal(felt.New(10)))
	require.Equal(t, "20", b.String())
}

func TestTriple(t *testing.T) {
	tr := tuple.NewTriple(felt.New(1), felt.True(), "tag")
	a, b, c := tr.Destructure()
	require.True(t, a.IsOne())
	require.True(t, b.IsTrue())
	require.Equal(t, "tag", c)
}

func TestQuad(t *testing.T) {
	q := tuple.NewQuad(1, 2, 3, 4)
	a, b, c, d := q.Destructure()
	require.Equal(t, [4]int{1, 2, 3, 4}, [4]int{a, b, c, d})
}

func TestDestructureIsRepeatable(t *testing.T) {
	// tuples are immutable values; destructuring reads, it does not drain
	p := tuple.NewPair(1, 2)
	a1, b1 := p.Destructure()
	a2, b2 := p.Destructure()
	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)
}
