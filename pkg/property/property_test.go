package property

import (
	"math/big"
	"testing"

	"github.com/brooksby/realmath/pkg/rational"
	"github.com/stretchr/testify/assert"
)

func TestMakeNormalizesDegenerateArgs(t *testing.T) {
	assert.Equal(t, One, Sqrt(rational.One()))
	assert.Equal(t, One, Exp(rational.Zero()))
	assert.True(t, Sqrt(rational.Two()).Kind == KindSqrt)
}

func TestReducedArg(t *testing.T) {
	threeHalves, err := rational.New64(3, 2)
	assert.NoError(t, err)

	reduced := ReducedArg(threeHalves)
	assert.NotNil(t, reduced)

	// Reducing twice should be idempotent: the value is already in the
	// canonical representative's residue class.
	again := ReducedArg(reduced)
	assert.NotNil(t, again)
	assert.Equal(t, 0, again.CompareTo(reduced))
}

func TestCommonPower(t *testing.T) {
	p := CommonPower(big.NewInt(8), big.NewInt(4))
	assert.NotNil(t, p)

	assert.Nil(t, CommonPower(big.NewInt(6), big.NewInt(10)))
}

func TestDefinitelyIndependent(t *testing.T) {
	assert.False(t, DefinitelyIndependent(One, One))
	assert.True(t, DefinitelyIndependent(One, Irrational))
	assert.True(t, DefinitelyIndependent(Pi, Sqrt(rational.Two())))

	e1 := Exp(rational.One())
	e2, err := rational.New64(1, 2)
	assert.NoError(t, err)
	assert.True(t, DefinitelyIndependent(e1, Exp(e2)))
	assert.False(t, DefinitelyIndependent(e1, e1))
}
