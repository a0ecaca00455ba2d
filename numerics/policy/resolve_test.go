//go:build unit

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik-a/safe-numerics/numerics/checked"
	"github.com/pratik-a/safe-numerics/numerics/numeric"
)

var (
	nativeThrow = NewSet(Native{}, Throw{})
	nativeTrap  = NewSet(Native{}, Trap{})
	autoThrow   = NewSet(Automatic{}, Throw{})
)

type ledger struct{}

func (ledger) Policies() Set { return nativeThrow }

// brokenPromotion has a slice field, so it cannot be compared.
type brokenPromotion struct{ rules []string }

func (brokenPromotion) Name() string { return "broken" }

func (brokenPromotion) Result(_ checked.Op, a, _ numeric.Kind) numeric.Kind { return a }

type nowherePromotion struct{}

func (nowherePromotion) Name() string { return "nowhere" }

func (nowherePromotion) Result(checked.Op, numeric.Kind, numeric.Kind) numeric.Kind {
	return numeric.Invalid
}

func TestType_Carrier(t *testing.T) {
	t.Parallel()

	plain := PlainOf[int16]()
	assert.False(t, plain.IsSafe())
	assert.Equal(t, numeric.Int16, plain.Kind)
	_, ok := plain.PolicySet()
	assert.False(t, ok)
	assert.Equal(t, "int16", plain.String())

	safe := SafeOf[ledger, uint8]()
	assert.True(t, safe.IsSafe())
	set, ok := safe.PolicySet()
	require.True(t, ok)
	assert.True(t, set.Equal(nativeThrow))
	assert.Equal(t, "safe[uint8, native/throw]", safe.String())
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    Type
		want    Set
		wantErr error
	}{
		{
			name: "safe left plain right",
			a:    Safe(numeric.Int8, nativeThrow),
			b:    Plain(numeric.Int64),
			want: nativeThrow,
		},
		{
			name: "plain left safe right",
			a:    Plain(numeric.Uint32),
			b:    Safe(numeric.Int8, autoThrow),
			want: autoThrow,
		},
		{
			name: "both safe with equal sets",
			a:    Safe(numeric.Int8, nativeThrow),
			b:    Safe(numeric.Uint64, NewSet(Native{}, Throw{})),
			want: nativeThrow,
		},
		{
			name:    "both safe with different exception policies",
			a:       Safe(numeric.Int8, nativeThrow),
			b:       Safe(numeric.Int8, nativeTrap),
			wantErr: ErrPolicyConflict,
		},
		{
			name:    "both safe with different promotion policies",
			a:       Safe(numeric.Int8, nativeThrow),
			b:       Safe(numeric.Int8, autoThrow),
			wantErr: ErrPolicyConflict,
		},
		{
			name:    "neither safe",
			a:       Plain(numeric.Int8),
			b:       Plain(numeric.Int8),
			wantErr: ErrNoPolicy,
		},
		{
			name:    "nil exception",
			a:       Safe(numeric.Int8, NewSet(Native{}, nil)),
			b:       Plain(numeric.Int8),
			wantErr: ErrInvalidPolicySet,
		},
		{
			name:    "non-comparable promotion",
			a:       Safe(numeric.Int8, NewSet(brokenPromotion{}, Throw{})),
			b:       Plain(numeric.Int8),
			wantErr: ErrInvalidPolicySet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.a, tt.b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, ErrConfiguration)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestResolve_ConflictNamesBothSets(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Safe(numeric.Int8, nativeThrow), Safe(numeric.Int8, nativeTrap))

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "native/throw")
	assert.Contains(t, err.Error(), "native/trap")

	var nilConflict *ConflictError
	assert.Equal(t, ErrPolicyConflict.Error(), nilConflict.Error())
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	a := Safe(numeric.Int32, autoThrow)
	b := Plain(numeric.Uint8)

	first, err := Resolve(a, b)
	require.NoError(t, err)

	second, err := Resolve(a, b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.Equal(second))
}

func TestResultType(t *testing.T) {
	t.Parallel()

	rt, err := ResultType(checked.OpAdd, Safe(numeric.Int8, autoThrow), Plain(numeric.Int8))
	require.NoError(t, err)
	assert.Equal(t, numeric.Int16, rt.Kind)
	assert.True(t, rt.IsSafe())

	set, _ := rt.PolicySet()
	assert.True(t, set.Equal(autoThrow))

	_, err = ResultType(checked.OpAdd, Plain(numeric.Int8), Plain(numeric.Int8))
	require.ErrorIs(t, err, ErrNoPolicy)

	_, err = ResultType(checked.OpAdd, Safe(numeric.Int8, NewSet(nowherePromotion{}, Throw{})), Plain(numeric.Int8))
	require.ErrorIs(t, err, ErrInvalidPolicySet)
}

func TestResultType_TotalForEveryKindPair(t *testing.T) {
	t.Parallel()

	kinds := append(append([]numeric.Kind{}, numeric.SignedKinds...), numeric.UnsignedKinds...)

	for _, set := range []Set{nativeThrow, autoThrow} {
		for _, op := range checked.Ops {
			for _, a := range kinds {
				for _, b := range kinds {
					rt, err := ResultType(op, Safe(a, set), Plain(b))
					require.NoError(t, err, "%s %s %s under %s", a, op, b, set)
					require.True(t, rt.Kind.Valid())
				}
			}
		}
	}
}

func TestSet_Equal(t *testing.T) {
	t.Parallel()

	reporter := NewReporter(nil, nil)

	assert.True(t, NewSet(Native{}, reporter).Equal(NewSet(Native{}, reporter)))
	assert.True(t, NewSet(Native{}, reporter).Equal(NewSet(Native{}, NewReporter(nil, Throw{}))))
	assert.False(t, NewSet(Native{}, reporter).Equal(NewSet(Native{}, NewReporter(nil, Saturate{}))))
	assert.False(t, NewSet(Native{}, reporter).Equal(nativeThrow))
	assert.False(t, nativeThrow.Equal(NewSet(Native{}, reporter)))
	assert.False(t, NewSet(brokenPromotion{}, Throw{}).Equal(NewSet(brokenPromotion{}, Throw{})))
	assert.True(t, Set{}.Equal(Set{}))
	assert.False(t, Set{}.Equal(nativeThrow))
	assert.Equal(t, "<nil>/<nil>", Set{}.String())
}

func TestResolve_FreshReportersAgree(t *testing.T) {
	t.Parallel()

	reported := func() Set { return NewSet(Native{}, NewReporter(nil, Throw{})) }

	set, err := Resolve(Safe(numeric.Int8, reported()), Safe(numeric.Int16, reported()))
	require.NoError(t, err)
	assert.Equal(t, "native/report(throw)", set.String())

	_, err = Resolve(Safe(numeric.Int8, reported()), Safe(numeric.Int8, NewSet(Native{}, NewReporter(nil, Trap{}))))
	require.ErrorIs(t, err, ErrPolicyConflict)
}
