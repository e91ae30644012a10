package descriptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/descriptor"
)

func TestSetGetRemoveParam(t *testing.T) {
	d := descriptor.New()
	require.False(t, d.IsParamSet(descriptor.NoDuplicates))

	d.SetParam(descriptor.DenseFactor, "0.5")
	v, ok := d.GetParam(descriptor.DenseFactor)
	require.True(t, ok)
	require.Equal(t, "0.5", v)

	f, ok := d.DenseFactorValue()
	require.True(t, ok)
	require.InDelta(t, 0.5, f, 1e-9)

	require.True(t, d.RemoveParam(descriptor.DenseFactor))
	require.False(t, d.RemoveParam(descriptor.DenseFactor))
	_, ok = d.GetParam(descriptor.DenseFactor)
	require.False(t, ok)
}

func TestSetFlag(t *testing.T) {
	d := descriptor.New()
	d.SetFlag(descriptor.ValuesSorted, true)
	require.True(t, d.IsParamSet(descriptor.ValuesSorted))
	d.SetFlag(descriptor.ValuesSorted, false)
	require.False(t, d.IsParamSet(descriptor.ValuesSorted))
}

func TestDupIsIndependent(t *testing.T) {
	d := descriptor.New()
	d.SetParam(descriptor.TransposeArg1, "")
	dup := d.Dup()
	dup.SetParam(descriptor.TransposeArg2, "")

	require.False(t, d.IsParamSet(descriptor.TransposeArg2))
	require.True(t, dup.IsParamSet(descriptor.TransposeArg1))
}

func TestBuildKey(t *testing.T) {
	d := descriptor.New()
	key := d.BuildKey("mxm", []string{"plus_fff", "times_fff"}, "__cpu")
	require.Equal(t, "mxm_plus_fff_times_fff__cpu", key)

	d.SetParam(descriptor.MaskComplement, "")
	key = d.BuildKey("ewise_add", []string{"plus_fff"}, "__gpu_cl")
	require.Equal(t, "ewise_add_plus_fff_cmpl__gpu_cl", key)
}
