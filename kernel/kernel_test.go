package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparselinalg/spla/accel"
)

func TestDispatcherCPUFallback(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Algorithm{
		Key:         "ewise_add_plus__cpu",
		DeviceClass: "cpu",
		Select:      func(formats ...int) bool { return true },
		Run:         func(args ...any) (any, error) { return "cpu-ran", nil },
	})

	d := NewDispatcher(reg, nil, false)
	alg, err := d.Resolve("ewise_add_plus", []int{0, 0}, nil)
	require.NoError(t, err)
	require.Equal(t, "ewise_add_plus__cpu", alg.Key)
}

func TestDispatcherAcceleratorPreferredWhenEnabled(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Algorithm{Key: "mxm_times__cpu", Select: func(formats ...int) bool { return true }})
	reg.Register(&Algorithm{Key: "mxm_times__gpu_reference", Select: func(formats ...int) bool { return true }})

	d := NewDispatcher(reg, accel.NewReference(), true)
	alg, err := d.Resolve("mxm_times", []int{0, 0}, nil)
	require.NoError(t, err)
	require.Equal(t, "mxm_times__gpu_reference", alg.Key)
}

func TestDispatcherAtomicAddFallsBackBeforeDeviceLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Algorithm{Key: "reduce_scalar__cpu", Select: func(formats ...int) bool { return true }})
	reg.Register(&Algorithm{
		Key:               "reduce_scalar__gpu_reference",
		RequiresAtomicAdd: true,
		Select:            func(formats ...int) bool { return true },
	})

	d := NewDispatcher(reg, accel.NewReference(), true)
	alg, err := d.Resolve("reduce_scalar", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "reduce_scalar__cpu", alg.Key, "reference backend reports no atomic-add support")
}

func TestDispatcherConvertsOnFormatMismatch(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Algorithm{
		Key:    "ewise_mult_times__cpu",
		Select: func(formats ...int) bool { return len(formats) == 2 && formats[0] == 1 && formats[1] == 1 },
	})

	formats := []int{0, 1}
	converted := false
	convert := func(i int) error {
		if i == 0 {
			formats[0] = 1
			converted = true
			return nil
		}
		return nil
	}

	d := NewDispatcher(reg, nil, false)
	_, err := d.Resolve("ewise_mult_times", formats, convert)
	require.NoError(t, err)
	require.True(t, converted)
}

func TestDispatcherNotRegistered(t *testing.T) {
	d := NewDispatcher(NewRegistry(), nil, false)
	_, err := d.Resolve("nope", nil, nil)
	require.ErrorIs(t, err, ErrNotRegistered)
}
