package spla

import (
	"github.com/sparselinalg/spla/algo"
	"github.com/sparselinalg/spla/format"
	"github.com/sparselinalg/spla/kernel"
	"github.com/sparselinalg/spla/typesop"
)

// reduceResult is reduce_scalar's (value, ok) pair boxed so it can travel
// through kernel.Algorithm.Run's `any` return.
type reduceResult struct {
	Val []byte
	Ok  bool
}

func acceptAny(...int) bool { return true }

// registerCPUAlgorithms installs one CPU Algorithm per operation name this
// package dispatches, each a thin closure onto the matching package algo
// function. ewise_add, ewise_mult, assign, reduce_scalar and map each have
// a vector and a matrix entry; mxm, vxm and mxv, which share the host
// semiring machinery, have one entry each because their operand shapes
// differ (matrix/matrix, vector/matrix, matrix/vector); data_write and
// data_read have none, since the Executor runs them directly.
func registerCPUAlgorithms(reg *kernel.Registry) {
	reg.Register(&kernel.Algorithm{Key: "ewise_add_vec__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		mask, _ := a[0].(*format.CooVec)
		return algo.EwiseAddVec(mask, a[1].(bool), a[2].(typesop.Op), a[3].(*format.CooVec), a[4].(*format.CooVec)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "ewise_add_mat__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		mask, _ := a[0].(*format.Coo)
		return algo.EwiseAddMat(mask, a[1].(bool), a[2].(typesop.Op), a[3].(*format.Coo), a[4].(*format.Coo)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "ewise_mult_vec__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		mask, _ := a[0].(*format.CooVec)
		return algo.EwiseMultVec(mask, a[1].(bool), a[2].(typesop.Op), a[3].(*format.CooVec), a[4].(*format.CooVec)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "ewise_mult_mat__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		mask, _ := a[0].(*format.Coo)
		return algo.EwiseMultMat(mask, a[1].(bool), a[2].(typesop.Op), a[3].(*format.Coo), a[4].(*format.Coo)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "assign_vec__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		w := a[0].(*format.CooVec)
		mask, _ := a[1].(*format.CooVec)
		var accum *typesop.Op
		if a[3] != nil {
			accum = a[3].(*typesop.Op)
		}
		return algo.AssignVec(w, mask, a[2].(bool), accum, a[4].([]byte)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "assign_mat__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		w := a[0].(*format.Coo)
		mask, _ := a[1].(*format.Coo)
		var accum *typesop.Op
		if a[3] != nil {
			accum = a[3].(*typesop.Op)
		}
		return algo.AssignMat(w, mask, a[2].(bool), accum, a[4].([]byte)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "reduce_scalar_vec__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		mask, _ := a[0].(*format.CooVec)
		var accum *typesop.Op
		if a[2] != nil {
			accum = a[2].(*typesop.Op)
		}
		var prior []byte
		if a[4] != nil {
			prior = a[4].([]byte)
		}
		v, ok := algo.ReduceScalar(mask, a[1].(bool), accum, a[3].(typesop.Op), prior, a[5].(*format.CooVec))
		return reduceResult{v, ok}, nil
	}})
	reg.Register(&kernel.Algorithm{Key: "reduce_scalar_mat__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		mask, _ := a[0].(*format.Coo)
		var accum *typesop.Op
		if a[2] != nil {
			accum = a[2].(*typesop.Op)
		}
		var prior []byte
		if a[4] != nil {
			prior = a[4].([]byte)
		}
		v, ok := algo.ReduceScalarMat(mask, a[1].(bool), accum, a[3].(typesop.Op), prior, a[5].(*format.Coo))
		return reduceResult{v, ok}, nil
	}})
	reg.Register(&kernel.Algorithm{Key: "reduce_by_row__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		var init []byte
		if a[2] != nil {
			init = a[2].([]byte)
		}
		return algo.ReduceByRow(a[0].(*format.Coo), a[1].(typesop.Op), init), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "mxm__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		return algo.Mxm(nil, false, a[0].(typesop.Op), a[1].(typesop.Op), a[2].(*format.Csr), a[3].(*format.Csr)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "vxm__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		return algo.Vxm(nil, false, a[0].(typesop.Op), a[1].(typesop.Op), a[2].(*format.CooVec), a[3].(*format.Csr)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "mxv__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		return algo.Mxv(nil, false, a[0].(typesop.Op), a[1].(typesop.Op), a[2].(*format.Csr), a[3].(*format.CooVec)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "transpose__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		mask, _ := a[0].(*format.Coo)
		var accum *typesop.Op
		if a[1] != nil {
			accum = a[1].(*typesop.Op)
		}
		var prior *format.Coo
		if a[2] != nil {
			prior = a[2].(*format.Coo)
		}
		return algo.Transpose(mask, accum, prior, a[3].(*format.Coo)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "tril__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		return algo.Tril(a[0].(*format.Coo)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "triu__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		return algo.Triu(a[0].(*format.Coo)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "map_vec__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		return algo.Map(a[0].(*format.CooVec), a[1].(typesop.Op)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "map_mat__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		return algo.MapMat(a[0].(*format.Coo), a[1].(typesop.Op)), nil
	}})
	reg.Register(&kernel.Algorithm{Key: "extract_row__cpu", DeviceClass: "cpu", Select: acceptAny, Run: func(a ...any) (any, error) {
		return algo.ExtractRow(a[0].(*format.Coo), a[1].(typesop.Op), a[2].(int)), nil
	}})
}
