package descriptor

import (
	"fmt"
	"strconv"
	"strings"
)

// Param names a descriptor parameter (spec.md §3 Descriptor table).
type Param int

const (
	ValuesSorted Param = iota
	NoDuplicates
	MaskComplement
	AccumResult
	ProfileTime
	DenseFactor
	TransposeArg1
	TransposeArg2
	DeviceId0
	DeviceId1
	DeviceId2
	DeviceId3
	DeviceId4
	DeviceId5
	DeviceId6
	DeviceId7

	paramCount
)

func (p Param) String() string {
	switch p {
	case ValuesSorted:
		return "ValuesSorted"
	case NoDuplicates:
		return "NoDuplicates"
	case MaskComplement:
		return "MaskComplement"
	case AccumResult:
		return "AccumResult"
	case ProfileTime:
		return "ProfileTime"
	case DenseFactor:
		return "DenseFactor"
	case TransposeArg1:
		return "TransposeArg1"
	case TransposeArg2:
		return "TransposeArg2"
	default:
		if p >= DeviceId0 && p <= DeviceId7 {
			return fmt.Sprintf("DeviceId%d", int(p-DeviceId0))
		}
		return fmt.Sprintf("Param(%d)", int(p))
	}
}

// Descriptor is a small fixed-enum configuration bag: each Param is
// either unset, set with no value, or set with a string value
// (spec.md §3). The zero value is an empty descriptor.
type Descriptor struct {
	values map[Param]string
	set    map[Param]bool
}

// New returns an empty Descriptor.
func New() *Descriptor {
	return &Descriptor{values: make(map[Param]string), set: make(map[Param]bool)}
}

// SetParam sets param, optionally carrying value (pass "" for a
// no-value param).
func (d *Descriptor) SetParam(param Param, value string) {
	if d.set == nil {
		d.set = make(map[Param]bool)
		d.values = make(map[Param]string)
	}
	d.set[param] = true
	d.values[param] = value
}

// SetFlag sets param with no value when flag is true, and removes it
// when flag is false — the boolean-set convenience form of SetParam.
func (d *Descriptor) SetFlag(param Param, flag bool) {
	if flag {
		d.SetParam(param, "")
	} else {
		d.RemoveParam(param)
	}
}

// GetParam reports whether param is set and, if so, its string value
// (empty if it was set with no value).
func (d *Descriptor) GetParam(param Param) (string, bool) {
	if !d.set[param] {
		return "", false
	}
	return d.values[param], true
}

// IsParamSet reports whether param is set, ignoring its value.
func (d *Descriptor) IsParamSet(param Param) bool {
	return d.set[param]
}

// RemoveParam unsets param, reporting whether it had been set.
func (d *Descriptor) RemoveParam(param Param) bool {
	had := d.set[param]
	delete(d.set, param)
	delete(d.values, param)
	return had
}

// DenseFactorValue parses the DenseFactor param as a float, returning
// ok=false if the param is unset or not a valid number.
func (d *Descriptor) DenseFactorValue() (float64, bool) {
	s, ok := d.GetParam(DenseFactor)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Dup returns an independent copy: mutating the copy never affects the
// original and vice versa (spec.md §3 "Ops, Types, Descriptors are
// value-like and freely shared").
func (d *Descriptor) Dup() *Descriptor {
	nd := New()
	for p, v := range d.values {
		nd.values[p] = v
	}
	for p, v := range d.set {
		nd.set[p] = v
	}
	return nd
}

// MaskComplementSuffix returns the dispatch-key suffix contributed by
// MaskComplement: "_cmpl" when set, "" otherwise (spec.md §4.6).
func (d *Descriptor) MaskComplementSuffix() string {
	if d.IsParamSet(MaskComplement) {
		return "_cmpl"
	}
	return ""
}

// BuildKey concatenates the dispatch key described in spec.md §4.6: the
// operation name, then "_"+argKey for each op argument in order, then
// the mask-complement suffix, then the device-class suffix ("__cpu" or
// "__gpu_<backend>"). Callers pass deviceSuffix already formatted
// (kernel.Dispatcher owns the accelerator-fallback retry).
func (d *Descriptor) BuildKey(opName string, argKeys []string, deviceSuffix string) string {
	var b strings.Builder
	b.WriteString(opName)
	for _, k := range argKeys {
		b.WriteByte('_')
		b.WriteString(k)
	}
	b.WriteString(d.MaskComplementSuffix())
	b.WriteString(deviceSuffix)
	return b.String()
}
