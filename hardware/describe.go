package hardware

import (
	"strconv"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

// maxExactNumber is the largest integer a protobuf NumberValue (a float64) represents exactly.
const maxExactNumber = 1 << 53

// Describe collects every answer of the Context into a protobuf Struct, suitable for
// serialization with protojson.
//
// Aspects, properties and list properties are keyed by their enum names. Property values too large to
// be exactly represented as a protobuf number are stored as decimal strings.
func Describe(ctx Context) (*structpb.Struct, error) {
	if ctx == nil {
		return nil, errors.New("hardware.Describe: nil device context")
	}
	aspects := make(map[string]any, NumAspects)
	for _, aspect := range AspectValues() {
		aspects[aspect.String()] = ctx.Has(aspect)
	}
	properties := make(map[string]any, NumUintProperties)
	for _, prop := range UintPropertyValues() {
		properties[prop.String()] = numberValue(ctx.Property(prop))
	}
	listProperties := make(map[string]any, NumUintListProperties)
	for _, prop := range UintListPropertyValues() {
		values := ctx.ListProperty(prop)
		list := make([]any, len(values))
		for ii, v := range values {
			list[ii] = numberValue(v)
		}
		listProperties[prop.String()] = list
	}

	desc, err := structpb.NewStruct(map[string]any{
		"name":                   ctx.DeviceName(),
		"vendor":                 ctx.VendorName(),
		"arch":                   ctx.DeviceArch(),
		"driver_version":         ctx.DriverVersion(),
		"profile":                ctx.Profile(),
		"is_cpu":                 ctx.IsCPU(),
		"is_gpu":                 ctx.IsGPU(),
		"platform_index":         ctx.PlatformIndex(),
		"max_kernel_concurrency": ctx.MaxKernelConcurrency(),
		"max_memcpy_concurrency": ctx.MaxMemcpyConcurrency(),
		"aspects":                aspects,
		"properties":             properties,
		"list_properties":        listProperties,
	})
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to describe device %q", ctx.DeviceName())
	}
	return desc, nil
}

func numberValue(v uint64) any {
	if v > maxExactNumber {
		return strconv.FormatUint(v, 10)
	}
	return v
}
